package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"modernwebagency.com/internal/app"
	"modernwebagency.com/internal/catalog"
	"modernwebagency.com/internal/services"
)

// snapshot is one JSON file written by export
type snapshot struct {
	name    string
	records int
	data    any
}

func snapshots(store *catalog.Store, limits services.Limits) []snapshot {
	projects := services.NewProjectService(store, limits).GetAll()
	offerings := services.NewOfferingService(store, limits).GetAll()
	members := services.NewTeamService(store, limits).GetAll()
	site := store.Site()
	return []snapshot{
		{"projects.json", len(projects), projects},
		{"services.json", len(offerings), offerings},
		{"team.json", len(members), members},
		{"testimonials.json", len(site.Testimonials), site.Testimonials},
		{"faqs.json", len(site.FAQs), site.FAQs},
		{"site.json", 1, site.Config},
		{"stats.json", 1, statsOf(store)},
	}
}

func (c *cli) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <output-dir>",
		Short: "Write the catalog as static JSON files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.loadCatalog()
			if err != nil {
				return err
			}

			outputDir := args[0]
			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, s := range snapshots(store, app.LimitsFrom(c.cfg)) {
				data, err := json.MarshalIndent(s.data, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal %s: %w", s.name, err)
				}
				path := filepath.Join(outputDir, s.name)
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				fmt.Fprintf(out, "  Created %s (%d records)\n", s.name, s.records)
			}

			fmt.Fprintln(out, "Done!")
			return nil
		},
	}
}
