package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"

	"modernwebagency.com/internal/app"
	"modernwebagency.com/internal/catalog"
	"modernwebagency.com/internal/models"
	"modernwebagency.com/internal/services"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseDate(flag, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: %w", flag, err)
	}
	return t, nil
}

// pageFlags are shared by every list command
type pageFlags struct {
	query  string
	fields string
	sort   string
	order  string
	page   int
	limit  int
}

func (p *pageFlags) register(cmd *cobra.Command, sortHelp string) {
	cmd.Flags().StringVarP(&p.query, "query", "q", "", "text to search for")
	cmd.Flags().StringVar(&p.fields, "fields", "", "comma separated fields to search")
	cmd.Flags().StringVar(&p.sort, "sort", "", sortHelp)
	cmd.Flags().StringVar(&p.order, "order", "", "asc or desc")
	cmd.Flags().IntVar(&p.page, "page", 1, "page number")
	cmd.Flags().IntVar(&p.limit, "limit", 0, "page size (default PAGE_SIZE_DEFAULT)")
}

func (c *cli) projectsCmd() *cobra.Command {
	var (
		pf       pageFlags
		category string
		tech     string
		techCat  string
		from     string
		to       string
		featured bool
	)
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Query the project portfolio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.loadCatalog()
			if err != nil {
				return err
			}
			q := services.ProjectQuery{
				Category:     models.ProjectCategory(category),
				Query:        pf.query,
				Tech:         tech,
				TechCategory: models.TechnologyCategory(techCat),
				Featured:     featured,
				Sort:         pf.sort,
				Page:         pf.page,
				Limit:        pf.limit,
			}
			if q.From, err = parseDate("from", from); err != nil {
				return err
			}
			if q.To, err = parseDate("to", to); err != nil {
				return err
			}
			if q.Order, err = catalog.ParseDirection(pf.order, ""); err != nil {
				return err
			}
			if pf.fields != "" {
				if q.Fields, err = catalog.ParseProjectFields(pf.fields); err != nil {
					return err
				}
			}

			page, err := services.NewProjectService(store, app.LimitsFrom(c.cfg)).List(q)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), page)
		},
	}
	pf.register(cmd, "date or title")
	cmd.Flags().StringVar(&category, "category", "", "all, web-app, e-commerce, corporate or mobile")
	cmd.Flags().StringVar(&tech, "tech", "", "technology name to filter by")
	cmd.Flags().StringVar(&techCat, "tech-category", "", "frontend, backend, database or tool")
	cmd.Flags().StringVar(&from, "from", "", "earliest completion date")
	cmd.Flags().StringVar(&to, "to", "", "latest completion date")
	cmd.Flags().BoolVar(&featured, "featured", false, "only featured projects")
	return cmd
}

func (c *cli) servicesCmd() *cobra.Command {
	var (
		pf       pageFlags
		minPrice float64
		maxPrice float64
	)
	cmd := &cobra.Command{
		Use:   "services",
		Short: "Query the services on offer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.loadCatalog()
			if err != nil {
				return err
			}
			q := services.ServiceQuery{Query: pf.query, Sort: pf.sort, Page: pf.page, Limit: pf.limit}
			if cmd.Flags().Changed("min-price") {
				q.MinPrice = &minPrice
			}
			if cmd.Flags().Changed("max-price") {
				q.MaxPrice = &maxPrice
			}
			if q.Order, err = catalog.ParseDirection(pf.order, ""); err != nil {
				return err
			}
			if pf.fields != "" {
				if q.Fields, err = catalog.ParseServiceFields(pf.fields); err != nil {
					return err
				}
			}

			page, err := services.NewOfferingService(store, app.LimitsFrom(c.cfg)).List(q)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), page)
		},
	}
	pf.register(cmd, "title")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "lowest acceptable price in USD")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "highest acceptable price in USD")
	return cmd
}

func (c *cli) teamCmd() *cobra.Command {
	var (
		pf    pageFlags
		skill string
		role  string
	)
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Query the team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.loadCatalog()
			if err != nil {
				return err
			}
			q := services.TeamQuery{Query: pf.query, Skill: skill, Role: role, Sort: pf.sort, Page: pf.page, Limit: pf.limit}
			if q.Order, err = catalog.ParseDirection(pf.order, ""); err != nil {
				return err
			}
			if pf.fields != "" {
				if q.Fields, err = catalog.ParseMemberFields(pf.fields); err != nil {
					return err
				}
			}

			page, err := services.NewTeamService(store, app.LimitsFrom(c.cfg)).List(q)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), page)
		},
	}
	pf.register(cmd, "name")
	cmd.Flags().StringVar(&skill, "skill", "", "skill to filter by")
	cmd.Flags().StringVar(&role, "role", "", "role to filter by")
	return cmd
}

// catalogStats is the combined statistics report
type catalogStats struct {
	Projects catalog.ProjectStatistics `json:"projects"`
	Services catalog.ServiceStatistics `json:"services"`
	Team     catalog.TeamStatistics    `json:"team"`
}

func statsOf(store *catalog.Store) catalogStats {
	return catalogStats{
		Projects: catalog.ProjectStats(store.Projects()),
		Services: catalog.ServiceStats(store.Services()),
		Team:     catalog.TeamStats(store.TeamMembers()),
	}
}

func (c *cli) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print catalog statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.loadCatalog()
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), statsOf(store))
		},
	}
}
