package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"modernwebagency.com/internal/catalog"
	"modernwebagency.com/internal/validation"
)

func (c *cli) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [catalog.yaml]",
		Short: "Check a catalog file against the content rules",
		Long: `validate decodes a catalog definition and checks every project, service and
team member. Without an argument it checks the configured catalog.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.cfg.CatalogPath
			if len(args) == 1 {
				path = args[0]
			}

			var (
				ds  catalog.Dataset
				err error
			)
			if path == "" {
				ds, err = catalog.DefaultDataset()
			} else {
				ds, err = catalog.DecodeFile(path)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := validation.New().ValidateDataset(ds); err != nil {
				var dsErr *validation.DatasetError
				if errors.As(err, &dsErr) {
					for _, r := range dsErr.Records {
						fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", r.Error())
					}
					return fmt.Errorf("catalog has %d invalid record(s)", len(dsErr.Records))
				}
				return err
			}
			if _, err := catalog.NewStore(ds); err != nil {
				return err
			}

			fmt.Fprintf(out, "catalog OK: %d projects, %d services, %d team members\n",
				len(ds.Projects), len(ds.Services), len(ds.TeamMembers))
			return nil
		},
	}
}
