package main

import (
	"context"

	"github.com/spf13/cobra"

	"modernwebagency.com/internal/services"
	"modernwebagency.com/internal/storage/sqlite"
	"modernwebagency.com/internal/validation"
)

// withInbox opens the contact store for the duration of fn
func (c *cli) withInbox(ctx context.Context, fn func(*services.ContactService) error) error {
	store, err := sqlite.Open(ctx, c.cfg.ContactDBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(services.NewContactService(store, validation.New(), c.logger))
}

func (c *cli) inquiriesCmd() *cobra.Command {
	var (
		limit int
		token string
	)
	cmd := &cobra.Command{
		Use:   "inquiries",
		Short: "List stored contact form submissions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withInbox(cmd.Context(), func(contact *services.ContactService) error {
				page, err := contact.List(cmd.Context(), limit, token)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), page)
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "inquiries per page")
	cmd.Flags().StringVar(&token, "page-token", "", "token from the previous page")
	cmd.AddCommand(c.inquiryGetCmd())
	return cmd
}

func (c *cli) inquiryGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print one stored contact form submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withInbox(cmd.Context(), func(contact *services.ContactService) error {
				inquiry, err := contact.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), inquiry)
			})
		},
	}
}
