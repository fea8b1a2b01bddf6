package main

import (
	"fmt"
	"os/user"

	"github.com/spf13/cobra"
)

type reviewOptions struct {
	approve  bool
	reject   bool
	reviewer string
	notes    string
}

func newReviewCmd(root *rootOptions) *cobra.Command {
	opts := &reviewOptions{}
	cmd := &cobra.Command{
		Use:   "review <id>",
		Short: "Approve or reject an imported CV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.approve == opts.reject {
				return fmt.Errorf("exactly one of --approve or --reject is required")
			}
			reviewer := opts.reviewer
			if reviewer == "" {
				reviewer = currentUser()
			}

			a, err := openApp(cmd.Context(), root, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			cv, sync, err := a.svc.CVs.Review(cmd.Context(), args[0], opts.approve, reviewer, opts.notes)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s), saved %s\n", cv.ID, cv.Status, cv.FullName, sync)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.approve, "approve", false, "Approve the CV")
	cmd.Flags().BoolVar(&opts.reject, "reject", false, "Reject the CV")
	cmd.Flags().StringVar(&opts.reviewer, "reviewer", "", "Reviewer name (defaults to the OS user)")
	cmd.Flags().StringVar(&opts.notes, "notes", "", "Review notes")
	return cmd
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "cli"
}
