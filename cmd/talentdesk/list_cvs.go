package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/talentdesk/internal/observability"
	"github.com/jonathan/talentdesk/internal/types"
)

func newListCVsCmd(root *rootOptions) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "list-cvs",
		Short: "List imported CVs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := types.CVFilter(filter)
			if !f.IsValid() {
				return fmt.Errorf("invalid filter %q (want all, pending, approved or rejected)", filter)
			}

			a, err := openApp(cmd.Context(), root, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			cvs, err := a.svc.CVs.List(cmd.Context(), f)
			if err != nil {
				return err
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintCVList(strings.ToUpper(filter)+" CVS", cvs)
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", string(types.CVFilterAll), "all, pending, approved or rejected")
	return cmd
}
