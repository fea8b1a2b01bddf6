package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newSyncCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Push records saved locally during database outages to PostgreSQL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context(), root, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			if a.db == nil {
				return fmt.Errorf("DATABASE_URL environment variable is required")
			}

			result, err := a.svc.Push(cmd.Context())
			names := make([]string, 0, len(result))
			for name := range result {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %d\n", name, result[name])
			}
			return err
		},
	}
}
