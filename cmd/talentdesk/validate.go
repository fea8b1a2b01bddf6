package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jonathan/talentdesk/internal/schemas"
)

func newValidateCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the local store collections against their JSON Schemas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			store, err := openLocalStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			keys := make([]string, 0, len(schemas.CollectionSchemas))
			for key := range schemas.CollectionSchemas {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			out := cmd.OutOrStdout()
			failed := 0
			for _, key := range keys {
				data, err := store.Load(cmd.Context(), key)
				if err != nil {
					return fmt.Errorf("failed to load %s: %w", key, err)
				}
				if data == nil {
					fmt.Fprintf(out, "%-12s empty\n", key)
					continue
				}
				if err := schemas.ValidateCollection(key, data); err != nil {
					failed++
					fmt.Fprintf(out, "%-12s Validation failed: %v\n", key, err)
					continue
				}
				fmt.Fprintf(out, "%-12s Validation passed\n", key)
			}

			if failed > 0 {
				return fmt.Errorf("%d collection(s) failed validation", failed)
			}
			return nil
		},
	}
}
