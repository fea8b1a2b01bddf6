package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talentdesk/internal/localstore"
	"github.com/jonathan/talentdesk/internal/schemas"
	"github.com/jonathan/talentdesk/internal/types"
)

func newRestoreCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <collection> <file.json>",
		Short: "Replace a local store collection with the records in a JSON backup",
		Long: "Replace a local store collection with the records in a JSON backup.\n\n" +
			"The file must hold a JSON array matching the collection schema, such as\n" +
			"a copy of <LOCAL_STORE_DIR>/<collection>.json. Collections: importedCVs,\n" +
			"candidates, interviews, jobPostings.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, path := args[0], args[1]
			if !schemas.HasSchema(key) {
				return fmt.Errorf("unknown collection %q", key)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read backup: %w", err)
			}
			if err := schemas.ValidateCollection(key, data); err != nil {
				return fmt.Errorf("backup rejected: %w", err)
			}

			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			store, err := openLocalStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			var n int
			switch key {
			case localstore.KeyImportedCVs:
				n, err = restoreCollection[types.ImportedCV](cmd.Context(), store, key, data)
			case localstore.KeyCandidates:
				n, err = restoreCollection[types.Candidate](cmd.Context(), store, key, data)
			case localstore.KeyInterviews:
				n, err = restoreCollection[types.Interview](cmd.Context(), store, key, data)
			case localstore.KeyJobPostings:
				n, err = restoreCollection[types.JobPosting](cmd.Context(), store, key, data)
			default:
				return fmt.Errorf("collection %q cannot be restored", key)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Restored %d record(s) into %s\n", n, key)
			return nil
		},
	}
}

func restoreCollection[T localstore.Record](ctx context.Context, store localstore.Store, key string, data []byte) (int, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return 0, fmt.Errorf("failed to decode backup: %w", err)
	}
	if err := localstore.NewCollection[T](store, key).Replace(ctx, items); err != nil {
		return 0, fmt.Errorf("failed to restore %s: %w", key, err)
	}
	return len(items), nil
}
