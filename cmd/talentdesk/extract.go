package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/talentdesk/internal/ingestion"
	"github.com/jonathan/talentdesk/internal/observability"
	"github.com/jonathan/talentdesk/internal/parsing"
	"github.com/jonathan/talentdesk/internal/types"
)

type extractOptions struct {
	asJSON  bool
	rawText bool
}

func newExtractCmd() *cobra.Command {
	opts := &extractOptions{}
	cmd := &cobra.Command{
		Use:   "extract <file>...",
		Short: "Extract and parse CV files without storing them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			printer := observability.NewPrinter(out)
			profiles := make([]types.CandidateProfile, 0, len(args))

			for _, path := range args {
				u, err := ingestion.ReadUpload(path)
				if err != nil {
					return err
				}
				res := ingestion.Extract(u)
				if opts.rawText {
					fmt.Fprintln(out, res.Content())
					continue
				}

				profile := parsing.FromResult(res)
				profiles = append(profiles, profile)
				if !opts.asJSON {
					printer.PrintProfile(u.FileName, &profile)
				}
			}

			if opts.asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(profiles)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print parsed profiles as JSON")
	cmd.Flags().BoolVar(&opts.rawText, "text", false, "Print the extracted text (or failure marker) only")
	return cmd
}
