package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talentdesk/internal/export"
	"github.com/jonathan/talentdesk/internal/types"
)

func newExportCmd(root *rootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write imported CVs, candidates and interviews to an xlsx workbook",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx, root, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			var data export.Data
			if data.ImportedCVs, err = a.svc.CVs.All(ctx); err != nil {
				return err
			}
			if data.Candidates, err = a.svc.Candidates.List(ctx, types.CandidateFilter{}); err != nil {
				return err
			}
			if data.Interviews, err = a.svc.Interviews.List(ctx); err != nil {
				return err
			}

			if out == "" {
				out = fmt.Sprintf("talentdesk-%s.xlsx", a.svc.Now().Format("20060102"))
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			if err := export.Write(f, data); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d CVs, %d candidates, %d interviews)\n",
				out, len(data.ImportedCVs), len(data.Candidates), len(data.Interviews))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (default talentdesk-YYYYMMDD.xlsx)")
	return cmd
}
