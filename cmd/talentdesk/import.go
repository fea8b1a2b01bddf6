package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/talentdesk/internal/ingestion"
	"github.com/jonathan/talentdesk/internal/observability"
	"github.com/jonathan/talentdesk/internal/pipeline"
)

func newImportCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>...",
		Short: "Import CV files into the review queue",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uploads := make([]ingestion.Upload, 0, len(args))
			for _, path := range args {
				if !ingestion.AllowedExtension(path) {
					return fmt.Errorf("unsupported file type: %s", path)
				}
				u, err := ingestion.ReadUpload(path)
				if err != nil {
					return err
				}
				uploads = append(uploads, u)
			}

			a, err := openApp(cmd.Context(), root, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			report, err := a.svc.CVs.Import(cmd.Context(), uploads, func(ev pipeline.ProgressEvent) {
				a.log.Debug(ev.Message, "step", ev.Step, "file", ev.FileName, "index", ev.Index, "total", ev.Total)
			})
			if err != nil {
				return err
			}

			failed := make([]string, 0, len(report.Failed))
			for _, f := range report.Failed {
				failed = append(failed, f.FileName+": "+f.Error)
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintImportSummary(len(uploads), report.Imported, failed, string(report.Sync))

			if report.Imported == 0 {
				return fmt.Errorf("no CVs were imported")
			}
			return nil
		},
	}
}
