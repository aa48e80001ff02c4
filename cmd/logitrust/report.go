package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/logitrust/internal/application/handlers"
)

func newReportCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize edit requests and risky places",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				report, err := d.Reports.Generate(days)
				if err != nil {
					return err
				}
				if globalJSON {
					return writeJSON(cmd.OutOrStdout(), report)
				}
				formatReport(cmd.OutOrStdout(), report)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", handlers.DefaultReportDays, "Report window in days")

	return cmd
}

func newExportCmd() *cobra.Command {
	var (
		days   int
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ops report as CSV",
		Long:  "Writes the request summary and disputed places to logitrust_report_<days>days.csv, or to --output. Use --output - for stdout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				result, err := d.Reports.Export(days)
				if err != nil {
					return err
				}
				if output == "-" {
					_, err := io.WriteString(cmd.OutOrStdout(), result.Content+"\n")
					return err
				}
				path := output
				if path == "" {
					path = result.FileName
				}
				if err := writeFile(path, result.Content); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported report to %s\n", path)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", handlers.DefaultReportDays, "Report window in days")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: logitrust_report_<days>days.csv)")

	return cmd
}

func writeFile(path, content string) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing file: %w", cerr)
		}
	}()

	if _, err := io.WriteString(f, content); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}
