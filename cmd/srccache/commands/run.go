package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/srccache/internal/app"
	"go.trai.ch/srccache/internal/core/domain"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compile the configured workload and print cache statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			report, err := c.app.Run(cmd.Context(), app.RunOptions{ConfigPath: configPath})
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().StringP("config", "c", "", "Path to srccache.yaml or a directory to search from (default: working directory)")
	return cmd
}

func printReport(w io.Writer, report domain.RunReport) {
	_, _ = fmt.Fprintf(w, "iterations:   %d\n", report.Iterations)
	_, _ = fmt.Fprintf(w, "compiled:     %d\n", report.Compiled)
	_, _ = fmt.Fprintf(w, "cached:       %d\n", report.Cached)
	_, _ = fmt.Fprintf(w, "collections:  %d\n", len(report.Collections))
	_, _ = fmt.Fprintf(w, "associations: %d\n", report.Stats.Associations)
	_, _ = fmt.Fprintf(w, "clears:       %d\n", report.Stats.Clears)

	for _, kind := range []domain.EntryKind{domain.KindScript, domain.KindEvalGlobal, domain.KindEvalContextual} {
		t := report.Stats.Table(kind)
		_, _ = fmt.Fprintf(w, "%-16s entries=%d hits=%d misses=%d\n", kind.String()+":", t.Entries, t.Hits, t.Misses)
	}
}
