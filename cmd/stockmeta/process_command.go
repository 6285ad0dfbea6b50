package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"stockmeta/internal/batch"
	"stockmeta/internal/export"
	"stockmeta/internal/notifications"
)

func newProcessCommand(ctx *commandContext) *cobra.Command {
	var delayFlag int
	var noSkipDuplicates bool
	var noExport bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "process <image|directory>...",
		Short: "Generate metadata for images and export the results as CSV",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			client, err := ctx.newVisionClient(runCtx)
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			paths, err := batch.CollectImagePaths(args)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no supported image files found in %s", strings.Join(args, ", "))
			}

			delay := cfg.Batch.ItemDelaySeconds
			if cmd.Flags().Changed("delay") {
				delay = delayFlag
			}

			processor, err := batch.NewProcessor(client, notifications.NewService(cfg), logger, batch.Options{
				DataDir:        cfg.Paths.DataDir,
				ItemDelay:      time.Duration(delay) * time.Second,
				SkipDuplicates: cfg.Batch.SkipDuplicates && !noSkipDuplicates,
			})
			if err != nil {
				return err
			}

			result, err := processor.Run(runCtx, paths)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				if err := encoder.Encode(result); err != nil {
					return fmt.Errorf("encode result: %w", err)
				}
			} else {
				fmt.Fprintln(out, renderRunTable(result))
				fmt.Fprintf(out, "Processed %d, failed %d, skipped %d in %s\n",
					result.Processed, result.Failed, result.Skipped, result.Duration.Round(time.Second))
			}

			records := result.Records()
			if !noExport && len(records) > 0 {
				path, err := export.WriteFile(cfg.Paths.ExportDir, records)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Wrote %s\n", path)
			}

			if result.Failed > 0 {
				return fmt.Errorf("%d of %d images failed", result.Failed, len(result.Items))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&delayFlag, "delay", 0, "Seconds to pause between images (overrides config)")
	cmd.Flags().BoolVar(&noSkipDuplicates, "no-skip-duplicates", false, "Process images even when perceptually identical to an earlier one")
	cmd.Flags().BoolVar(&noExport, "no-export", false, "Skip writing the CSV export")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the full run result as JSON")
	return cmd
}

func renderRunTable(result *batch.Result) string {
	rows := make([][]string, 0, len(result.Items))
	for _, item := range result.Items {
		row := []string{item.FileName, string(item.Status), "", "", ""}
		switch {
		case item.Record != nil:
			row[2] = truncateText(item.Record.Title, 48)
			row[3] = strconv.Itoa(len(item.Record.Keywords))
			row[4] = item.Record.Category
		case item.Error != "":
			row[2] = truncateText(item.Error, 48)
		}
		rows = append(rows, row)
	}
	return renderTable([]string{"File", "Status", "Title", "Keywords", "Category"}, rows, 4)
}

func truncateText(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit-1]) + "…"
}
