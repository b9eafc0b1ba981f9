package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ehorn/torchcross/config"
	"github.com/ehorn/torchcross/core/crossing"
	"github.com/ehorn/torchcross/core/model"
	"github.com/ehorn/torchcross/core/scheduler"
	"github.com/ehorn/torchcross/infra/logger"
	"github.com/ehorn/torchcross/pkg/export"
)

var (
	cfgPath string
	format  string
	output  string
	stats   bool
)

var rootCmd = &cobra.Command{
	Use:   "torchcross",
	Short: "Plan a minimal-time crossing for a group of actors",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "crossing.yaml", "population file")
	rootCmd.Flags().StringVar(&format, "format", "", "report format: text, json or csv (default from config)")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "write the report to a file instead of stdout")
	rootCmd.Flags().BoolVar(&stats, "stats", false, "append per-leg cost statistics")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return err
	}
	logg := logger.New("torchcross")
	runID := uuid.NewString()
	logg.Debugw("planning crossing", map[string]any{"run_id": runID, "actors": len(cfg.People)})

	actors, err := model.Ingest(cfg.Definitions())
	if err != nil {
		return fmt.Errorf("ingest: %w", err)
	}
	initial, err := crossing.NewState(actors)
	if err != nil {
		return fmt.Errorf("initial state: %w", err)
	}
	hist, err := scheduler.New(logg).Cross(initial)
	if err != nil {
		return fmt.Errorf("cross: %w", err)
	}

	w := cmd.OutOrStdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer func() {
			if err := f.Close(); err != nil {
				logg.Errorf("close output: %v", err)
			}
		}()
		w = f
	}
	if err := render(w, cfg, hist); err != nil {
		return err
	}
	if stats || cfg.Report.Stats {
		if err := export.WriteSummary(cmd.ErrOrStderr(), hist); err != nil {
			return err
		}
	}
	logg.Infof("run %s complete, total time %.2f", runID, hist.TotalTime())
	return nil
}

func render(w io.Writer, cfg *config.Config, hist crossing.History) error {
	f := format
	if f == "" {
		f = cfg.Report.Format
	}
	switch f {
	case "text":
		return export.WriteText(w, hist)
	case "json":
		return export.WriteJSON(w, hist)
	case "csv":
		return export.WriteCSV(w, hist)
	}
	return fmt.Errorf("unknown report format %q", f)
}
