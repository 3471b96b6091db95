package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/outlay-dev/outlay/internal/buildinfo"
	"github.com/outlay-dev/outlay/internal/config"
	"github.com/outlay-dev/outlay/internal/expenses"
	"github.com/outlay-dev/outlay/internal/logging"
	"github.com/outlay-dev/outlay/internal/report"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "outlay",
		Short:   "Flat-file personal expense tracker",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", config.FileName, "path to outlay.yaml")

	rootCmd.AddCommand(
		newInitCommand(),
		newAddCommand(),
		newListCommand(),
		newSummaryCommand(),
		newDashboardCommand(),
	)

	return rootCmd
}

// env bundles the wired-up collaborators every data command needs.
type env struct {
	cfg *config.Config
	svc *expenses.Service
	log *logrus.Logger
}

// newEnv loads the config named by the root --config flag and wires the
// store, formatter, and service. A missing config file falls back to
// defaults so the tracker works out of the box.
func newEnv(cmd *cobra.Command) (*env, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		return nil, err
	}

	// Resolve a relative store path against the config file's directory so
	// commands behave the same from any working directory.
	storePath := cfg.Store.Path
	if !filepath.IsAbs(storePath) {
		storePath = filepath.Join(filepath.Dir(configPath), storePath)
	}

	store := expenses.NewStore(storePath)
	formatter := report.NewFormatter(cfg.Display.CurrencySymbol)

	return &env{
		cfg: cfg,
		svc: expenses.NewService(store, formatter),
		log: logging.Setup(),
	}, nil
}

// dashboard fetches the filtered view, degrading to an empty one on a load
// failure instead of aborting the command.
func (e *env) dashboard(filter expenses.Filter) expenses.DashboardData {
	data, err := e.svc.Dashboard(filter)
	if err != nil {
		var serr *expenses.StoreError
		if errors.As(err, &serr) {
			e.log.WithFields(logrus.Fields{
				"path":  serr.Path,
				"error": serr.Err.Error(),
			}).Warn("could not load expenses, showing empty data")
		} else {
			e.log.WithError(err).Warn("could not load expenses, showing empty data")
		}
		return expenses.DashboardData{}
	}
	if data.SkippedRows > 0 {
		e.log.WithField("rows", data.SkippedRows).Warn("dropped malformed rows during reload")
	}
	return data
}

// filterFromFlags assembles a Filter from the shared --category/--from/--to
// flag values. Empty strings mean no constraint.
func filterFromFlags(category, from, to string) (expenses.Filter, error) {
	var filter expenses.Filter

	filter.Category = category

	if from != "" {
		d, err := expenses.ParseDate(from)
		if err != nil {
			return expenses.Filter{}, fmt.Errorf("--from: %w", err)
		}
		filter.From = d
	}
	if to != "" {
		d, err := expenses.ParseDate(to)
		if err != nil {
			return expenses.Filter{}, fmt.Errorf("--to: %w", err)
		}
		filter.To = d
	}
	return filter, nil
}
