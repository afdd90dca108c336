//go:build !solution

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"gitlab.com/slon/grocer/freqtable"
	"gitlab.com/slon/grocer/grocerconfig"
	"gitlab.com/slon/grocer/logging"
	"gitlab.com/slon/grocer/metrics"
	"gitlab.com/slon/grocer/querymenu"
)

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "grocer",
		Short:         "Corner Grocer item frequency tracker",
		Long:          "Reads purchased item names (one per line), writes a frequency backup and serves an interactive query menu.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := grocerconfig.Default()
			if configPath != "" {
				var err error
				config, err = grocerconfig.Load(configPath)
				if err != nil {
					return err
				}
			}
			if err := applyFlags(cmd.Flags(), &config); err != nil {
				return err
			}
			if err := config.Validate(); err != nil {
				return err
			}

			logger, err := logging.New(config.Log.Mode, config.Log.Level)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return run(config, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&configPath, "config", "c", "", "path to YAML config")
	defaults := grocerconfig.Default()
	fs.StringP("input", "i", defaults.Input, "input file, one item per line")
	fs.StringP("backup", "b", defaults.Backup, "frequency backup file")
	fs.Bool("restore", defaults.Restore, "load the table from the backup file instead of the input file")
	fs.String("marker", defaults.Marker, "histogram marker character")
	fs.Int("column-width", defaults.ColumnWidth, "item column width")
	fs.String("lookup-mode", defaults.LookupMode, "search mode: scan or index")
	fs.String("metrics-file", defaults.MetricsFile, "write prometheus metrics to this file on exit")
	fs.String("log-mode", defaults.Log.Mode, "log format: development or production")
	fs.String("log-level", defaults.Log.Level, "log level")

	return cmd
}

// applyFlags переопределяет значения из конфига только явно заданными флагами.
func applyFlags(fs *pflag.FlagSet, config *grocerconfig.Config) error {
	var err error
	set := func(name string, apply func() error) {
		if err == nil && fs.Changed(name) {
			err = apply()
		}
	}

	set("input", func() (e error) { config.Input, e = fs.GetString("input"); return })
	set("backup", func() (e error) { config.Backup, e = fs.GetString("backup"); return })
	set("restore", func() (e error) { config.Restore, e = fs.GetBool("restore"); return })
	set("marker", func() (e error) { config.Marker, e = fs.GetString("marker"); return })
	set("column-width", func() (e error) { config.ColumnWidth, e = fs.GetInt("column-width"); return })
	set("lookup-mode", func() (e error) { config.LookupMode, e = fs.GetString("lookup-mode"); return })
	set("metrics-file", func() (e error) { config.MetricsFile, e = fs.GetString("metrics-file"); return })
	set("log-mode", func() (e error) { config.Log.Mode, e = fs.GetString("log-mode"); return })
	set("log-level", func() (e error) { config.Log.Level, e = fs.GetString("log-level"); return })
	return err
}

func loadTable(config grocerconfig.Config, out io.Writer, logger *zap.Logger) *freqtable.Table {
	path := config.Input
	load := freqtable.Load
	if config.Restore {
		path = config.Backup
		load = freqtable.LoadBackup
	}

	table, err := load(path)
	switch {
	case errors.Is(err, freqtable.ErrSourceUnavailable):
		logger.Warn("source unavailable", zap.String("path", path), zap.Error(err))
		fmt.Fprintf(out, "Error: Could not open input file: %s\n", path)
	case err != nil:
		logger.Warn("failed to load table", zap.String("path", path), zap.Error(err))
		fmt.Fprintf(out, "Error: Could not load %s: %v\n", path, err)
	default:
		logger.Info("table loaded",
			zap.String("path", path),
			zap.Int("unique", table.Len()),
			zap.Int("total", table.Total()),
		)
	}
	return table
}

func writeBackup(config grocerconfig.Config, table *freqtable.Table, out io.Writer, logger *zap.Logger) {
	if err := freqtable.DumpFile(config.Backup, table); err != nil {
		logger.Warn("sink unavailable", zap.String("path", config.Backup), zap.Error(err))
		fmt.Fprintf(out, "Error: Could not create backup file: %s\n", config.Backup)
		return
	}
	logger.Info("backup written", zap.String("path", config.Backup))
	fmt.Fprintf(out, "Backup file '%s' created successfully.\n", config.Backup)
}

func run(config grocerconfig.Config, in io.Reader, out io.Writer, logger *zap.Logger) error {
	table := loadTable(config, out, logger)
	// При восстановлении backup уже является источником, перезаписывать его незачем.
	if !config.Restore {
		writeBackup(config, table, out, logger)
	}

	fmt.Fprintln(out, "Welcome to the Corner Grocer Item Tracking System!")
	if config.Restore {
		fmt.Fprintln(out, "Data restored from backup file.")
	} else {
		fmt.Fprintln(out, "Data loaded from input file. Backup file created.")
	}
	fmt.Fprintf(out, "Total unique items found: %d\n", table.Len())

	stats := metrics.New()
	stats.SetTable(table.Len(), table.Total())

	menu := querymenu.New(table, querymenu.Options{
		Marker:      config.MarkerRune(),
		ColumnWidth: config.ColumnWidth,
		Mode:        querymenu.LookupMode(config.LookupMode),
		Logger:      logger,
		Recorder:    stats,
	})
	if err := menu.Run(in, out); err != nil {
		if !errors.Is(err, querymenu.ErrInputClosed) {
			return err
		}
		logger.Warn("interactive input closed before exit was selected", zap.Error(err))
	}

	if config.MetricsFile != "" {
		if err := stats.WriteFile(config.MetricsFile); err != nil {
			logger.Warn("failed to write metrics", zap.Error(err))
		} else {
			logger.Info("metrics written", zap.String("path", config.MetricsFile))
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
