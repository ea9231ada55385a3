package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"syntaxa/internal/config"
	"syntaxa/internal/logging"
	"syntaxa/internal/report"
	"syntaxa/internal/syntaxon"
)

// app carries the state shared by all commands.
type app struct {
	configPath string
	logLevel   string
	debug      bool
	format     string
	output     string

	cfg    *config.Config
	log    *zap.Logger
	engine *syntaxon.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "syntaxa",
		Short: "Validate syntaxon codes and reconcile vegetation type translations",
		Long: `syntaxa recognizes, canonicalizes and classifies vegetation type codes of
the Staatsbosbeheer Catalogus (sbbcat), the national vegetation
classification of 1998 (vvn) and its revision (rvvn), and reconciles the
expert translation table between the classification systems.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Config file path (default "+config.DefaultFile+" if present)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.BoolVar(&a.debug, "debug", false, "Dump the effective configuration to stderr")
	flags.StringVarP(&a.format, "format", "f", string(report.FormatText), "Output format (csv, yaml, text)")
	flags.StringVarP(&a.output, "output", "o", "", "Write output to file instead of stdout")

	cmd.AddCommand(
		newValidateCmd(a),
		newLevelCmd(a),
		newClassCmd(a),
		newCodeTestCmd(a),
		newTranslateCmd(a),
		newCrossClassCmd(a),
		newRulesCmd(a),
		newVegTypesCmd(a),
		newCheckCmd(a),
		newCorrectionsCmd(a),
	)

	return cmd
}

// setup loads the configuration and builds the logger and engine.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if a.debug {
		spew.Fdump(cmd.ErrOrStderr(), cfg)
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	a.cfg = cfg
	a.log = log
	a.engine = syntaxon.NewEngine(log)

	return nil
}

// loadConfig reads path, or the default file when it exists, or falls
// back to the built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}

	if _, err := os.Stat(config.DefaultFile); err == nil {
		return config.LoadFile(config.DefaultFile)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return config.DefaultConfig(), nil
}

// write renders t in the selected format to the output file or stdout.
func (a *app) write(cmd *cobra.Command, t *report.Table) error {
	format, err := report.ParseFormat(a.format)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if a.output != "" {
		f, err := os.Create(a.output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()

		w = f
	}

	if err := report.Write(w, format, t); err != nil {
		return err
	}

	a.log.Debug("table written",
		zap.String("format", string(format)),
		zap.Int("rows", len(t.Rows)),
		zap.String("output", a.output))

	return nil
}
