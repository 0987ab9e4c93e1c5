// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package cli implements the bfdd command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger     *log.Logger
	configPath string
	config     Config
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "bfdd",
		Short:        "bfdd builds binary and functional decision diagrams for circuits",
		Long:         `bfdd reads and-inverter graphs in AIGER format and builds the BDD (or FDD) of their outputs and next-state functions.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.configPath == "" {
				return nil
			}
			cfg, err := LoadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.config = cfg
			c.Logger.Debug("loaded config", "file", c.configPath, "buckets", cfg.Buckets, "cachesize", cfg.Cachesize)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "YAML file with the sizes of the tables")

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.simCommand())
	root.AddCommand(c.drawCommand())
	root.AddCommand(c.statsCommand())
	return root
}
