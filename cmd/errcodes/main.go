/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dirpx.dev/errcode/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	debug   = false
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Flags are parsed by Execute, so peek at --debug for the logger level.
	logger, err := newConsoleLogger(hasDebugFlag(os.Args[1:]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	initCommands(logger)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", cli.Report(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "errcodes",
	Short: "Hierarchical error code tool",
	Long: `errcodes composes, decodes and catalogs hierarchical error codes:
- encode a category and a path into a code
- decode a code and explain its HTTP and gRPC statuses
- list the built-in categories
- export or serve the catalog of declared codes`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

func initCommands(logger *zap.Logger) {
	rootCmd.AddCommand(cli.NewEncodeCmd(logger))
	rootCmd.AddCommand(cli.NewDecodeCmd(logger))
	rootCmd.AddCommand(cli.NewCategoriesCmd(logger))
	rootCmd.AddCommand(cli.NewCatalogCmd(logger))
	rootCmd.AddCommand(cli.NewServeCmd(logger))
}

func hasDebugFlag(args []string) bool {
	for _, a := range args {
		if a == "--debug" || a == "--debug=true" {
			return true
		}
	}
	return false
}

// newConsoleLogger returns a human-friendly console logger with timestamps.
// If debug is true, sets log level to Debug to enable all debug logs.
// Otherwise only Info and above are shown.
func newConsoleLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	// Logs go to stderr so command output on stdout stays machine-readable.
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg.Build()
}
