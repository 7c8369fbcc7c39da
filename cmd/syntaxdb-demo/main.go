// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

// Package main implements the syntaxdb demo CLI. It feeds a file into a
// lang/lambda-backed incremental.ParserDb and prints diagnostics and a
// span-annotated dump of the resulting CST. The demo exists only to exercise the core pipeline from
// the outside; CLI wrappers are an explicit non-goal of the core itself.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mdhender/syntaxdb/incremental"
	"github.com/mdhender/syntaxdb/lang/lambda"
	"github.com/mdhender/syntaxdb/syntax"
)

var logger *slog.Logger

func main() {
	var path string
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	cmdRoot := &cobra.Command{
		Use:           "syntaxdb-demo",
		Short:         "parse a lambda-calculus file through the incremental pipeline",
		Long:          `Feed a file into a ParserDb and print its diagnostics and CST.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Root().PersistentFlags()
			logLevel, err := flags.GetString("log-level")
			if err != nil {
				return err
			}
			logSource, err := flags.GetBool("log-source")
			if err != nil {
				return err
			}
			var lvl slog.Level
			switch strings.ToLower(logLevel) {
			case "debug":
				lvl = slog.LevelDebug
			case "info":
				lvl = slog.LevelInfo
			case "warn", "warning":
				lvl = slog.LevelWarn
			case "error":
				lvl = slog.LevelError
			default:
				return fmt.Errorf("log-level: unknown value %q", logLevel)
			}
			logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     lvl,
				AddSource: logSource || lvl == slog.LevelDebug,
			}))
			slog.SetDefault(logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			started := time.Now()
			data, err := os.ReadFile(path)
			if err != nil {
				logger.Error("syntaxdb-demo", "error", err)
				return err
			}
			logger.Info("syntaxdb-demo", "input", path, "size", humanize.Bytes(uint64(len(data))))

			db := incremental.New[*lambda.Expr](string(data), lambda.New())
			logger.Info("syntaxdb-demo", "session", db.SessionID())

			for _, d := range db.Diagnostics() {
				fmt.Printf("%s\n", d.String())
			}

			stage := db.Cst()
			if stage.IsLexError {
				fmt.Println("lex error; no tree")
			} else {
				syntax.Dump(os.Stdout, syntax.NewRoot(stage.Cst))
			}

			logger.Info("syntaxdb-demo", "elapsed", time.Since(started).String())
			return nil
		},
	}
	cmdRoot.PersistentFlags().String("log-level", "error", "logging level (debug|info|warn|error)")
	cmdRoot.PersistentFlags().Bool("log-source", false, "add file and line numbers to log messages")
	cmdRoot.Flags().StringVar(&path, "input", path, "source file to parse")
	if err := cmdRoot.MarkFlagRequired("input"); err != nil {
		log.Fatal(err)
	}
	cmdRoot.AddCommand(cmdVersion())

	if err := cmdRoot.Execute(); err != nil {
		log.Fatal(err)
	}
}
