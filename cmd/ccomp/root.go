package main

import (
	"github.com/spf13/cobra"

	"github.com/tinyrange/ucc/internal/logger"
)

type rootFlags struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:   "ccomp",
		Short: "Compile a tiny C subset to x86_64 assembly",
		Long: `ccomp compiles a single-function C program whose body is one return
statement of an integer literal with optional -, ~ and ! prefixes.

Commands:
  build   Compile a .c file to assembly and link it with cc
  tokens  Print the token stream of a source file
  ast     Print the syntax tree of a source file
  eval    Print the value main returns
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logger.ParseLevel(flags.logLevel)
			if err != nil {
				return err
			}
			cfg := logger.DefaultConfig()
			cfg.Level = level
			cfg.Format = flags.logFormat
			cfg.Output = cmd.ErrOrStderr()
			return logger.Init(cfg)
		},
	}
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "text", "log format: text or json")

	cmd.AddCommand(newBuildCmd(), newTokensCmd(), newASTCmd(), newEvalCmd())
	return cmd
}
