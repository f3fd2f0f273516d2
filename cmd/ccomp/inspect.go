package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tinyrange/ucc/internal/ast"
	"github.com/tinyrange/ucc/internal/compiler"
	"github.com/tinyrange/ucc/internal/eval"
	"github.com/tinyrange/ucc/internal/lexer"
)

func readSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	return string(b), err
}

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file.c>",
		Short: "Print the token stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				return err
			}
			toks, lexErr := lexer.Tokenize(src)
			// Tokens before a lex error are still printed.
			for _, t := range toks {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			if lexErr != nil {
				return fmt.Errorf("%s: %w", args[0], lexErr)
			}
			return nil
		},
	}
}

func newASTCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ast <file.c>",
		Short: "Print the syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				return err
			}
			prog, err := compiler.Parse(args[0], src, compiler.Options{})
			if err != nil {
				return err
			}
			return ast.Dump(cmd.OutOrStdout(), prog)
		},
	}
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <file.c>",
		Short: "Print the value main returns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				return err
			}
			prog, err := compiler.Parse(args[0], src, compiler.Options{})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), eval.Program(prog))
			return err
		},
	}
}
