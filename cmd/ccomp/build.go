package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/tinyrange/ucc/internal/compiler"
)

type buildFlags struct {
	out      string
	asmOnly  bool
	platform string
}

// build: compile .c -> .s, then link with cc unless -S
func newBuildCmd() *cobra.Command {
	var flags buildFlags
	cmd := &cobra.Command{
		Use:   "build <file.c>",
		Short: "Compile a source file to assembly and link it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return buildRun(cmd, args[0], flags)
		},
	}
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "output path, - for stdout with -S (default: source name with .s, or without extension when linking)")
	cmd.Flags().BoolVarP(&flags.asmOnly, "asm", "S", false, "stop after writing assembly")
	cmd.Flags().StringVar(&flags.platform, "platform", runtime.GOOS, "target OS for symbol naming (linux, darwin)")
	return cmd
}

// checkOutput refuses an output path that would overwrite the source.
func checkOutput(src, out string) error {
	if filepath.Clean(src) == filepath.Clean(out) {
		return fmt.Errorf("output %s would overwrite source %s", out, src)
	}
	return nil
}

func buildRun(cmd *cobra.Command, src string, flags buildFlags) error {
	opts := compiler.Options{Platform: flags.platform}

	if flags.asmOnly {
		if flags.out == "-" {
			data, err := os.ReadFile(src)
			if err != nil {
				return err
			}
			asm, err := compiler.Compile(src, string(data), opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), asm)
			return err
		}
		asmPath := compiler.AsmPath(src)
		if flags.out != "" {
			asmPath = flags.out
		}
		if err := checkOutput(src, asmPath); err != nil {
			return err
		}
		if err := compiler.CompileFile(src, asmPath, opts); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", asmPath)
		return nil
	}

	exePath := compiler.ExePath(src)
	if flags.out != "" {
		exePath = flags.out
	}
	if err := checkOutput(src, exePath); err != nil {
		return err
	}

	// The intermediate assembly never lands next to the source.
	tmp, err := os.CreateTemp("", "ccomp-*.s")
	if err != nil {
		return err
	}
	asmPath := tmp.Name()
	tmp.Close()
	defer os.Remove(asmPath)

	if err := compiler.CompileFile(src, asmPath, opts); err != nil {
		return err
	}
	if err := compiler.Assemble(cmd.Context(), asmPath, exePath, opts); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", exePath)
	return nil
}
