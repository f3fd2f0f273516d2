// Package compiler runs the lex, parse and emit stages over a whole source
// file and hands the result to the system toolchain.
package compiler

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/tinyrange/ucc/internal/ast"
	"github.com/tinyrange/ucc/internal/codegen/x86_64"
	"github.com/tinyrange/ucc/internal/parser"
)

type Options struct {
	// Platform selects symbol spelling; see x86_64.Options.
	Platform string
	Logger   *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Parse lexes and parses src. filename only labels errors.
func Parse(filename, src string, opts Options) (*ast.Program, error) {
	log := opts.logger().With("file", filename)

	prog, err := parser.ParseFile(filename, src)
	if err != nil {
		log.Debug("parse failed", "err", err)
		return nil, err
	}
	log.Debug("parsed", "func", prog.Func.Name, "depth", ast.Depth(prog.Func.Body.Expr))
	return prog, nil
}

// Compile translates src to assembly text. Nothing is emitted unless parsing
// succeeds.
func Compile(filename, src string, opts Options) (string, error) {
	prog, err := Parse(filename, src, opts)
	if err != nil {
		return "", err
	}
	asm := x86_64.Emit(prog, x86_64.Options{Platform: opts.Platform})
	opts.logger().Debug("emitted", "file", filename, "bytes", len(asm))
	return asm, nil
}

// CompileFile reads srcPath and writes assembly to asmPath. On failure
// asmPath is not created.
func CompileFile(srcPath, asmPath string, opts Options) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}
	asm, err := Compile(srcPath, string(data), opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(asmPath, []byte(asm), 0644); err != nil {
		return err
	}
	opts.logger().Info("wrote assembly", "path", asmPath)
	return nil
}

// AsmPath returns the default assembly path for a source file: the same
// name with a .s extension.
func AsmPath(srcPath string) string {
	return strings.TrimSuffix(srcPath, filepath.Ext(srcPath)) + ".s"
}

// ExePath returns the default executable path for a source file.
func ExePath(srcPath string) string {
	return strings.TrimSuffix(srcPath, filepath.Ext(srcPath))
}

// Assemble invokes the system C compiler driver (cc, or $CC) to assemble
// and link asmPath into exePath.
func Assemble(ctx context.Context, asmPath, exePath string, opts Options) error {
	cc := os.Getenv("CC")
	if cc == "" {
		cc = "cc"
	}
	cmd := exec.CommandContext(ctx, cc, asmPath, "-o", exePath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	opts.logger().Debug("assembling", "cc", cc, "asm", asmPath, "out", exePath)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w: %s", cc, asmPath, err, strings.TrimSpace(stderr.String()))
	}
	opts.logger().Info("linked", "path", exePath)
	return nil
}
