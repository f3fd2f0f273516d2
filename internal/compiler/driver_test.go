package compiler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/tinyrange/ucc/internal/lexer"
	"github.com/tinyrange/ucc/internal/parser"
)

func TestCompile(t *testing.T) {
	asm, err := Compile("ok.c", "int main() {\n  return ~-5;\n}\n", Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := " .globl main\nmain:\n movl $5, %eax\n neg %eax\n not %eax\n ret\n"
	if asm != want {
		t.Errorf("got:\n%s\nwant:\n%s", asm, want)
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		check func(error) bool
	}{
		{"lex", "int main() { return $; }", func(err error) bool {
			var le *lexer.LexError
			return errors.As(err, &le)
		}},
		{"syntax", "int main( { return 0; }", func(err error) bool {
			var se *parser.SyntaxError
			return errors.As(err, &se) && se.Expected == lexer.RPAREN.String()
		}},
		{"eof", "int main()", func(err error) bool { return errors.Is(err, parser.ErrUnexpectedEOF) }},
		{"literal", "int main() { return 99999999999; }", func(err error) bool {
			var le *parser.LiteralError
			return errors.As(err, &le)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asm, err := Compile("bad.c", tt.src, Options{})
			if err == nil {
				t.Fatalf("expected error, got assembly:\n%s", asm)
			}
			if asm != "" {
				t.Errorf("expected no assembly on failure, got %q", asm)
			}
			if !tt.check(err) {
				t.Errorf("unexpected error kind: %v", err)
			}
			if !strings.HasPrefix(err.Error(), "bad.c: ") {
				t.Errorf("expected filename prefix: %v", err)
			}
		})
	}
}

func TestCompileLogsStages(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if _, err := Compile("log.c", "int main(){return !1;}", Options{Logger: log}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"msg=parsed", "func=main", "depth=1", "msg=emitted"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestCompileFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "prog.c")
	if err := os.WriteFile(src, []byte("int main() { return 3; }"), 0644); err != nil {
		t.Fatal(err)
	}
	asmPath := AsmPath(src)
	if asmPath != filepath.Join(dir, "prog.s") {
		t.Fatalf("AsmPath = %q", asmPath)
	}
	if err := CompileFile(src, asmPath, Options{}); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(asmPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(got), " movl $3, %eax\n") {
		t.Errorf("unexpected assembly:\n%s", got)
	}
}

func TestCompileFileWritesNothingOnError(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.c")
	if err := os.WriteFile(src, []byte("int main() { return ; }"), 0644); err != nil {
		t.Fatal(err)
	}
	asmPath := AsmPath(src)
	if err := CompileFile(src, asmPath, Options{}); err == nil {
		t.Fatal("expected error")
	}
	if _, err := os.Stat(asmPath); !os.IsNotExist(err) {
		t.Errorf("expected no assembly file, stat err = %v", err)
	}
}

func TestCompileFileMissingSource(t *testing.T) {
	err := CompileFile(filepath.Join(t.TempDir(), "nope.c"), "out.s", Options{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestExePath(t *testing.T) {
	if got := ExePath("dir/return_2.c"); got != "dir/return_2" {
		t.Errorf("ExePath = %q", got)
	}
}

func TestAssembleAndRun(t *testing.T) {
	if runtime.GOARCH != "amd64" || runtime.GOOS != "linux" {
		t.Skip("generated code targets linux/amd64")
	}
	if _, err := exec.LookPath("cc"); err != nil {
		t.Skip("no system C compiler")
	}
	tests := []struct {
		src  string
		exit int
	}{
		{"int main() { return 2; }", 2},
		{"int main() { return !0; }", 1},
		{"int main() { return !5; }", 0},
		{"int main() { return -~5; }", 6},
		{"int main() { return ~-5; }", 4},
	}
	dir := t.TempDir()
	for i, tt := range tests {
		src := filepath.Join(dir, "p"+string(rune('a'+i))+".c")
		if err := os.WriteFile(src, []byte(tt.src), 0644); err != nil {
			t.Fatal(err)
		}
		if err := CompileFile(src, AsmPath(src), Options{}); err != nil {
			t.Fatal(err)
		}
		if err := Assemble(context.Background(), AsmPath(src), ExePath(src), Options{}); err != nil {
			t.Fatal(err)
		}
		err := exec.Command(ExePath(src)).Run()
		code := 0
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		} else if err != nil {
			t.Fatal(err)
		}
		if code != tt.exit {
			t.Errorf("%s: exit %d, want %d", tt.src, code, tt.exit)
		}
	}
}
