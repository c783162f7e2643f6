package latex

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/telemetry"
)

// Supported engines.
const (
	EnginePDFLatex = "pdflatex"
	EngineTectonic = "tectonic"
)

// WorkDirPrefix names per-compile directories so the sweeper can find them.
const WorkDirPrefix = "resume-builder-latex-"

const logTailBytes = 4000

var (
	ErrEmptySource   = errors.New("latex source is empty")
	ErrCompileFailed = errors.New("pdf compilation failed")
	ErrNoOutput      = errors.New("compiler produced no pdf")
)

// Runner executes one engine invocation inside dir and returns its combined output.
type Runner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

// ExecRunner runs the engine as a subprocess.
func ExecRunner(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// Options configures a Compiler. Zero values fall back to defaults.
type Options struct {
	Engine  string
	TempDir string
	Passes  int
	Timeout time.Duration
	Runner  Runner
}

// Compiler renders LaTeX source to PDF bytes through an external engine.
// Each call works in its own directory, so concurrent compiles never share files.
type Compiler struct {
	engine  string
	tempDir string
	passes  int
	timeout time.Duration
	run     Runner
}

// NewCompiler builds a Compiler from opts.
func NewCompiler(opts Options) *Compiler {
	c := &Compiler{
		engine:  opts.Engine,
		tempDir: opts.TempDir,
		passes:  opts.Passes,
		timeout: opts.Timeout,
		run:     opts.Runner,
	}
	if c.engine != EngineTectonic {
		c.engine = EnginePDFLatex
	}
	if c.tempDir == "" {
		c.tempDir = os.TempDir()
	}
	// The engine runs inside the work dir and also receives it as its output
	// dir, so a relative root would resolve twice.
	if abs, err := filepath.Abs(c.tempDir); err == nil {
		c.tempDir = abs
	}
	if c.passes <= 0 {
		c.passes = 2
	}
	// tectonic reruns internally until references settle.
	if c.engine == EngineTectonic {
		c.passes = 1
	}
	if c.timeout <= 0 {
		c.timeout = 60 * time.Second
	}
	if c.run == nil {
		c.run = ExecRunner
	}
	return c
}

// Engine reports the configured engine binary.
func (c *Compiler) Engine() string { return c.engine }

// TempDir reports the root under which work directories are created.
func (c *Compiler) TempDir() string { return c.tempDir }

// Compile writes source to a fresh work directory, runs the engine and
// returns the PDF. The work directory is removed on every path.
func (c *Compiler) Compile(ctx context.Context, source string) (pdf []byte, err error) {
	if strings.TrimSpace(source) == "" {
		return nil, ErrEmptySource
	}

	start := time.Now()
	defer func() {
		metrics.ObservePDFCompile(float64(time.Since(start).Milliseconds()), err)
	}()

	dir, err := os.MkdirTemp(c.tempDir, WorkDirPrefix)
	if err != nil {
		return nil, fmt.Errorf("create work dir: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			telemetry.Warn("latex.cleanup_failed", map[string]any{"dir": dir, "error": rmErr})
		}
	}()

	job := uuid.NewString()
	texName := job + ".tex"
	if err := os.WriteFile(filepath.Join(dir, texName), []byte(source), 0o600); err != nil {
		return nil, fmt.Errorf("write source: %w", err)
	}

	args := c.args(dir, texName)
	for pass := 1; pass <= c.passes; pass++ {
		passCtx, cancel := context.WithTimeout(ctx, c.timeout)
		out, runErr := c.run(passCtx, dir, c.engine, args...)
		cancel()
		if runErr != nil {
			fields := map[string]any{
				"engine": c.engine,
				"job":    job,
				"pass":   pass,
				"error":  runErr,
				"log":    tail(c.readLog(dir, job, out), logTailBytes),
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				fields["ctx_error"] = ctxErr
			}
			telemetry.Error("latex.compile_failed", fields)
			return nil, fmt.Errorf("%w: %s pass %d: %v", ErrCompileFailed, c.engine, pass, runErr)
		}
	}

	pdf, err = os.ReadFile(filepath.Join(dir, job+".pdf"))
	if err != nil || len(pdf) == 0 {
		telemetry.Error("latex.no_output", map[string]any{
			"engine": c.engine,
			"job":    job,
			"log":    tail(c.readLog(dir, job, nil), logTailBytes),
		})
		return nil, ErrNoOutput
	}
	return pdf, nil
}

func (c *Compiler) args(dir, texName string) []string {
	if c.engine == EngineTectonic {
		return []string{"--outdir", dir, texName}
	}
	return []string{
		"-interaction=nonstopmode",
		"-halt-on-error",
		"-no-shell-escape",
		"-output-directory", dir,
		texName,
	}
}

// readLog prefers the engine's .log file and falls back to captured output.
func (c *Compiler) readLog(dir, job string, output []byte) string {
	if data, err := os.ReadFile(filepath.Join(dir, job+".log")); err == nil && len(data) > 0 {
		return string(data)
	}
	return string(bytes.TrimSpace(output))
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// PDFCompiler turns a LaTeX source into PDF bytes.
type PDFCompiler interface {
	Compile(ctx context.Context, source string) ([]byte, error)
}

// CompilerFunc adapts a function to PDFCompiler.
type CompilerFunc func(ctx context.Context, source string) ([]byte, error)

// Compile calls f.
func (f CompilerFunc) Compile(ctx context.Context, source string) ([]byte, error) {
	return f(ctx, source)
}

var _ PDFCompiler = (*Compiler)(nil)
