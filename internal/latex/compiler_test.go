package latex

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeEngine writes outputs the way pdflatex would and records invocations.
type fakeEngine struct {
	mu     sync.Mutex
	calls  int
	fail   bool
	noPDF  bool
	block  bool
	dirs   []string
	engine string
}

func (f *fakeEngine) run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	f.mu.Lock()
	f.calls++
	f.dirs = append(f.dirs, dir)
	f.engine = name
	f.mu.Unlock()

	texName := args[len(args)-1]
	job := strings.TrimSuffix(texName, ".tex")
	if _, err := os.Stat(filepath.Join(dir, texName)); err != nil {
		return nil, err
	}
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	for _, ext := range []string{".aux", ".log", ".out"} {
		_ = os.WriteFile(filepath.Join(dir, job+ext), []byte("! Undefined control sequence."), 0o600)
	}
	if f.fail {
		return []byte("fatal"), errors.New("exit status 1")
	}
	if !f.noPDF {
		_ = os.WriteFile(filepath.Join(dir, job+".pdf"), []byte("%PDF-1.5 fake"), 0o600)
	}
	return nil, nil
}

func assertNoWorkDirs(t *testing.T, root string) {
	t.Helper()
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("read temp root: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), WorkDirPrefix) {
			t.Fatalf("residual work dir %s", e.Name())
		}
	}
}

func TestCompileSuccessRunsTwoPassesAndCleansUp(t *testing.T) {
	root := t.TempDir()
	engine := &fakeEngine{}
	c := NewCompiler(Options{TempDir: root, Runner: engine.run})

	pdf, err := c.Compile(context.Background(), `\documentclass{article}\begin{document}hi\end{document}`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !strings.HasPrefix(string(pdf), "%PDF") {
		t.Fatalf("unexpected pdf bytes %q", pdf)
	}
	if engine.calls != 2 {
		t.Fatalf("expected 2 passes, got %d", engine.calls)
	}
	if engine.engine != EnginePDFLatex {
		t.Fatalf("expected pdflatex, got %s", engine.engine)
	}
	assertNoWorkDirs(t, root)
}

func TestCompileFailureCleansUp(t *testing.T) {
	root := t.TempDir()
	engine := &fakeEngine{fail: true}
	c := NewCompiler(Options{TempDir: root, Runner: engine.run})

	_, err := c.Compile(context.Background(), `\begin{document}\badmacro\end{document}`)
	if !errors.Is(err, ErrCompileFailed) {
		t.Fatalf("expected ErrCompileFailed, got %v", err)
	}
	if engine.calls != 1 {
		t.Fatalf("expected compile to stop after the failing pass, got %d calls", engine.calls)
	}
	assertNoWorkDirs(t, root)
}

func TestCompileNoOutput(t *testing.T) {
	root := t.TempDir()
	engine := &fakeEngine{noPDF: true}
	c := NewCompiler(Options{TempDir: root, Runner: engine.run})

	if _, err := c.Compile(context.Background(), "x"); !errors.Is(err, ErrNoOutput) {
		t.Fatalf("expected ErrNoOutput, got %v", err)
	}
	assertNoWorkDirs(t, root)
}

func TestCompileEmptySource(t *testing.T) {
	c := NewCompiler(Options{TempDir: t.TempDir(), Runner: (&fakeEngine{}).run})
	if _, err := c.Compile(context.Background(), "   "); !errors.Is(err, ErrEmptySource) {
		t.Fatalf("expected ErrEmptySource, got %v", err)
	}
}

func TestCompileTimeout(t *testing.T) {
	root := t.TempDir()
	engine := &fakeEngine{block: true}
	c := NewCompiler(Options{TempDir: root, Runner: engine.run, Timeout: 20 * time.Millisecond})

	if _, err := c.Compile(context.Background(), "x"); !errors.Is(err, ErrCompileFailed) {
		t.Fatalf("expected ErrCompileFailed on timeout, got %v", err)
	}
	assertNoWorkDirs(t, root)
}

func TestConcurrentCompilesUseDistinctDirs(t *testing.T) {
	root := t.TempDir()
	engine := &fakeEngine{}
	c := NewCompiler(Options{TempDir: root, Runner: engine.run, Passes: 1})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Compile(context.Background(), "x"); err != nil {
				t.Errorf("compile: %v", err)
			}
		}()
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, d := range engine.dirs {
		if seen[d] {
			t.Fatalf("work dir %s reused", d)
		}
		seen[d] = true
	}
	assertNoWorkDirs(t, root)
}

func TestTectonicSinglePass(t *testing.T) {
	engine := &fakeEngine{}
	c := NewCompiler(Options{Engine: EngineTectonic, TempDir: t.TempDir(), Runner: engine.run, Passes: 3})
	if _, err := c.Compile(context.Background(), "x"); err != nil {
		t.Fatalf("compile: %v", err)
	}
	if engine.calls != 1 || engine.engine != EngineTectonic {
		t.Fatalf("expected one tectonic call, got %d %s", engine.calls, engine.engine)
	}
}

// subprocessRunner resolves the output directory against dir the way a
// real engine process started in dir would.
func subprocessRunner(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	outDir := ""
	for i, a := range args {
		if (a == "-output-directory" || a == "--outdir") && i+1 < len(args) {
			outDir = args[i+1]
		}
	}
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(dir, outDir)
	}
	if _, err := os.Stat(outDir); err != nil {
		return []byte("cannot open output directory"), err
	}
	job := strings.TrimSuffix(args[len(args)-1], ".tex")
	return nil, os.WriteFile(filepath.Join(outDir, job+".pdf"), []byte("%PDF-1.5 fake"), 0o600)
}

func TestCompileRelativeTempDir(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.Mkdir("tmp", 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	for _, engine := range []string{EnginePDFLatex, EngineTectonic} {
		t.Run(engine, func(t *testing.T) {
			c := NewCompiler(Options{Engine: engine, TempDir: "tmp", Runner: subprocessRunner})
			if !filepath.IsAbs(c.TempDir()) {
				t.Fatalf("temp dir not absolute: %s", c.TempDir())
			}
			pdf, err := c.Compile(context.Background(), `\documentclass{article}\begin{document}hi\end{document}`)
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			if !strings.HasPrefix(string(pdf), "%PDF") {
				t.Fatalf("unexpected pdf bytes %q", pdf)
			}
			assertNoWorkDirs(t, "tmp")
		})
	}
}
