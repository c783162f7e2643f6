package latex

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/telemetry"
)

// Sweep removes compiler work directories under root older than maxAge.
// Compile cleans up after itself; this covers processes killed mid-compile.
func Sweep(root string, maxAge time.Duration, now time.Time) (int, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), WorkDirPrefix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) < maxAge {
			continue
		}
		path := filepath.Join(root, e.Name())
		if err := os.RemoveAll(path); err != nil {
			telemetry.Warn("latex.sweep_remove_failed", map[string]any{"dir": path, "error": err})
			continue
		}
		removed++
	}
	metrics.AddTempSwept(removed)
	return removed, nil
}

// RunSweeper sweeps root every interval until ctx is done.
func RunSweeper(ctx context.Context, root string, interval, maxAge time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := Sweep(root, maxAge, now)
			if err != nil {
				telemetry.Warn("latex.sweep_failed", map[string]any{"root": root, "error": err})
				continue
			}
			if n > 0 {
				telemetry.Info("latex.sweep", map[string]any{"root": root, "removed": n})
			}
		}
	}
}
