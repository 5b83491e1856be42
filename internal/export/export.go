// Package export writes printable renderings of a report to disk or hands them to the browser.
package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"

	"github.com/dshills/perfwheel/internal/render"
)

// Exporter produces an exportable rendering of a report. Callers do not track
// anything beyond the error.
type Exporter interface {
	Export(ctx context.Context, r *render.Report) error
}

// Opener hands a file path or URL to the platform's default handler.
type Opener func(ctx context.Context, target string) error

// SystemOpener opens target with open, xdg-open or rundll32 depending on the OS.
// It does not wait for the opened program to exit.
func SystemOpener(ctx context.Context, target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", target)
	case "linux", "freebsd", "openbsd", "netbsd":
		cmd = exec.CommandContext(ctx, "xdg-open", target)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", target)
	default:
		return fmt.Errorf("export.SystemOpener: unsupported platform %s", runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("export.SystemOpener: %w", err)
	}
	return nil
}

// FileExporter writes the report into Dir using a name derived from the report.
type FileExporter struct {
	Dir    string
	Format render.Format
	Logger *zap.Logger
}

// Path returns where Export writes r.
func (e *FileExporter) Path(r *render.Report) string {
	return filepath.Join(e.Dir, render.Filename(r, e.Format.Ext()))
}

func (e *FileExporter) Export(ctx context.Context, r *render.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := render.Write(&buf, r, e.Format); err != nil {
		return fmt.Errorf("export.FileExporter: %w", err)
	}
	if e.Dir != "" {
		if err := os.MkdirAll(e.Dir, 0o755); err != nil {
			return fmt.Errorf("export.FileExporter: %w", err)
		}
	}
	path := e.Path(r)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("export.FileExporter: %w", err)
	}
	logger(e.Logger).Debug("report exported", zap.String("path", path), zap.String("format", string(e.Format)))
	return nil
}

// BrowserExporter writes the printable HTML page to Dir (the OS temp dir when
// empty) and opens it, leaving printing or saving as PDF to the browser.
type BrowserExporter struct {
	Dir    string
	Open   Opener
	Logger *zap.Logger
}

func (e *BrowserExporter) Export(ctx context.Context, r *render.Report) error {
	dir := e.Dir
	if dir == "" {
		var err error
		dir, err = os.MkdirTemp("", "perfwheel-")
		if err != nil {
			return fmt.Errorf("export.BrowserExporter: %w", err)
		}
	}
	fe := &FileExporter{Dir: dir, Format: render.FormatHTML, Logger: e.Logger}
	if err := fe.Export(ctx, r); err != nil {
		return err
	}

	open := e.Open
	if open == nil {
		open = SystemOpener
	}
	path := fe.Path(r)
	if err := open(ctx, path); err != nil {
		// the file is still on disk; report where so the user can open it by hand
		logger(e.Logger).Warn("failed to open browser", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("export.BrowserExporter: open %s: %w", path, err)
	}
	logger(e.Logger).Info("report opened in browser", zap.String("path", path))
	return nil
}

func logger(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
