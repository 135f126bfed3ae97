package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/preston-bernstein/gamesheet-schedule/internal/logging"
)

const tmpSuffix = ".tmp"

// Artifact is one output file and the function that produces its bytes.
type Artifact struct {
	Name        string
	ContentType string
	Render      func(io.Writer) error
}

// Result describes what Publish did for one artifact.
type Result struct {
	Name      string
	Path      string
	Bytes     int
	Unchanged bool
	Mirrored  bool
}

// Writer commits artifacts into a directory with write-to-temp then rename.
// Readers of the directory see either the previous file or the new one.
type Writer struct {
	dir    string
	mirror Mirror
	logger *slog.Logger
	rename func(oldpath, newpath string) error
}

// Option configures a Writer.
type Option func(*Writer)

// WithMirror uploads every committed artifact to m.
func WithMirror(m Mirror) Option {
	return func(w *Writer) {
		w.mirror = m
	}
}

// WithLogger sets the writer's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Writer) {
		w.logger = logger
	}
}

// NewWriter constructs a writer rooted at dir.
func NewWriter(dir string, opts ...Option) *Writer {
	w := &Writer{
		dir:    dir,
		rename: os.Rename,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Publish renders a into memory and atomically replaces <dir>/<name>.
// Identical content is left untouched. A failure before the rename leaves any
// previous file intact; the temp file may remain and is overwritten next time.
func (w *Writer) Publish(ctx context.Context, a Artifact) (Result, error) {
	if w == nil {
		return Result{}, errors.New("publish: writer not configured")
	}
	if a.Name == "" || a.Render == nil {
		return Result{}, errors.New("publish: artifact name and renderer required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	target := filepath.Join(w.dir, a.Name)
	res := Result{Name: a.Name, Path: target}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return res, fmt.Errorf("publish: create %s: %w", w.dir, err)
	}

	var buf bytes.Buffer
	if err := a.Render(&buf); err != nil {
		return res, fmt.Errorf("publish: render %s: %w", a.Name, err)
	}
	data := buf.Bytes()
	res.Bytes = len(data)

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		res.Unchanged = true
		logging.Debug(w.logger, "artifact unchanged",
			logging.FieldArtifact, a.Name,
			logging.FieldPath, target,
		)
	} else if err := w.commit(target, data); err != nil {
		return res, err
	}

	if w.mirror != nil {
		if err := w.mirror.Put(ctx, a.Name, a.ContentType, data); err != nil {
			return res, fmt.Errorf("publish: mirror %s to %s: %w", a.Name, w.mirror, err)
		}
		res.Mirrored = true
	}

	logging.Info(w.logger, "artifact published",
		logging.FieldArtifact, a.Name,
		logging.FieldPath, target,
		logging.FieldBytes, res.Bytes,
		"unchanged", res.Unchanged,
		"mirrored", res.Mirrored,
	)
	return res, nil
}

func (w *Writer) commit(target string, data []byte) error {
	tmp := target + tmpSuffix
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("publish: open %s: %w", tmp, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("publish: write %s: %w", tmp, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("publish: sync %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("publish: close %s: %w", tmp, err)
	}
	if err := w.rename(tmp, target); err != nil {
		return fmt.Errorf("publish: rename %s: %w", target, err)
	}
	return nil
}
