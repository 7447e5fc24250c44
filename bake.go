package iconbake

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/gogpu/iconbake/internal/cache"
	"github.com/gogpu/iconbake/internal/parallel"
)

// Default output locations, relative to the working directory.
const (
	DefaultOutput = "kernel/icons_data.c"
	DefaultHeader = "include/icons.h"
)

// Baker runs the resolve, normalize and encode pipeline over an icon table
// and writes the icons_data artifact. By default icons are processed one
// at a time in table order; see WithWorkers. Output is always emitted in
// table order. A Baker is immutable after New and may be shared.
type Baker struct {
	profile    Profile
	table      Table
	size       int
	workers    int
	resolver   Resolver
	normalizer *Normalizer
}

// New creates a Baker. WithProfile is required.
func New(opts ...Option) (*Baker, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.profile.IsZero() {
		return nil, ErrProfileRequired
	}
	if o.size <= 0 {
		return nil, fmt.Errorf("%w: icon size %d", ErrCanvasSize, o.size)
	}
	if err := o.table.Validate(o.size); err != nil {
		return nil, err
	}
	if o.imaging == nil {
		o.imaging = DefaultImaging()
	}

	return &Baker{
		profile:    o.profile,
		table:      slices.Clone(o.table),
		size:       o.size,
		workers:    o.workers,
		resolver:   Resolver{Dir: o.iconDir, Fallback: o.fallback},
		normalizer: NewNormalizer(o.imaging, o.profile, o.size),
	}, nil
}

// Profile returns the active baking profile.
func (b *Baker) Profile() Profile {
	return b.profile
}

// Table returns a copy of the icon table.
func (b *Baker) Table() Table {
	return slices.Clone(b.table)
}

// IconSize returns the canvas side length.
func (b *Baker) IconSize() int {
	return b.size
}

// Resolver returns the asset resolver.
func (b *Baker) Resolver() Resolver {
	return b.resolver
}

// EncodeIcon resolves, normalizes and encodes a single icon. It does not
// check the asset directory; Bake does that once per run.
func (b *Baker) EncodeIcon(spec IconSpec) (EncodedIcon, error) {
	return b.encode(b.normalizer, spec)
}

func (b *Baker) encode(n *Normalizer, spec IconSpec) (EncodedIcon, error) {
	res, err := b.resolver.Resolve(spec)
	if err != nil {
		return EncodedIcon{}, err
	}
	if res.Fallback {
		Logger().Warn("icon file not found, using fallback",
			slog.String("id", spec.ID),
			slog.String("want", filepath.Join(b.resolver.Dir, spec.File)),
			slog.String("fallback", res.Path),
		)
	}

	canvas, err := n.Normalize(res.Path, spec)
	if err != nil {
		return EncodedIcon{}, err
	}
	return Encode(canvas, spec.ID, b.size, b.profile.Threshold)
}

// encodeAll encodes the whole table. With one worker icons are processed
// on the calling goroutine in table order; otherwise on a worker pool.
// Sources are decoded once per run. The first failure in table order is
// returned.
func (b *Baker) encodeAll() ([]EncodedIcon, error) {
	sources := cache.New[string, *Pixmap](len(b.table) + 1)
	n := b.normalizer.withSources(sources)

	icons := make([]EncodedIcon, len(b.table))
	errs := make([]error, len(b.table))
	workers := 1

	if b.workers == 1 {
		for i, spec := range b.table {
			if icons[i], errs[i] = b.encode(n, spec); errs[i] != nil {
				break
			}
		}
	} else {
		pool := parallel.NewPool(b.workers)
		defer pool.Close()
		workers = pool.Workers()
		pool.Run(len(b.table), func(i int) {
			icons[i], errs[i] = b.encode(n, b.table[i])
		})
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	stats := sources.Stats()
	Logger().Debug("icons encoded",
		slog.Int("icons", len(icons)),
		slog.Int("workers", workers),
		slog.Uint64("decoded", stats.Misses),
		slog.Uint64("reused", stats.Hits),
	)
	return icons, nil
}

// Bake writes the complete artifact to w. It returns an error wrapping
// ErrAssetsDirMissing when the asset directory is absent. Every icon is
// encoded before the first byte is written, so a failing run writes
// nothing to w unless w itself fails.
func (b *Baker) Bake(w io.Writer) error {
	if err := b.resolver.Check(); err != nil {
		return err
	}

	Logger().Info("baking icons",
		slog.String("dir", b.resolver.Dir),
		slog.String("profile", b.profile.Name),
		slog.Int("threshold", int(b.profile.Threshold)),
		slog.Int("icons", len(b.table)),
	)

	icons, err := b.encodeAll()
	if err != nil {
		return err
	}

	e := NewEmitter(w, b.size)
	if err := e.Begin(); err != nil {
		return err
	}
	for _, icon := range icons {
		if err := e.WriteIcon(icon); err != nil {
			return err
		}
	}
	if err := e.End(); err != nil {
		return err
	}

	if e.Count() != len(b.table) {
		return fmt.Errorf("iconbake: wrote %d icons, table has %d", e.Count(), len(b.table))
	}
	return nil
}

// BakeFile writes the artifact to path, replacing any previous file only
// when the whole run succeeds. When the asset directory is missing no file
// is created or touched.
func (b *Baker) BakeFile(path string) error {
	if err := b.resolver.Check(); err != nil {
		return err
	}
	if err := writeFileAtomic(path, b.Bake); err != nil {
		return err
	}
	Logger().Info("artifact written", slog.String("path", path), slog.Int("icons", len(b.table)))
	return nil
}

// WriteHeader writes the icons.h matching this Baker's table and size.
func (b *Baker) WriteHeader(w io.Writer) error {
	return WriteHeader(w, b.table, b.size)
}

// WriteHeaderFile writes the icons.h to path.
func (b *Baker) WriteHeaderFile(path string) error {
	if err := writeFileAtomic(path, b.WriteHeader); err != nil {
		return err
	}
	Logger().Info("header written", slog.String("path", path))
	return nil
}

// writeFileAtomic streams write into a temporary file next to path and
// renames it over path on success. The temporary file is closed exactly
// once and removed on failure.
func writeFileAtomic(path string, write func(io.Writer) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("iconbake: create output: %w", err)
	}
	tmp := f.Name()

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("iconbake: close output: %w", cerr)
		}
		if err == nil {
			if rerr := os.Rename(tmp, path); rerr != nil {
				err = fmt.Errorf("iconbake: replace output: %w", rerr)
			}
		}
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("iconbake: write output: %w", err)
	}
	if err := f.Chmod(0o644); err != nil {
		return fmt.Errorf("iconbake: chmod output: %w", err)
	}
	return nil
}
