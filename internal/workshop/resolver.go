package workshop

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Workshop folder layout constants.
// The launcher installs every mod as <root>/!Workshop/@<DisplayName>.
const (
	// WorkshopDirName is the fixed subdirectory of the Arma root that
	// holds one folder per installed mod.
	WorkshopDirName = "!Workshop"

	// modFolderPrefix is prepended to a mod's display name to form its
	// folder name.
	modFolderPrefix = "@"

	// bytesPerMB converts a byte count to megabytes.
	bytesPerMB = 1024.0 * 1024.0
)

// DirSizer measures the recursive size of a directory in bytes.
//
// Design decision: We inject the size measurement as an interface rather
// than calling the filesystem directly because:
//  1. Tests can supply fixed sizes without building directory trees
//  2. The measurement strategy is isolated from the lookup-and-fallback
//     logic, which is the part worth testing
type DirSizer interface {
	// DirSize returns the total size in bytes of all regular files
	// beneath path. A missing path yields an fs.ErrNotExist error.
	DirSize(path string) (int64, error)
}

// WalkSizer measures directories by walking them with filepath.WalkDir
// and summing regular file sizes.
type WalkSizer struct{}

// DirSize implements DirSizer.
func (WalkSizer) DirSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if !info.IsDir() {
		return 0, &fs.PathError{Op: "dirsize", Path: path, Err: fs.ErrNotExist}
	}

	var total int64
	err = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			fi, err := d.Info()
			if err != nil {
				return err
			}
			total += fi.Size()
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}

// ProgressFunc is called after each mod's folder has been measured.
// done counts completed mods, total is the full batch size.
type ProgressFunc func(done, total int)

// Resolver locates mod folders under an Arma root and returns their
// recursive size in megabytes. The root is injected at construction
// rather than read from ambient state.
type Resolver struct {
	root  string
	sizer DirSizer
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSizer sets a custom directory size measurement.
func WithSizer(s DirSizer) Option {
	return func(r *Resolver) {
		r.sizer = s
	}
}

// NewResolver creates a Resolver for the given Arma root directory.
func NewResolver(root string, opts ...Option) *Resolver {
	r := &Resolver{
		root:  root,
		sizer: WalkSizer{},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// ModFolder returns the candidate folder path for a mod display name.
func (r *Resolver) ModFolder(name string) string {
	return filepath.Join(r.root, WorkshopDirName, modFolderPrefix+name)
}

// Resolve returns the recursive size in MB of the folder belonging to the
// named mod.
//
// The primary candidate is the folder named after the display name as-is.
// If that folder does not exist, typically because the display name
// contains characters illegal in a folder name, the lookup is retried
// exactly once with the sanitized name. If both candidates are missing,
// a *NotFoundError is returned.
func (r *Resolver) Resolve(name string) (float64, error) {
	primary := r.ModFolder(name)

	size, err := r.sizer.DirSize(primary)
	if err == nil {
		return float64(size) / bytesPerMB, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return 0, fmt.Errorf("failed to measure %s: %w", primary, err)
	}

	tried := []string{primary}
	if fallback := r.ModFolder(Sanitize(name)); fallback != primary {
		size, err = r.sizer.DirSize(fallback)
		if err == nil {
			return float64(size) / bytesPerMB, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("failed to measure %s: %w", fallback, err)
		}
		tried = append(tried, fallback)
	}

	return 0, &NotFoundError{Name: name, Tried: tried}
}

// ResolveAll resolves every name in order and returns the sizes in the
// same order. The first unrecovered lookup failure aborts the whole batch;
// no mod is silently skipped. Measurement is strictly sequential, and the
// optional progress callback fires after each completed mod.
func (r *Resolver) ResolveAll(names []string, progress ProgressFunc) ([]float64, error) {
	sizes := make([]float64, 0, len(names))

	for i, name := range names {
		size, err := r.Resolve(name)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, size)

		if progress != nil {
			progress(i+1, len(names))
		}
	}

	return sizes, nil
}
