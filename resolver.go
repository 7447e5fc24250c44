package iconbake

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Default asset locations, relative to the working directory.
const (
	DefaultIconDir  = "icon"
	DefaultFallback = "logo.png"
)

// Resolution is the outcome of resolving one icon's source file.
type Resolution struct {
	// Path is the image file to decode.
	Path string

	// Fallback reports whether Path is the fallback asset substituted for a
	// missing icon file.
	Fallback bool
}

// Resolver maps icon specs to readable source paths inside one asset
// directory, substituting a designated fallback asset for missing files.
type Resolver struct {
	Dir      string
	Fallback string
}

// Check verifies that the asset directory exists. It returns an error
// wrapping ErrAssetsDirMissing when it does not.
func (r Resolver) Check() error {
	info, err := os.Stat(r.Dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrAssetsDirMissing, r.Dir)
	case err != nil:
		return fmt.Errorf("iconbake: stat asset directory: %w", err)
	case !info.IsDir():
		return fmt.Errorf("%w: %s is not a directory", ErrAssetsDirMissing, r.Dir)
	}
	return nil
}

// Resolve returns the path to decode for spec. A missing icon file is not an
// error as long as the fallback asset exists.
func (r Resolver) Resolve(spec IconSpec) (Resolution, error) {
	path := filepath.Join(r.Dir, spec.File)
	ok, err := isFile(path)
	if err != nil {
		return Resolution{}, err
	}
	if ok {
		return Resolution{Path: path}, nil
	}

	fallback := filepath.Join(r.Dir, r.Fallback)
	ok, err = isFile(fallback)
	if err != nil {
		return Resolution{}, err
	}
	if !ok {
		return Resolution{}, fmt.Errorf("%w: %s (needed for %s)", ErrFallbackMissing, fallback, spec.ID)
	}
	return Resolution{Path: fallback, Fallback: true}, nil
}

func isFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("iconbake: stat %s: %w", path, err)
	}
	return info.Mode().IsRegular(), nil
}
