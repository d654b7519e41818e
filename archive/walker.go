// Package archive reads theme bundles: zip archives carrying theme sources.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"
)

// WalkFunc is the type of the function called for each theme source in
// bundle visited by Walk. The bundle argument contains path passed to Walk,
// name is the entry path inside the bundle. If an error is returned,
// processing stops.
type WalkFunc func(bundle, name string, data []byte) error

// Walk walks all regular files in bundle whose extension (case insensitive)
// is one of exts, in archive order, calling walkFn with entry content. With
// no exts every file is visited. Entries with path traversal components
// ("..") or absolute paths fail the walk.
func Walk(bundle string, exts []string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(bundle)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || !matches(name, exts) {
			continue
		}
		data, err := readEntry(f)
		if err != nil {
			return fmt.Errorf("zip entry %q: %w", name, err)
		}
		if err := walkFn(bundle, name, data); err != nil {
			return err
		}
	}
	return nil
}

func matches(name string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	ext := strings.ToLower(path.Ext(name))
	return slices.ContainsFunc(exts, func(e string) bool { return strings.ToLower(e) == ext })
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
