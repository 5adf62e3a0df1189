package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "github.com/mouse-blink/covrig/internal/model"
)

// CaptureFinder expands configured report roots into capture files.
type CaptureFinder interface {
	// Find returns the capture files named by roots. A directory root
	// contributes the captures directly inside it; a root ending in "/..."
	// also descends into subdirectories. Any other root is returned as is so
	// that a missing capture can be reported when it is loaded.
	Find(roots []m.Path) ([]m.Path, error)
}

// LocalCaptureFinder walks the local filesystem.
type LocalCaptureFinder struct{}

// NewLocalCaptureFinder constructs a LocalCaptureFinder.
func NewLocalCaptureFinder() *LocalCaptureFinder {
	return &LocalCaptureFinder{}
}

// Find expands roots in order, dropping duplicates.
func (f *LocalCaptureFinder) Find(roots []m.Path) ([]m.Path, error) {
	seen := make(map[m.Path]struct{})

	var captures []m.Path

	add := func(p m.Path) {
		if _, ok := seen[p]; ok {
			return
		}

		seen[p] = struct{}{}
		captures = append(captures, p)
	}

	for _, root := range roots {
		dir, recursive, err := normalizeRoot(string(root))
		if err != nil {
			return nil, fmt.Errorf("report root %s: %w", root, err)
		}

		info, err := os.Stat(dir)

		switch {
		case errors.Is(err, os.ErrNotExist) && !recursive:
			add(m.Path(dir))
			continue
		case err != nil:
			return nil, fmt.Errorf("report root %s: %w", root, err)
		case !info.IsDir():
			add(m.Path(dir))
			continue
		}

		found, err := walkCaptures(dir, recursive)
		if err != nil {
			return nil, fmt.Errorf("report root %s: %w", root, err)
		}

		for _, p := range found {
			add(p)
		}
	}

	return captures, nil
}

func walkCaptures(root string, recursive bool) ([]m.Path, error) {
	var found []m.Path

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && (!recursive || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}

			return nil
		}

		if isCaptureFile(d.Name()) {
			found = append(found, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(found, func(i, j int) bool { return found[i] < found[j] })

	return found, nil
}

// isCaptureFile skips hidden files, which include the temporary files
// written while a report is saved.
func isCaptureFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}

	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func normalizeRoot(root string) (string, bool, error) {
	path, recursive := strings.CutSuffix(root, "/...")

	if hasHomePrefix(path) {
		expanded, err := expandHome(path)
		if err != nil {
			return "", false, err
		}

		path = expanded
	}

	if path == "" {
		path = "."
	}

	return filepath.Clean(path), recursive, nil
}

// hasHomePrefix reports whether path is "~" or starts with "~/".
func hasHomePrefix(path string) bool {
	return path == "~" || strings.HasPrefix(path, "~"+string(os.PathSeparator))
}

// expandHome replaces a leading "~" with the current user's home directory.
func expandHome(path string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	suffix := strings.TrimPrefix(strings.TrimPrefix(path, "~"), string(os.PathSeparator))

	return filepath.Join(home, suffix), nil
}
