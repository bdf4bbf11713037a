package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
)

// Discover lists the immediate children of root once and returns their
// paths, sorted by name. Every child is an item; non-directories are
// reported as noise by the checker rather than filtered here.
func Discover(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("list dataset root: %w", err)
	}
	items := make([]string, 0, len(entries))
	for _, e := range entries {
		items = append(items, filepath.Join(root, e.Name()))
	}
	return items, nil
}
