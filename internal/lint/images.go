package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ImageIndex resolves item names to paired image files. It reads the image
// directory once; lookups are read-only and safe for concurrent use.
type ImageIndex struct {
	dir   string
	names map[string]bool
	stems map[string]string // stem -> first file name (in name order) with that stem
}

// NewImageIndex lists dir once and builds the lookup tables.
func NewImageIndex(dir string) (*ImageIndex, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list image directory: %w", err)
	}
	idx := &ImageIndex{
		dir:   dir,
		names: make(map[string]bool, len(entries)),
		stems: make(map[string]string, len(entries)),
	}
	// os.ReadDir returns entries sorted by name, so the first stem wins.
	for _, e := range entries {
		name := e.Name()
		idx.names[name] = true
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		if stem == "" || stem == name {
			continue
		}
		if _, seen := idx.stems[stem]; !seen {
			idx.stems[stem] = name
		}
	}
	return idx, nil
}

// Dir returns the image directory.
func (x *ImageIndex) Dir() string { return x.dir }

// ExpectedPath returns where the image for item is looked up first.
func (x *ImageIndex) ExpectedPath(item string) string {
	return filepath.Join(x.dir, item)
}

// Lookup returns the image path for item. An entry named exactly like the
// item wins; otherwise the first entry whose name minus extension equals the
// item is used ("B" pairs with "B.png").
func (x *ImageIndex) Lookup(item string) (string, bool) {
	if x.names[item] {
		return filepath.Join(x.dir, item), true
	}
	if name, ok := x.stems[item]; ok {
		return filepath.Join(x.dir, name), true
	}
	return "", false
}
