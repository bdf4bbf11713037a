package lint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageIndex_Lookup(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"exact", "exact.png", "B.jpg", "B.png", "C.tar.gz", ".hidden"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	idx := newIndex(t, dir)

	tests := []struct {
		name   string
		item   string
		want   string
		wantOK bool
	}{
		{"exact name wins over stem", "exact", "exact", true},
		{"full file name as item", "B.png", "B.png", true},
		{"stem picks first by name", "B", "B.jpg", true},
		{"only last extension is stripped", "C.tar", "C.tar.gz", true},
		{"missing", "Z", "", false},
		{"dotfile has no stem", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := idx.Lookup(tt.item)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, filepath.Join(dir, tt.want), got)
			}
		})
	}
	assert.Equal(t, filepath.Join(dir, "Z"), idx.ExpectedPath("Z"))
	assert.Equal(t, dir, idx.Dir())
}

func TestNewImageIndex_MissingDir(t *testing.T) {
	_, err := NewImageIndex(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
