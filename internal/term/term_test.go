package term

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/backmassage/masklint/internal/config"
)

func TestConfigure_Never(t *testing.T) {
	Configure(config.ColorNever)
	assert.False(t, Enabled())
	assert.Equal(t, "[ERROR]", Red("[ERROR]"))
}

func TestConfigure_Always(t *testing.T) {
	Configure(config.ColorAlways)
	defer Configure(config.ColorNever)

	assert.True(t, Enabled())
	got := Red("[ERROR]")
	assert.Contains(t, got, "[ERROR]")
	assert.NotEqual(t, "[ERROR]", got, "expected ANSI escapes around the text")
}

func TestIsTerminal_NotATTY(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	assert.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
	assert.False(t, IsTerminal(nil))
}
