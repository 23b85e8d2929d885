//go:build darwin || windows

package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyeka/flowy/internal/shortcut"
)

func TestTranslateCoversParsedKeys(t *testing.T) {
	for _, tok := range candidateKeys() {
		c, err := shortcut.Parse("Ctrl+" + tok)
		if err != nil {
			continue
		}
		t.Run(c.Key, func(t *testing.T) {
			_, _, err := translate(c)
			assert.NoError(t, err)
		})
	}
}

func TestTranslateCoversModifiers(t *testing.T) {
	c, err := shortcut.Parse("Cmd+Ctrl+Alt+Shift+K")
	require.NoError(t, err)

	mods, key, err := translate(c)
	require.NoError(t, err)
	assert.Len(t, mods, 4)
	assert.Equal(t, keyCodes["K"], key)
}
