package assets

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ContainsEveryBundledIcon(t *testing.T) {
	files := FS()

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			data, err := fs.ReadFile(files, name)
			require.NoError(t, err)
			assert.Contains(t, string(data), "<svg")
		})
	}

	entries, err := fs.ReadDir(files, ".")
	require.NoError(t, err)
	assert.Len(t, entries, 11)
}

func TestNewIconMap_KnownCodes(t *testing.T) {
	icons := NewIconMap()

	for code, name := range Codes() {
		assert.Equal(t, IconPathPrefix+name, icons.Lookup(code), "code %s", code)
	}
}

func TestNewIconMap_UnknownCodesFallBackToSunLight(t *testing.T) {
	icons := NewIconMap()

	for _, code := range []string{"", "50d", "50n", "99x", "01"} {
		assert.Equal(t, "/static/icons/sun-light.svg", icons.Lookup(code), "code %q", code)
	}
}

func TestCodes_ReturnsCopy(t *testing.T) {
	codes := Codes()
	codes["01d"] = "changed.svg"

	assert.Equal(t, Ref(SunLight), NewIconMap().Lookup("01d"))
}
