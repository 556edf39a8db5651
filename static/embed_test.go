package static

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbeddedAssetsExist(t *testing.T) {
	expected := []string{"main.css"}

	for _, path := range expected {
		_, err := fs.Stat(FS, path)
		require.NoError(t, err, "missing embedded asset %s", path)
	}
}
