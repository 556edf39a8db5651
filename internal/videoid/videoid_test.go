package videoid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtract_WatchURL(t *testing.T) {
	id, err := Extract("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	require.NoError(t, err)
	require.Equal(t, "dQw4w9WgXcQ", id)
}

func TestExtract_Variants(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"watch with extra params", "https://www.youtube.com/watch?v=ggLajT7aMMk&t=123s&si=abc", "ggLajT7aMMk"},
		{"shortlink", "https://youtu.be/ggLajT7aMMk", "ggLajT7aMMk"},
		{"shortlink with timestamp", "youtu.be/ggLajT7aMMk?t=120", "ggLajT7aMMk"},
		{"shorts", "https://youtube.com/shorts/ggLajT7aMMk?feature=share", "ggLajT7aMMk"},
		{"embed", "https://www.youtube.com/embed/ggLajT7aMMk", "ggLajT7aMMk"},
		{"live", "https://www.youtube.com/live/ggLajT7aMMk", "ggLajT7aMMk"},
		{"legacy v path", "https://www.youtube.com/v/ggLajT7aMMk", "ggLajT7aMMk"},
		{"mobile host", "https://m.youtube.com/watch?v=ggLajT7aMMk", "ggLajT7aMMk"},
		{"no scheme", "www.youtube.com/watch?v=ggLajT7aMMk", "ggLajT7aMMk"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := Extract(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, id)
		})
	}
}

func TestExtract_Idempotent(t *testing.T) {
	id, err := Extract("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	require.NoError(t, err)

	again, err := Extract("https://youtube.com/watch?v=" + id)
	require.NoError(t, err)
	require.Equal(t, id, again)
}

func TestExtract_NotFound(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"plain text", "not a url at all"},
		{"no id", "https://www.youtube.com/watch"},
		{"id too short", "https://www.youtube.com/watch?v=short"},
		{"unrelated host", "https://example.com/page?q=hello"},
		{"malformed", "ht!tp://%%%"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := Extract(tc.in)
			require.ErrorIs(t, err, ErrNoVideoID)
			require.Empty(t, id)
		})
	}
}

func TestExtract_FallbackPattern(t *testing.T) {
	// Unrecognized host but an id-shaped token after a path separator.
	id, err := Extract("https://proxy.example.com/yt/dQw4w9WgXcQ")
	require.NoError(t, err)
	require.Equal(t, "dQw4w9WgXcQ", id)
}
