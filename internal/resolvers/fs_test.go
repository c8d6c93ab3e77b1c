package resolvers

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFilesystem(t *testing.T, files map[string]string) *Filesystem {
	t.Helper()
	memFs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(memFs, name, []byte(content), 0o644))
	}
	return NewFilesystem(memFs, "/data")
}

func TestFilesystemResolve(t *testing.T) {
	fs := newTestFilesystem(t, map[string]string{
		"/data/readme.md":   "# Hello",
		"/data/sub/cfg.json": `{"a":1}`,
	})

	tests := []struct {
		name         string
		path         string
		wantContent  string
		wantMIMEType string
	}{
		{
			name:         "markdown file",
			path:         "/readme.md",
			wantContent:  "# Hello",
			wantMIMEType: "text/markdown",
		},
		{
			name:         "nested json file",
			path:         "/sub/cfg.json",
			wantContent:  `{"a":1}`,
			wantMIMEType: "application/json",
		},
		{
			name:         "path without leading slash",
			path:         "readme.md",
			wantContent:  "# Hello",
			wantMIMEType: "text/markdown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := fs.Resolve(context.Background(), "docs", tt.path, nil)
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.Equal(t, tt.wantContent, res.Content)
			assert.Equal(t, tt.wantMIMEType, res.MIMEType)
		})
	}
}

func TestFilesystemResolveMissing(t *testing.T) {
	fs := newTestFilesystem(t, nil)

	res, err := fs.Resolve(context.Background(), "docs", "/absent.txt", nil)
	assert.NoError(t, err, "a missing file is not a fault")
	assert.Nil(t, res)
}

func TestFilesystemRejectsTraversal(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "/secret.txt", []byte("hidden"), 0o644))
	fs := NewFilesystem(memFs, "/data")

	for _, p := range []string{"../secret.txt", "/../secret.txt", "/a/../../secret.txt"} {
		res, err := fs.Resolve(context.Background(), "docs", p, nil)
		assert.NoError(t, err)
		assert.Nil(t, res, "traversal path %q should not resolve", p)
	}
}

func TestMIMETypeForPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/readme.md", "text/markdown"},
		{"/README.MD", "text/markdown"},
		{"/data.json", "application/json"},
		{"/logo.png", "image/png"},
		{"/notes.txt", "text/plain"},
		{"/noext", "text/plain"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, MIMETypeForPath(tt.path), "path %q", tt.path)
	}
}
