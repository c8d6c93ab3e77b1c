package resolvers

import (
	"context"
	"path"
	"strings"

	"github.com/spf13/afero"

	"github.com/contextwire/mentions/internal/resolver"
)

// mimeByExtension maps file extensions to MIME types for resolved
// filesystem content.
var mimeByExtension = map[string]string{
	".md":   "text/markdown",
	".json": "application/json",
	".png":  "image/png",
}

// defaultMIMEType is used when the extension is not in the table.
const defaultMIMEType = "text/plain"

// Filesystem resolves resource paths against a base directory. Any
// read failure resolves to "not found" rather than a fault, so a
// missing or unreadable file leaves the mention verbatim instead of
// failing the whole text.
type Filesystem struct {
	fs      afero.Fs
	baseDir string
}

// NewFilesystem creates a filesystem resolver rooted at baseDir on fs.
// Pass afero.NewOsFs() for the real filesystem or afero.NewMemMapFs()
// in tests.
func NewFilesystem(fs afero.Fs, baseDir string) *Filesystem {
	return &Filesystem{
		fs:      fs,
		baseDir: baseDir,
	}
}

// Resolve implements resolver.Func.
func (f *Filesystem) Resolve(_ context.Context, _ string, resourcePath string, _ map[string]string) (*resolver.Resource, error) {
	// Rooting before Clean collapses any ".." segments inside the
	// request; the containment check below holds even if that
	// normalization changes.
	clean := path.Clean("/" + resourcePath)
	full := path.Join(f.baseDir, strings.TrimPrefix(clean, "/"))
	base := path.Clean(f.baseDir)
	if full != base && !strings.HasPrefix(full, base+"/") {
		return nil, nil
	}
	data, err := afero.ReadFile(f.fs, full)
	if err != nil {
		return nil, nil
	}

	return &resolver.Resource{
		Content:  string(data),
		MIMEType: MIMETypeForPath(clean),
	}, nil
}

// MIMETypeForPath infers a MIME type from a resource path's extension.
func MIMETypeForPath(resourcePath string) string {
	if mime, ok := mimeByExtension[strings.ToLower(path.Ext(resourcePath))]; ok {
		return mime
	}
	return defaultMIMEType
}
