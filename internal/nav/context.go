package nav

import (
	"path"
	"strings"
)

// URLContext computes the URL of any page relative to the page currently
// being rendered. Relative URLs keep a generated site relocatable: it can
// be served from any path prefix without a rebuild. With useAbsoluteURLs
// the configured site path is prepended instead.
type URLContext struct {
	basePath        string
	sitePath        string
	useAbsoluteURLs bool
}

// NewURLContext returns a context rooted at the docs root. sitePath is
// prepended in absolute mode and should carry a trailing slash.
func NewURLContext(sitePath string, useAbsoluteURLs bool) *URLContext {
	return &URLContext{
		basePath:        "/",
		sitePath:        sitePath,
		useAbsoluteURLs: useAbsoluteURLs,
	}
}

// SetCurrentURL moves the context to the directory of the page being
// rendered.
func (c *URLContext) SetCurrentURL(currentURL string) {
	c.basePath = path.Dir(currentURL)
}

// MakeRelative returns a site-absolute URL path expressed relative to the
// current page (or prefixed with the site path in absolute mode).
// Trailing slashes on directory-style URLs are preserved; the site root
// referenced from itself resolves to ".".
func (c *URLContext) MakeRelative(url string) string {
	if c.useAbsoluteURLs {
		return c.sitePath + strings.TrimLeft(url, "/")
	}
	suffix := ""
	if strings.HasSuffix(url, "/") && len(url) > 1 {
		suffix = "/"
	}
	if c.basePath == "/" {
		if url == "/" {
			// Self-reference at the root, used for static asset links.
			return "."
		}
		return strings.TrimLeft(url, "/")
	}
	return relativeTo(url, c.basePath) + suffix
}

// relativeTo computes the POSIX relative path from base to target, both
// absolute URL paths.
func relativeTo(target, base string) string {
	targetParts := splitURLPath(target)
	baseParts := splitURLPath(base)

	common := 0
	for common < len(targetParts) && common < len(baseParts) &&
		targetParts[common] == baseParts[common] {
		common++
	}

	parts := make([]string, 0, len(baseParts)-common+len(targetParts)-common)
	for range baseParts[common:] {
		parts = append(parts, "..")
	}
	parts = append(parts, targetParts[common:]...)
	if len(parts) == 0 {
		return "."
	}
	return strings.Join(parts, "/")
}

func splitURLPath(p string) []string {
	p = strings.Trim(path.Clean("/"+p), "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// FileContext resolves relative cross-references between markdown source
// documents against the document currently being rendered. The renderer
// uses it to check that relative hyperlinks point at documents that exist
// in the pages configuration.
type FileContext struct {
	currentFile string
	basePath    string
}

// NewFileContext returns a context with no current document.
func NewFileContext() *FileContext {
	return &FileContext{}
}

// SetCurrentPath moves the context to the directory of the document being
// rendered.
func (c *FileContext) SetCurrentPath(currentPath string) {
	c.currentFile = currentPath
	c.basePath = path.Dir(currentPath)
}

// CurrentPath returns the source path of the document being rendered.
func (c *FileContext) CurrentPath() string {
	return c.currentFile
}

// MakeAbsolute resolves a path relative to the current document into a
// normalized docs-root-relative path.
func (c *FileContext) MakeAbsolute(relativePath string) string {
	return path.Clean(path.Join(c.basePath, relativePath))
}
