// Package nav builds the site-wide navigation: a two-level tree of
// interlinked page and header nodes, plus the flat page sequence used for
// previous/next links and the render-time traversal.
package nav

import (
	"path"
	"strings"
	"unicode"
)

// URLPath maps a markdown source path, relative to the docs root, to its
// canonical absolute URL path on the site.
//
//	index.md        -> /
//	about.md        -> /about/        (or /about.html)
//	api/overview.md -> /api/overview/ (or /api/overview.html)
//	api/index.md    -> /api/
func URLPath(sourcePath string, useDirectoryURLs bool) string {
	stem := stripExtension(sourcePath)
	if path.Base(stem) == "index" {
		dir := path.Dir(stem)
		if dir == "." || dir == "/" {
			return "/"
		}
		return "/" + dir + "/"
	}
	if useDirectoryURLs {
		return "/" + stem + "/"
	}
	return "/" + stem + ".html"
}

// OutputPath maps a markdown source path to the HTML file path it is
// written to, relative to the site directory. It mirrors URLPath:
// directory-style URLs place each page at name/index.html, flat URLs at
// name.html. Index pages keep their directory.
func OutputPath(sourcePath string, useDirectoryURLs bool) string {
	stem := stripExtension(sourcePath)
	if path.Base(stem) == "index" {
		return stem + ".html"
	}
	if useDirectoryURLs {
		return path.Join(stem, "index.html")
	}
	return stem + ".html"
}

// IsHomepage reports whether a source path identifies the site homepage:
// an index document at the docs root.
func IsHomepage(sourcePath string) bool {
	return stripExtension(sourcePath) == "index"
}

// FilenameToTitle derives a default human title from a path segment:
// extension stripped, dashes and underscores become spaces, and the result
// is capitalized only if it was entirely lowercase.
func FilenameToTitle(filename string) string {
	if IsHomepage(filename) {
		return "Home"
	}
	title := stripExtension(filename)
	title = strings.ReplaceAll(title, "-", " ")
	title = strings.ReplaceAll(title, "_", " ")
	if strings.ToLower(title) == title {
		title = capitalize(title)
	}
	return title
}

func stripExtension(p string) string {
	p = path.Clean(strings.TrimPrefix(p, "./"))
	if ext := path.Ext(p); ext != "" {
		p = p[:len(p)-len(ext)]
	}
	return p
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
