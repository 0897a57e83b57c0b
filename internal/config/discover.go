package config

import (
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	derrors "git.home.luguber.info/inful/docsite/internal/errors"
	"git.home.luguber.info/inful/docsite/internal/nav"
)

var markdownExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdown":    true,
	".mkd":      true,
	".mkdn":     true,
}

// IsMarkdownFile reports whether a filename has a recognized markdown
// extension.
func IsMarkdownFile(name string) bool {
	return markdownExtensions[strings.ToLower(filepath.Ext(name))]
}

// discoverDocsDir walks DocsDir and fills in whatever the user left
// unset: the pages list from markdown files (homepage index first, so it
// leads the navigation sequence), and the extra asset lists from .css and
// .js files.
func (c *Config) discoverDocsDir() error {
	needPages := c.Pages == nil
	needCSS := c.ExtraCSS == nil
	needJS := c.ExtraJavascript == nil
	if !needPages && !needCSS && !needJS {
		return nil
	}

	if _, err := os.Stat(c.DocsDir); os.IsNotExist(err) {
		return derrors.Newf(derrors.CategoryConfig, derrors.SeverityFatal,
			"docs directory not found: %s", c.DocsDir)
	}

	var pages []nav.PageEntry
	var extraCSS, extraJS []string

	err := filepath.WalkDir(c.DocsDir, func(fullPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		relPath, err := filepath.Rel(c.DocsDir, fullPath)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		switch {
		case IsMarkdownFile(d.Name()):
			if nav.IsHomepage(relPath) {
				// The homepage always leads the page sequence.
				pages = append([]nav.PageEntry{{Path: relPath}}, pages...)
			} else {
				pages = append(pages, nav.PageEntry{Path: relPath})
			}
		case strings.EqualFold(filepath.Ext(d.Name()), ".css"):
			extraCSS = append(extraCSS, relPath)
		case strings.EqualFold(filepath.Ext(d.Name()), ".js"):
			extraJS = append(extraJS, relPath)
		}
		return nil
	})
	if err != nil {
		return derrors.WrapError(err, derrors.CategoryFileSystem, "failed to walk docs directory")
	}

	if needPages {
		c.Pages = pages
	}
	if needCSS {
		sort.Strings(extraCSS)
		c.ExtraCSS = extraCSS
	}
	if needJS {
		sort.Strings(extraJS)
		c.ExtraJavascript = extraJS
	}
	return nil
}

// repoNameFromURL picks a display label for the source-repository link:
// the well-known hosts get their product name, anything else the
// title-cased first host label.
func repoNameFromURL(repoURL string) string {
	u, err := url.Parse(repoURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	switch host {
	case "github.com":
		return "GitHub"
	case "bitbucket.org", "bitbucket.com":
		return "Bitbucket"
	}
	label, _, _ := strings.Cut(host, ".")
	return cases.Title(language.English).String(label)
}
