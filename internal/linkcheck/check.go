package linkcheck

import (
	"net/url"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/nav"
)

// Problem is one broken internal reference found in a rendered page.
type Problem struct {
	SourcePath string // markdown document the link came from
	Link       string // link target as written
	Resolved   string // docs-root-relative path it resolved to
}

// CheckSite walks the rendered pages and reports markdown cross-references
// that resolve outside the navigation's source set. External links,
// fragments and non-markdown targets are left alone.
func CheckSite(site *nav.SiteNavigation, siteDir string) ([]Problem, error) {
	sources := site.SourceFiles()
	fileContext := nav.NewFileContext()

	var problems []Problem
	for _, page := range site.Pages() {
		outPath := filepath.Join(siteDir, filepath.FromSlash(page.OutputPath))
		links, err := ExtractLinks(outPath)
		if err != nil {
			return nil, err
		}
		fileContext.SetCurrentPath(page.InputPath)
		for _, link := range links {
			target, ok := markdownTarget(link.URL)
			if !ok {
				continue
			}
			resolved := fileContext.MakeAbsolute(target)
			if _, found := sources[resolved]; !found {
				problems = append(problems, Problem{
					SourcePath: page.InputPath,
					Link:       link.URL,
					Resolved:   resolved,
				})
			}
		}
	}
	return problems, nil
}

// markdownTarget returns the path component of a link that references a
// markdown document relative to the current one.
func markdownTarget(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" {
		return "", false
	}
	if strings.HasPrefix(u.Path, "/") {
		return "", false
	}
	if !config.IsMarkdownFile(u.Path) {
		return "", false
	}
	return u.Path, true
}
