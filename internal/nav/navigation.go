package nav

import (
	"strings"
	"sync"
)

// SiteNavigation owns the built navigation tree, the flat page sequence,
// and the URL and file contexts that track the page currently being
// rendered. One instance serves one site build.
type SiteNavigation struct {
	URLContext  *URLContext
	FileContext *FileContext

	navItems []NavItem
	pages    []*Page
	homepage *Page

	useDirectoryURLs bool
	useAbsoluteURLs  bool

	// Guards the traversal: active flags and context cursors are shared
	// across the instance, so passes are serialized.
	walkMu sync.Mutex

	sourceOnce  sync.Once
	sourceFiles map[string]struct{}
}

// New builds the site navigation from the ordered pages configuration.
// sitePath is the URL path the site is served under, used only in
// absolute-URL mode.
func New(entries []PageEntry, sitePath string, useDirectoryURLs, useAbsoluteURLs bool) (*SiteNavigation, error) {
	urlContext := NewURLContext(sitePath, useAbsoluteURLs)
	navItems, pages, err := buildNavigation(homepageFirst(entries), urlContext, useDirectoryURLs)
	if err != nil {
		return nil, err
	}
	n := &SiteNavigation{
		URLContext:       urlContext,
		FileContext:      NewFileContext(),
		navItems:         navItems,
		pages:            pages,
		useDirectoryURLs: useDirectoryURLs,
		useAbsoluteURLs:  useAbsoluteURLs,
	}
	if len(pages) > 0 {
		n.homepage = pages[0]
	}
	return n, nil
}

// Items returns the ordered top-level navigation sequence for menu
// rendering: bare pages and headers.
func (n *SiteNavigation) Items() []NavItem {
	return n.navItems
}

// Pages returns the full flat page sequence in display order, hidden
// pages included.
func (n *SiteNavigation) Pages() []*Page {
	return n.pages
}

// Homepage returns the first page of the flat sequence, nil for an empty
// site.
func (n *SiteNavigation) Homepage() *Page {
	return n.homepage
}

// WalkPages yields each page in turn to fn, maintaining active state and
// the context cursors so that a rendered navbar highlights the current
// page and header. Exactly one page is active at each step; all active
// state is cleared when the walk returns. Concurrent walks over the same
// instance are serialized.
func (n *SiteNavigation) WalkPages(fn func(*Page) error) error {
	n.walkMu.Lock()
	defer n.walkMu.Unlock()

	var current *Page
	defer func() {
		if current != nil {
			current.setActive(false)
		}
	}()

	for _, page := range n.pages {
		if current != nil {
			current.setActive(false)
		}
		page.setActive(true)
		current = page
		n.URLContext.SetCurrentURL(page.AbsURL)
		n.FileContext.SetCurrentPath(page.InputPath)
		if err := fn(page); err != nil {
			return err
		}
	}
	return nil
}

// SourceFiles returns the set of source document paths referenced by the
// navigation, for link validation and incremental rebuilds.
func (n *SiteNavigation) SourceFiles() map[string]struct{} {
	n.sourceOnce.Do(func() {
		n.sourceFiles = make(map[string]struct{}, len(n.pages))
		for _, page := range n.pages {
			n.sourceFiles[page.InputPath] = struct{}{}
		}
	})
	return n.sourceFiles
}

// String renders an indented dump of the homepage and nav tree, for
// debugging.
func (n *SiteNavigation) String() string {
	var b strings.Builder
	if n.homepage != nil {
		n.homepage.indentPrint(0, &b)
	}
	for _, item := range n.navItems {
		item.indentPrint(0, &b)
	}
	return b.String()
}
