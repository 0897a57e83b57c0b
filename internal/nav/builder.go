package nav

import (
	"strings"

	derrors "git.home.luguber.info/inful/docsite/internal/errors"
)

// buildNavigation turns the ordered entry list into the top-level nav
// items and the flat page sequence, wiring previous/next and ancestor
// links as it goes. Entries are processed strictly in input order.
func buildNavigation(entries []PageEntry, urlContext *URLContext, useDirectoryURLs bool) ([]NavItem, []*Page, error) {
	navItems := make([]NavItem, 0, len(entries))
	pages := make([]*Page, 0, len(entries))

	// previous is the last non-hidden page seen; hiddenPrevious the last
	// hidden page still awaiting a successor for its forward link.
	var previous *Page
	var hiddenPrevious *Page

	for _, entry := range entries {
		if entry.Path == "" {
			return nil, nil, derrors.New(derrors.CategoryNav, derrors.SeverityFatal,
				"pages entry has an empty path")
		}
		title := entry.Title
		childTitle := entry.ChildTitle
		if title == "" && !entry.Hidden {
			title = FilenameToTitle(firstSegment(entry.Path))
		}
		if childTitle == "" && strings.Contains(entry.Path, "/") {
			childTitle = FilenameToTitle(secondSegment(entry.Path))
		}

		page := &Page{
			Hidden:     entry.Hidden,
			InputPath:  entry.Path,
			OutputPath: OutputPath(entry.Path, useDirectoryURLs),
			AbsURL:     URLPath(entry.Path, useDirectoryURLs),
			urlContext: urlContext,
		}

		switch {
		case entry.Hidden || childTitle == "":
			// New top-level page. Hidden pages and pages without a real
			// title are tracked in the flat sequence and linked, but are
			// not shown as nav entries; neither is the homepage.
			page.Title = title
			if !entry.Hidden && title != "" && !IsHomepage(entry.Path) {
				navItems = append(navItems, page)
			}
		default:
			page.Title = childTitle
			if header, ok := lastHeader(navItems); ok && header.Title == title {
				// Additional second-level page in the open group.
				header.Children = append(header.Children, page)
				page.Ancestors = []*Header{header}
			} else {
				// New second-level page starting a group.
				header := &Header{Title: title, Children: []*Page{page}}
				navItems = append(navItems, header)
				page.Ancestors = []*Header{header}
			}
		}

		if previous != nil {
			page.PreviousPage = previous
			previous.NextPage = page
		}
		// A hidden page forwards its next link across the gap it creates,
		// while the following page's previous link skips back past it.
		if hiddenPrevious != nil {
			hiddenPrevious.NextPage = page
		}

		if entry.Hidden {
			hiddenPrevious = page
		} else {
			hiddenPrevious = nil
			previous = page
		}

		pages = append(pages, page)
	}

	return navItems, pages, nil
}

// homepageFirst moves the first homepage entry to the front of the
// sequence. All other ordering stays entry order.
func homepageFirst(entries []PageEntry) []PageEntry {
	for i, entry := range entries {
		if !IsHomepage(entry.Path) {
			continue
		}
		if i == 0 {
			return entries
		}
		out := make([]PageEntry, 0, len(entries))
		out = append(out, entry)
		out = append(out, entries[:i]...)
		out = append(out, entries[i+1:]...)
		return out
	}
	return entries
}

func lastHeader(items []NavItem) (*Header, bool) {
	if len(items) == 0 {
		return nil, false
	}
	header, ok := items[len(items)-1].(*Header)
	return header, ok
}

func firstSegment(p string) string {
	if i := strings.IndexByte(p, '/'); i >= 0 {
		return p[:i]
	}
	return p
}

func secondSegment(p string) string {
	rest := p[strings.IndexByte(p, '/')+1:]
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		return rest[:i]
	}
	return rest
}
