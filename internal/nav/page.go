package nav

import (
	"strings"
)

// NavItem is one element of the top-level navigation: either a bare Page
// or a Header grouping several pages.
type NavItem interface {
	// NavTitle is the text shown for the item in a rendered menu.
	NavTitle() string
	// Active reports whether the item belongs to the page currently
	// being rendered.
	Active() bool

	indentPrint(depth int, b *strings.Builder)
}

// Page is a single document in the navigation. All fields except the
// active flag are fixed at build time; the flag is driven by WalkPages.
type Page struct {
	// Title is the display title, empty when the entry had none and
	// nothing could be derived. Hidden pages are always untitled.
	Title  string
	Hidden bool

	// InputPath is the markdown source path relative to the docs root;
	// OutputPath the generated HTML path relative to the site directory.
	InputPath  string
	OutputPath string

	// AbsURL is the canonical site-absolute URL path of the page.
	AbsURL string

	// PreviousPage and NextPage link the flat page sequence. Nil at the
	// ends. A hidden page is skipped on the previous side but still
	// forwards its own next link.
	PreviousPage *Page
	NextPage     *Page

	// Ancestors holds the enclosing Header when the page is grouped,
	// empty for true top-level pages.
	Ancestors []*Header

	urlContext *URLContext
	active     bool
}

// URL returns the page URL relative (or absolute) to the page currently
// being rendered, per the shared URLContext.
func (p *Page) URL() string {
	return p.urlContext.MakeRelative(p.AbsURL)
}

// Active reports whether this is the page currently being rendered.
func (p *Page) Active() bool {
	return p.active
}

// IsHomepage reports whether the page is the site homepage.
func (p *Page) IsHomepage() bool {
	return IsHomepage(p.InputPath)
}

// NavTitle implements NavItem.
func (p *Page) NavTitle() string {
	return p.Title
}

func (p *Page) setActive(active bool) {
	p.active = active
}

func (p *Page) String() string {
	var b strings.Builder
	p.indentPrint(0, &b)
	return b.String()
}

func (p *Page) indentPrint(depth int, b *strings.Builder) {
	title := p.Title
	if title == "" {
		title = "[blank]"
	}
	b.WriteString(strings.Repeat("    ", depth))
	b.WriteString(title)
	b.WriteString(" - ")
	b.WriteString(p.AbsURL)
	if p.active {
		b.WriteString(" [*]")
	}
	b.WriteString("\n")
}

// Header is a top-level grouping of second-level pages. Its activity is
// derived from its children rather than stored.
type Header struct {
	Title    string
	Children []*Page
}

// Active reports whether any child page is currently active.
func (h *Header) Active() bool {
	for _, child := range h.Children {
		if child.active {
			return true
		}
	}
	return false
}

// NavTitle implements NavItem.
func (h *Header) NavTitle() string {
	return h.Title
}

func (h *Header) String() string {
	var b strings.Builder
	h.indentPrint(0, &b)
	return b.String()
}

func (h *Header) indentPrint(depth int, b *strings.Builder) {
	b.WriteString(strings.Repeat("    ", depth))
	b.WriteString(h.Title)
	if h.Active() {
		b.WriteString(" [*]")
	}
	b.WriteString("\n")
	for _, child := range h.Children {
		child.indentPrint(depth+1, b)
	}
}
