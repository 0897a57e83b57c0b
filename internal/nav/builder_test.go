package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustNav(t *testing.T, entries []PageEntry) *SiteNavigation {
	t.Helper()
	site, err := New(entries, "/", true, false)
	require.NoError(t, err)
	return site
}

func TestBuild_SimpleSite(t *testing.T) {
	site := mustNav(t, []PageEntry{
		{Path: "index.md"},
		{Path: "about.md", Title: "About"},
		{Path: "api/overview.md", Title: "API", ChildTitle: "Overview"},
		{Path: "api/ref.md", Title: "API", ChildTitle: "Reference"},
	})

	pages := site.Pages()
	require.Len(t, pages, 4)
	require.Equal(t, "index.md", pages[0].InputPath)
	require.True(t, pages[0].IsHomepage())
	require.Same(t, pages[0], site.Homepage())

	// The homepage is linked but never shown as a nav entry.
	items := site.Items()
	require.Len(t, items, 2)

	about, ok := items[0].(*Page)
	require.True(t, ok)
	require.Equal(t, "About", about.Title)
	require.Empty(t, about.Ancestors)

	api, ok := items[1].(*Header)
	require.True(t, ok)
	require.Equal(t, "API", api.Title)
	require.Len(t, api.Children, 2)
	require.Equal(t, "Overview", api.Children[0].Title)
	require.Equal(t, "Reference", api.Children[1].Title)
	require.Equal(t, []*Header{api}, api.Children[0].Ancestors)
	require.Equal(t, []*Header{api}, api.Children[1].Ancestors)

	require.Equal(t, "/", pages[0].AbsURL)
	require.Equal(t, "/about/", pages[1].AbsURL)
	require.Equal(t, "/api/overview/", pages[2].AbsURL)
	require.Equal(t, "api/ref/index.html", pages[3].OutputPath)
}

func TestBuild_PrevNextLinks(t *testing.T) {
	site := mustNav(t, []PageEntry{
		{Path: "index.md"},
		{Path: "about.md", Title: "About"},
		{Path: "contact.md", Title: "Contact"},
	})

	pages := site.Pages()
	require.Nil(t, pages[0].PreviousPage)
	require.Same(t, pages[1], pages[0].NextPage)
	require.Same(t, pages[0], pages[1].PreviousPage)
	require.Same(t, pages[2], pages[1].NextPage)
	require.Same(t, pages[1], pages[2].PreviousPage)
	require.Nil(t, pages[2].NextPage)

	// Every previous link is mirrored by the other page's next link.
	for _, page := range pages {
		if page.PreviousPage != nil {
			require.Same(t, page, page.PreviousPage.NextPage)
		}
	}
}

func TestBuild_DerivedTitles(t *testing.T) {
	site := mustNav(t, []PageEntry{
		{Path: "index.md"},
		{Path: "getting-started.md"},
		{Path: "user-guide/installation.md"},
		{Path: "user-guide/release_notes.md"},
	})

	items := site.Items()
	require.Len(t, items, 2)
	require.Equal(t, "Getting started", items[0].NavTitle())

	guide, ok := items[1].(*Header)
	require.True(t, ok)
	require.Equal(t, "User guide", guide.Title)
	require.Len(t, guide.Children, 2)
	require.Equal(t, "Installation", guide.Children[0].Title)
	require.Equal(t, "Release notes", guide.Children[1].Title)
}

func TestBuild_AdjacentGroupsStaySeparate(t *testing.T) {
	site := mustNav(t, []PageEntry{
		{Path: "a/x.md", Title: "First", ChildTitle: "X"},
		{Path: "a/y.md", Title: "First", ChildTitle: "Y"},
		{Path: "b/x.md", Title: "Second", ChildTitle: "X"},
		{Path: "a/z.md", Title: "First", ChildTitle: "Z"},
	})

	items := site.Items()
	require.Len(t, items, 3)
	require.Equal(t, "First", items[0].NavTitle())
	require.Equal(t, "Second", items[1].NavTitle())
	// Non-adjacent repeat of a title opens a fresh group.
	require.Equal(t, "First", items[2].NavTitle())
	require.Len(t, items[0].(*Header).Children, 2)
	require.Len(t, items[2].(*Header).Children, 1)
}

func TestBuild_HiddenPageLinking(t *testing.T) {
	site := mustNav(t, []PageEntry{
		{Path: "index.md"},
		{Path: "secret.md", Hidden: true},
		{Path: "about.md", Title: "About"},
	})

	pages := site.Pages()
	require.Len(t, pages, 3)

	// Hidden pages never appear in the nav tree.
	require.Len(t, site.Items(), 1)
	require.Equal(t, "About", site.Items()[0].NavTitle())

	home, secret, about := pages[0], pages[1], pages[2]
	require.True(t, secret.Hidden)
	require.Empty(t, secret.Title)

	// The hidden page is linked into the sequence from the left...
	require.Same(t, secret, home.NextPage)
	require.Same(t, home, secret.PreviousPage)
	// ...and forwards its own next link to its successor, while the
	// successor's previous link skips back past it.
	require.Same(t, about, secret.NextPage)
	require.Same(t, home, about.PreviousPage)
	require.Same(t, about, home.NextPage.NextPage)
}

func TestBuild_HiddenPageAtEnd(t *testing.T) {
	site := mustNav(t, []PageEntry{
		{Path: "index.md"},
		{Path: "secret.md", Hidden: true},
	})

	pages := site.Pages()
	require.Empty(t, site.Items())
	require.Same(t, pages[1], pages[0].NextPage)
	require.Nil(t, pages[1].NextPage)
}

func TestBuild_HiddenPageWithChildPathStaysTopLevel(t *testing.T) {
	site := mustNav(t, []PageEntry{
		{Path: "internal/notes.md", Hidden: true},
		{Path: "about.md", Title: "About"},
	})

	require.Len(t, site.Items(), 1)
	require.True(t, site.Pages()[0].Hidden)
	require.Empty(t, site.Pages()[0].Ancestors)
}

func TestBuild_UntitledTopLevelPageIsLinkedButNotListed(t *testing.T) {
	site, err := New([]PageEntry{
		{Path: "index.md"},
		{Path: "about.md", Title: "About"},
	}, "/", true, false)
	require.NoError(t, err)

	// The homepage has a derived title but is never a nav entry; it is
	// still first in the sequence and fully linked.
	require.Len(t, site.Items(), 1)
	require.Equal(t, "Home", site.Pages()[0].Title)
	require.Same(t, site.Pages()[1], site.Pages()[0].NextPage)
}

func TestBuild_FlatSequencePreservesEntryOrder(t *testing.T) {
	entries := []PageEntry{
		{Path: "index.md"},
		{Path: "b.md", Title: "B"},
		{Path: "hidden.md", Hidden: true},
		{Path: "g/one.md", Title: "G", ChildTitle: "One"},
		{Path: "a.md", Title: "A"},
	}
	site := mustNav(t, entries)

	pages := site.Pages()
	require.Len(t, pages, len(entries))
	for i, entry := range entries {
		require.Equal(t, entry.Path, pages[i].InputPath)
	}
}

func TestBuild_HomepageMovedToFront(t *testing.T) {
	site := mustNav(t, []PageEntry{
		{Path: "about.md", Title: "About"},
		{Path: "index.md"},
		{Path: "contact.md", Title: "Contact"},
	})

	pages := site.Pages()
	require.Equal(t, "index.md", pages[0].InputPath)
	require.Equal(t, "about.md", pages[1].InputPath)
	require.Equal(t, "contact.md", pages[2].InputPath)
	require.Same(t, pages[0], site.Homepage())
	require.Same(t, pages[1], pages[0].NextPage)
}

func TestBuild_EmptyPathRejected(t *testing.T) {
	_, err := New([]PageEntry{{Path: ""}}, "/", true, false)
	require.Error(t, err)
}
