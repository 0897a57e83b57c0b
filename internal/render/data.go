package render

import (
	"html/template"

	"git.home.luguber.info/inful/docsite/internal/nav"
)

// pageData is the theme template context for one page.
type pageData struct {
	SiteName        string
	SiteDescription string
	SiteAuthor      string
	SiteFavicon     string
	Copyright       string
	RepoURL         string
	RepoName        string

	PageTitle string
	Content   template.HTML

	HomepageURL string
	Nav         []navItemView
	IncludeNav  bool

	Previous        *pageLink
	Next            *pageLink
	IncludeNextPrev bool

	Breadcrumbs []string

	ExtraCSS        []string
	ExtraJavascript []string
}

// navItemView flattens the Page/Header split for the template: a bare
// page has a URL and no children, a header the reverse.
type navItemView struct {
	Title    string
	URL      string
	Active   bool
	Children []pageLink
}

type pageLink struct {
	Title  string
	URL    string
	Active bool
}

// pageData assembles the template context. All URLs are resolved through
// the navigation's URLContext, so they are relative to the page under
// render.
func (r *Renderer) pageData(page *nav.Page, content string) pageData {
	data := pageData{
		SiteName:        r.cfg.SiteName,
		SiteDescription: r.cfg.SiteDescription,
		SiteAuthor:      r.cfg.SiteAuthor,
		Copyright:       r.cfg.Copyright,
		RepoURL:         r.cfg.RepoURL,
		RepoName:        r.cfg.RepoName,
		PageTitle:       page.Title,
		Content:         template.HTML(content),
		IncludeNav:      r.cfg.NavEnabled(),
		IncludeNextPrev: r.cfg.NextPrevEnabled(),
	}
	if data.PageTitle == "" {
		data.PageTitle = r.cfg.SiteName
	}
	if r.cfg.SiteFavicon != "" {
		data.SiteFavicon = r.site.URLContext.MakeRelative("/" + r.cfg.SiteFavicon)
	}
	if home := r.site.Homepage(); home != nil {
		data.HomepageURL = home.URL()
	}

	for _, item := range r.site.Items() {
		switch it := item.(type) {
		case *nav.Page:
			data.Nav = append(data.Nav, navItemView{
				Title:  it.Title,
				URL:    it.URL(),
				Active: it.Active(),
			})
		case *nav.Header:
			view := navItemView{Title: it.Title, Active: it.Active()}
			for _, child := range it.Children {
				view.Children = append(view.Children, pageLink{
					Title:  child.Title,
					URL:    child.URL(),
					Active: child.Active(),
				})
			}
			data.Nav = append(data.Nav, view)
		}
	}

	if prev := page.PreviousPage; prev != nil {
		data.Previous = &pageLink{Title: prev.Title, URL: prev.URL()}
	}
	if next := page.NextPage; next != nil {
		data.Next = &pageLink{Title: next.Title, URL: next.URL()}
	}
	for _, ancestor := range page.Ancestors {
		data.Breadcrumbs = append(data.Breadcrumbs, ancestor.Title)
	}

	for _, css := range r.cfg.ExtraCSS {
		data.ExtraCSS = append(data.ExtraCSS, r.site.URLContext.MakeRelative("/"+css))
	}
	for _, js := range r.cfg.ExtraJavascript {
		data.ExtraJavascript = append(data.ExtraJavascript, r.site.URLContext.MakeRelative("/"+js))
	}
	return data
}
