// Package render turns the navigation's page sequence into HTML files:
// goldmark converts each markdown source, and an html/template theme wraps
// the result with the menu, breadcrumbs and prev/next links.
package render

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"git.home.luguber.info/inful/docsite/internal/config"
	derrors "git.home.luguber.info/inful/docsite/internal/errors"
	"git.home.luguber.info/inful/docsite/internal/nav"
)

//go:embed themes/default/base.html
var defaultTheme embed.FS

// Renderer renders the pages of one site build.
type Renderer struct {
	cfg  *config.Config
	site *nav.SiteNavigation
	md   goldmark.Markdown
	tmpl *template.Template
}

// New creates a renderer for the given configuration and navigation. A
// theme_dir containing base.html overrides the built-in theme.
func New(cfg *config.Config, site *nav.SiteNavigation) (*Renderer, error) {
	tmpl, err := loadTheme(cfg.ThemeDir)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		cfg:  cfg,
		site: site,
		// Docs pages routinely embed raw HTML; keep it.
		md:   goldmark.New(goldmark.WithRendererOptions(gmhtml.WithUnsafe())),
		tmpl: tmpl,
	}, nil
}

func loadTheme(themeDir string) (*template.Template, error) {
	if themeDir != "" {
		tmpl, err := template.ParseFiles(filepath.Join(themeDir, "base.html"))
		if err != nil {
			return nil, derrors.WrapError(err, derrors.CategoryRender, "failed to parse theme template")
		}
		return tmpl, nil
	}
	tmpl, err := template.ParseFS(defaultTheme, "themes/default/base.html")
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryRender, "failed to parse built-in theme")
	}
	return tmpl, nil
}

// RenderSite runs one traversal over the page sequence and writes every
// page's HTML into outputDir.
func (r *Renderer) RenderSite(outputDir string) error {
	return r.site.WalkPages(func(page *nav.Page) error {
		html, err := r.renderPage(page)
		if err != nil {
			return err
		}
		outPath := filepath.Join(outputDir, filepath.FromSlash(page.OutputPath))
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return derrors.WrapError(err, derrors.CategoryFileSystem, "failed to create output directory").
				WithContext("path", outPath)
		}
		if err := os.WriteFile(outPath, html, 0o644); err != nil {
			return derrors.WrapError(err, derrors.CategoryFileSystem, "failed to write page").
				WithContext("path", outPath)
		}
		slog.Debug("Rendered page", "source", page.InputPath, "output", page.OutputPath)
		return nil
	})
}

// renderPage converts one page's markdown and executes the theme
// template. The caller must have positioned the navigation's contexts on
// this page (WalkPages does).
func (r *Renderer) renderPage(page *nav.Page) ([]byte, error) {
	source, err := os.ReadFile(filepath.Join(r.cfg.DocsDir, filepath.FromSlash(page.InputPath)))
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryFileSystem, "failed to read page source").
			WithContext("path", page.InputPath)
	}

	var content bytes.Buffer
	if err := r.md.Convert(source, &content); err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryRender, "failed to convert markdown").
			WithContext("path", page.InputPath)
	}

	var out bytes.Buffer
	if err := r.tmpl.Execute(&out, r.pageData(page, content.String())); err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryRender, "failed to execute theme template").
			WithContext("path", page.InputPath)
	}
	return out.Bytes(), nil
}
