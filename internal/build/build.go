// Package build orchestrates one site build: navigation construction, the
// render traversal, asset copying and optional link checking.
package build

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docsite/internal/config"
	derrors "git.home.luguber.info/inful/docsite/internal/errors"
	"git.home.luguber.info/inful/docsite/internal/linkcheck"
	"git.home.luguber.info/inful/docsite/internal/nav"
	"git.home.luguber.info/inful/docsite/internal/render"
)

// Options control one build run.
type Options struct {
	// OutputDir overrides the configured site_dir when non-empty.
	OutputDir string
	// Clean removes the output directory before building.
	Clean bool
	// CheckLinks validates internal markdown references after rendering.
	CheckLinks bool
}

// Run executes a full build and returns the navigation it built, so
// callers (the preview server) can reuse its source set.
func Run(cfg *config.Config, opts Options) (*nav.SiteNavigation, error) {
	buildID := uuid.NewString()
	logger := slog.With("build_id", buildID)

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = cfg.SiteDir
	}

	site, err := nav.New(cfg.Pages, cfg.SitePath(), cfg.DirectoryURLs(), cfg.UseAbsoluteURLs)
	if err != nil {
		return nil, err
	}
	logger.Info("Built site navigation", "pages", len(site.Pages()), "nav_items", len(site.Items()))

	if opts.Clean {
		if err := os.RemoveAll(outputDir); err != nil {
			return nil, derrors.WrapError(err, derrors.CategoryFileSystem, "failed to clean output directory").
				WithContext("path", outputDir)
		}
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryFileSystem, "failed to create output directory").
			WithContext("path", outputDir)
	}

	renderer, err := render.New(cfg, site)
	if err != nil {
		return nil, err
	}
	if err := renderer.RenderSite(outputDir); err != nil {
		return nil, err
	}

	copied, err := copyAssets(cfg.DocsDir, outputDir)
	if err != nil {
		return nil, err
	}
	logger.Info("Rendered site", "output", outputDir, "assets", copied)

	if opts.CheckLinks {
		problems, err := linkcheck.CheckSite(site, outputDir)
		if err != nil {
			return nil, err
		}
		for _, p := range problems {
			logger.Warn("Broken internal link", "source", p.SourcePath, "link", p.Link, "resolved", p.Resolved)
		}
		if len(problems) > 0 {
			return nil, derrors.Newf(derrors.CategoryBuild, derrors.SeverityError,
				"%d broken internal links", len(problems))
		}
	}

	return site, nil
}

// copyAssets mirrors every non-markdown file from the docs dir into the
// output directory, preserving relative paths. Markdown sources become
// rendered pages instead.
func copyAssets(docsDir, outputDir string) (int, error) {
	copied := 0
	err := filepath.WalkDir(docsDir, func(fullPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || config.IsMarkdownFile(d.Name()) {
			return nil
		}
		relPath, err := filepath.Rel(docsDir, fullPath)
		if err != nil {
			return err
		}
		destPath := filepath.Join(outputDir, relPath)
		if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
			return err
		}
		if err := copyFile(fullPath, destPath); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, derrors.WrapError(err, derrors.CategoryFileSystem, "failed to copy docs assets")
	}
	return copied, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(filepath.Clean(src))
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()
	out, err := os.Create(filepath.Clean(dest))
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
