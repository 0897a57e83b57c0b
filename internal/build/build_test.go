package build

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"git.home.luguber.info/inful/docsite/internal/config"
	derrors "git.home.luguber.info/inful/docsite/internal/errors"
	"git.home.luguber.info/inful/docsite/internal/nav"
)

func setupDocs(t *testing.T, files map[string]string) (*config.Config, string) {
	t.Helper()
	tempDir := t.TempDir()
	docsDir := filepath.Join(tempDir, "docs")
	for path, content := range files {
		fullPath := filepath.Join(docsDir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	cfg := &config.Config{
		SiteName: "Build Test",
		DocsDir:  docsDir,
		SiteDir:  filepath.Join(tempDir, "site"),
	}
	if err := cfg.Normalize(); err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	return cfg, tempDir
}

func TestRun_FullBuild(t *testing.T) {
	cfg, _ := setupDocs(t, map[string]string{
		"index.md":       "# Home\n\nWelcome.",
		"about.md":       "# About",
		"img/logo.png":   "\x89PNG",
		"css/extra.css":  "body {}",
		"guide/intro.md": "# Intro\n\nRead [About](../about.md).",
	})

	site, err := Run(cfg, Options{Clean: true, CheckLinks: true})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(site.Pages()) != 3 {
		t.Fatalf("pages = %d", len(site.Pages()))
	}

	for _, want := range []string{
		"index.html",
		"about/index.html",
		"guide/intro/index.html",
		"img/logo.png",
		"css/extra.css",
	} {
		if _, err := os.Stat(filepath.Join(cfg.SiteDir, filepath.FromSlash(want))); err != nil {
			t.Errorf("missing output %s: %v", want, err)
		}
	}
}

func TestRun_CleanRemovesStaleOutput(t *testing.T) {
	cfg, _ := setupDocs(t, map[string]string{"index.md": "# Home"})

	stale := filepath.Join(cfg.SiteDir, "stale.html")
	if err := os.MkdirAll(cfg.SiteDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(stale, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Run(cfg, Options{Clean: true}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale output survived a clean build")
	}
}

func TestRun_BrokenLinksFailBuild(t *testing.T) {
	cfg, _ := setupDocs(t, map[string]string{
		"index.md": "# Home\n\nSee [missing](missing.md).",
		"about.md": "# About",
	})

	_, err := Run(cfg, Options{Clean: true, CheckLinks: true})
	if err == nil {
		t.Fatal("expected broken-link failure")
	}
	if !derrors.IsCategory(err, derrors.CategoryBuild) {
		t.Errorf("error category = %v", derrors.GetCategory(err))
	}
	if !strings.Contains(err.Error(), "broken internal links") {
		t.Errorf("error = %v", err)
	}
}

func TestRun_OutputDirOverride(t *testing.T) {
	cfg, tempDir := setupDocs(t, map[string]string{"index.md": "# Home"})
	outDir := filepath.Join(tempDir, "elsewhere")

	if _, err := Run(cfg, Options{OutputDir: outDir}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "index.html")); err != nil {
		t.Errorf("missing index.html in override dir: %v", err)
	}
}

func TestRun_HiddenPageRendered(t *testing.T) {
	cfg, _ := setupDocs(t, map[string]string{
		"index.md":  "# Home",
		"secret.md": "# Secret",
	})
	cfg.Pages = []nav.PageEntry{
		{Path: "index.md"},
		{Path: "secret.md", Hidden: true},
	}

	site, err := Run(cfg, Options{Clean: true})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(site.Items()) != 0 {
		t.Errorf("hidden page leaked into nav items")
	}
	if _, err := os.Stat(filepath.Join(cfg.SiteDir, "secret", "index.html")); err != nil {
		t.Errorf("hidden page not rendered: %v", err)
	}
}
