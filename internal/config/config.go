// Package config loads and normalizes the docsite configuration file,
// filling defaults and discovering docs-dir content that the user did not
// list explicitly.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docsite/internal/errors"
	"git.home.luguber.info/inful/docsite/internal/nav"
)

// Config represents the application configuration
type Config struct {
	SiteName        string `yaml:"site_name"`
	SiteURL         string `yaml:"site_url,omitempty"`
	SiteDescription string `yaml:"site_description,omitempty"`
	SiteAuthor      string `yaml:"site_author,omitempty"`
	SiteFavicon     string `yaml:"site_favicon,omitempty"`

	// Pages is the ordered navigation source. When absent it is filled by
	// discovering markdown files under DocsDir.
	Pages []nav.PageEntry `yaml:"pages,omitempty"`

	DocsDir  string `yaml:"docs_dir,omitempty"`
	SiteDir  string `yaml:"site_dir,omitempty"`
	ThemeDir string `yaml:"theme_dir,omitempty"`

	Copyright string `yaml:"copyright,omitempty"`

	// DevAddr is the address the preview server listens on.
	DevAddr string `yaml:"dev_addr,omitempty"`

	// UseDirectoryURLs selects `name/index.html` output with `name/` URLs
	// over flat `name.html`. Directory URLs read better; flat files are
	// useful when browsing the output straight from the filesystem.
	UseDirectoryURLs *bool `yaml:"use_directory_urls,omitempty"`

	// UseAbsoluteURLs prefixes every generated URL with the site path.
	// Relative URLs (the default) let the site be relocated to a
	// different URL subdirectory without rebuilding.
	UseAbsoluteURLs bool `yaml:"use_absolute_urls,omitempty"`

	// RepoURL links the documentation to the project source repository;
	// RepoName labels the link and is derived from the URL host when
	// unset.
	RepoURL  string `yaml:"repo_url,omitempty"`
	RepoName string `yaml:"repo_name,omitempty"`

	// ExtraCSS and ExtraJavascript list docs-dir assets to include in
	// every page. Defaults to all .css and .js files found in DocsDir.
	ExtraCSS        []string `yaml:"extra_css,omitempty"`
	ExtraJavascript []string `yaml:"extra_javascript,omitempty"`

	// IncludeNav and IncludeNextPrev toggle the menu and prev/next
	// elements. Default: enabled when the site has more than one page.
	IncludeNav      *bool `yaml:"include_nav,omitempty"`
	IncludeNextPrev *bool `yaml:"include_next_prev,omitempty"`
}

// Load loads configuration from the specified file, expands environment
// variables, applies defaults and discovers docs-dir content.
func Load(configPath string) (*Config, error) {
	// Load .env if present so ${VAR} references in the YAML resolve.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Note: .env file couldn't be loaded: %v\n", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, derrors.Newf(derrors.CategoryConfig, derrors.SeverityFatal,
			"configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryFileSystem, "failed to read config file")
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryConfig, "failed to unmarshal config")
	}

	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize validates required settings, fills defaults and runs docs-dir
// discovery for unset pages and asset lists.
func (c *Config) Normalize() error {
	if c.SiteName == "" {
		return derrors.New(derrors.CategoryConfig, derrors.SeverityFatal,
			"config must contain a site_name setting")
	}
	if c.DocsDir == "" {
		c.DocsDir = "docs"
	}
	if c.SiteDir == "" {
		c.SiteDir = "site"
	}
	if c.DevAddr == "" {
		c.DevAddr = "127.0.0.1:8000"
	}

	if err := c.discoverDocsDir(); err != nil {
		return err
	}

	for _, entry := range c.Pages {
		if entry.Path == "" {
			return derrors.New(derrors.CategoryConfig, derrors.SeverityFatal,
				"pages entry has an empty path")
		}
	}

	if c.RepoURL != "" && c.RepoName == "" {
		c.RepoName = repoNameFromURL(c.RepoURL)
	}

	multiPage := len(c.Pages) > 1
	if c.IncludeNav == nil {
		c.IncludeNav = &multiPage
	}
	if c.IncludeNextPrev == nil {
		c.IncludeNextPrev = &multiPage
	}
	return nil
}

// DirectoryURLs reports whether directory-style URLs are enabled
// (the default).
func (c *Config) DirectoryURLs() bool {
	return c.UseDirectoryURLs == nil || *c.UseDirectoryURLs
}

// NavEnabled reports whether the rendered pages carry the navigation
// menu.
func (c *Config) NavEnabled() bool {
	return c.IncludeNav != nil && *c.IncludeNav
}

// NextPrevEnabled reports whether the rendered pages carry prev/next
// links.
func (c *Config) NextPrevEnabled() bool {
	return c.IncludeNextPrev != nil && *c.IncludeNextPrev
}

// SitePath returns the URL path component of SiteURL with a trailing
// slash, used as the prefix in absolute-URL mode. "/" when no site URL is
// configured.
func (c *Config) SitePath() string {
	if c.SiteURL == "" {
		return "/"
	}
	u, err := url.Parse(c.SiteURL)
	if err != nil || u.Path == "" {
		return "/"
	}
	p := u.Path
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
