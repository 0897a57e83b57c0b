package config

import (
	"os"

	derrors "git.home.luguber.info/inful/docsite/internal/errors"
)

const exampleConfig = `# docsite configuration
site_name: My Documentation

# site_url: https://example.com/docs/
# repo_url: https://github.com/example/project

docs_dir: docs
site_dir: site

# Pages are listed in navigation order. Each line is a path, an optional
# title, and an optional child title for two-level grouping. Omit the
# whole list to include every markdown file found under docs_dir.
#
# pages:
# - ['index.md', 'Home']
# - ['user-guide/install.md', 'User Guide', 'Installation']
# - ['user-guide/config.md', 'User Guide', 'Configuration']
# - ['about.md', 'About']

# use_directory_urls: true
# dev_addr: 127.0.0.1:8000
`

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return derrors.Newf(derrors.CategoryConfig, derrors.SeverityError,
			"configuration file already exists: %s (use --force to overwrite)", configPath)
	}
	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		return derrors.WrapError(err, derrors.CategoryFileSystem, "failed to write config file")
	}
	return nil
}
