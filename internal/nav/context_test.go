package nav

import (
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestURLContext_RelativeFromRoot(t *testing.T) {
	ctx := NewURLContext("/", false)
	ctx.SetCurrentURL("/")

	require.Equal(t, ".", ctx.MakeRelative("/"))
	require.Equal(t, "about/", ctx.MakeRelative("/about/"))
	require.Equal(t, "api/overview/", ctx.MakeRelative("/api/overview/"))
	require.Equal(t, "css/extra.css", ctx.MakeRelative("/css/extra.css"))
}

func TestURLContext_RelativeFromNestedPage(t *testing.T) {
	ctx := NewURLContext("/", false)
	ctx.SetCurrentURL("/api/overview/")

	require.Equal(t, "../..", ctx.MakeRelative("/"))
	require.Equal(t, "../ref/", ctx.MakeRelative("/api/ref/"))
	require.Equal(t, "../../about/", ctx.MakeRelative("/about/"))
	require.Equal(t, "./", ctx.MakeRelative("/api/overview/"))
}

func TestURLContext_FlatURLs(t *testing.T) {
	ctx := NewURLContext("/", false)
	ctx.SetCurrentURL("/api/overview.html")

	require.Equal(t, "ref.html", ctx.MakeRelative("/api/ref.html"))
	require.Equal(t, "../about.html", ctx.MakeRelative("/about.html"))
}

func TestURLContext_AbsoluteMode(t *testing.T) {
	ctx := NewURLContext("/docs/", true)
	ctx.SetCurrentURL("/api/overview/")

	require.Equal(t, "/docs/about/", ctx.MakeRelative("/about/"))
	require.Equal(t, "/docs/", ctx.MakeRelative("/"))
}

// Re-resolving a relative URL against the base it was computed from must
// reconstruct the original target.
func TestURLContext_RelativeRoundTrip(t *testing.T) {
	bases := []string{"/", "/about/", "/api/overview/", "/deep/nested/page/"}
	targets := []string{"/", "/about/", "/api/overview/", "/api/ref/", "/deep/other/"}

	for _, base := range bases {
		ctx := NewURLContext("/", false)
		ctx.SetCurrentURL(base)
		for _, target := range targets {
			rel := ctx.MakeRelative(target)
			got := path.Join(path.Dir(base), rel)
			if strings.HasSuffix(target, "/") && got != "/" {
				got += "/"
			}
			require.Equal(t, target, got, "base %q target %q rel %q", base, target, rel)
		}
	}
}

func TestFileContext_MakeAbsolute(t *testing.T) {
	ctx := NewFileContext()

	ctx.SetCurrentPath("index.md")
	require.Equal(t, "index.md", ctx.CurrentPath())
	require.Equal(t, "about.md", ctx.MakeAbsolute("about.md"))
	require.Equal(t, "api/overview.md", ctx.MakeAbsolute("api/overview.md"))

	ctx.SetCurrentPath("api/overview.md")
	require.Equal(t, "api/ref.md", ctx.MakeAbsolute("ref.md"))
	require.Equal(t, "api/ref.md", ctx.MakeAbsolute("./ref.md"))
	require.Equal(t, "about.md", ctx.MakeAbsolute("../about.md"))
	require.Equal(t, "guides/intro.md", ctx.MakeAbsolute("../guides/intro.md"))
}
