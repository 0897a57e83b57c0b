package serve

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docsite/internal/build"
	"git.home.luguber.info/inful/docsite/internal/config"
)

var errTest = errors.New("build broke")

func testServer(t *testing.T) *Server {
	t.Helper()
	tempDir := t.TempDir()
	cfg := &config.Config{
		SiteName: "Test",
		DocsDir:  filepath.Join(tempDir, "docs"),
		SiteDir:  filepath.Join(tempDir, "site"),
		DevAddr:  "127.0.0.1:8000",
	}
	return New(filepath.Join(tempDir, "docsite.yaml"), cfg, build.Options{}, "")
}

func TestNew_AddrDefaultsToDevAddr(t *testing.T) {
	s := testServer(t)
	if s.addr != "127.0.0.1:8000" {
		t.Errorf("addr = %q", s.addr)
	}
}

func TestRelevantEvents(t *testing.T) {
	s := testServer(t)

	cases := []struct {
		name string
		op   fsnotify.Op
		want bool
	}{
		{filepath.Join(s.cfg.DocsDir, "index.md"), fsnotify.Write, true},
		{filepath.Join(s.cfg.DocsDir, "api", "ref.md"), fsnotify.Create, true},
		{s.configPath, fsnotify.Write, true},
		{filepath.Join(filepath.Dir(s.configPath), "unrelated.txt"), fsnotify.Write, false},
		{filepath.Join(s.cfg.DocsDir, "index.md"), fsnotify.Chmod, false},
	}
	for _, tc := range cases {
		got := s.relevant(fsnotify.Event{Name: tc.name, Op: tc.op})
		if got != tc.want {
			t.Errorf("relevant(%q, %v) = %v, want %v", tc.name, tc.op, got, tc.want)
		}
	}
}

func TestBuildStatus(t *testing.T) {
	var bs buildStatus
	if err, good := bs.get(); err != nil || good {
		t.Fatal("zero status should be clean with no good build")
	}
	bs.setError(errTest)
	if err, _ := bs.get(); err == nil {
		t.Error("setError not visible")
	}
	bs.setSuccess()
	if err, good := bs.get(); err != nil || !good {
		t.Error("setSuccess should clear the error and mark a good build")
	}
}
