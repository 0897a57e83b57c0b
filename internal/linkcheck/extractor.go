// Package linkcheck validates internal references in the generated site:
// links in the rendered HTML that point at markdown documents must resolve
// to documents present in the navigation.
package linkcheck

import (
	"io"
	"os"
	"path/filepath"

	"golang.org/x/net/html"

	derrors "git.home.luguber.info/inful/docsite/internal/errors"
)

// Link represents an extracted link from HTML content.
type Link struct {
	URL       string // The URL or path
	Tag       string // HTML tag (a, img, script, link)
	Attribute string // Attribute containing the link (href, src)
}

// linkAttributes maps tags to the attribute that carries their target.
var linkAttributes = map[string]string{
	"a":      "href",
	"img":    "src",
	"script": "src",
	"link":   "href",
}

// ExtractLinks extracts all links from an HTML file.
func ExtractLinks(htmlPath string) ([]Link, error) {
	file, err := os.Open(filepath.Clean(htmlPath))
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryFileSystem, "failed to open HTML file").
			WithContext("html_path", htmlPath)
	}
	defer func() {
		_ = file.Close() // read-only
	}()
	return ExtractLinksFromReader(file)
}

// ExtractLinksFromReader extracts all links from an HTML reader.
func ExtractLinksFromReader(r io.Reader) ([]Link, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryValidation, "failed to parse HTML")
	}

	var links []Link
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if attr, ok := linkAttributes[n.Data]; ok {
				for _, a := range n.Attr {
					if a.Key == attr && a.Val != "" {
						links = append(links, Link{URL: a.Val, Tag: n.Data, Attribute: attr})
					}
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return links, nil
}
