package repolink

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"golang.org/x/net/html"

	"github.com/eringen/repolink/head"
)

// rootSelector is the element page bodies are rendered into.
const rootSelector = "#root"

// shell is the HTML document every page is mounted into. It is parsed
// afresh for each mount so no two pages share a document.
type shell struct {
	src []byte
}

func loadShell(path string) (*shell, error) {
	var src []byte
	var err error
	if path == "" {
		src, err = EmbeddedAssets.ReadFile("embedded/index.html")
	} else {
		src, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("repolink: read shell: %w", err)
	}

	s := &shell{src: src}
	doc, err := s.document()
	if err != nil {
		return nil, err
	}
	if _, err := head.New(doc); err != nil {
		return nil, fmt.Errorf("repolink: shell: %w", err)
	}
	if doc.Find(rootSelector).Length() == 0 {
		return nil, fmt.Errorf("repolink: shell has no %s element", rootSelector)
	}
	return s, nil
}

func (s *shell) document() (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(s.src))
	if err != nil {
		return nil, fmt.Errorf("repolink: parse shell: %w", err)
	}
	return doc, nil
}

// mount parses a fresh copy of the shell, hands its head to onMount, renders
// body into the root element and returns the serialized document.
func (s *shell) mount(ctx context.Context, body templ.Component, onMount func(*head.Head)) ([]byte, error) {
	doc, err := s.document()
	if err != nil {
		return nil, err
	}
	h, err := head.New(doc)
	if err != nil {
		return nil, err
	}
	onMount(h)

	var buf bytes.Buffer
	if err := body.Render(ctx, &buf); err != nil {
		return nil, err
	}
	doc.Find(rootSelector).First().SetHtml(buf.String())

	var out bytes.Buffer
	if err := html.Render(&out, doc.Nodes[0]); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
