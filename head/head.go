// Package head owns every mutation of a document's <head>.
//
// All writes go through Ensure, which looks an element up by a stable
// selector and only creates it when the document has none. Mounting the same
// page any number of times therefore never duplicates a tag.
package head

import (
	"errors"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoHead is returned when a document has no <head> element to mutate.
var ErrNoHead = errors.New("head: document has no <head> element")

// Selector identifies a head element by tag name and, optionally, one
// identifying attribute, e.g. meta[name="description"].
type Selector struct {
	Tag   string
	Attr  string
	Value string
}

// String returns the selector in CSS attribute-selector form.
func (s Selector) String() string {
	if s.Attr == "" {
		return s.Tag
	}
	return fmt.Sprintf("%s[%s=%q]", s.Tag, s.Attr, s.Value)
}

// matches reports whether sel is an HTML element carrying s's attribute.
// Foreign content such as an SVG <title> never matches.
func (s Selector) matches(sel *goquery.Selection) bool {
	if len(sel.Nodes) == 0 || sel.Nodes[0].Namespace != "" {
		return false
	}
	if s.Attr == "" {
		return true
	}
	v, ok := sel.Attr(s.Attr)
	return ok && v == s.Value
}

func (s Selector) node() *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     s.Tag,
		DataAtom: atom.Lookup([]byte(s.Tag)),
	}
	if s.Attr != "" {
		n.Attr = []html.Attribute{{Key: s.Attr, Val: s.Value}}
	}
	return n
}

// Head wraps a parsed document and mutates its <head>.
type Head struct {
	doc  *goquery.Document
	head *goquery.Selection
}

// New returns a Head for doc, or ErrNoHead if doc has no <head>.
func New(doc *goquery.Document) (*Head, error) {
	h := doc.Find("head").First()
	if h.Length() == 0 {
		return nil, ErrNoHead
	}
	return &Head{doc: doc, head: h}, nil
}

// Parse reads an HTML document from r and returns its Head.
func Parse(r io.Reader) (*Head, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("head: parse document: %w", err)
	}
	return New(doc)
}

// Document returns the underlying document.
func (h *Head) Document() *goquery.Document {
	return h.doc
}

func (h *Head) find(sel Selector) *goquery.Selection {
	return h.doc.Find(sel.Tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return sel.matches(s)
	})
}

// Ensure returns the first element in the document matching sel. When none
// exists it creates one carrying sel's identifying attribute and appends it
// to <head>.
func (h *Head) Ensure(sel Selector) *goquery.Selection {
	if found := h.find(sel); found.Length() > 0 {
		return found.First()
	}
	n := sel.node()
	h.head.Nodes[0].AppendChild(n)
	return h.head.FindNodes(n)
}

// Count reports how many elements in the document match sel.
func (h *Head) Count(sel Selector) int {
	return h.find(sel).Length()
}

// SetTitle sets the document title, creating <title> if needed.
func (h *Head) SetTitle(title string) {
	h.Ensure(Selector{Tag: "title"}).SetText(title)
}

// Title returns the text of the document's first <title>.
func (h *Head) Title() string {
	return h.find(Selector{Tag: "title"}).First().Text()
}

// SetMeta ensures <meta name="name"> exists and sets its content.
func (h *Head) SetMeta(name, content string) {
	h.Ensure(Selector{Tag: "meta", Attr: "name", Value: name}).SetAttr("content", content)
}

// SetLink ensures <link rel="rel"> exists and sets its href.
func (h *Head) SetLink(rel, href string) {
	h.Ensure(Selector{Tag: "link", Attr: "rel", Value: rel}).SetAttr("href", href)
}
