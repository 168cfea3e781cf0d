package views

import (
	"context"
	"html"
	"io"
	"strings"
	"sync"

	"github.com/a-h/templ"

	"github.com/eringen/repolink/head"
)

var _ templ.Component = (*Page)(nil)

// Page is the repository link page. A Page is built for one page URL; its
// structured data is computed once at construction and its head setup runs
// at most once, on the first Mount.
type Page struct {
	url    string
	repo   Repository
	jsonLD string

	mountOnce sync.Once
}

// NewPage builds the page for pageURL linking to repo.
func NewPage(pageURL string, repo Repository) *Page {
	return &Page{
		url:    pageURL,
		repo:   repo,
		jsonLD: SoftwareSourceCodeJsonLD(repo, pageURL),
	}
}

// URL returns the page URL the page was built for.
func (p *Page) URL() string { return p.url }

// Repository returns the linked repository.
func (p *Page) Repository() Repository { return p.repo }

// StructuredData returns the serialized JSON-LD object.
func (p *Page) StructuredData() string { return p.jsonLD }

// Mount sets the document title, meta description and canonical link on h.
// Only the first call on a Page has any effect.
func (p *Page) Mount(h *head.Head) {
	p.mountOnce.Do(func() {
		h.SetTitle(PageTitle(p.repo))
		h.SetMeta("description", PageDescription(p.repo))
		h.SetLink("canonical", p.url)
	})
}

// Render writes the page body. It has no side effects and may be called
// any number of times.
func (p *Page) Render(ctx context.Context, w io.Writer) error {
	var b strings.Builder
	b.WriteString(`<main class="page">`)
	b.WriteString(`<section class="panel">`)
	b.WriteString(`<header class="panel-header">`)
	b.WriteString(`<h1>`)
	b.WriteString(html.EscapeString(p.repo.Name))
	b.WriteString(` GitHub Repository</h1>`)
	b.WriteString(`<p class="lead">Access the source code and details via the official GitHub repo.</p>`)
	b.WriteString(`</header>`)
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	if err := linkCard(p.repo.Name, p.repo.URL).Render(ctx, w); err != nil {
		return err
	}

	b.Reset()
	b.WriteString(`</section></main>`)
	// json.Marshal escapes <, > and &, so the payload cannot close the script.
	b.WriteString(`<script type="application/ld+json">`)
	b.WriteString(p.jsonLD)
	b.WriteString(`</script>`)
	_, err := io.WriteString(w, b.String())
	return err
}
