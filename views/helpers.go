package views

import (
	"encoding/json"
	"html"
	"strings"
)

// SoftwareSourceCodeJsonLD produces a Schema.org SoftwareSourceCode JSON-LD
// block for repo as seen from pageURL.
func SoftwareSourceCodeJsonLD(repo Repository, pageURL string) string {
	data := SoftwareSourceCode{
		Context:             "https://schema.org",
		Type:                "SoftwareSourceCode",
		Name:                repo.Name,
		CodeRepository:      repo.URL,
		ProgrammingLanguage: repo.Language,
		URL:                 pageURL,
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// PageTitle is the document title for repo's link page.
func PageTitle(repo Repository) string {
	return repo.Name + " – GitHub Link"
}

// PageDescription is the meta description for repo's link page.
func PageDescription(repo Repository) string {
	return "Quick link to the " + repo.Name + " GitHub repository."
}

// attr writes key="value" with value HTML-escaped.
func attr(b *strings.Builder, key, value string) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteByte('"')
}
