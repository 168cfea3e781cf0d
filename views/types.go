package views

// Repository is the software project the page links to.
type Repository struct {
	Name     string // project name shown on the card and in metadata
	URL      string // absolute http(s) URL of the repository
	Language string // schema.org programmingLanguage
}

// Defaults for the linked repository.
const (
	DefaultRepoName     = "Calculator Fruit"
	DefaultRepoURL      = "https://github.com/fwehiu/Calculator_fruit"
	DefaultRepoLanguage = "JavaScript"
)

// DefaultRepository returns the repository the page links to when nothing
// else is configured.
func DefaultRepository() Repository {
	return Repository{
		Name:     DefaultRepoName,
		URL:      DefaultRepoURL,
		Language: DefaultRepoLanguage,
	}
}

// SoftwareSourceCode is the schema.org JSON-LD object embedded in the page.
// Field order is the serialized key order.
type SoftwareSourceCode struct {
	Context             string `json:"@context"`
	Type                string `json:"@type"`
	Name                string `json:"name"`
	CodeRepository      string `json:"codeRepository"`
	ProgrammingLanguage string `json:"programmingLanguage"`
	URL                 string `json:"url"`
}
