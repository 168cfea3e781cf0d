package repolink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Export renders the site for its configured URL into dir: index.html,
// public/styles.css, robots.txt and sitemap.xml. It returns the paths written.
// Init must have been called.
func (a *App) Export(ctx context.Context, dir string) ([]string, error) {
	page, err := a.RenderPage(ctx, a.Config.PageURL())
	if err != nil {
		return nil, err
	}
	styles, err := EmbeddedAssets.ReadFile("embedded/styles.css")
	if err != nil {
		return nil, fmt.Errorf("repolink: read styles: %w", err)
	}
	sitemap, err := sitemapXML(a.Config)
	if err != nil {
		return nil, fmt.Errorf("repolink: sitemap: %w", err)
	}

	files := []struct {
		name string
		body []byte
	}{
		{"index.html", page},
		{filepath.Join("public", "styles.css"), styles},
		{"robots.txt", []byte(robotsTxt(a.Config))},
		{"sitemap.xml", sitemap},
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		out := filepath.Join(dir, f.name)
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return written, err
		}
		if err := os.WriteFile(out, f.body, 0o644); err != nil {
			return written, fmt.Errorf("repolink: write %s: %w", out, err)
		}
		written = append(written, out)
	}
	return written, nil
}
