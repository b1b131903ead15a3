package assets

import (
	_ "embed"
	"fmt"
	htmltemplate "html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed templates/learning-song-review.html.tmpl
var fallbackReviewHTMLTemplate string

//go:embed templates/learning-song-review.md.tmpl
var fallbackReviewMarkdownTemplate string

const (
	reviewHTMLTemplateName     = "learning-song-review.html.tmpl"
	reviewMarkdownTemplateName = "learning-song-review.md.tmpl"
)

// ParseReviewHTMLTemplate parses the HTML review template at templatePath,
// falling back to the embedded one when the path is empty, missing, or invalid.
func ParseReviewHTMLTemplate(templatePath string) (*htmltemplate.Template, error) {
	funcMap := htmltemplate.FuncMap{
		"join": strings.Join,
	}

	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			tmpl, err := htmltemplate.New(filepath.Base(templatePath)).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := htmltemplate.New(reviewHTMLTemplateName).
		Funcs(funcMap).
		Parse(fallbackReviewHTMLTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}

func ParseReviewMarkdownTemplate() (*template.Template, error) {
	tmpl, err := template.New(reviewMarkdownTemplateName).
		Funcs(template.FuncMap{
			"join": strings.Join,
		}).
		Parse(fallbackReviewMarkdownTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}
