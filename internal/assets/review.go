package assets

import (
	"fmt"
	"io"
	"time"
)

// ReviewTemplate is the data rendered by the review templates.
// Levels are 1-based for display.
type ReviewTemplate struct {
	Total       int
	GeneratedAt time.Time
	Levels      []ReviewLevel
	Songs       []ReviewSong
}

type ReviewLevel struct {
	Level int
	Count int
}

type ReviewSong struct {
	Name     string        `json:"name"`
	Artist   string        `json:"artist"`
	Level    int           `json:"level"`
	WaitDays int           `json:"waitDays"`
	Shows    []string      `json:"shows"`
	Media    []ReviewMedia `json:"media"`
}

type ReviewMedia struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

func WriteReviewHTML(output io.Writer, templatePath string, templateData ReviewTemplate) error {
	tmpl, err := ParseReviewHTMLTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("ParseReviewHTMLTemplate() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}

func WriteReviewMarkdown(output io.Writer, templateData ReviewTemplate) error {
	tmpl, err := ParseReviewMarkdownTemplate()
	if err != nil {
		return fmt.Errorf("ParseReviewMarkdownTemplate() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
