// Package report writes a review report to a file in the format chosen by its extension.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jankenoboe/jankenoboe/internal/assets"
	"github.com/jankenoboe/jankenoboe/internal/pdf"
	"github.com/jankenoboe/jankenoboe/internal/review"
)

type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "md"
	FormatPDF      Format = "pdf"
	FormatXLSX     Format = "xlsx"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// FormatFor returns the format for the extension of path. Unknown or missing extensions are HTML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FormatMarkdown
	case ".pdf":
		return FormatPDF
	case ".xlsx":
		return FormatXLSX
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatHTML
	}
}

type Options struct {
	// HTMLTemplatePath overrides the embedded HTML template when set.
	HTMLTemplatePath string
}

// Write writes r to path, creating parent directories, and returns the absolute path written.
func Write(path string, r *review.Report, opts Options) (string, error) {
	if path == "" {
		return "", fmt.Errorf("output path is required")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("filepath.Abs(%s) > %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(absPath), err)
	}

	switch FormatFor(absPath) {
	case FormatPDF:
		var buf bytes.Buffer
		if err := assets.WriteReviewMarkdown(&buf, templateData(r)); err != nil {
			return "", err
		}
		if err := pdf.WriteMarkdown(buf.Bytes(), absPath); err != nil {
			return "", err
		}
	case FormatXLSX:
		if err := writeXLSX(absPath, r); err != nil {
			return "", err
		}
	default:
		content, err := render(absPath, r, opts)
		if err != nil {
			return "", err
		}
		if err := os.WriteFile(absPath, content, 0644); err != nil {
			return "", fmt.Errorf("os.WriteFile(%s) > %w", absPath, err)
		}
	}
	return absPath, nil
}

func render(path string, r *review.Report, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	switch FormatFor(path) {
	case FormatMarkdown:
		if err := assets.WriteReviewMarkdown(&buf, templateData(r)); err != nil {
			return nil, err
		}
	case FormatJSON:
		content, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("json.MarshalIndent() > %w", err)
		}
		buf.Write(content)
		buf.WriteByte('\n')
	case FormatYAML:
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(r); err != nil {
			return nil, fmt.Errorf("encoder.Encode() > %w", err)
		}
		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("encoder.Close() > %w", err)
		}
	default:
		if err := assets.WriteReviewHTML(&buf, opts.HTMLTemplatePath, templateData(r)); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// templateData converts levels to their 1-based display form and labels media links.
func templateData(r *review.Report) assets.ReviewTemplate {
	data := assets.ReviewTemplate{
		Total:       r.Count,
		GeneratedAt: r.GeneratedAt,
		Levels:      make([]assets.ReviewLevel, 0, len(r.LevelHistogram)),
		Songs:       make([]assets.ReviewSong, 0, len(r.Entries)),
	}
	for _, lc := range r.LevelHistogram {
		data.Levels = append(data.Levels, assets.ReviewLevel{Level: displayLevel(lc.Level), Count: lc.Count})
	}
	for _, entry := range r.Entries {
		media := make([]assets.ReviewMedia, 0, len(entry.MediaURLs))
		for i, url := range entry.MediaURLs {
			media = append(media, assets.ReviewMedia{URL: url, Label: mediaLabel(i, url)})
		}
		shows := entry.ShowNames
		if shows == nil {
			shows = []string{}
		}
		data.Songs = append(data.Songs, assets.ReviewSong{
			Name:     entry.SongName,
			Artist:   entry.ArtistName,
			Level:    displayLevel(entry.Level),
			WaitDays: entry.WaitDays,
			Shows:    shows,
			Media:    media,
		})
	}
	return data
}

func displayLevel(level int) int {
	return level + 1
}

// mediaLabel names the i-th media link, such as "Media 2 (.mp3)".
func mediaLabel(i int, url string) string {
	if ext := urlExtension(url); ext != "" {
		return fmt.Sprintf("Media %d (%s)", i+1, ext)
	}
	return fmt.Sprintf("Media %d", i+1)
}

// urlExtension returns the lower-cased extension of the last path segment,
// ignoring any query string or fragment.
func urlExtension(url string) string {
	path, _, _ := strings.Cut(url, "?")
	path, _, _ = strings.Cut(path, "#")
	segment := path[strings.LastIndex(path, "/")+1:]
	dot := strings.LastIndex(segment, ".")
	if dot < 0 {
		return ""
	}
	return strings.ToLower(segment[dot:])
}
