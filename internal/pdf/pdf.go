package pdf

import (
	"fmt"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

// WriteMarkdown renders markdown into a PDF file at pdfPath.
func WriteMarkdown(markdown []byte, pdfPath string) error {
	if !strings.HasSuffix(strings.ToLower(pdfPath), ".pdf") {
		return fmt.Errorf("output file must have .pdf extension: %s", pdfPath)
	}

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(markdown); err != nil {
		return fmt.Errorf("renderer.Process() > %w", err)
	}
	return nil
}
