package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMarkdown(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		wantErr bool
	}{
		{
			name: "writes a pdf",
			file: "review.pdf",
		},
		{
			name:    "rejects other extensions",
			file:    "review.md",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pdfPath := filepath.Join(t.TempDir(), tt.file)
			err := WriteMarkdown([]byte("# Song Review\n\n- Lv.1 × 2\n"), pdfPath)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			content, err := os.ReadFile(pdfPath)
			require.NoError(t, err)
			assert.True(t, len(content) > 4)
			assert.Equal(t, "%PDF", string(content[:4]))
		})
	}
}
