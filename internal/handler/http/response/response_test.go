package response

import (
	"mime"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachment(t *testing.T) {
	w := httptest.NewRecorder()
	Attachment(w, "text/csv", "report.csv", []byte("a,b\n"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=report.csv", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "a,b\n", w.Body.String())
}

func TestAttachment_QuotesFilename(t *testing.T) {
	tests := []string{
		`calendar "draft".xlsx`,
		`calendar; filename=evil.exe`,
		`back\slash.xlsx`,
	}

	for _, filename := range tests {
		t.Run(filename, func(t *testing.T) {
			w := httptest.NewRecorder()
			Attachment(w, "application/octet-stream", filename, nil)

			disposition, params, err := mime.ParseMediaType(w.Header().Get("Content-Disposition"))
			require.NoError(t, err)
			assert.Equal(t, "attachment", disposition)
			assert.Equal(t, filename, params["filename"])
			assert.Len(t, params, 1)
		})
	}
}
