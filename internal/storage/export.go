package storage

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/san-kum/lifesim/internal/life"
)

type ExportData struct {
	RunMetadata
	Population []int    `json:"population"`
	Final      []string `json:"final,omitempty"`
}

// ExportJSON writes a run's metadata, population series and final
// generation (one plaintext string per row) as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, population []int, final *life.Field) error {
	data := ExportData{
		RunMetadata: *meta,
		Population:  population,
	}
	if final != nil {
		data.Final = strings.Split(strings.TrimSuffix(final.String(), "\n"), "\n")
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
