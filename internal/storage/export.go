package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/heatsim/internal/sim"
)

type ExportData struct {
	RunMetadata
	Samples []sim.Sample `json:"samples"`
}

// ExportJSON writes the run metadata together with its sampled series.
func ExportJSON(w io.Writer, meta *RunMetadata, samples []sim.Sample) error {
	data := ExportData{RunMetadata: *meta, Samples: samples}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
