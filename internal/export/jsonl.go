package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/abhisek/taskgym/internal/dataset"
)

// record is the JSONL line shape, one sample per line.
type record struct {
	Index    int            `json:"index"`
	Question string         `json:"question"`
	Answer   string         `json:"answer"`
	Metadata map[string]any `json:"metadata"`
}

// JSONLWriter streams samples as JSON lines.
type JSONLWriter struct {
	enc *json.Encoder
}

// NewJSONLWriter wraps w.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{enc: json.NewEncoder(w)}
}

// Write emits one sample as a line.
func (w *JSONLWriter) Write(idx int, smp dataset.Sample) error {
	rec := record{
		Index:    idx,
		Question: smp.Question,
		Answer:   smp.Answer,
		Metadata: smp.Metadata,
	}
	if err := w.enc.Encode(rec); err != nil {
		return fmt.Errorf("write sample %d: %w", idx, err)
	}
	return nil
}

// WriteAll iterates d from the start and emits every sample.
func (w *JSONLWriter) WriteAll(d dataset.Dataset) error {
	c := dataset.NewCursor(d)
	for i := 0; ; i++ {
		smp, err := c.Next()
		if err == dataset.ErrEndOfSequence {
			return nil
		}
		if err != nil {
			return err
		}
		if err := w.Write(i, smp); err != nil {
			return err
		}
	}
}
