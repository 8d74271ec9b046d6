package pipeline

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	ProfitFile  = "profit-analysis.json"
	CatalogFile = "product-catalog.json"
	QueueFile   = "quote-queue.json"
	StaffFile   = "staff.json"
	DealersFile = "dealers.json"
)

// WriteJSON writes records as a pretty-printed JSON array to dir/filename,
// creating dir if needed. A nil slice is written as [].
func WriteJSON[T any](dir, filename string, records []T) (string, error) {
	if records == nil {
		records = []T{}
	}

	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	outputPath := filepath.Join(dir, filename)
	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return "", err
	}
	return outputPath, nil
}
