package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goaoxor/workbench/internal/domain/admin"
	"github.com/goaoxor/workbench/internal/domain/contract"
	"github.com/goaoxor/workbench/internal/domain/order"
)

// ErrMalformedSnapshot indicates the imported document fails the structural
// check: the admins, orders, contracts and logs collections must all be
// present and non-null.
var ErrMalformedSnapshot = errors.New("malformed snapshot: missing required collections")

var requiredCollections = []string{"admins", "orders", "contracts", "logs"}

// Serialize renders the whole document as pretty-printed JSON, the exchange
// format for manual export/import.
func Serialize(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing snapshot: %w", err)
	}
	return data, nil
}

// Deserialize parses a snapshot, enforcing the structural check and defaulting
// any decoded nil collection to empty. The caller replaces the store with the
// result wholesale; nothing is merged.
func Deserialize(data []byte) (Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	for _, key := range requiredCollections {
		field, ok := raw[key]
		if !ok || string(field) == "null" {
			return Document{}, ErrMalformedSnapshot
		}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if doc.Admins == nil {
		doc.Admins = []admin.Administrator{}
	}
	if doc.Orders == nil {
		doc.Orders = []order.Order{}
	}
	if doc.Contracts == nil {
		doc.Contracts = []contract.Contract{}
	}
	if doc.Logs == nil {
		doc.Logs = []LogEntry{}
	}
	if doc.Settings == nil {
		doc.Settings = map[string]any{}
	}
	return doc, nil
}

// ExportFilename derives the download name for a snapshot taken at t.
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("goaoxor_data_%s.json", t.Format("20060102_150405"))
}
