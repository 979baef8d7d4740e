package commandlist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"sort_attack_list/internal/app"
)

// CommandsKey is the document member holding the attack records
const CommandsKey = "commands"

var (
	ErrMissingCommands  = errors.New("document has no commands member")
	ErrCommandsNotArray = errors.New("commands member is not an array")
)

// Document is an attack list export. Members other than commands are kept
// exactly as read.
type Document struct {
	root app.Object
}

// Read decodes a document from r. The top level must be a JSON object.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read attack list: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc.root); err != nil {
		return nil, fmt.Errorf("failed to decode attack list: %w", err)
	}
	return &doc, nil
}

// Commands decodes the commands array
func (d *Document) Commands() ([]app.AttackRecord, error) {
	raw, ok := d.root.Get(CommandsKey)
	if !ok {
		return nil, ErrMissingCommands
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: got %s", ErrCommandsNotArray, trimmed)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("failed to decode commands: %w", err)
	}

	records := make([]app.AttackRecord, len(items))
	for i, item := range items {
		if err := json.Unmarshal(item, &records[i]); err != nil {
			return nil, fmt.Errorf("command %d: %w", i, err)
		}
	}
	return records, nil
}

// SetCommands replaces the commands array, keeping its place in the document
func (d *Document) SetCommands(records []app.AttackRecord) error {
	if records == nil {
		records = []app.AttackRecord{}
	}

	raw, err := marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode commands: %w", err)
	}
	d.root = d.root.With(CommandsKey, raw)
	return nil
}

// Encode writes the document to w as UTF-8 JSON without escaping
// non-ASCII or HTML characters, including those that were escaped in the
// input
func (d *Document) Encode(w io.Writer) error {
	raw, err := marshal(d.root)
	if err != nil {
		return fmt.Errorf("failed to encode attack list: %w", err)
	}
	raw, err = reencode(raw)
	if err != nil {
		return err
	}
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("failed to write attack list: %w", err)
	}
	return nil
}

func marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
