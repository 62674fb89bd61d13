// Package snapshotschema validates daily snapshot payloads at the
// deserialization boundary and resolves the two accepted JSON shapes
// (an {date, items} envelope or a bare article list) into one structure.
package snapshotschema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"tenguard.watch/trends/internal/article"
)

//go:embed snapshot.schema.json
var snapshotSchemaJSON string

// ErrUnexpectedShape marks a payload that is valid JSON but neither an
// items envelope nor a bare list. Callers treat it as zero items, not as a
// parse failure.
var ErrUnexpectedShape = errors.New("unexpected snapshot shape")

// Snapshot is the resolved payload regardless of input shape.
type Snapshot struct {
	Date  string            `json:"date,omitempty"`
	Items []article.Article `json:"items"`
}

var (
	compileOnce       sync.Once
	compiledSchema    *jsonschema.Schema
	compiledSchemaErr error
)

// ParseSnapshotPayload decodes and validates one snapshot file's contents.
// Malformed JSON returns a plain error; well-formed JSON of the wrong shape
// returns an error wrapping ErrUnexpectedShape.
func ParseSnapshotPayload(payload json.RawMessage) (*Snapshot, error) {
	value, err := decodeStrictJSON(payload)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot JSON: %w", err)
	}

	schema, err := loadSchema()
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}

	if err := schema.Validate(value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}

	normalized, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("normalize snapshot JSON: %w", err)
	}

	switch value.(type) {
	case []any:
		var items []article.Article
		if err := json.Unmarshal(normalized, &items); err != nil {
			return nil, fmt.Errorf("unmarshal bare item list: %w", err)
		}
		return &Snapshot{Items: items}, nil
	case map[string]any:
		var snap Snapshot
		if err := json.Unmarshal(normalized, &snap); err != nil {
			return nil, fmt.Errorf("unmarshal snapshot envelope: %w", err)
		}
		return &snap, nil
	default:
		return nil, fmt.Errorf("%w: top-level %T", ErrUnexpectedShape, value)
	}
}

func loadSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020

		if err := compiler.AddResource("snapshot.schema.json", strings.NewReader(snapshotSchemaJSON)); err != nil {
			compiledSchemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}

		schema, err := compiler.Compile("snapshot.schema.json")
		if err != nil {
			compiledSchemaErr = fmt.Errorf("compile schema: %w", err)
			return
		}

		compiledSchema = schema
	})

	if compiledSchemaErr != nil {
		return nil, compiledSchemaErr
	}
	if compiledSchema == nil {
		return nil, fmt.Errorf("schema not initialized")
	}
	return compiledSchema, nil
}

func decodeStrictJSON(raw []byte) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("payload is empty")
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("payload contains trailing content")
	}

	return value, nil
}
