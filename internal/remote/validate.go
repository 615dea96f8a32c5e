package remote

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/harrison/podassess/internal/models"
)

// maxDocumentSize is the store's soft cap on serialized document size.
const maxDocumentSize = 100 * 1024

//go:embed schema.json
var documentSchemaJSON string

// compiledSchema compiles the embedded document schema once.
var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	raw, err := jsonschema.UnmarshalJSON(strings.NewReader(documentSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parse document schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("document.json", raw); err != nil {
		return nil, fmt.Errorf("register document schema: %w", err)
	}
	return compiler.Compile("document.json")
})

// ValidateDocument checks a document against the embedded JSON schema.
// This is the wire-shape check; semantic checks (dimension counts,
// question/config consistency) belong to the bank package.
func ValidateDocument(doc *models.Document) error {
	if doc == nil {
		return ErrInvalidDocument
	}

	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	// The schema library validates decoded JSON values, so round-trip
	// the document through encoding/json first.
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}

	if err := schema.Validate(value); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return nil
}

// marshalForWrite serializes a document for upload, enforcing schema
// validity and the store's size cap first.
func marshalForWrite(doc *models.Document) ([]byte, error) {
	if err := ValidateDocument(doc); err != nil {
		return nil, err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	if len(data) > maxDocumentSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrDocumentTooLarge, len(data), maxDocumentSize)
	}
	return data, nil
}
