package advice

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"resume-builder/internal/prompts"
)

//go:embed advice.schema.json
var schemaJSON []byte

var schema = mustCompileSchema()

func mustCompileSchema() *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	if err != nil {
		panic(fmt.Sprintf("advice: compile schema: %v", err))
	}
	return s
}

// Validate checks raw JSON against the advice schema.
func Validate(raw []byte) error {
	res, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidOutput, strings.Join(msgs, "; "))
}

// Parse extracts the advice object from a model answer, validates it and
// returns both the typed value and its canonical encoding.
func Parse(content string) (Advice, json.RawMessage, error) {
	obj := prompts.ExtractJSONObject(content)
	if obj == "" {
		return Advice{}, nil, fmt.Errorf("%w: no JSON object in response", ErrInvalidOutput)
	}
	if err := Validate([]byte(obj)); err != nil {
		return Advice{}, nil, err
	}
	var a Advice
	if err := json.Unmarshal([]byte(obj), &a); err != nil {
		return Advice{}, nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	canonical, err := json.Marshal(a)
	if err != nil {
		return Advice{}, nil, err
	}
	return a, canonical, nil
}

func decode(raw json.RawMessage) (Advice, error) {
	var a Advice
	if err := json.Unmarshal(raw, &a); err != nil {
		return Advice{}, fmt.Errorf("decode stored advice: %w", err)
	}
	return a, nil
}
