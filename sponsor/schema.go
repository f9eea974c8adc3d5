package sponsor

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const transactionSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "transactionKindBytes": {"type": "string", "minLength": 1, "contentEncoding": "base64"},
    "sender": {"type": "string", "pattern": "^0[xX][0-9a-fA-F]{1,64}$"}
  },
  "required": ["transactionKindBytes", "sender"]
}`

const executeSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "digest": {"type": "string", "minLength": 1, "maxLength": 128},
    "signature": {"type": "string", "minLength": 1}
  },
  "required": ["digest", "signature"]
}`

type schemas struct {
	transaction *jsonschema.Schema
	execute     *jsonschema.Schema
}

func compileSchemas() (*schemas, error) {
	tx, err := jsonschema.CompileString("transaction.schema.json", transactionSchema)
	if err != nil {
		return nil, fmt.Errorf("compile transaction schema: %w", err)
	}
	exec, err := jsonschema.CompileString("execute.schema.json", executeSchema)
	if err != nil {
		return nil, fmt.Errorf("compile execute schema: %w", err)
	}
	return &schemas{transaction: tx, execute: exec}, nil
}

// decode validates data against sch before unmarshalling it into dst.
func decode(sch *jsonschema.Schema, data []byte, dst any) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedRequest, err)
	}
	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedRequest, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedRequest, err)
	}
	return nil
}
