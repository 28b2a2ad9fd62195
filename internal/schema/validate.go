// Package schema validates suite files against the embedded JSON schema.
package schema

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "github.com/AndreyAkinshin/suiterun/schema"
)

const suitesSchemaName = "suites.schema.json"

var (
	suitesSchema *jsonschema.Schema
	compileOnce  sync.Once
	compileErr   error
)

// compileSchemas compiles the embedded schema once.
func compileSchemas() error {
	compileOnce.Do(func() {
		data, err := schemafs.FS.ReadFile(suitesSchemaName)
		if err != nil {
			compileErr = fmt.Errorf("read suites schema: %w", err)
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal suites schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(suitesSchemaName, doc); err != nil {
			compileErr = fmt.Errorf("add suites schema resource: %w", err)
			return
		}

		suitesSchema, err = compiler.Compile(suitesSchemaName)
		if err != nil {
			compileErr = fmt.Errorf("compile suites schema: %w", err)
		}
	})

	return compileErr
}

// ValidateConfig validates JSON data against the suites schema.
func ValidateConfig(data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := suitesSchema.Validate(v); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}
