package parser

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema/*.json
var schemaFS embed.FS

const (
	resultSchemaName  = "allure-result.schema.json"
	summarySchemaName = "summary.schema.json"

	// schemaBase keeps schema locations independent of the working directory.
	schemaBase = "mem:///"
)

var (
	resultSchema  *jsonschema.Schema
	summarySchema *jsonschema.Schema
	compileOnce   sync.Once
	compileErr    error
)

// compileSchemas compiles the embedded schemas once.
func compileSchemas() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		for _, name := range []string{resultSchemaName, summarySchemaName} {
			data, err := schemaFS.ReadFile("schema/" + name)
			if err != nil {
				compileErr = fmt.Errorf("read %s: %w", name, err)
				return
			}
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
			if err != nil {
				compileErr = fmt.Errorf("unmarshal %s: %w", name, err)
				return
			}
			if err := compiler.AddResource(schemaBase+name, doc); err != nil {
				compileErr = fmt.Errorf("add %s: %w", name, err)
				return
			}
		}

		var err error
		resultSchema, err = compiler.Compile(schemaBase + resultSchemaName)
		if err != nil {
			compileErr = fmt.Errorf("compile %s: %w", resultSchemaName, err)
			return
		}
		summarySchema, err = compiler.Compile(schemaBase + summarySchemaName)
		if err != nil {
			compileErr = fmt.Errorf("compile %s: %w", summarySchemaName, err)
		}
	})

	return compileErr
}

// validate decodes data and checks it against schema.
func validate(schema func() *jsonschema.Schema, data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := schema().Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return fmt.Errorf("schema validation failed: %s", strings.Join(leafErrors(ve, nil), "; "))
		}
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// leafErrors collects the innermost causes, e.g. "at '/status': got number, want string".
func leafErrors(ve *jsonschema.ValidationError, out []string) []string {
	if len(ve.Causes) == 0 {
		return append(out, ve.Error())
	}
	for _, cause := range ve.Causes {
		out = leafErrors(cause, out)
	}
	return out
}
