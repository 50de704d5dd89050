package validate

import (
	"fmt"

	"github.com/kaptinlin/jsonschema"
	"github.com/spf13/afero"

	schemaparam "github.com/davidahmann/paramdump/core/schema/v1/param"
)

// ValidateParam checks data against the embedded param.json schema.
func ValidateParam(data []byte) error {
	return ValidateJSON(schemaparam.Schema, data)
}

func ValidateJSON(schemaData, data []byte) error {
	schema, err := Compile(schemaData)
	if err != nil {
		return err
	}
	return validateJSON(schema, data)
}

func ValidateJSONFile(fs afero.Fs, schemaData []byte, jsonPath string) error {
	schema, err := Compile(schemaData)
	if err != nil {
		return err
	}
	data, err := afero.ReadFile(fs, jsonPath)
	if err != nil {
		return fmt.Errorf("read json: %w", err)
	}
	return validateJSON(schema, data)
}

func Compile(schemaData []byte) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	schema, err := compiler.Compile(schemaData)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

func validateJSON(schema *jsonschema.Schema, data []byte) error {
	result := schema.ValidateJSON(data)
	if result.IsValid() {
		return nil
	}
	return fmt.Errorf("schema validation failed: %v", result.Errors)
}
