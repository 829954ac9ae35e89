package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"},
		"tags": {"type": "array", "items": {"type": "string"}}
	}
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateFile_Valid(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", testSchema)
	jsonPath := writeTemp(t, "doc.json", `{"name": "test", "tags": ["a"]}`)

	assert.NoError(t, ValidateFile(schemaPath, jsonPath))
}

func TestValidateFile_MissingRequiredField(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", testSchema)
	jsonPath := writeTemp(t, "doc.json", `{"tags": []}`)

	err := ValidateFile(schemaPath, jsonPath)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateFile_WrongType(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", testSchema)
	jsonPath := writeTemp(t, "doc.json", `{"name": 42}`)

	err := ValidateFile(schemaPath, jsonPath)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateFile_NonExistentSchema(t *testing.T) {
	jsonPath := writeTemp(t, "doc.json", `{"name": "test"}`)

	err := ValidateFile(filepath.Join(t.TempDir(), "missing.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateFile_NonExistentJSON(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", testSchema)

	err := ValidateFile(schemaPath, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateBytes_Valid(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", testSchema)

	assert.NoError(t, ValidateBytes(schemaPath, []byte(`{"name": "test"}`)))
}

func TestValidateBytes_MalformedJSON(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", testSchema)

	err := ValidateBytes(schemaPath, []byte("{ invalid json }"))
	assert.Error(t, err)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "tags", Message: "must be an array"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "name")
	assert.Contains(t, msg, "tags")
}

func TestResolveSchemaPath_FindsRepoSchema(t *testing.T) {
	// Tests run from the package directory, two levels below the repo root.
	path := ResolveSchemaPath(CatalogSchema)
	require.NotEmpty(t, path)
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestResolveSchemaPath_MissingFile(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/does_not_exist.json"))
}
