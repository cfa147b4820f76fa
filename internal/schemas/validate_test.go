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
	"required": ["skill_name", "level"],
	"properties": {
		"skill_name": {"type": "string", "minLength": 1},
		"level": {"type": "string", "enum": ["beginner", "intermediate", "advanced", "expert"]}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	doc := `{"skill_name": "Go", "level": "advanced"}`
	assert.NoError(t, ValidateJSONString(testSchema, doc))
}

func TestValidateJSONString_Invalid(t *testing.T) {
	doc := `{"skill_name": "Go", "level": "wizard"}`

	err := ValidateJSONString(testSchema, doc)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	doc := `{"skill_name": "Go"}`

	err := ValidateJSONString(testSchema, doc)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 42}`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSON_Files(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "test.schema.json")
	docPath := filepath.Join(dir, "doc.json")

	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0644))
	require.NoError(t, os.WriteFile(docPath, []byte(`{"skill_name": "Go", "level": "expert"}`), 0644))

	assert.NoError(t, ValidateJSON(schemaPath, docPath))
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "test.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0644))

	err := ValidateJSON(schemaPath, filepath.Join(dir, "nope.json"))
	assert.Error(t, err)

	err = ValidateJSON(filepath.Join(dir, "nope.schema.json"), schemaPath)
	assert.Error(t, err)
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/does_not_exist.schema.json"))
}

func TestResolveSchemaPath_FindsRelative(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "schemas"), 0755))
	path := filepath.Join(dir, "schemas", "found.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	resolved := ResolveSchemaPath("schemas/found.schema.json")
	assert.NotEmpty(t, resolved)
}
