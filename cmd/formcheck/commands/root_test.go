package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schemaJSON = `{
	"type": "object",
	"properties": {
		"key": {"type": "string", "pattern": "^valid$"}
	}
}`

const schemaYAML = `
type: object
properties:
  kv:
    type: object
    properties:
      key:
        type: string
        pattern: "^valid$"
`

func writeSchema(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, cfg Config, data string) (string, error) {
	t.Helper()
	if cfg.LogLevel == "" {
		cfg.LogLevel = "error"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	var out, logs bytes.Buffer
	err := Run(context.Background(), cfg, strings.NewReader(data), &out, &logs)
	return out.String(), err
}

func TestRun_Valid(t *testing.T) {
	t.Parallel()

	out, err := run(t, Config{Schema: writeSchema(t, "s.json", schemaJSON)}, "key=valid\n")
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":{"key":"valid"}}`, out)
}

func TestRun_Trim(t *testing.T) {
	t.Parallel()

	schema := writeSchema(t, "s.json", schemaJSON)

	out, err := run(t, Config{Schema: schema, Trim: true}, "key=%20valid%20")
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":{"key":"valid"}}`, out)

	out, err = run(t, Config{Schema: schema}, "key=%20valid%20")
	assert.ErrorIs(t, err, errValidationFailed)
	assert.Contains(t, out, `"key"`)
}

func TestRun_Skipped(t *testing.T) {
	t.Parallel()

	out, err := run(t, Config{
		Schema: writeSchema(t, "s.yaml", schemaYAML),
		Skip:   []string{"pattern"},
	}, "kv.key=invalid")

	assert.ErrorIs(t, err, errValidationFailed)
	assert.JSONEq(t, `{"error":{"kv.key":null}}`, out)
}

func TestRun_Undefined(t *testing.T) {
	t.Parallel()

	out, err := run(t, Config{
		Schema:    writeSchema(t, "s.json", schemaJSON),
		Undefined: []string{"pattern"},
	}, "key=invalid")

	assert.ErrorIs(t, err, errValidationFailed)
	assert.JSONEq(t, `{"error":null}`, out)
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	_, err := run(t, Config{}, "key=valid")
	assert.ErrorContains(t, err, "schema is required")

	_, err = run(t, Config{Schema: filepath.Join(t.TempDir(), "missing.json")}, "key=valid")
	assert.ErrorContains(t, err, "read schema")

	_, err = run(t, Config{Schema: writeSchema(t, "s.json", schemaJSON)}, "key=%zz")
	assert.ErrorContains(t, err, "parse payload")

	_, err = run(t, Config{Schema: writeSchema(t, "s.json", schemaJSON), LogFormat: "xml"}, "key=valid")
	assert.ErrorContains(t, err, "invalid log format")
}
