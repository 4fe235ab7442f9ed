package protocol

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/datazip-inc/olake-syncform/form"
	"github.com/datazip-inc/olake-syncform/types"
	"github.com/goccy/go-json"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchemaJSON = `{
  "streams": [
    {"name": "users", "namespace": "public", "selected": true, "supportedSyncModes": ["full_refresh", "incremental"], "syncMode": "incremental"},
    {"name": "orders", "namespace": "public", "selected": true}
  ]
}`

const testSchemaYAML = `
streams:
  - name: users
    namespace: public
    selected: true
    supportedSyncModes: [full_refresh, incremental]
    syncMode: full_refresh
  - name: orders
    namespace: public
    selected: true
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()

	var out bytes.Buffer
	cmd := CreateRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestOptionsCommand(t *testing.T) {
	out, err := execute(t, "options", "--no-save")
	require.NoError(t, err)

	var items []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.NotEmpty(t, items)
	assert.Equal(t, "manual", items[0]["value"])
	assert.Equal(t, "manual", items[0]["text"])
	assert.Equal(t, float64(0), items[0]["intervalSeconds"])
	assert.Equal(t, "Every 5 min", items[1]["text"])
	assert.Equal(t, float64(300), items[1]["intervalSeconds"])
}

func TestNormalizeCommand(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchemaJSON)

	out, err := execute(t, "normalize", "--no-save", "--schema", schemaPath, "--validate")
	require.NoError(t, err)

	var schema types.SyncSchema
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	require.Len(t, schema.Streams, 2)
	assert.Equal(t, types.INCREMENTAL, schema.Streams[0].SyncMode)
	assert.Equal(t, types.FULLREFRESH, schema.Streams[1].SyncMode)
	assert.Equal(t, []types.SyncMode{types.FULLREFRESH}, schema.Streams[1].SupportedSyncModes)
}

func TestNormalizeCommand_InvalidSchema(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", `{"streams":[{"name":"users","syncMode":"cdc"}]}`)

	_, err := execute(t, "normalize", "--no-save", "--schema", schemaPath, "--validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sync mode[cdc]")

	_, err = execute(t, "normalize", "--no-save")
	assert.Error(t, err)
}

func TestDiffCommand(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchemaJSON)
	editedPath := writeFile(t, dir, "edited.yaml", testSchemaYAML)

	out, err := execute(t, "diff", "--no-save", "--schema", schemaPath, "--edited-schema", editedPath)
	require.NoError(t, err)

	var result diffOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Changed)
	assert.NotEmpty(t, result.Diff)
	assert.NotEqual(t, result.InitialFingerprint, result.EditedFingerprint)

	out, err = execute(t, "diff", "--no-save", "--schema", schemaPath, "--edited-schema", schemaPath)
	require.NoError(t, err)
	result = diffOutput{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.False(t, result.Changed)
	assert.Equal(t, result.InitialFingerprint, result.EditedFingerprint)
}

func TestSubmitCommand_NewConnection(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchemaJSON)
	outputPath := filepath.Join(dir, "out", "connection.json")

	out, err := execute(t, "submit", "--schema", schemaPath, "--frequency", "60m", "--output", outputPath, "--config-folder", dir)
	require.NoError(t, err)

	var result submitOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "submitted", result.Outcome)
	require.NotNil(t, result.Submission)
	assert.Equal(t, "60m", result.Submission.Frequency)
	assert.NotNil(t, result.View.BottomBlock)

	var saved form.Submission
	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Equal(t, "60m", saved.Frequency)
	assert.Len(t, saved.Schema.Streams, 2)
}

func TestSubmitCommand_MissingFrequency(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchemaJSON)

	_, err := execute(t, "submit", "--no-save", "--schema", schemaPath)

	var validationErr *form.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestSubmitCommand_EditModeNeedsConfirmation(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchemaJSON)

	out, err := execute(t, "submit", "--no-save", "--schema", schemaPath, "--initial-frequency", "60m", "--edit",
		"--sync-mode", "public.users=full_refresh")
	require.NoError(t, err)

	var result submitOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "confirmation_required", result.Outcome)
	assert.Nil(t, result.Submission)
	assert.NotNil(t, result.View.SaveModal)

	out, err = execute(t, "submit", "--no-save", "--schema", schemaPath, "--initial-frequency", "60m", "--edit",
		"--sync-mode", "public.users=full_refresh", "--confirm")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "submitted", result.Outcome)
	require.NotNil(t, result.Submission)
	assert.Equal(t, types.FULLREFRESH, result.Submission.Schema.Streams[0].SyncMode)
}

func TestSubmitCommand_EditModeUnchanged(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchemaJSON)

	out, err := execute(t, "submit", "--no-save", "--schema", schemaPath, "--initial-frequency", "manual", "--edit")
	require.NoError(t, err)

	var result submitOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "submitted", result.Outcome)
	assert.Equal(t, "manual", result.Submission.Frequency)
	assert.NotNil(t, result.View.EditControls)
}

func TestSubmitCommand_BadArguments(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchemaJSON)

	_, err := execute(t, "submit", "--no-save", "--schema", schemaPath, "--frequency", "weekly")
	assert.ErrorContains(t, err, "unknown frequency[weekly]")

	_, err = execute(t, "submit", "--no-save", "--schema", schemaPath, "--frequency", "5m", "--confirm")
	assert.ErrorContains(t, err, "--confirm is only valid together with --edit")

	_, err = execute(t, "submit", "--no-save", "--schema", schemaPath, "--frequency", "5m", "--sync-mode", "public.users")
	assert.ErrorContains(t, err, "expected stream_id=mode")
}

func TestRootCommand_InvalidSubcommand(t *testing.T) {
	_, err := execute(t, "--no-save", "frobnicate")
	assert.Error(t, err)
}
