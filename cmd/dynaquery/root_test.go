package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dqerrors "github.com/pay-theory/dynaquery/pkg/errors"
)

func writeDefinition(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "query.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBuildCommand(t *testing.T) {
	path := writeDefinition(t, `
table: users
index: email-index
where:
  - field: email
    value: a@b.c
filter:
  - field: status.ne
    value: banned
limit: 5
`)

	out, err := run(t, "build", "-f", path, "--sdk")
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &fields))
	assert.Equal(t, "users", fields["TableName"])
	assert.Equal(t, "email-index", fields["IndexName"])
	assert.Equal(t, "#email = :val1", fields["KeyConditionExpression"])
	assert.Equal(t, "#status <> :val2", fields["FilterExpression"])
	assert.Equal(t, float64(5), fields["Limit"])
	assert.Equal(t, true, fields["ScanIndexForward"])
}

func TestBuildCommand_InvalidOperator(t *testing.T) {
	path := writeDefinition(t, "table: users\nwhere:\n  - field: email.like\n    value: x\n")

	_, err := run(t, "build", "-f", path)
	require.Error(t, err)

	var exitErr *exitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, exitDefinition, exitErr.code)
	assert.ErrorIs(t, err, dqerrors.ErrInvalidOperator)
}

func TestValidateCommand(t *testing.T) {
	ok := writeDefinition(t, "table: users\nwhere:\n  - field: pk\n    value: u1\n")
	out, err := run(t, "validate", "-f", ok, "-v")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	noTable := writeDefinition(t, "where:\n  - field: pk\n    value: u1\n")
	_, err = run(t, "validate", "-f", noTable)
	assert.ErrorIs(t, err, dqerrors.ErrMissingTableName)

	_, err = run(t, "validate", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCommandsRequireFile(t *testing.T) {
	_, err := run(t, "build")
	assert.Error(t, err)
}
