package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range Names() {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestLoad_MatchesFileOnDisk(t *testing.T) {
	for _, schemaFile := range Names() {
		t.Run(schemaFile, func(t *testing.T) {
			embedded, err := Load(schemaFile)
			require.NoError(t, err)

			onDisk, err := os.ReadFile(schemaFile)
			require.NoError(t, err)
			assert.Equal(t, string(onDisk), embedded)
		})
	}
}

func TestLoad_Unknown(t *testing.T) {
	_, err := Load("nope.schema.json")
	assert.Error(t, err)
}
