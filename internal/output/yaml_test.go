package output

import (
	"bytes"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Swatto86/checksum-check/internal/batch"
)

func TestRenderYAML_SingleFileIsMapping(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, renderYAML(&buf, []batch.Outcome{successOutcome("a.txt")}))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "a.txt", doc["path"])
	assert.Equal(t, fixtureResult.SHA256, doc["sha256"])
	assert.EqualValues(t, 13, doc["file_size"])
}

func TestRenderYAML_MultipleFilesIsSequence(t *testing.T) {
	var buf bytes.Buffer

	outcomes := []batch.Outcome{successOutcome("a.txt"), successOutcome("b.txt")}
	require.NoError(t, renderYAML(&buf, outcomes))

	var docs []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &docs))
	require.Len(t, docs, 2)
	assert.Equal(t, "a.txt", docs[0]["path"])
	assert.Equal(t, "b.txt", docs[1]["path"])
}

func TestRenderYAML_FailureEntryShape(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, renderYAML(&buf, []batch.Outcome{failureOutcome("gone.txt")}))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "gone.txt", doc["path"])
	assert.NotContains(t, doc, "md5")

	errObj, ok := doc["error"].(map[string]any)
	require.True(t, ok, "error value is a mapping")
	assert.Equal(t, "not_found", errObj["kind"])
	assert.Equal(t, "no such file or directory", errObj["message"])
}
