package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Swatto86/checksum-check/internal/batch"
	"github.com/Swatto86/checksum-check/internal/digest"
)

// Digests of "Hello, World!", reused across the format tests.
var fixtureResult = &digest.Result{
	MD5:      "65a8e27d8879283831b664bd8b7f0ad4",
	SHA1:     "0a0a9f2a6772942557ab5355d76af442f8f65e01",
	SHA256:   "dffd6021bb2bd5b0af676290809ec3a53191dd81c7f70a4b28688a362182986f",
	SHA512: "374d794a95cdcfd8b35993185fef9ba368f160d8daf432d08ba9f1ed1e5abe6c" +
		"c69291e0fa2fe0006a52570ef18c19def4e617c33ce52ef0a6e5fbe318cb0387",
	FileSize: 13,
	Modified: 1700000000,
	Created:  1700000000,
}

func successOutcome(path string) batch.Outcome {
	return batch.Outcome{Path: path, Result: fixtureResult}
}

func failureOutcome(path string) batch.Outcome {
	return batch.Outcome{Path: path, Err: &digest.Error{
		Kind: digest.KindNotFound,
		Path: path,
		Err:  errors.New("no such file or directory"),
	}}
}

func TestParseFormat_Valid(t *testing.T) {
	for name, want := range map[string]Format{
		"text":   FormatText,
		"json":   FormatJSON,
		"yaml":   FormatYAML,
		"JSON":   FormatJSON,
		" yaml ": FormatYAML,
	} {
		got, err := ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestParseFormat_Unknown(t *testing.T) {
	for _, name := range []string{"", "xml", "template", "Text!"} {
		_, err := ParseFormat(name)
		require.Error(t, err, name)
		assert.Contains(t, err.Error(), "unknown format")
	}
}

func TestRender_DispatchesAllFormats(t *testing.T) {
	outcomes := []batch.Outcome{successOutcome("a.txt")}

	for _, r := range []Renderer{
		{Format: FormatText},
		{Format: FormatJSON},
		{Format: FormatYAML},
		{Format: FormatTemplate, Template: "{md5}"},
	} {
		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, outcomes), r.Format)
		assert.Contains(t, buf.String(), fixtureResult.MD5, r.Format)
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	r := Renderer{Format: "csv"}

	err := r.Render(&bytes.Buffer{}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
