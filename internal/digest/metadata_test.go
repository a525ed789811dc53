package digest

import (
	"os"
	"testing"
	"time"

	"github.com/djherbis/times"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileMetadata_ModifiedMatchesStat(t *testing.T) {
	path := writeTestFile(t, []byte("stamp me"))
	fi, err := os.Stat(path)
	require.NoError(t, err)

	md := fileMetadata(fi)

	assert.Equal(t, fi.ModTime().Unix(), md.Modified)
}

func TestFileMetadata_CreatedFallsBackToModified(t *testing.T) {
	path := writeTestFile(t, []byte("birth check"))
	fi, err := os.Stat(path)
	require.NoError(t, err)

	md := fileMetadata(fi)

	if times.Get(fi).HasBirthTime() {
		assert.Positive(t, md.Created)
	} else {
		assert.Equal(t, md.Modified, md.Created)
	}
}

func TestCompute_TimestampsPresent(t *testing.T) {
	path := writeTestFile(t, []byte("fresh file"))

	res, err := Compute(path)
	require.NoError(t, err)

	now := time.Now().Unix()
	assert.Positive(t, res.Modified)
	assert.Positive(t, res.Created)
	assert.LessOrEqual(t, res.Modified, now+1)
	assert.LessOrEqual(t, res.Created, res.Modified)
}

func TestCompute_ModifiedTracksFilesystem(t *testing.T) {
	path := writeTestFile(t, []byte("retouch"))
	stamp := time.Unix(1700000000, 0)
	require.NoError(t, os.Chtimes(path, stamp, stamp))

	res, err := Compute(path)
	require.NoError(t, err)

	assert.Equal(t, stamp.Unix(), res.Modified)
}
