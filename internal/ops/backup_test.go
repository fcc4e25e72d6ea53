package ops

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupRestoreRoundTrip(t *testing.T) {
	src := filepath.Join(t.TempDir(), "data")

	files := map[string]string{
		"state.json": `{"jobhunter_state_v1":"{\"tasks\":[]}"}`,
		"jobs.json":  `{"jobs":{"a1":{"title":"Backend Engineer","company":"Initech"}}}`,
	}
	for rel, content := range files {
		path := filepath.Join(src, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	archive := filepath.Join(t.TempDir(), "backup.tar.gz")
	require.NoError(t, BackupDataDir(src, archive))
	_, err := os.Stat(archive)
	require.NoError(t, err)

	target := filepath.Join(t.TempDir(), "restored")
	require.NoError(t, RestoreDataDir(archive, target))

	for rel, want := range files {
		got, err := os.ReadFile(filepath.Join(target, rel))
		require.NoError(t, err, rel)
		assert.Equal(t, want, string(got), rel)
	}
}

func TestBackupRequiresExistingDir(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "backup.tar.gz")
	err := BackupDataDir(filepath.Join(t.TempDir(), "missing"), archive)
	assert.Error(t, err)
}

func TestRestoreRejectsPathTraversal(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     "../escape.json",
		Typeflag: tar.TypeReg,
		Mode:     0o644,
		Size:     2,
	}))
	_, err := tw.Write([]byte("{}"))
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())

	dir := t.TempDir()
	archive := filepath.Join(dir, "evil.tar.gz")
	require.NoError(t, os.WriteFile(archive, buf.Bytes(), 0o644))

	err = RestoreDataDir(archive, filepath.Join(dir, "restored"))
	require.Error(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "escape.json"))
	assert.True(t, os.IsNotExist(statErr))
}
