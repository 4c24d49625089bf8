package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	in := payload{Name: "hello", Value: 42.5}
	require.NoError(t, Write(path, in))

	var out payload
	require.NoError(t, Read(path, &out))
	assert.Equal(t, in, out)
}

// 覆寫走 temp+rename，目錄裡不會留下暫存檔
func TestWriteOverwritesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")

	require.NoError(t, Write(path, payload{Name: "v1"}))
	require.NoError(t, Write(path, payload{Name: "v2"}))

	var out payload
	require.NoError(t, Read(path, &out))
	assert.Equal(t, "v2", out.Name)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "state.json", entries[0].Name())
}

// 解碼失敗與讀檔失敗要能用 errors.Is 區分
func TestReadErrorKinds(t *testing.T) {
	dir := t.TempDir()

	var out payload
	err := Read(filepath.Join(dir, "missing.json"), &out)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrDecode)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("}{"), 0644))
	err = Read(bad, &out)
	require.ErrorIs(t, err, ErrDecode)
}
