package ps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlumbingWriteAndReadDirect(t *testing.T) {
	persistence, err := NewMemoryPersistence()
	require.NoError(t, err)

	txn, err := persistence.WriteFileDirect("users/a.json", []byte(`{"id":"a"}`), testIdentity, "write a")
	require.NoError(t, err)
	assert.NotEmpty(t, txn.Id)
	assert.Equal(t, "write a", txn.Message)

	data, err := persistence.ReadFileDirect("users/a.json")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"a"}`, string(data))

	_, err = persistence.ReadFileDirect("users/missing.json")
	assert.Error(t, err)
}

func TestPlumbingOverwriteKeepsSiblings(t *testing.T) {
	persistence, err := NewMemoryPersistence()
	require.NoError(t, err)

	_, err = persistence.WriteFileDirect("users/a.json", []byte("1"), testIdentity, "a")
	require.NoError(t, err)
	_, err = persistence.WriteFileDirect("users/b.json", []byte("2"), testIdentity, "b")
	require.NoError(t, err)
	_, err = persistence.WriteFileDirect("users/a.json", []byte("3"), testIdentity, "a again")
	require.NoError(t, err)

	a, err := persistence.ReadFileDirect("users/a.json")
	require.NoError(t, err)
	assert.Equal(t, "3", string(a))

	b, err := persistence.ReadFileDirect("users/b.json")
	require.NoError(t, err)
	assert.Equal(t, "2", string(b))
}

func TestPlumbingListEntries(t *testing.T) {
	persistence, err := NewMemoryPersistence()
	require.NoError(t, err)

	entries, err := persistence.ListEntriesDirect("")
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = persistence.WriteFileDirect("users/a.json", []byte("1"), testIdentity, "a")
	require.NoError(t, err)
	_, err = persistence.WriteFileDirect("orders/b.json", []byte("2"), testIdentity, "b")
	require.NoError(t, err)

	entries, err = persistence.ListEntriesDirect("")
	require.NoError(t, err)
	assert.ElementsMatch(t, []TreeEntry{{Name: "orders", IsDir: true}, {Name: "users", IsDir: true}}, entries)

	entries, err = persistence.ListEntriesDirect("users")
	require.NoError(t, err)
	assert.Equal(t, []TreeEntry{{Name: "a.json"}}, entries)

	entries, err = persistence.ListEntriesDirect("missing")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPlumbingFileWorktreeSynced(t *testing.T) {
	dir := t.TempDir()
	persistence, err := NewFilePersistence(dir)
	require.NoError(t, err)

	_, err = persistence.WriteFileDirect("users/a.json", []byte("1"), testIdentity, "a")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "users", "a.json"))
	require.NoError(t, err)
	assert.Equal(t, "1", string(data))
}
