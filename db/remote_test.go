package db

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectScheme(t *testing.T) {
	assert.Equal(t, schemeS3, detectScheme("S3://bucket/key"))
	assert.Equal(t, schemeHTTPS, detectScheme("https://example.com/a.sql"))
	assert.Equal(t, schemeHTTP, detectScheme("http://example.com/a.sql"))
	assert.Equal(t, schemeFile, detectScheme("file:///tmp/a.csv"))
	assert.Equal(t, schemeLocal, detectScheme("exports/a.csv"))
}

func TestParseS3URL(t *testing.T) {
	bucket, key, err := parseS3URL("s3://exports/2024/users.csv")
	require.NoError(t, err)
	assert.Equal(t, "exports", bucket)
	assert.Equal(t, "2024/users.csv", key)

	for _, bad := range []string{"s3://", "s3://bucket", "s3://bucket/", "s3:///key"} {
		_, _, err := parseS3URL(bad)
		assert.Error(t, err, bad)
	}
}

func TestOpenRemoteReaderHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/seed.sql" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, "SELECT 1;")
	}))
	defer server.Close()

	r, err := openRemoteReader(context.Background(), server.URL+"/seed.sql", nil)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1;", string(data))

	_, err = openRemoteReader(context.Background(), server.URL+"/missing.sql", nil)
	assert.ErrorContains(t, err, "status 404")
}

func TestOpenRemoteWriterFileURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	w, err := openRemoteWriter(context.Background(), "file://"+path, nil)
	require.NoError(t, err)
	_, err = io.WriteString(w, "a,b\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))

	_, err = openRemoteWriter(context.Background(), "http://example.com/out.csv", nil)
	assert.ErrorIs(t, err, ErrUnsupportedDestination)
}
