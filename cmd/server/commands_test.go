package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/nftmeta/internal/core"
	"github.com/JonMunkholm/nftmeta/internal/web"
)

// setupEnv points the config at temp files and returns the directory.
func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	csv := "tokenID,name,description,fileName,hashPower\n1,Cube One,First,c1.png,50\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "meta.csv"), []byte(csv), 0o644))

	t.Setenv("IDS_FILE", filepath.Join(dir, "ids.txt"))
	t.Setenv("METADATA_FILE", filepath.Join(dir, "meta.csv"))
	t.Setenv("STATIC_DIR", filepath.Join(dir, "nft"))
	t.Setenv("LOG_LEVEL", "error")
	return dir
}

func execute(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--env-file="}, args...))
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestIDsCommand_Bootstraps(t *testing.T) {
	dir := setupEnv(t)

	out, err := execute(t, context.Background(), "ids")
	require.NoError(t, err)

	var resp web.IDListResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 5, resp.Count)
	assert.FileExists(t, filepath.Join(dir, "ids.txt"))
}

func TestLookupCommand(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, context.Background(), "lookup", "1")
	require.NoError(t, err)

	var rec core.MetadataRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "Cube One", rec.Name)
	assert.Equal(t, core.PowerCubeImage, rec.Image)

	_, err = execute(t, context.Background(), "lookup", "601")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 1 and 600")

	_, err = execute(t, context.Background(), "lookup", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no metadata")

	_, err = execute(t, context.Background(), "lookup")
	assert.Error(t, err, "lookup requires an id")
}

func TestCheckCommand(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, context.Background(), "check")
	require.NoError(t, err)

	var stats core.LoadStats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, core.LoadStats{Rows: 1, Accepted: 1, Keys: 1}, stats)
}

func TestInvalidConfig(t *testing.T) {
	setupEnv(t)
	t.Setenv("PORT", "0")

	_, err := execute(t, context.Background(), "ids")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}

func TestServeStopsOnCancel(t *testing.T) {
	setupEnv(t)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("PORT", strconv.Itoa(port))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = execute(t, ctx, "serve")
	assert.NoError(t, err)
}
