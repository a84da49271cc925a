package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempParams(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "params")
	old := ParamsPath
	ParamsPath = dir
	t.Cleanup(func() { ParamsPath = old })
	return dir
}

func TestGetParamsPathFromEnv(t *testing.T) {
	t.Setenv(PARAMS_PATH_ENV, "/tmp/cargeo-test-params")
	assert.Equal(t, "/tmp/cargeo-test-params", GetParamsPath())
}

func TestPutAndGetParam(t *testing.T) {
	dir := useTempParams(t)

	require.NoError(t, PutParam(CARGEO_SETTINGS, []byte(`{"decimals":3}`)))

	data, err := GetParam(CARGEO_SETTINGS)
	require.NoError(t, err)
	assert.Equal(t, `{"decimals":3}`, string(data))

	exists, err := Exists(filepath.Join(dir, ".lock"))
	require.NoError(t, err)
	assert.False(t, exists, "lock file should be removed after writing")

	names, err := GetParams()
	require.NoError(t, err)
	assert.Equal(t, []string{CARGEO_SETTINGS}, names, "temp files must not be listed")
}

func TestPutParamOverwrites(t *testing.T) {
	useTempParams(t)

	require.NoError(t, PutParam("A", []byte("1")))
	require.NoError(t, PutParam("A", []byte("2")))

	data, err := GetParam("A")
	require.NoError(t, err)
	assert.Equal(t, "2", string(data))
}

func TestGetMissingParam(t *testing.T) {
	useTempParams(t)

	_, err := GetParam("Missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not read param Missing")
}

func TestRemoveParam(t *testing.T) {
	dir := useTempParams(t)

	require.NoError(t, PutParam("A", []byte("1")))
	require.NoError(t, RemoveParam("A"))

	_, err := os.Stat(filepath.Join(dir, "A"))
	assert.True(t, os.IsNotExist(err))

	// removing twice is not an error
	require.NoError(t, RemoveParam("A"))
}

func TestExists(t *testing.T) {
	dir := useTempParams(t)

	exists, err := Exists(dir)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, EnsureParamDirectories())
	exists, err = Exists(dir)
	require.NoError(t, err)
	assert.True(t, exists)
}
