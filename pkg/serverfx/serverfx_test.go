package serverfx

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestModuleGraph(t *testing.T) {
	require.NoError(t, fx.ValidateApp(Module()))
}

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "ncpbridge.toml")
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf(body, dir)), 0o600))
	return path
}

func TestServerLifecycle(t *testing.T) {
	t.Setenv("NCP_MANIFEST", writeManifest(t, `
[server]
listen = "127.0.0.1:0"

[log]
dir = %q
level = "debug"

[ncp]
profile = "mtd"
vendor_id = 42

[node.values]
PHY_CHAN = "0e"
`))

	var app http.Handler
	fxApp := fxtest.New(t,
		Module(),
		fx.Invoke(fx.Annotate(func(h http.Handler) { app = h }, fx.ParamTags(`name:"app"`))),
	)
	fxApp.RequireStart()
	defer fxApp.RequireStop()

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/properties/PHY_CHAN", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var prop struct{ Value string }
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prop))
	assert.Equal(t, "0e", prop.Value)

	rec = httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/registry", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var reg struct {
		Profile string
		Sizes   map[string]int
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reg))
	assert.Equal(t, "mtd", reg.Profile)
	assert.Equal(t, map[string]int{"get": 157, "set": 74, "insert": 8, "remove": 8}, reg.Sizes)

	rec = httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ncp_dispatch_table_entries")
}

func TestUnknownProfileFailsStart(t *testing.T) {
	t.Setenv("NCP_MANIFEST", writeManifest(t, `
[log]
dir = %q

[ncp]
profile = "sleepy-end-device"
`))
	app := fx.New(Module(), fx.NopLogger)
	assert.Error(t, app.Err())
}

func TestRelayClosedOnStop(t *testing.T) {
	t.Setenv("ELECTRICIAN_TARGET", "")
	require.NoError(t, os.Unsetenv("ELECTRICIAN_TARGET"))

	lc := fxtest.NewLifecycle(t)
	rc, err := provideRelay(lc)
	require.NoError(t, err)
	require.NotNil(t, rc)

	lc.RequireStart().RequireStop()
	assert.NoError(t, rc.Close())
}
