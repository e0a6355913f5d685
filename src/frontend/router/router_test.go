package router

import (
	"bytes"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	helpers "superbox/src/middleware/helpers"
	api "superbox/src/middleware/helpers/api"
	superbox "superbox/src/middleware/modules/superbox"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterInfo(t *testing.T) {
	var sawCmd, sawMulti string

	mux := stdhttp.NewServeMux()
	mux.HandleFunc("/", func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		w.Write([]byte("<html></html>"))
	})
	mux.HandleFunc("/goform/goform_get_cmd_process", func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		sawCmd = r.URL.Query().Get("cmd")
		sawMulti = r.URL.Query().Get("multi_data")
		w.Write([]byte(`{"wa_inner_version":"MC801A_V1.0","cr_version":""}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	transport, err := api.NewTLSTransport(server.URL, 5)
	require.NoError(t, err)

	var logs bytes.Buffer
	logger := helpers.NewLoggerTo(&logs)
	session := superbox.NewSession(logger, superbox.Credentials{IP: strings.TrimPrefix(server.URL, "http://")}, transport)
	require.NoError(t, session.Connect())

	RouterInfo(logger, session)

	assert.Equal(t, "wa_inner_version,cr_version", sawCmd)
	assert.Equal(t, "1", sawMulti)
	assert.Contains(t, logs.String(), "Inner Version: MC801A_V1.0")
	assert.Contains(t, logs.String(), "CR Version: -")
}
