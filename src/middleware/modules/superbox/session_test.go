package superbox

import (
	"errors"
	"testing"

	api "superbox/src/middleware/helpers/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectFetchesIndexPage(t *testing.T) {
	stub := newStub()
	session, _ := newTestSession(t, stub)

	require.NoError(t, session.Connect())
	require.Len(t, stub.calls, 1)
	assert.Equal(t, "/", stub.calls[0].Path)
	assert.Equal(t, "http://192.168.1.1", session.BaseURL())
}

func TestConnectTransportErrorIsConnectivityError(t *testing.T) {
	stub := newStub()
	stub.indexErr = errors.New("dial tcp 192.168.1.1:80: connect: connection refused")
	session, _ := newTestSession(t, stub)

	err := session.Connect()

	var connErr *ConnectivityError
	require.ErrorAs(t, err, &connErr)
	assert.ErrorIs(t, err, stub.indexErr)
}

func TestConnectNonSuccessStatusIsConnectivityError(t *testing.T) {
	stub := newStub()
	stub.indexStatus = 503
	session, logs := newTestSession(t, stub)

	err := session.Connect()

	var connErr *ConnectivityError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, 503, connErr.StatusCode)
	assert.Contains(t, logs.String(), "Could Not Get Index Page")
}

func TestLoginSucceedsOnResultZero(t *testing.T) {
	stub := newStub()
	session, _ := connectedSession(t, stub)

	ok, err := session.Login()

	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, session.IsAuthenticated())

	login := stub.last("POST")
	assert.Equal(t, "/goform/goform_set_cmd_process", login.Path)
	assert.Equal(t, "false", login.Values.Get("isTest"))
	assert.Equal(t, "LOGIN_MULTI_USER", login.Values.Get("goformId"))
	assert.Equal(t, "admin", login.Values.Get("user"))
	assert.Equal(t, api.EncodePassword("secret"), login.Values.Get("password"))
	assert.Equal(t, api.ComputeToken("abc123", "V1", "V2"), login.Values.Get("AD"))
	assert.Equal(t, "application/x-www-form-urlencoded; charset=UTF-8", login.Headers.Get("Content-Type"))
	assert.Equal(t, "http://192.168.1.1/index.html", login.Headers.Get("Referer"))

	assert.Equal(t, api.ComputeToken("abc123", "V1", "V2"), session.token)
	assert.Equal(t, 1, stub.count("GET", "wifi_lbd_enable"))
}

func TestLoginConnectsWhenDisconnected(t *testing.T) {
	stub := newStub()
	session, _ := newTestSession(t, stub)

	ok, err := session.Login()

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/", stub.calls[0].Path)
}

func TestLoginFailsOnRejectedCodes(t *testing.T) {
	cases := map[string]AuthResultKind{
		"1":       AuthWrongCredentialsOrBanned,
		"failure": AuthMissingParameter,
		"null":    AuthInvalidJSONKey,
		"2":       AuthUnexpected,
		"banana":  AuthUnexpected,
	}

	for code, kind := range cases {
		t.Run(code, func(t *testing.T) {
			stub := newStub()
			stub.posts[loginGoformID] = `{"result":"` + code + `"}`
			session, logs := connectedSession(t, stub)

			ok, err := session.Login()

			assert.False(t, ok)
			assert.False(t, session.IsAuthenticated())
			var authErr *AuthenticationError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, kind, authErr.Result.Kind)
			assert.Equal(t, code, authErr.Result.Raw)
			assert.Contains(t, logs.String(), "Authentication Failed")
			assert.Zero(t, stub.count("GET", "wifi_lbd_enable"))
		})
	}
}

func TestLoginRejectsNonStringCodes(t *testing.T) {
	cases := map[string]string{
		"number":  `{"result":0}`,
		"boolean": `{"result":true}`,
		"null":    `{"result":null}`,
		"missing": `{}`,
	}
	raws := map[string]string{"number": "0", "boolean": "true", "null": "", "missing": ""}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			stub := newStub()
			stub.posts[loginGoformID] = body
			session, _ := connectedSession(t, stub)

			ok, err := session.Login()

			assert.False(t, ok)
			assert.False(t, session.IsAuthenticated())
			var authErr *AuthenticationError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, AuthUnexpected, authErr.Result.Kind)
			assert.Equal(t, raws[name], authErr.Result.Raw)
		})
	}
}

func TestLoginCanBeRetried(t *testing.T) {
	stub := newStub()
	stub.posts[loginGoformID] = `{"result":"1"}`
	session, _ := connectedSession(t, stub)

	ok, _ := session.Login()
	require.False(t, ok)

	stub.posts[loginGoformID] = `{"result":"0"}`
	ok, err := session.Login()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLoginVerificationMismatchOnlyWarns(t *testing.T) {
	stub := newStub()
	stub.gets["wifi_lbd_enable"] = `{"wifi_lbd_enable":""}`
	session, logs := connectedSession(t, stub)

	ok, err := session.Login()

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, logs.String(), "Could Not Verify Login")
}

func TestLoginSurfacesUndecodableBody(t *testing.T) {
	stub := newStub()
	stub.posts[loginGoformID] = `<html>500</html>`
	session, _ := connectedSession(t, stub)

	ok, err := session.Login()

	assert.False(t, ok)
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestLoginSurfacesTransportError(t *testing.T) {
	stub := newStub()
	delete(stub.posts, loginGoformID)
	session, _ := connectedSession(t, stub)

	ok, err := session.Login()

	assert.False(t, ok)
	assert.ErrorContains(t, err, "connection reset by peer")
}

func TestNewSessionDefaults(t *testing.T) {
	session := NewSession(nil, Credentials{Password: "x"}, nil)

	assert.Equal(t, "http://192.168.1.1", session.BaseURL())
	assert.Equal(t, "admin", session.creds.Username)
	assert.False(t, session.IsAuthenticated())
	assert.Empty(t, session.token)
}

func TestCommandsBeforeConnectFail(t *testing.T) {
	session := NewSession(nil, Credentials{Password: "x"}, nil)

	_, err := session.GetCommand([]string{"x"}, nil)
	assert.ErrorIs(t, err, ErrNotConnected)

	_, err = session.SetCommand("DELETE_SMS", nil)
	assert.ErrorIs(t, err, ErrNotConnected)
}
