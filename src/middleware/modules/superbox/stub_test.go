package superbox

import (
	"bytes"
	"errors"
	"net/url"
	"testing"

	helpers "superbox/src/middleware/helpers"
	api "superbox/src/middleware/helpers/api"

	http "github.com/bogdanfinn/fhttp"
)

type call struct {
	Method  string
	Path    string
	Values  url.Values
	Headers http.Header
}

// stubTransport answers from canned bodies keyed by cmd (GET) or goformId
// (POST) and records every call.
type stubTransport struct {
	calls       []call
	indexStatus int
	indexErr    error
	gets        map[string]string
	posts       map[string]string
	getErr      error
}

func newStub() *stubTransport {
	return &stubTransport{
		indexStatus: 200,
		gets: map[string]string{
			"RD,wa_inner_version,cr_version": `{"RD":"abc123","wa_inner_version":"V1","cr_version":"V2"}`,
			"wifi_lbd_enable":                `{"wifi_lbd_enable":"1"}`,
		},
		posts: map[string]string{
			loginGoformID: `{"result":"0"}`,
		},
	}
}

func (t *stubTransport) Get(path string, params url.Values, headers http.Header) (*api.Response, error) {
	t.calls = append(t.calls, call{Method: "GET", Path: path, Values: params, Headers: headers})

	if path == indexPath {
		if t.indexErr != nil {
			return nil, t.indexErr
		}
		return &api.Response{StatusCode: t.indexStatus, Body: []byte("<html></html>")}, nil
	}
	if t.getErr != nil {
		return nil, t.getErr
	}

	body, ok := t.gets[params.Get("cmd")]
	if !ok {
		body = "{}"
	}
	return &api.Response{StatusCode: 200, Body: []byte(body)}, nil
}

func (t *stubTransport) PostForm(path string, form url.Values, headers http.Header) (*api.Response, error) {
	t.calls = append(t.calls, call{Method: "POST", Path: path, Values: form, Headers: headers})

	body, ok := t.posts[form.Get("goformId")]
	if !ok {
		return nil, errors.New("connection reset by peer")
	}
	return &api.Response{StatusCode: 200, Body: []byte(body)}, nil
}

func (t *stubTransport) count(method, key string) int {
	n := 0
	for _, c := range t.calls {
		if c.Method != method {
			continue
		}
		switch method {
		case "GET":
			if c.Values.Get("cmd") == key {
				n++
			}
		case "POST":
			if c.Values.Get("goformId") == key {
				n++
			}
		}
	}
	return n
}

func (t *stubTransport) last(method string) call {
	for i := len(t.calls) - 1; i >= 0; i-- {
		if t.calls[i].Method == method {
			return t.calls[i]
		}
	}
	return call{}
}

func newTestSession(t *testing.T, stub *stubTransport) (*Session, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	session := NewSession(helpers.NewLoggerTo(&logs), Credentials{IP: "192.168.1.1", Username: "admin", Password: "secret"}, stub)
	session.now = func() int64 { return 1700000000000 }
	return session, &logs
}

func connectedSession(t *testing.T, stub *stubTransport) (*Session, *bytes.Buffer) {
	t.Helper()
	session, logs := newTestSession(t, stub)
	if err := session.Connect(); err != nil {
		t.Fatalf("connect: %v", err)
	}
	return session, logs
}

// tokenFor is the AD expected for the stub's version strings.
func tokenFor(rd string) string {
	return api.ComputeToken(rd, "V1", "V2")
}
