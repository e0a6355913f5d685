package superbox

import (
	"sync"

	helpers "superbox/src/middleware/helpers"
	api "superbox/src/middleware/helpers/api"
)

const (
	indexPath = "/"
	getPath   = "/goform/goform_get_cmd_process"
	setPath   = "/goform/goform_set_cmd_process"

	loginGoformID  = "LOGIN_MULTI_USER"
	deleteGoformID = "DELETE_SMS"

	formContentType = "application/x-www-form-urlencoded; charset=UTF-8"
)

// Names of the values the AD digest is computed from.
var tokenInputs = []string{"RD", "wa_inner_version", "cr_version"}

type Credentials struct {
	IP       string
	Username string
	Password string
}

// Session is a cookie-bearing conversation with one router. Mutating calls
// hold mu for the whole re-authenticate + submit sequence.
type Session struct {
	creds         Credentials
	baseURL       string
	logger        *helpers.ColorizedLogger
	transport     api.Transport
	newTransport  func(baseURL string) (api.Transport, error)
	now           func() int64
	token         string
	connected     bool
	authenticated bool
	mu            sync.Mutex
}

// Message is one SMS as the device reports it. Content stays in the
// device's own hex encoding.
type Message map[string]any

// MessageSummary is the subset of message fields used for display and export.
type MessageSummary struct {
	ID      string `mapstructure:"id"`
	Number  string `mapstructure:"number"`
	Content string `mapstructure:"content"`
	Tag     string `mapstructure:"tag"`
	Date    string `mapstructure:"date"`
}
