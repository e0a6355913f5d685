package superbox

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	helpers "superbox/src/middleware/helpers"
	api "superbox/src/middleware/helpers/api"

	http "github.com/bogdanfinn/fhttp"
)

var ErrNotConnected = errors.New("session is not connected to the router")

// NewSession prepares a session for the router at creds.IP. A nil transport
// is replaced by a tls-client transport on Connect.
func NewSession(logger *helpers.ColorizedLogger, creds Credentials, transport api.Transport) *Session {
	if creds.IP == "" {
		creds.IP = helpers.DefaultRouterIP
	}
	if creds.Username == "" {
		creds.Username = helpers.DefaultUsername
	}

	return &Session{
		creds:     creds,
		baseURL:   "http://" + strings.TrimRight(creds.IP, "/"),
		logger:    logger,
		transport: transport,
		newTransport: func(baseURL string) (api.Transport, error) {
			t, err := api.NewTLSTransport(baseURL, api.DefaultTimeoutSeconds)
			if err != nil {
				return nil, err
			}
			return t, nil
		},
		now: api.GetEpochMillis,
	}
}

func (s *Session) BaseURL() string { return s.baseURL }

func (s *Session) referer() string {
	return s.baseURL + "/index.html"
}

func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// Connect binds the transport and fetches the router index page. Any
// transport failure or non-2xx status is a ConnectivityError.
func (s *Session) Connect() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connect()
}

func (s *Session) connect() error {
	if s.transport == nil {
		transport, err := s.newTransport(s.baseURL)
		if err != nil {
			return &ConnectivityError{URL: s.baseURL, Err: err}
		}
		s.transport = transport
	}

	s.logger.Verbose("Testing Connection By Fetching Router Index Page...")
	resp, err := s.transport.Get(indexPath, nil, nil)
	if err != nil {
		s.logger.Error("Could Not Reach The Router: " + err.Error())
		return &ConnectivityError{URL: s.baseURL, Err: err}
	}

	if !resp.OK() {
		s.logger.Error(fmt.Sprintf("Could Not Get Index Page Of The Router [%d]", resp.StatusCode))
		return &ConnectivityError{URL: s.baseURL, StatusCode: resp.StatusCode}
	}

	s.logger.Verbose("Successfully Fetched Index Page Of The Router")
	s.connected = true
	return nil
}

// Login connects if needed and runs the LOGIN_MULTI_USER handshake. A
// rejected login returns false with an *AuthenticationError; calling Login
// again retries.
func (s *Session) Login() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.connected {
		if err := s.connect(); err != nil {
			return false, err
		}
	}

	s.authenticated = false
	result, err := s.authenticate()
	if err != nil {
		s.logger.Error("Authentication Request Failed: " + err.Error())
		return false, err
	}

	for _, line := range result.Diagnostics() {
		if result.Success() {
			s.logger.Verbose(line)
		} else {
			s.logger.Error(line)
		}
	}

	if !result.Success() {
		return false, &AuthenticationError{Result: result}
	}

	s.authenticated = true
	s.verifyLogin()
	return true, nil
}

// verifyLogin checks wifi_lbd_enable, which reads empty before login and "1"
// after. It is only a hint and never fails the login.
func (s *Session) verifyLogin() {
	value, err := s.getValue("wifi_lbd_enable")
	if err == nil && value == "1" {
		return
	}

	s.logger.Warn("Could Not Verify Login")
	s.logger.Warn("This May Be Nonsense But Be Careful")
}

// refreshToken fetches RD and the two version strings and recomputes the
// AD digest. The device treats the digest as single use.
func (s *Session) refreshToken() (string, error) {
	raw, err := s.getCommand(tokenInputs, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch token parameters: %w", err)
	}

	params, _ := raw.(map[string]any)
	s.logger.Verbose("Get Required Parameters And Compose AD Digest...")

	s.token = api.ComputeToken(
		api.ToString(params["RD"]),
		api.ToString(params["wa_inner_version"]),
		api.ToString(params["cr_version"]),
	)
	return s.token, nil
}

func (s *Session) authenticate() (AuthenticationResult, error) {
	token, err := s.refreshToken()
	if err != nil {
		return AuthenticationResult{}, err
	}

	form := url.Values{
		"isTest":   {"false"},
		"goformId": {loginGoformID},
		"user":     {s.creds.Username},
		"password": {api.EncodePassword(s.creds.Password)},
		"AD":       {token},
	}
	headers := http.Header{
		"Referer":      {s.referer()},
		"Content-Type": {formContentType},
	}

	resp, err := s.transport.PostForm(setPath, form, headers)
	if err != nil {
		return AuthenticationResult{}, fmt.Errorf("failed to submit %s: %w", loginGoformID, err)
	}
	s.logger.HTTP(fmt.Sprintf("POST %s %s [%d]", setPath, loginGoformID, resp.StatusCode))

	body, err := decodeObject(s.logger, resp.Body)
	if err != nil {
		return AuthenticationResult{}, err
	}

	raw, ok := resultCode(body["result"])
	if !ok {
		return AuthenticationResult{Kind: AuthUnexpected, Raw: raw}, nil
	}
	return ParseAuthenticationResult(raw), nil
}
