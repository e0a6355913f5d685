package superbox

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	api "superbox/src/middleware/helpers/api"

	http "github.com/bogdanfinn/fhttp"
)

// GetCommand reads named values through goform_get_cmd_process.
//
// One name with no extra payload returns the bare value (nil when the device
// omits it). Several names, or any extra payload, return the whole decoded
// object as map[string]any. Extra payload keys override the defaults.
func (s *Session) GetCommand(names []string, extra map[string]string) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getCommand(names, extra)
}

// getValue reads a single value as a string. Callers hold mu.
func (s *Session) getValue(name string) (string, error) {
	value, err := s.getCommand([]string{name}, nil)
	if err != nil {
		return "", err
	}
	return api.ToString(value), nil
}

// GetValues always returns a mapping, even for a single name.
func (s *Session) GetValues(names ...string) (map[string]any, error) {
	names = uniqueNames(names)

	value, err := s.GetCommand(names, nil)
	if err != nil {
		return nil, err
	}

	if len(names) == 1 {
		return map[string]any{names[0]: value}, nil
	}
	values, _ := value.(map[string]any)
	return values, nil
}

func (s *Session) getCommand(names []string, extra map[string]string) (any, error) {
	if s.transport == nil {
		return nil, ErrNotConnected
	}

	names = uniqueNames(names)
	if len(names) == 0 {
		return nil, errors.New("no command names given")
	}

	cmd := strings.Join(names, ",")
	multiData := len(names) > 1
	standard := len(extra) == 0

	params := url.Values{}
	params.Set("cmd", cmd)
	if multiData {
		params.Set("multi_data", "1")
	}
	params.Set("isTest", "false")
	params.Set("_", strconv.FormatInt(s.now(), 10))
	for key, value := range extra {
		params.Set(key, value)
	}

	// the router answers some commands with an empty body when Referer is missing
	headers := http.Header{"Referer": {s.referer()}}

	resp, err := s.transport.Get(getPath, params, headers)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", cmd, err)
	}
	s.logger.HTTP(fmt.Sprintf("GET %s %s [%d]", getPath, cmd, resp.StatusCode))

	body, err := decodeObject(s.logger, resp.Body)
	if err != nil {
		return nil, err
	}

	if standard && len(body) > 0 {
		s.logger.Verbose("get_cmd()")
		for _, name := range names {
			s.logger.Verbose(fmt.Sprintf("\t%s: %v", name, body[name]))
		}
	}

	if multiData || !standard {
		return body, nil
	}
	return body[cmd], nil
}

// SetCommand submits goformID through goform_set_cmd_process. Every call
// re-authenticates first so the AD it carries is fresh: one token
// round trip, one LOGIN_MULTI_USER post, then the command itself. The
// raw response is returned because each command reports differently.
func (s *Session) SetCommand(goformID string, payload map[string]string) (*api.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setCommand(goformID, payload)
}

func (s *Session) setCommand(goformID string, payload map[string]string) (*api.Response, error) {
	if s.transport == nil {
		return nil, ErrNotConnected
	}

	result, err := s.authenticate()
	if err != nil {
		s.authenticated = false
		return nil, fmt.Errorf("failed to re-authenticate before %s: %w", goformID, err)
	}
	if !result.Success() {
		s.authenticated = false
		for _, line := range result.Diagnostics() {
			s.logger.Error(line)
		}
		return nil, &AuthenticationError{Result: result}
	}
	s.authenticated = true

	form := url.Values{}
	for key, value := range payload {
		form.Set(key, value)
	}
	form.Set("isTest", "false")
	form.Set("goformId", goformID)
	form.Set("AD", s.token)

	headers := http.Header{
		"Referer":      {s.referer()},
		"Content-Type": {formContentType},
	}

	resp, err := s.transport.PostForm(setPath, form, headers)
	if err != nil {
		return nil, fmt.Errorf("failed to submit %s: %w", goformID, err)
	}
	s.logger.HTTP(fmt.Sprintf("POST %s %s [%d]", setPath, goformID, resp.StatusCode))

	return resp, nil
}

// uniqueNames trims names, drops empties and repeats, and keeps order.
func uniqueNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		unique = append(unique, name)
	}
	return unique
}
