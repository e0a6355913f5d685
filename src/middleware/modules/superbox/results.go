package superbox

import (
	"fmt"
)

// AuthResultKind enumerates the LOGIN_MULTI_USER result codes seen so far.
// The values were found by trial and error; AuthUnexpected keeps anything else.
type AuthResultKind int

const (
	AuthUnexpected AuthResultKind = iota
	AuthInvalidJSONKey
	AuthMissingParameter
	AuthSuccess
	AuthWrongCredentialsOrBanned
)

var authResultCodes = map[string]AuthResultKind{
	"null":    AuthInvalidJSONKey,
	"failure": AuthMissingParameter,
	"0":       AuthSuccess,
	"1":       AuthWrongCredentialsOrBanned,
}

type AuthenticationResult struct {
	Kind AuthResultKind
	Raw  string
}

// resultCode reads the "result" field of a goform reply. Codes are strings on
// the wire; any other JSON type is reported back as its printed form with
// ok false so it can never match a known code.
func resultCode(value any) (raw string, ok bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case nil:
		return "", false
	default:
		return fmt.Sprint(v), false
	}
}

func ParseAuthenticationResult(raw string) AuthenticationResult {
	kind, ok := authResultCodes[raw]
	if !ok {
		kind = AuthUnexpected
	}
	return AuthenticationResult{Kind: kind, Raw: raw}
}

func (r AuthenticationResult) Success() bool {
	return r.Kind == AuthSuccess
}

// Diagnostics are the log lines explaining a login outcome.
func (r AuthenticationResult) Diagnostics() []string {
	switch r.Kind {
	case AuthSuccess:
		return []string{"Authentication Succeeded"}
	case AuthInvalidJSONKey:
		return []string{"Authentication Failed: Invalid JSON Key"}
	case AuthMissingParameter:
		return []string{
			"Authentication Failed: Missing POST Parameter(s)",
			"Check The Login Payload Sent To LOGIN_MULTI_USER",
		}
	case AuthWrongCredentialsOrBanned:
		return []string{
			"Authentication Failed: Invalid Credentials Or Temporary Ban",
			"Either Wrong Credentials Are Provided Or Too Many Failed",
			"Login Attempts Caused A Temporary Login Ban",
		}
	default:
		return []string{fmt.Sprintf("Authentication Failed: Unexpected Result (%s)", r.Raw)}
	}
}

func (r AuthenticationResult) String() string {
	switch r.Kind {
	case AuthSuccess:
		return "success"
	case AuthInvalidJSONKey:
		return "invalid json key"
	case AuthMissingParameter:
		return "missing parameter"
	case AuthWrongCredentialsOrBanned:
		return "wrong credentials or banned"
	default:
		return fmt.Sprintf("unexpected(%q)", r.Raw)
	}
}

// DeleteResult is the tri-state outcome of DELETE_SMS.
type DeleteResult int

const (
	DeleteUnknown DeleteResult = iota
	DeleteSuccess
	DeleteFailure
)

func ParseDeleteResult(raw string) DeleteResult {
	switch raw {
	case "success":
		return DeleteSuccess
	case "failure":
		return DeleteFailure
	default:
		return DeleteUnknown
	}
}

func (r DeleteResult) String() string {
	switch r {
	case DeleteSuccess:
		return "success"
	case DeleteFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// ---------------------- ERRORS ---------------------- \\

// ConnectivityError means the device could not be reached or its index page
// did not load. It aborts session creation.
type ConnectivityError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *ConnectivityError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("router unreachable at %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("router index page at %s returned HTTP %d", e.URL, e.StatusCode)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

type AuthenticationError struct {
	Result AuthenticationResult
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Result)
}

// DecodeError carries the body that neither the strict nor the lenient
// decoder accepted.
type DecodeError struct {
	Body       []byte
	StrictErr  error
	LenientErr error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not decode JSON response (strict: %v, lenient: %v)", e.StrictErr, e.LenientErr)
}

func (e *DecodeError) Unwrap() error { return e.LenientErr }

type UnexpectedResultError struct {
	Operation string
	Raw       string
}

func (e *UnexpectedResultError) Error() string {
	return fmt.Sprintf("%s returned unexpected result %q", e.Operation, e.Raw)
}
