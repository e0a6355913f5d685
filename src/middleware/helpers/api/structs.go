package api

import (
	http "github.com/bogdanfinn/fhttp"
)

// Response is a fully read device reply.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}
