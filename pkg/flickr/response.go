package flickr

import (
	"encoding/json"
	"fmt"
)

// Stat values of the Flickr response envelope.
const (
	StatOK   = "ok"
	StatFail = "fail"
)

// Response is a decoded Flickr response envelope. Payload holds the complete
// success body and is only meaningful when IsError is false.
type Response struct {
	Stat    string
	Code    int
	Message string
	Payload json.RawMessage
}

// IsError reports whether the service signalled a failure.
func (r *Response) IsError() bool {
	return r.Stat != StatOK
}

// ErrorCode returns the service error code.
func (r *Response) ErrorCode() int {
	return r.Code
}

// ErrorMessage returns the service error message.
func (r *Response) ErrorMessage() string {
	return r.Message
}

// ParseResponse reads the stat/code/message envelope of a JSON response body.
// A body that is not JSON at all never reached the API layer and is reported
// as a *TransportError; valid JSON without a stat is a *DecodeError.
func ParseResponse(body []byte) (*Response, error) {
	var envelope struct {
		Stat    string `json:"stat"`
		Code    int    `json:"code"`
		Message string `json:"message"`
	}

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, &TransportError{Op: "reading envelope", Err: fmt.Errorf("%w: %w", ErrResponseNotJSON, err)}
	}

	if envelope.Stat == "" {
		return nil, &DecodeError{Path: "stat", Reason: "missing"}
	}

	resp := &Response{
		Stat:    envelope.Stat,
		Code:    envelope.Code,
		Message: envelope.Message,
	}

	if !resp.IsError() {
		resp.Payload = json.RawMessage(body)
	}

	return resp, nil
}
