package client

import (
	"context"

	"github.com/fivetwenty-io/flickr/internal/jsonx"
	"github.com/fivetwenty-io/flickr/pkg/flickr"
)

// decodeFunc turns a validated success payload into a result.
type decodeFunc[T any] func(root jsonx.Node) (T, error)

// invoke runs one API round trip: send the parameters, reject service
// errors, then decode. Nothing is returned on failure, so callers never see
// partially decoded results.
func invoke[T any](ctx context.Context, transport Transport, params flickr.Parameters, decode decodeFunc[T]) (T, error) {
	var zero T

	resp, err := transport.Call(ctx, params)
	if err != nil {
		return zero, err
	}

	root, err := validate(resp)
	if err != nil {
		return zero, err
	}

	result, err := decode(root)
	if err != nil {
		return zero, err
	}

	return result, nil
}

// validate turns a service-reported failure into a *flickr.ServiceError and
// otherwise returns the parsed payload. It must run before any decoder.
func validate(resp *flickr.Response) (jsonx.Node, error) {
	if resp.IsError() {
		return jsonx.Node{}, &flickr.ServiceError{
			Code:    resp.ErrorCode(),
			Message: resp.ErrorMessage(),
		}
	}

	return jsonx.Parse(resp.Payload)
}
