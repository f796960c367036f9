package errors

import (
	"errors"
	"fmt"
)

type ErrorDump struct {
	TopMessage string `json:"top_message"`
	Code       Code   `json:"code,omitempty"`

	Chain []string `json:"chain,omitempty"`

	UpstreamStatus  int    `json:"upstream_status,omitempty"`
	UpstreamMessage string `json:"upstream_message,omitempty"`
}

// upstreamError is implemented by errors that carry a response from the
// commerce backend.
type upstreamError interface {
	UpstreamStatus() int
	UpstreamMessage() string
}

func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{
		TopMessage: err.Error(),
	}

	if te := As(err); te != nil {
		d.Code = te.Code()
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	var upstream upstreamError
	if errors.As(err, &upstream) {
		d.UpstreamStatus = upstream.UpstreamStatus()
		d.UpstreamMessage = upstream.UpstreamMessage()
	}

	return d
}
