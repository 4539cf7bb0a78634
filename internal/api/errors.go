package api

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for SmartSales API failures.
var (
	// ErrUnreachable covers transport-level failures: DNS, refused
	// connections, timeouts, cancelled contexts.
	ErrUnreachable = errors.New("smartsales api unreachable")
	// ErrRejected covers a non-2xx HTTP status or a response envelope with
	// success false. The wrapped message is user-presentable.
	ErrRejected = errors.New("smartsales api rejected request")
)

// classifyError maps transport-level errors to ErrUnreachable.
func classifyError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: timeout: %v", ErrUnreachable, err)
	}
	return fmt.Errorf("%w: %v", ErrUnreachable, err)
}

// rejected builds an ErrRejected using the server message when present,
// falling back to the caller-supplied default.
func rejected(serverMsg, fallback string) error {
	msg := serverMsg
	if msg == "" {
		msg = fallback
	}
	return fmt.Errorf("%w: %s", ErrRejected, msg)
}
