// Package code defines the error kinds every provider operation can return.
// Callers distinguish them with errors.Is against the exported sentinels:
//
//	if errors.Is(err, code.NotFoundErr) { ... }
package code

import "fmt"

type Kind uint8

const (
	// KindInvalidInput: the request was rejected before any network access.
	KindInvalidInput Kind = iota + 1
	// KindNetwork: transport-level failure (connect, timeout, DNS).
	KindNetwork
	// KindRemote: the provider answered with a non-success HTTP status.
	KindRemote
	// KindDecode: the response body did not match the expected shape,
	// including gzip streams that fail to decompress.
	KindDecode
	// KindNotFound: the provider signalled that the entity does not exist.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindNetwork:
		return "network failure"
	case KindRemote:
		return "remote error"
	case KindDecode:
		return "decode failure"
	case KindNotFound:
		return "not found"
	}
	return "unknown"
}

type Error struct {
	kind Kind
	msg  string
	// Status and Body carry the HTTP response for KindRemote / KindNotFound
	// when available.
	Status int
	Body   string
	cause  error
}

var (
	InvalidInputErr = &Error{kind: KindInvalidInput}
	NetworkErr      = &Error{kind: KindNetwork}
	RemoteErr       = &Error{kind: KindRemote}
	DecodeErr       = &Error{kind: KindDecode}
	NotFoundErr     = &Error{kind: KindNotFound}
)

func (e *Error) Kind() Kind { return e.kind }

func (e *Error) Error() string {
	switch {
	case e.msg != "" && e.cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.kind, e.msg, e.cause)
	case e.msg != "":
		return fmt.Sprintf("%s: %s", e.kind, e.msg)
	case e.cause != nil:
		return fmt.Sprintf("%s: %v", e.kind, e.cause)
	}
	return e.kind.String()
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches on kind, so wrapped and derived errors compare equal to the
// package sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.kind == e.kind
}

func (e *Error) WithMsg(msg string) *Error {
	clone := *e
	clone.msg = msg
	return &clone
}

func (e *Error) WithMsgf(format string, args ...any) *Error {
	return e.WithMsg(fmt.Sprintf(format, args...))
}

func (e *Error) WithErr(err error) *Error {
	clone := *e
	clone.cause = err
	return &clone
}

// WithStatus records the HTTP status and (truncated) body of a failed
// provider response.
func (e *Error) WithStatus(status int, body string) *Error {
	const maxBody = 2048
	if len(body) > maxBody {
		body = body[:maxBody]
	}
	clone := *e
	clone.Status = status
	clone.Body = body
	if clone.msg == "" {
		clone.msg = fmt.Sprintf("http status %d", status)
	}
	return &clone
}
