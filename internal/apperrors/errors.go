package apperrors

import (
	"errors"
	"strings"
)

type Kind string

const (
	KindTransient  Kind = "transient"
	KindRateLimit  Kind = "rate_limit"
	KindAuth       Kind = "auth"
	KindValidation Kind = "validation"
	KindBadRequest Kind = "bad_request"
	KindConfig     Kind = "config"
)

type Error struct {
	Kind Kind
	// SafeMessage is intended for user-facing output and logs.
	SafeMessage string
	// Cause keeps the original internal error for troubleshooting.
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if msg := strings.TrimSpace(e.SafeMessage); msg != "" {
		return msg
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func defaultSafeMessage(kind Kind) string {
	switch kind {
	case KindTransient:
		return "Temporary upstream error. Please try again."
	case KindRateLimit:
		return "Rate limit exceeded. Please try again later."
	case KindAuth:
		return "GigaChat authorization failed. Please verify your credentials."
	case KindValidation:
		return "Upstream response validation failed."
	case KindBadRequest:
		return "Request rejected by the GigaChat API."
	case KindConfig:
		return "GigaChat credentials are not configured."
	default:
		return "Request failed."
	}
}

func New(kind Kind, safeMessage string, cause error) error {
	msg := strings.TrimSpace(safeMessage)
	if msg == "" {
		msg = defaultSafeMessage(kind)
	}
	return &Error{
		Kind:        kind,
		SafeMessage: msg,
		Cause:       cause,
	}
}

func Transient(err error) error {
	return New(KindTransient, "", err)
}

func Auth(err error) error {
	return New(KindAuth, "", err)
}

func Validation(err error) error {
	return New(KindValidation, "", err)
}

func BadRequest(err error) error {
	return New(KindBadRequest, "", err)
}

func Config(err error) error {
	return New(KindConfig, "", err)
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Kind, true
}

// PublicMessage returns a message safe to show to users. Raw transport and
// protocol details stay in the Cause chain.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}

func IsAuth(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindAuth
}

func IsConfig(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindConfig
}
