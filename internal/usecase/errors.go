package usecase

import (
	"errors"
	"fmt"
)

// エラーの分類。handlerでHTTPステータスに変換する。
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindAdapter
	KindStore
	KindRateLimited
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindAdapter:
		return "adapter"
	case KindStore:
		return "store"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    ErrorKind
	Message string // 呼び出し側に見せる文言
	Err     error  // 原因（ログ用）
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func NewValidationError(err error) error {
	return &Error{Kind: KindValidation, Message: err.Error(), Err: err}
}

func NewNotFoundError(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NewAdapterError(message string, err error) error {
	return &Error{Kind: KindAdapter, Message: message, Err: err}
}

// DBの失敗。中身は外に出さない。
func NewStoreError(err error) error {
	return &Error{Kind: KindStore, Message: "db error", Err: err}
}

func NewRateLimitedError(message string) error {
	return &Error{Kind: KindRateLimited, Message: message}
}

func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

func IsKind(err error, kind ErrorKind) bool {
	e, ok := AsError(err)
	return ok && e.Kind == kind
}
