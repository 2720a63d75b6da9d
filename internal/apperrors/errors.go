// Package apperrors defines the coded errors shared by the sequence and
// counter packages.
package apperrors

// 错误码
const (
	CodeOutOfRange      = 1001
	CodeKeyNotFound     = 1002
	CodeInvalidSelector = 1003
	CodeInvalidCard     = 1004
)

// Error 带错误码的错误
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrOutOfRange      = &Error{Code: CodeOutOfRange, Message: "index out of range"}
	ErrKeyNotFound     = &Error{Code: CodeKeyNotFound, Message: "key not found"}
	ErrInvalidSelector = &Error{Code: CodeInvalidSelector, Message: "invalid selector"}
	ErrInvalidCard     = &Error{Code: CodeInvalidCard, Message: "invalid card"}
)
