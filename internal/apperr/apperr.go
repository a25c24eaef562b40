package apperr

import (
	"errors"
	"net/http"
)

// Kind 是面向调用方的错误分类，handler层据此决定HTTP状态码
type Kind int

const (
	KindInternal Kind = iota // 存储层故障等，对外不暴露细节
	KindBadRequest
	// “不存在”和“无权访问”刻意合并成同一种结果，
	// 避免向未授权的调用方泄露他人私有资源的存在性
	KindNotFound
	KindConflict // 并发重复创建，toggle内部会把它折算成“已创建”
)

type Error struct {
	Kind    Kind
	Message string // 可以安全展示给用户的信息
	Err     error  // 底层原因，只进日志
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf 取出错误的分类，不是*Error的一律按内部错误处理
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message 返回可以对外展示的错误信息
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "服务器内部错误"
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
