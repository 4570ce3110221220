package conf

import (
	"errors"
	"fmt"
)

// Kind 标识 conf 解析器对外暴露错误的大类。
type Kind string

const (
	// KindMalformed 表示输入文本违反行语法（引号未闭合、缺少 = 分隔符）。
	KindMalformed Kind = "malformed"
	// KindInvalidValue 表示字段文本不是请求类型的合法值。
	KindInvalidValue Kind = "invalid-value"
	// KindOutOfRange 表示数值超出请求类型的表示范围。
	KindOutOfRange Kind = "out-of-range"
	// KindDecode 表示其他解码失败（未注册的类型、自定义解码器报错）。
	KindDecode Kind = "decode"
	// KindFileAccess 表示配置文件无法打开或读取。
	KindFileAccess Kind = "file-access"
)

// Error 包装底层错误并附加 Kind，方便调用方根据类型处理。
// Line 为 1 起始的行号，错误与输入行无关时为零；Text 在存在时携带
// 出错的输入片段。
type Error struct {
	Kind Kind
	Line int
	Text string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := string(e.Kind)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("conf:%d: %s", e.Line, msg)
	}
	return msg
}

// Unwrap 允许 errors.Is/As 访问底层错误。
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// KindOf 返回 err 链上第一个 *Error 的 Kind，没有则返回空串。
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func newError(kind Kind, err error) *Error {
	if err == nil {
		err = errors.New(string(kind))
	}
	return &Error{Kind: kind, Err: err}
}

func malformedf(line int, text string, format string, args ...any) *Error {
	return &Error{
		Kind: KindMalformed,
		Line: line,
		Text: text,
		Err:  fmt.Errorf(format, args...),
	}
}
