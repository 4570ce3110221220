package conf

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

// =========================
// Decoder Registry
// =========================

// decoders maps a requested result type to its decode strategy. The
// parse driver never consults this table; decoding happens only at
// typed access time.
var decoders = map[reflect.Type]func(string) (any, error){}

// RegisterDecoder installs fn as the decode strategy for T, replacing
// any previous one. Plain errors returned by fn are reported with kind
// KindDecode; fn may return *Error to control the kind itself.
// Registration is not synchronized: install decoders during program
// init, before parsing starts.
func RegisterDecoder[T any](fn func(string) (T, error)) {
	decoders[reflect.TypeFor[T]()] = func(s string) (any, error) {
		v, err := fn(s)
		if err != nil {
			var e *Error
			if !errors.As(err, &e) {
				err = newError(KindDecode, err)
			}
			return nil, err
		}
		return v, nil
	}
}

func init() {
	RegisterDecoder(func(s string) (string, error) { return s, nil })
	RegisterDecoder(parseBool)
	RegisterDecoder(parseInt[int])
	RegisterDecoder(parseInt[int8])
	RegisterDecoder(parseInt[int16])
	RegisterDecoder(parseInt[int32])
	RegisterDecoder(parseInt[int64])
	RegisterDecoder(parseUint[uint])
	RegisterDecoder(parseUint[uint8])
	RegisterDecoder(parseUint[uint16])
	RegisterDecoder(parseUint[uint32])
	RegisterDecoder(parseUint[uint64])
	RegisterDecoder(parseFloat[float32])
	RegisterDecoder(parseFloat[float64])
}

// =========================
// Typed Access
// =========================

// ParseAs decodes s as a value of type T through the registered
// decoder. Requesting a type with no registered decoder reports
// KindDecode.
func ParseAs[T any](s string) (T, error) {
	var zero T
	dec, ok := decoders[reflect.TypeFor[T]()]
	if !ok {
		return zero, newError(KindDecode, fmt.Errorf("no decoder registered for %v", reflect.TypeFor[T]()))
	}
	v, err := dec(s)
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// FieldAs looks up key in sec and decodes it as T. An absent field
// yields (zero, false, nil); a present field that fails to decode
// yields (zero, true, err). Absence and decode failure are distinct.
func FieldAs[T any](sec *Section, key string) (T, bool, error) {
	raw, ok := sec.Field(key)
	if !ok {
		var zero T
		return zero, false, nil
	}
	v, err := ParseAs[T](raw)
	return v, true, err
}

// =========================
// Builtin Decoders
// =========================

// parseBool inspects only the first character, case-insensitive:
// 0/f/n mean false, 1/t/y mean true. Anything else is invalid.
func parseBool(s string) (bool, error) {
	if len(s) > 0 {
		switch s[0] {
		case '0', 'f', 'F', 'n', 'N':
			return false, nil
		case '1', 't', 'T', 'y', 'Y':
			return true, nil
		}
	}
	return false, &Error{
		Kind: KindInvalidValue,
		Text: s,
		Err:  fmt.Errorf("cannot parse %q as bool", s),
	}
}

func parseInt[T int | int8 | int16 | int32 | int64](s string) (T, error) {
	t := reflect.TypeFor[T]()
	n, err := strconv.ParseInt(s, 10, t.Bits())
	if err != nil {
		return 0, numError(err, s, t)
	}
	return T(n), nil
}

func parseUint[T uint | uint8 | uint16 | uint32 | uint64](s string) (T, error) {
	t := reflect.TypeFor[T]()
	n, err := strconv.ParseUint(s, 10, t.Bits())
	if err != nil {
		return 0, numError(err, s, t)
	}
	return T(n), nil
}

func parseFloat[T float32 | float64](s string) (T, error) {
	t := reflect.TypeFor[T]()
	f, err := strconv.ParseFloat(s, t.Bits())
	if err != nil {
		return 0, numError(err, s, t)
	}
	return T(f), nil
}

// numError classifies a strconv failure: out of range, not a number at
// all, or any other conversion failure.
func numError(err error, text string, t reflect.Type) *Error {
	switch {
	case errors.Is(err, strconv.ErrRange):
		return &Error{
			Kind: KindOutOfRange,
			Text: text,
			Err:  fmt.Errorf("value %q out of range for %v", text, t),
		}
	case errors.Is(err, strconv.ErrSyntax):
		return &Error{
			Kind: KindInvalidValue,
			Text: text,
			Err:  fmt.Errorf("cannot parse %q as %v", text, t),
		}
	}
	return &Error{Kind: KindDecode, Text: text, Err: err}
}
