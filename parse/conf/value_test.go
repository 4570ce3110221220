package conf

import (
	"testing"
	"time"
)

func checkKind(t *testing.T, id string, err error, kind Kind) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: got nil error, wanted kind %q", id, kind)
		return
	}
	if got := KindOf(err); got != kind {
		t.Errorf("%s: got error %v with kind %q, wanted kind %q", id, err, got, kind)
	}
}

func TestParseAsString(t *testing.T) {
	got, err := ParseAs[string](" a b ")
	if err != nil {
		t.Fatalf("got error %v, wanted ok", err)
	}
	if got != " a b " {
		t.Errorf("got %q, wanted %q", got, " a b ")
	}
}

func TestParseAsBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
		ok   bool
	}{
		{"0", false, true},
		{"1", true, true},
		{"f", false, true},
		{"t", true, true},
		{"n", false, true},
		{"y", true, true},
		{"false", false, true},
		{"true", true, true},
		{"No", false, true},
		{"Yes", true, true},
		{"FALSE", false, true},
		// only the first character matters
		{"yeah", true, true},
		{"nope", false, true},
		{"", false, false},
		{"2", false, false},
		{"on", false, false},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		got, err := ParseAs[bool](tt.in)
		if !tt.ok {
			checkKind(t, "bool "+tt.in, err, KindInvalidValue)
			continue
		}
		if err != nil {
			t.Errorf("bool %q: got error %v, wanted ok", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("bool %q: got %v, wanted %v", tt.in, got, tt.want)
		}
	}
}

func TestParseAsInt(t *testing.T) {
	if v, err := ParseAs[int]("42"); err != nil || v != 42 {
		t.Errorf("int 42: got %d, %v", v, err)
	}
	if v, err := ParseAs[int]("-7"); err != nil || v != -7 {
		t.Errorf("int -7: got %d, %v", v, err)
	}
	if v, err := ParseAs[int64]("9223372036854775807"); err != nil || v != 9223372036854775807 {
		t.Errorf("int64 max: got %d, %v", v, err)
	}
	if v, err := ParseAs[int8]("-128"); err != nil || v != -128 {
		t.Errorf("int8 min: got %d, %v", v, err)
	}

	_, err := ParseAs[int8]("300")
	checkKind(t, "int8 300", err, KindOutOfRange)
	_, err = ParseAs[int32]("99999999999999999999")
	checkKind(t, "int32 huge", err, KindOutOfRange)
	_, err = ParseAs[int]("99999999999999999999")
	checkKind(t, "int huge", err, KindOutOfRange)
	_, err = ParseAs[int]("abc")
	checkKind(t, "int abc", err, KindInvalidValue)
	_, err = ParseAs[int]("4.5")
	checkKind(t, "int 4.5", err, KindInvalidValue)
	// full-string parse, no trimming at this level
	_, err = ParseAs[int](" 42")
	checkKind(t, "int leading space", err, KindInvalidValue)
	_, err = ParseAs[int]("")
	checkKind(t, "int empty", err, KindInvalidValue)
}

func TestParseAsUint(t *testing.T) {
	if v, err := ParseAs[uint]("42"); err != nil || v != 42 {
		t.Errorf("uint 42: got %d, %v", v, err)
	}
	if v, err := ParseAs[uint8]("255"); err != nil || v != 255 {
		t.Errorf("uint8 255: got %d, %v", v, err)
	}

	_, err := ParseAs[uint8]("256")
	checkKind(t, "uint8 256", err, KindOutOfRange)
	_, err = ParseAs[uint]("-1")
	checkKind(t, "uint -1", err, KindInvalidValue)
}

func TestParseAsFloat(t *testing.T) {
	if v, err := ParseAs[float64]("3.25"); err != nil || v != 3.25 {
		t.Errorf("float64 3.25: got %v, %v", v, err)
	}
	if v, err := ParseAs[float32]("0.5"); err != nil || v != 0.5 {
		t.Errorf("float32 0.5: got %v, %v", v, err)
	}
	if v, err := ParseAs[float64]("-2e3"); err != nil || v != -2000 {
		t.Errorf("float64 -2e3: got %v, %v", v, err)
	}

	_, err := ParseAs[float64]("1e999")
	checkKind(t, "float64 1e999", err, KindOutOfRange)
	_, err = ParseAs[float32]("3.5e38")
	checkKind(t, "float32 3.5e38", err, KindOutOfRange)
	_, err = ParseAs[float64]("abc")
	checkKind(t, "float64 abc", err, KindInvalidValue)
}

func TestFieldAs(t *testing.T) {
	var sec Section
	sec.SetField("port", "8080")
	sec.SetField("bad", "x")

	v, ok, err := FieldAs[int](&sec, "port")
	if v != 8080 || !ok || err != nil {
		t.Errorf("port: got %d, %v, %v, wanted 8080, true, nil", v, ok, err)
	}

	// absent is not an error
	v, ok, err = FieldAs[int](&sec, "missing")
	if v != 0 || ok || err != nil {
		t.Errorf("missing: got %d, %v, %v, wanted 0, false, nil", v, ok, err)
	}

	// present but undecodable is an error
	v, ok, err = FieldAs[int](&sec, "bad")
	if v != 0 || !ok {
		t.Errorf("bad: got %d, %v, wanted 0, true", v, ok)
	}
	checkKind(t, "bad", err, KindInvalidValue)
}

func TestRegisterDecoder(t *testing.T) {
	RegisterDecoder(time.ParseDuration)

	v, err := ParseAs[time.Duration]("1h30m")
	if err != nil {
		t.Fatalf("duration 1h30m: got error %v, wanted ok", err)
	}
	if v != 90*time.Minute {
		t.Errorf("duration 1h30m: got %v, wanted %v", v, 90*time.Minute)
	}

	// plain errors from a custom decoder surface as decode failures
	_, err = ParseAs[time.Duration]("later")
	checkKind(t, "duration later", err, KindDecode)
}

func TestParseAsUnregistered(t *testing.T) {
	type rgb struct{ R, G, B uint8 }
	_, err := ParseAs[rgb]("255,0,0")
	checkKind(t, "rgb", err, KindDecode)
}
