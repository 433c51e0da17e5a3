package ir

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"null", Null(), Null(), true},
		{"int", FromInt(42), FromInt(42), true},
		{"int float", FromInt(42), FromFloat(42), false},
		{"string", FromString("a"), FromString("a"), true},
		{"instant duration", FromInstant("P1D"), FromDuration("P1D"), false},
		{"list", FromList(FromInt(1), Null()), FromList(FromInt(1), Null()), true},
		{"list order", FromList(FromInt(1), FromInt(2)), FromList(FromInt(2), FromInt(1)), false},
		{"nested", FromList(FromList(FromString("x"))), FromList(FromList(FromString("x"))), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValueAppend(t *testing.T) {
	v := FromString("abc").Append(FromString("def"))
	want := FromList(FromString("abc"), FromString("def"))
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("promotion mismatch (-want +got):\n%s", diff)
	}
	v2 := v.Append(Null())
	if v.Len() != 2 || v2.Len() != 3 {
		t.Errorf("append must not alias: %d %d", v.Len(), v2.Len())
	}
	if !v2.Contains(Null()) || v2.Contains(FromInt(1)) {
		t.Error("Contains")
	}
}

func TestValueText(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Null(), "null"},
		{FromBool(true), "true"},
		{FromInt(-7), "-7"},
		{FromFloat(42), "42.0"},
		{FromFloat(0.5), "0.5"},
		{FromString("a b"), "a b"},
		{FromTime("2016-01-01T00:00:00Z"), "@2016-01-01T00:00:00Z"},
		{FromList(FromString("x"), FromInt(1)), "x, 1"},
	}
	for _, tt := range tests {
		if got := tt.v.Text(); got != tt.want {
			t.Errorf("%#v.Text() = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestFromTime(t *testing.T) {
	if FromTime("PT1H").Type != DurationType {
		t.Error("P prefix should make a duration")
	}
	if FromTime("2016-06-26").Type != InstantType {
		t.Error("date should make an instant")
	}
}

func TestTruth(t *testing.T) {
	if Truth(Null()) || Truth(FromInt(0)) || Truth(FromList()) || Truth(FromString("")) {
		t.Error("zero values should be false")
	}
	if !Truth(FromBool(true)) || !Truth(FromFloat(0.1)) || !Truth(FromList(Null())) {
		t.Error("non-zero values should be true")
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != typ {
			t.Errorf("%s round trip gave %s", typ, back)
		}
	}
}

func TestHashSignedZero(t *testing.T) {
	neg := FromFloat(math.Copysign(0, -1))
	pos := FromFloat(0)
	if !neg.Equal(pos) {
		t.Fatal("-0 and 0 should be equal")
	}
	if neg.Hash() != pos.Hash() {
		t.Error("equal values hash differently")
	}
	if FromList(neg).Hash() != FromList(pos).Hash() {
		t.Error("equal lists hash differently")
	}
}
