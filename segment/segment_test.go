/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package segment

import (
	"encoding"
	"errors"
	"testing"
)

func TestOf_PathDomainsAcceptWholeRange(t *testing.T) {
	for raw := PathMin; raw <= PathMax; raw++ {
		r, err := Of[Root](raw)
		if err != nil {
			t.Fatalf("Of[Root](%d) unexpected error: %v", raw, err)
		}
		if int(r.Uint()) != raw {
			t.Fatalf("Of[Root](%d).Uint() = %d", raw, r.Uint())
		}
		if _, err := Of[Parent](raw); err != nil {
			t.Fatalf("Of[Parent](%d) unexpected error: %v", raw, err)
		}
		if _, err := Of[Leaf](raw); err != nil {
			t.Fatalf("Of[Leaf](%d) unexpected error: %v", raw, err)
		}
	}
}

func TestOf_OutOfRange(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
	}{
		{"root below", func() error { _, err := Of[Root](-1); return err }},
		{"root above", func() error { _, err := Of[Root](100); return err }},
		{"leaf above", func() error { _, err := Of[Leaf](1000); return err }},
		{"category below", func() error { _, err := Of[Category](999); return err }},
		{"category above", func() error { _, err := Of[Category](4294); return err }},
		{"category zero", func() error { _, err := Of[Category](0); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("errors.Is(%v, ErrOutOfRange) = false", err)
			}
			var re *RangeError
			if !errors.As(err, &re) {
				t.Fatalf("expected *RangeError, got %T", err)
			}
		})
	}
}

func TestOf_CategoryBoundaries(t *testing.T) {
	lo, err := Of[Category](CategoryMin)
	if err != nil || lo.Uint() != 1000 {
		t.Fatalf("Of[Category](1000) = %v, %v", lo, err)
	}
	hi, err := Of[Category](CategoryMax)
	if err != nil || hi.Uint() != 4293 {
		t.Fatalf("Of[Category](4293) = %v, %v", hi, err)
	}
}

func TestRangeError_Message(t *testing.T) {
	_, err := Of[Parent](120)
	want := "errcode: parent segment 120 out of range [0, 99]"
	if err == nil || err.Error() != want {
		t.Fatalf("Error() = %v, want %q", err, want)
	}
}

func TestMust_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("Must should panic on out-of-range input")
		}
	}()
	_ = Must[Category](42)
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		name   string
		got    string
		tagged string
		want   string
		wantT  string
	}{
		{"root zero", Must[Root](0).String(), Must[Root](0).Tagged(), "00", "X00"},
		{"parent single digit", Must[Parent](7).String(), Must[Parent](7).Tagged(), "07", "Y07"},
		{"leaf two digits", Must[Leaf](99).String(), Must[Leaf](99).Tagged(), "99", "Z99"},
		{"category", Must[Category](1100).String(), Must[Category](1100).Tagged(), "1100", "E1100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("String() = %q, want %q", tt.got, tt.want)
			}
			if tt.tagged != tt.wantT {
				t.Fatalf("Tagged() = %q, want %q", tt.tagged, tt.wantT)
			}
		})
	}
}

func TestValue_CompareAndEquality(t *testing.T) {
	a, b := Must[Leaf](3), Must[Leaf](20)
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Fatalf("Compare ordering broken")
	}
	if Must[Leaf](3) != a {
		t.Fatalf("independently built values must be equal")
	}
	m := map[Value[Leaf]]int{a: 1}
	if m[Must[Leaf](3)] != 1 {
		t.Fatalf("values must hash by value")
	}
}

func TestValue_ZeroCategoryIsInvalid(t *testing.T) {
	var v Value[Category]
	if !v.IsZero() || v.Valid() {
		t.Fatalf("zero category must be IsZero and !Valid")
	}
	if _, err := v.MarshalText(); err == nil {
		t.Fatalf("MarshalText on zero category must fail")
	}
}

func TestValue_MarshalText(t *testing.T) {
	text, err := Must[Parent](1).MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "01" {
		t.Fatalf("MarshalText() = %q, want %q", text, "01")
	}
}

func TestValue_UnmarshalText(t *testing.T) {
	valid := []struct {
		in   string
		want uint32
	}{
		{"01", 1},
		{" 20 ", 20},
		{"Z20", 20},
		{"z05", 5},
	}
	for _, tt := range valid {
		var v Value[Leaf]
		if err := v.UnmarshalText([]byte(tt.in)); err != nil {
			t.Fatalf("UnmarshalText(%q) unexpected error: %v", tt.in, err)
		}
		if v.Uint() != tt.want {
			t.Fatalf("UnmarshalText(%q) = %d, want %d", tt.in, v.Uint(), tt.want)
		}
	}

	invalid := []struct {
		in      string
		wantErr error
	}{
		{"", ErrSyntax},
		{"X20", ErrSyntax}, // wrong letter for the leaf domain
		{"-1", ErrSyntax},
		{"abc", ErrSyntax},
		{"100", ErrOutOfRange},
	}
	for _, tt := range invalid {
		var v Value[Leaf]
		err := v.UnmarshalText([]byte(tt.in))
		if !errors.Is(err, tt.wantErr) {
			t.Fatalf("UnmarshalText(%q) error = %v, want %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestValue_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = Value[Category]{}
	var _ encoding.TextUnmarshaler = (*Value[Category])(nil)
}

func TestBounds(t *testing.T) {
	lo, hi := Bounds[Category]()
	if lo != 1000 || hi != 4293 {
		t.Fatalf("Bounds[Category]() = (%d, %d)", lo, hi)
	}
}
