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
	"bytes"
	"cmp"
	"encoding"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Value is a validated segment of domain D.
//
// It is defined as a struct with a single unexported field so that the only
// ways to obtain a non-zero Value are Of, Must and UnmarshalText, all of
// which enforce the domain range.
type Value[D Domain] struct {
	v uint32
}

var (
	// ErrOutOfRange is matched (via errors.Is) by every *RangeError.
	ErrOutOfRange = errors.New("errcode: segment out of range")

	// ErrSyntax is returned by UnmarshalText when the text is not a
	// (optionally tagged) decimal number.
	ErrSyntax = errors.New("errcode: invalid segment syntax")
)

// RangeError reports a raw integer that does not fit a segment domain.
type RangeError struct {
	Domain string
	Raw    int64
	Lo, Hi uint32
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("errcode: %s segment %d out of range [%d, %d]", e.Domain, e.Raw, e.Lo, e.Hi)
}

// Is makes errors.Is(err, ErrOutOfRange) succeed for any RangeError.
func (e *RangeError) Is(target error) bool { return target == ErrOutOfRange }

// Ensure Value implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into config structs and catalogs.
var (
	_ encoding.TextMarshaler   = Value[Root]{}
	_ encoding.TextUnmarshaler = (*Value[Root])(nil)
)

// Of validates raw against the range of D.
// On failure it returns the zero Value and a *RangeError.
func Of[D Domain](raw int) (Value[D], error) {
	return of[D](int64(raw))
}

// Must is the panic-on-error variant of Of. It is meant for statically known
// literals in package-level var blocks.
func Must[D Domain](raw int) Value[D] {
	v, err := Of[D](raw)
	if err != nil {
		panic(err)
	}
	return v
}

// Bounds returns the inclusive range of D.
func Bounds[D Domain]() (lo, hi uint32) {
	var d D
	return d.Bounds()
}

func of[D Domain](raw int64) (Value[D], error) {
	var d D
	lo, hi := d.Bounds()
	if raw < int64(lo) || raw > int64(hi) {
		return Value[D]{}, &RangeError{Domain: d.Name(), Raw: raw, Lo: lo, Hi: hi}
	}
	return Value[D]{v: uint32(raw)}, nil
}

// Uint returns the numeric value.
func (v Value[D]) Uint() uint32 { return v.v }

// IsZero reports whether v is the zero Value. For domains whose lower bound
// is above zero (Category) the zero Value is not a valid member.
func (v Value[D]) IsZero() bool { return v.v == 0 }

// Valid reports whether v lies within the range of D.
func (v Value[D]) Valid() bool {
	var d D
	lo, hi := d.Bounds()
	return v.v >= lo && v.v <= hi
}

// String returns the value zero-padded to the domain width, e.g. "07".
func (v Value[D]) String() string {
	var d D
	s := strconv.FormatUint(uint64(v.v), 10)
	if pad := d.Width() - len(s); pad > 0 {
		s = strings.Repeat("0", pad) + s
	}
	return s
}

// Tagged returns the value prefixed with the domain letter, e.g. "X07".
func (v Value[D]) Tagged() string {
	var d D
	return d.Letter() + v.String()
}

// Compare orders values numerically. It returns -1, 0 or +1.
func (v Value[D]) Compare(o Value[D]) int { return cmp.Compare(v.v, o.v) }

// MarshalText implements encoding.TextMarshaler.
//
// It returns the zero-padded digits without the role letter.
func (v Value[D]) MarshalText() ([]byte, error) {
	if !v.Valid() {
		var d D
		lo, hi := d.Bounds()
		return nil, &RangeError{Domain: d.Name(), Raw: int64(v.v), Lo: lo, Hi: hi}
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It accepts the plain digits ("07") or the tagged form ("X07"); the letter,
// when present, must match the domain (case-insensitive).
func (v *Value[D]) UnmarshalText(text []byte) error {
	var d D
	s := string(bytes.TrimSpace(text))
	if rest, ok := strings.CutPrefix(strings.ToUpper(s), d.Letter()); ok {
		s = rest
	}
	if s == "" || s[0] == '+' || s[0] == '-' {
		return fmt.Errorf("%w: %q", ErrSyntax, string(text))
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrSyntax, string(text))
	}
	parsed, err := of[D](n)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
