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

package code

import (
	"errors"
	"fmt"
	"math/bits"

	"dirpx.dev/errcode/path"
	"dirpx.dev/errcode/segment"
)

const (
	// Multiplier shifts the category above the path block: 10^path.Digits.
	Multiplier = 1_000_000

	// MinCode is the smallest composable code (E1000 at X00/Y00/Z00).
	MinCode = segment.CategoryMin * Multiplier

	// MaxCode is the largest composable code (E4293 at X99/Y99/Z99).
	MaxCode = segment.CategoryMax*Multiplier + path.MaxFlag
)

// The compiler rejects these declarations if the configured ranges stop
// fitting the wire type or the path block grows past the multiplier.
const (
	_ uint32 = MaxCode
	_ uint32 = Multiplier - path.MaxFlag - 1
)

var (
	// ErrOverflow is matched by every *OverflowError.
	ErrOverflow = errors.New("errcode: encoding overflow")

	// ErrInvalidCode is matched by every *DecodeError.
	ErrInvalidCode = errors.New("errcode: invalid code")
)

// Encode composes the wire-visible code for (cat, leaf).
//
// Both operands are validated at construction and MaxCode is checked
// against uint32 at compile time, so Encode cannot fail. A zero Category
// yields a path-only value below MinCode, which Decode rejects.
func Encode(cat Category, leaf path.Leaf) uint32 {
	return cat.flag.Uint()*Multiplier + leaf.Flag()
}

// Decode splits a code into its category flag and path flag.
// Decode(Encode(c, l)) returns (c.Flag(), l.Flag(), nil).
func Decode(code uint32) (segment.CategoryValue, uint32, error) {
	flag, err := segment.Of[segment.Category](int(code / Multiplier))
	if err != nil {
		return segment.CategoryValue{}, 0, &DecodeError{Code: code, Err: err}
	}
	return flag, code % Multiplier, nil
}

// DecodeError reports a number that is not a composable code.
type DecodeError struct {
	Code uint32
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("errcode: invalid code %d: %v", e.Code, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrInvalidCode }

// OverflowError reports an Append step whose result does not fit uint32.
type OverflowError struct {
	Acc     uint32
	Segment uint32
	Width   int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("errcode: encoding overflow appending %d (width %d) to %d", e.Segment, e.Width, e.Acc)
}

func (e *OverflowError) Is(target error) bool { return target == ErrOverflow }

// Append is the variable-depth encoder. For every segment it computes
// acc = acc*10^width + seg with checked multiply and add, so the result is
// either exact or an *OverflowError. It never returns a truncated value.
//
// Building a path flag by hand is equivalent to Leaf.Flag:
//
//	code.Append(0, x, y, z) // with x, y, z of the same two-digit domain
func Append[D segment.Domain](acc uint32, segs ...segment.Value[D]) (uint32, error) {
	var d D
	mul := pow10(d.Width())
	for _, s := range segs {
		hi, lo := bits.Mul32(acc, mul)
		if hi != 0 {
			return 0, &OverflowError{Acc: acc, Segment: s.Uint(), Width: d.Width()}
		}
		sum, carry := bits.Add32(lo, s.Uint(), 0)
		if carry != 0 {
			return 0, &OverflowError{Acc: acc, Segment: s.Uint(), Width: d.Width()}
		}
		acc = sum
	}
	return acc, nil
}

// MustAppend is like Append but panics on overflow. Overflow means the
// declared domains are malformed, which should stop the program at
// declaration time.
func MustAppend[D segment.Domain](acc uint32, segs ...segment.Value[D]) uint32 {
	v, err := Append(acc, segs...)
	if err != nil {
		panic(err)
	}
	return v
}

func pow10(n int) uint32 {
	p := uint32(1)
	for range n {
		p *= 10
	}
	return p
}
