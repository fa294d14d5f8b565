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
	"cmp"

	"dirpx.dev/errcode/path"
	"dirpx.dev/errcode/segment"
)

// NoDescription replaces an empty category text in Category.String.
const NoDescription = "<no description>"

// Category is an error kind: a validated four-digit flag plus a free-text
// description. It is independent of any path.
//
// Categories are usually declared once as package-level variables:
//
//	var NotFound = code.T(1004, "Some requested entity was not found.")
//
// The zero Category has no flag and cannot produce a code; Declare, Brief
// and Code panic on it.
type Category struct {
	flag segment.CategoryValue
	text string
}

// NewCategory builds a Category from an already validated flag.
func NewCategory(flag segment.CategoryValue, text string) Category {
	return Category{flag: flag, text: text}
}

// ParseCategory validates raw and builds a Category.
func ParseCategory(raw int, text string) (Category, error) {
	flag, err := segment.Of[segment.Category](raw)
	if err != nil {
		return Category{}, err
	}
	return NewCategory(flag, text), nil
}

// T is the panic-on-error variant of ParseCategory. It is meant for
// statically known flags in package-level var blocks.
func T(raw int, text string) Category {
	return NewCategory(segment.Must[segment.Category](raw), text)
}

// Flag returns the category flag.
func (c Category) Flag() segment.CategoryValue { return c.flag }

// Text returns the description, possibly empty.
func (c Category) Text() string { return c.text }

// IsZero reports whether c is the zero Category.
func (c Category) IsZero() bool { return c.flag.IsZero() && c.text == "" }

// WithText returns a copy of c with the description replaced. The flag is
// unchanged, so the resulting codes are identical.
func (c Category) WithText(text string) Category {
	c.text = text
	return c
}

// Declare pairs c with leaf. It panics if c has no flag.
func (c Category) Declare(leaf path.Leaf) Declaration {
	c.mustFlag()
	return Declaration{category: c, path: leaf}
}

// Brief is shorthand for c.Declare(leaf).Brief().
func (c Category) Brief(leaf path.Leaf) Brief {
	return c.Declare(leaf).Brief()
}

// Code is shorthand for Encode(c, leaf).
func (c Category) Code(leaf path.Leaf) uint32 {
	c.mustFlag()
	return Encode(c, leaf)
}

func (c Category) mustFlag() {
	if c.flag.IsZero() {
		panic("code: zero Category has no flag")
	}
}

// Message returns the text, or NoMessage when it is empty.
func (c Category) Message() string {
	if c.text == "" {
		return NoMessage
	}
	return c.text
}

// String renders the category as "{text} E{flag}".
func (c Category) String() string {
	text := c.text
	if text == "" {
		text = NoDescription
	}
	return text + " " + c.flag.Tagged()
}

// Compare orders categories by flag, then by text.
func (c Category) Compare(o Category) int {
	if r := c.flag.Compare(o.flag); r != 0 {
		return r
	}
	return cmp.Compare(c.text, o.text)
}
