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
	"encoding/json"
	"strconv"

	"dirpx.dev/errcode/path"
)

// NoMessage is substituted for an empty category text when rendering a Brief.
// It only affects display; the code is unchanged.
const NoMessage = "<no message>"

// Declaration is one concrete (category, path) pairing. It is a comparable
// value type and is never mutated after construction.
type Declaration struct {
	category Category
	path     path.Leaf
}

// NewDeclaration is equivalent to cat.Declare(leaf).
func NewDeclaration(cat Category, leaf path.Leaf) Declaration {
	return cat.Declare(leaf)
}

// Category returns the declared category.
func (d Declaration) Category() Category { return d.category }

// Path returns the declared leaf.
func (d Declaration) Path() path.Leaf { return d.path }

// Code returns the wire-visible numeric code.
func (d Declaration) Code() uint32 { return Encode(d.category, d.path) }

// Brief derives the (message, code) projection.
func (d Declaration) Brief() Brief {
	return Brief{message: d.category.Message(), code: d.Code()}
}

// String renders "{message} ErrCode({code}), {path}".
//
// This text is the identity used by registry deduplication.
func (d Declaration) String() string {
	return d.Brief().String() + ", " + d.path.String()
}

// Compare orders declarations by path, then by category.
func (d Declaration) Compare(o Declaration) int {
	if c := d.path.Compare(o.path); c != 0 {
		return c
	}
	return d.category.Compare(o.category)
}

// Brief is the derived (message, code) projection of a Declaration.
type Brief struct {
	message string
	code    uint32
}

var (
	_ json.Marshaler   = Brief{}
	_ json.Unmarshaler = (*Brief)(nil)
)

// Message returns the display message.
func (b Brief) Message() string { return b.message }

// Code returns the numeric code.
func (b Brief) Code() uint32 { return b.code }

// Tag renders "ErrCode({code})".
func (b Brief) Tag() string { return CodeTag(b.code) }

// String renders "{message} ErrCode({code})".
func (b Brief) String() string { return b.message + " " + b.Tag() }

type briefJSON struct {
	Code    uint32 `json:"code"`
	Message string `json:"message"`
}

// MarshalJSON encodes b as {"code":…,"message":…}.
func (b Brief) MarshalJSON() ([]byte, error) {
	return json.Marshal(briefJSON{Code: b.code, Message: b.message})
}

// UnmarshalJSON decodes the form produced by MarshalJSON.
func (b *Brief) UnmarshalJSON(data []byte) error {
	var v briefJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	b.code, b.message = v.Code, v.Message
	return nil
}

// CodeTag renders a code as "ErrCode({code})".
func CodeTag(code uint32) string {
	return "ErrCode(" + strconv.FormatUint(uint64(code), 10) + ")"
}
