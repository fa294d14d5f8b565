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

package apis

// CodedError is an error classified by a numeric errcode code.
//
// The code is the ten-digit value composed from a category and a path, e.g.
// 1004012003. Adapters treat errors that do not implement CodedError, or
// whose code does not decode, as internal errors.
type CodedError interface {
	error

	// ErrorCode returns the wire-visible numeric code.
	ErrorCode() uint32
}

// PathedError exposes the rendered classification path of the declaration
// that produced the error, e.g. "X00(product)/Y01(system)/Z20(module)".
//
// The path is informational. The code already carries the path digits.
type PathedError interface {
	error

	// ErrorPath returns the rendered path. May be empty.
	ErrorPath() string
}

// DetailedError exposes structured details.
//
// Implementations return a fresh slice ordered by key. Returning nil means
// "no extra details".
type DetailedError interface {
	error

	// ErrorDetails returns structured details of the error. May return nil.
	ErrorDetails() []Detail
}

// CausedError exposes the direct underlying cause, if any.
type CausedError interface {
	error

	// Cause returns the underlying error. May return nil.
	Cause() error
}
