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

package cli

// This file declares the error codes of the errcodes tool itself. They are
// submitted to registry.Default() during package initialization, so
// "errcodes catalog" always lists them.

import (
	"errors"
	"strings"

	"dirpx.dev/errcode"
	"dirpx.dev/errcode/code"
	"dirpx.dev/errcode/path"
)

var (
	tool     = path.X(9, "errcodes")
	input    = tool.Y(1, "input")
	rules    = tool.Y(2, "rules")
	catalogY = tool.Y(3, "catalog")
)

var (
	// ErrBadCategory: --category is not a valid category flag.
	ErrBadCategory = errcode.Declare(code.InvalidArgument, input.Z(1, "category"))

	// ErrBadPath: --path is not three valid segments.
	ErrBadPath = errcode.Declare(code.InvalidArgument, input.Z(2, "path"))

	// ErrBadCode: the argument is not a number that fits a code.
	ErrBadCode = errcode.Declare(code.InvalidArgument, input.Z(3, "code"))

	// ErrBadFormat: --format names no known catalog format.
	ErrBadFormat = errcode.Declare(code.InvalidArgument, input.Z(4, "format"))

	// ErrRules: the mapper rules file could not be loaded or built.
	ErrRules = errcode.Declare(code.FailedPrecondition, rules.Z(1, "load"))

	// ErrExport: the catalog could not be rendered.
	ErrExport = errcode.Declare(code.Internal, catalogY.Z(1, "export"))
)

// fail builds the error returned by a command. The cause keeps the
// underlying error reachable through errors.Is/As.
func fail(d code.Declaration, cause error) error {
	return errcode.E(d, errcode.WithCauseOption(cause))
}

// Report renders err for the terminal: the coded error on the first line,
// followed by its cause chain.
func Report(err error) string {
	var b strings.Builder
	b.WriteString(err.Error())
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		b.WriteString("\n  caused by: ")
		b.WriteString(cause.Error())
		if _, ok := cause.(*errcode.Error); !ok {
			break
		}
	}
	return b.String()
}
