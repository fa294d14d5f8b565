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

// Package code composes error categories and classification paths into
// numeric error codes.
//
// A Category is a named error kind (flag 1000..4293 plus description). A
// Declaration pairs one Category with one path.Leaf and is the unit that gets
// encoded and cataloged. The wire-visible code is a pure positional
// concatenation:
//
//	code = category * 1_000_000 + path_flag
//
// so every code is exactly ten decimal digits in the range
// 1000000000..4293999999 and fits into a uint32. Changing any digit width is
// a breaking wire change.
//
// Example:
//
//	var (
//	    Module = path.X(0, "product").Y(1, "system").Z(20, "module")
//	    Cancel = code.T(1100, "The operation was cancelled.")
//	)
//
//	d := Cancel.Declare(Module)
//	d.Code()   // 1100000120
//	d.String() // "The operation was cancelled. ErrCode(1100000120), X00(product)/Y01(system)/Z20(module)"
//
// The package also ships a catalog of built-in categories modelled on gRPC
// status codes (Cancelled .. Unauthenticated, flags 1000..1015) together with
// their HTTP and gRPC transport statuses.
package code
