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

// Package segment provides bounded integer values used as the digit groups
// of an errcode error code.
//
// A segment is a small unsigned integer confined to a fixed inclusive range
// and rendered as fixed-width, zero-padded decimal text. Every segment belongs
// to a Domain which carries the range, the rendering width and a one-letter
// role tag:
//
//   - Root     0..99      width 2  "X"
//   - Parent   0..99      width 2  "Y"
//   - Leaf     0..99      width 2  "Z"
//   - Category 1000..4293 width 4  "E"
//
// Values are immutable and compared by value, so they can be used as map
// keys and shared freely between goroutines.
//
// IMPORTANT: the range is checked once, at construction. There is no way to
// obtain an out-of-range Value other than the zero value of a domain whose
// lower bound is above zero (see Value.IsZero).
package segment
