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

// Domain describes the static shape of a family of segment values.
//
// Implementations are zero-size marker types; they are never instantiated by
// callers and only select the domain as a type parameter of Value.
type Domain interface {
	// Bounds returns the inclusive range [lo, hi].
	Bounds() (lo, hi uint32)
	// Width is the number of decimal digits used when rendering a value.
	Width() int
	// Letter is the role tag prepended by Value.Tagged, e.g. "X" or "E".
	Letter() string
	// Name is a short human name used in error messages.
	Name() string
}

// Range limits of the built-in domains.
//
// They are untyped constants so that encoders can check the maximum
// composed code against the target integer width at compile time.
const (
	PathMin = 0
	PathMax = 99

	CategoryMin = 1000
	CategoryMax = 4293
)

// Root is the domain of the first (outermost) path level.
type Root struct{}

func (Root) Bounds() (lo, hi uint32) { return PathMin, PathMax }
func (Root) Width() int              { return 2 }
func (Root) Letter() string          { return "X" }
func (Root) Name() string            { return "root" }

// Parent is the domain of the middle path level.
type Parent struct{}

func (Parent) Bounds() (lo, hi uint32) { return PathMin, PathMax }
func (Parent) Width() int              { return 2 }
func (Parent) Letter() string          { return "Y" }
func (Parent) Name() string            { return "parent" }

// Leaf is the domain of the innermost path level.
type Leaf struct{}

func (Leaf) Bounds() (lo, hi uint32) { return PathMin, PathMax }
func (Leaf) Width() int              { return 2 }
func (Leaf) Letter() string          { return "Z" }
func (Leaf) Name() string            { return "leaf" }

// Category is the domain of error category flags. It occupies the four
// high-order digits of a composed error code.
type Category struct{}

func (Category) Bounds() (lo, hi uint32) { return CategoryMin, CategoryMax }
func (Category) Width() int              { return 4 }
func (Category) Letter() string          { return "E" }
func (Category) Name() string            { return "category" }

// Convenience aliases for the instantiated built-in domains.
type (
	RootValue     = Value[Root]
	ParentValue   = Value[Parent]
	LeafValue     = Value[Leaf]
	CategoryValue = Value[Category]
)
