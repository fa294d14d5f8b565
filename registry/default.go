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

package registry

import (
	"dirpx.dev/errcode/code"
	"dirpx.dev/errcode/path"
)

var std = New()

// Default returns the process-wide registry.
func Default() *Registry { return std }

// Submit appends decls to the default registry.
func Submit(decls ...code.Declaration) { std.Submit(decls...) }

// Declare declares and submits into the default registry.
func Declare(cat code.Category, leaf path.Leaf) code.Declaration {
	return std.Declare(cat, leaf)
}
