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

// Package path implements the three-level classification hierarchy that
// forms the low-order digits of an errcode error code.
//
// A path is a chain Root -> Parent -> Leaf, typically product -> system ->
// module. Each level wraps one two-digit segment and a free-text label:
//
//	var (
//	    Product = path.X(0, "product")
//	    System  = Product.Y(1, "system")
//	    Module  = System.Z(20, "module")
//	)
//
//	Module.String() // "X00(product)/Y01(system)/Z20(module)"
//	Module.Flag()   // 120
//
// Children carry their whole ancestry by value, so a Leaf is a self-contained
// comparable value that can be copied, compared and used as a map key.
package path
