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

package code_test

import (
	"fmt"

	"dirpx.dev/errcode/code"
	"dirpx.dev/errcode/path"
)

func ExampleCategory_Declare() {
	module := path.X(0, "product").Y(1, "system").Z(20, "module")
	cancelled := code.T(1100, "The operation was cancelled.")

	d := cancelled.Declare(module)
	fmt.Println(d.Code())
	fmt.Println(d)
	// Output:
	// 1100000120
	// The operation was cancelled. ErrCode(1100000120), X00(product)/Y01(system)/Z20(module)
}

func ExampleDecode() {
	flag, pathFlag, err := code.Decode(1004012003)
	if err != nil {
		panic(err)
	}
	fmt.Println(flag.Tagged(), path.FormatFlag(pathFlag))
	// Output: E1004 01.20.03
}
