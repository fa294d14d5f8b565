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

package errcode_test

import (
	"errors"
	"fmt"

	"dirpx.dev/errcode"
	"dirpx.dev/errcode/code"
	"dirpx.dev/errcode/path"
)

var (
	accounts = path.X(0, "shop").Y(1, "accounts")
	users    = accounts.Z(3, "users")

	ErrNoUser = errcode.Declare(code.NotFound, users)
)

func ExampleE() {
	err := fmt.Errorf("load profile: %w", errcode.E(ErrNoUser, errcode.WithDetailOption("user_id", 42)))

	e, _ := errcode.As(err)
	fmt.Println(e.Code)
	fmt.Println(e.Path)
	fmt.Println(errors.Is(err, errcode.E(ErrNoUser)))
	// Output:
	// 1004000103
	// X00(shop)/Y01(accounts)/Z03(users)
	// true
}
