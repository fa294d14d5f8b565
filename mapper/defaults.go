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

package mapper

import (
	"sync"

	"google.golang.org/grpc/codes"

	"dirpx.dev/errcode/apis"
	"dirpx.dev/errcode/code"
)

// defaultHTTP and defaultGRPC hold the built-in statuses of the gRPC-style
// categories in package code (E1000 Cancelled .. E1015 Unauthenticated),
// keyed by category flag. Custom categories have no default and resolve to
// the fallback unless configured.
var defaultHTTP, defaultGRPC = builtinDefaults()

func builtinDefaults() (map[uint32]int, map[uint32]codes.Code) {
	builtin := code.Builtin()
	h := make(map[uint32]int, len(builtin))
	g := make(map[uint32]codes.Code, len(builtin))
	for _, c := range builtin {
		flag := c.Flag().Uint()
		if st, ok := code.HTTPStatus(flag); ok {
			h[flag] = st
		}
		if gc, ok := code.GRPCCode(flag); ok {
			g[flag] = gc
		}
	}
	return h, g
}

var defaultMapper = sync.OnceValue(func() apis.Mapper {
	m, err := New()
	if err != nil {
		// Built-in defaults are static; failing here is a programming error.
		panic(err)
	}
	return m
})

// Default returns a shared mapper with library defaults only.
func Default() apis.Mapper { return defaultMapper() }
