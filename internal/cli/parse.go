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

import (
	"fmt"
	"strconv"
	"strings"

	"dirpx.dev/errcode/code"
	"dirpx.dev/errcode/path"
	"dirpx.dev/errcode/segment"
)

// parseCategory accepts "1004" or "E1004".
func parseCategory(s string) (code.Category, error) {
	var v segment.CategoryValue
	if err := v.UnmarshalText([]byte(s)); err != nil {
		return code.Category{}, err
	}
	if c, ok := code.Lookup(v.Uint()); ok {
		return c, nil
	}
	return code.NewCategory(v, ""), nil
}

// parseLeaf accepts "00.01.20", "0/1/20" or "X00/Y01/Z20". Levels have no
// names.
func parseLeaf(s string) (path.Leaf, error) {
	parts := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool { return r == '.' || r == '/' })
	if len(parts) != path.Depth {
		return path.Leaf{}, fmt.Errorf("path %q: want %d segments, got %d", s, path.Depth, len(parts))
	}
	var (
		r segment.RootValue
		p segment.ParentValue
		l segment.LeafValue
	)
	if err := r.UnmarshalText([]byte(parts[0])); err != nil {
		return path.Leaf{}, err
	}
	if err := p.UnmarshalText([]byte(parts[1])); err != nil {
		return path.Leaf{}, err
	}
	if err := l.UnmarshalText([]byte(parts[2])); err != nil {
		return path.Leaf{}, err
	}
	return path.NewRoot(r, "").Child(p, "").Child(l, ""), nil
}

// parseCode accepts a decimal code that fits in 32 bits.
func parseCode(s string) (uint32, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}
