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

package path

import (
	"errors"
	"testing"

	"dirpx.dev/errcode/segment"
)

var (
	product = X(0, "product")
	system  = product.Y(1, "system")
	module  = system.Z(20, "module")
)

func TestLeaf_StringAndFlag(t *testing.T) {
	if got, want := module.String(), "X00(product)/Y01(system)/Z20(module)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if got := module.Flag(); got != 120 {
		t.Fatalf("Flag() = %d, want 120", got)
	}
	if got := system.Flag(); got != 1 {
		t.Fatalf("Parent.Flag() = %d, want 1", got)
	}
	if got, want := system.String(), "X00(product)/Y01(system)"; got != want {
		t.Fatalf("Parent.String() = %q, want %q", got, want)
	}
}

func TestLabels(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{module.Root().Label(), "X00(product)"},
		{module.Parent().Label(), "Y01(system)"},
		{module.Label(), "Z20(module)"},
		{X(7, "").Label(), "X07()"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Fatalf("Label() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestFlag_Examples(t *testing.T) {
	tests := []struct {
		r, p, l int
		want    uint32
	}{
		{0, 0, 0, 0},
		{0, 1, 20, 120},
		{99, 99, 99, MaxFlag},
		{12, 34, 56, 123456},
		{1, 0, 0, 10000},
	}
	for _, tt := range tests {
		leaf := X(tt.r, "r").Y(tt.p, "p").Z(tt.l, "l")
		if got := leaf.Flag(); got != tt.want {
			t.Fatalf("Flag(%d,%d,%d) = %d, want %d", tt.r, tt.p, tt.l, got, tt.want)
		}
	}
}

func TestSplit_IsInverseOfFlag(t *testing.T) {
	for _, seg := range [][Depth]int{{0, 0, 0}, {0, 1, 20}, {99, 99, 99}, {5, 0, 7}} {
		leaf := X(seg[0], "").Y(seg[1], "").Z(seg[2], "")
		r, p, l, err := Split(leaf.Flag())
		if err != nil {
			t.Fatalf("Split(%d) unexpected error: %v", leaf.Flag(), err)
		}
		if got := leaf.Segments(); got != [Depth]uint32{r, p, l} {
			t.Fatalf("Split(%d) = (%d,%d,%d), Segments() = %v", leaf.Flag(), r, p, l, got)
		}
	}
	if _, _, _, err := Split(MaxFlag + 1); !errors.Is(err, ErrInvalidFlag) {
		t.Fatalf("Split(MaxFlag+1) error = %v, want ErrInvalidFlag", err)
	}
}

func TestFormatFlag(t *testing.T) {
	if got := FormatFlag(120); got != "00.01.20" {
		t.Fatalf("FormatFlag(120) = %q", got)
	}
	if got := FormatFlag(MaxFlag + 1); got != "!1000000" {
		t.Fatalf("FormatFlag(MaxFlag+1) = %q", got)
	}
}

func TestChildOf_RejectsOutOfRange(t *testing.T) {
	if _, err := ParseRoot(100, "x"); !errors.Is(err, segment.ErrOutOfRange) {
		t.Fatalf("ParseRoot(100) error = %v", err)
	}
	if _, err := product.ChildOf(-1, "y"); !errors.Is(err, segment.ErrOutOfRange) {
		t.Fatalf("ChildOf(-1) error = %v", err)
	}
	if _, err := system.ChildOf(100, "z"); !errors.Is(err, segment.ErrOutOfRange) {
		t.Fatalf("ChildOf(100) error = %v", err)
	}
	leaf, err := system.ChildOf(20, "module")
	if err != nil {
		t.Fatalf("ChildOf(20) unexpected error: %v", err)
	}
	if leaf != module {
		t.Fatalf("ChildOf and Z must build equal leaves")
	}
}

func TestZ_PanicsOnOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Z(100) should panic")
		}
	}()
	_ = system.Z(100, "bad")
}

func TestChildrenOwnAncestry(t *testing.T) {
	// Building siblings from the same parent must not affect each other.
	a := system.Z(1, "a")
	b := system.Z(2, "b")
	if a.Parent() != b.Parent() {
		t.Fatalf("siblings must share an equal parent value")
	}
	if a == b {
		t.Fatalf("different leaves must not be equal")
	}
}

func TestCompare(t *testing.T) {
	a := system.Z(1, "a")
	b := system.Z(2, "a")
	c := product.Y(2, "other").Z(0, "a")
	if a.Compare(b) >= 0 {
		t.Fatalf("Z01 must sort before Z02")
	}
	if b.Compare(c) >= 0 {
		t.Fatalf("Y01 ancestry must sort before Y02 ancestry")
	}
	if a.Compare(a) != 0 {
		t.Fatalf("Compare(self) != 0")
	}
	if X(1, "a").Compare(X(1, "b")) >= 0 {
		t.Fatalf("equal segments must fall back to name ordering")
	}
}
