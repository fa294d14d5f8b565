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

package adapter

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dirpx.dev/errcode"
	"dirpx.dev/errcode/apis"
	"dirpx.dev/errcode/code"
	"dirpx.dev/errcode/mapper"
	"dirpx.dev/errcode/path"
)

var users = path.X(0, "shop").Y(1, "accounts").Z(3, "users")

func TestDescribe(t *testing.T) {
	d := code.NotFound.Declare(users)
	got := Describe(d, mapper.Default())
	want := apis.ErrorDescriptor{
		Code:       1004000103,
		Category:   "E1004",
		Path:       "X00(shop)/Y01(accounts)/Z03(users)",
		Message:    "Some requested entity was not found.",
		HTTPStatus: 404,
		GRPCCode:   5,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Describe mismatch (-want +got):\n%s", diff)
	}
}

func TestDescribe_NilMapperAndEmptyText(t *testing.T) {
	got := Describe(code.T(2000, "").Declare(users), nil)
	if got.HTTPStatus != 0 || got.GRPCCode != 0 {
		t.Fatalf("nil mapper must leave statuses zero: %+v", got)
	}
	if got.Message != code.NoMessage {
		t.Fatalf("Message = %q, want %q", got.Message, code.NoMessage)
	}
}

func TestDescribeAll_KeepsOrder(t *testing.T) {
	decls := []code.Declaration{
		code.Unavailable.Declare(users),
		code.Cancelled.Declare(users),
	}
	got := DescribeAll(decls, mapper.Default())
	if len(got) != 2 || got[0].Category != "E1013" || got[1].Category != "E1000" {
		t.Fatalf("unexpected descriptors: %+v", got)
	}
	if got[1].HTTPStatus != code.StatusClientClosedRequest {
		t.Fatalf("Cancelled HTTP = %d", got[1].HTTPStatus)
	}
}

func TestToDescriptor(t *testing.T) {
	if got := ToDescriptor(nil, mapper.Default()); got != (apis.ErrorDescriptor{}) {
		t.Fatalf("nil error must give zero descriptor, got %+v", got)
	}
	e := errcode.E(code.Unavailable.Declare(users)).WithMessage("db down")
	got := ToDescriptor(e, mapper.Default())
	want := apis.ErrorDescriptor{
		Code:       1013000103,
		Category:   "E1013",
		Path:       "X00(shop)/Y01(accounts)/Z03(users)",
		Message:    "db down",
		HTTPStatus: 503,
		GRPCCode:   14,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ToDescriptor mismatch (-want +got):\n%s", diff)
	}

	bad := ToDescriptor(errcode.FromCode(42, "foreign"), mapper.Default())
	if bad.Category != "" || bad.HTTPStatus != 500 {
		t.Fatalf("undecodable code: %+v", bad)
	}
}

type coded struct{}

func (coded) Error() string     { return "remote failure" }
func (coded) ErrorCode() uint32 { return 1002000000 }
func (coded) ErrorDetails() []apis.Detail {
	return []apis.Detail{{Key: "field", Value: "name"}}
}

func TestToView(t *testing.T) {
	e := errcode.E(code.NotFound.Declare(users), errcode.WithDetailOption("user_id", 7))
	tests := []struct {
		name string
		err  error
		want apis.ErrorView
	}{
		{"nil", nil, apis.ErrorView{}},
		{
			"view provider wrapped",
			fmt.Errorf("lookup: %w", e),
			apis.ErrorView{
				Code:    1004000103,
				Message: "Some requested entity was not found.",
				Path:    "X00(shop)/Y01(accounts)/Z03(users)",
				Details: []apis.Detail{{Key: "user_id", Value: 7}},
			},
		},
		{
			"coded error",
			coded{},
			apis.ErrorView{
				Code:    1002000000,
				Message: "remote failure",
				Details: []apis.Detail{{Key: "field", Value: "name"}},
			},
		},
		{
			"plain error",
			errors.New("secret dsn in message"),
			apis.ErrorView{Code: UnclassifiedCode, Message: code.Internal.Message()},
		},
		{
			"typed nil error",
			(*errcode.Error)(nil),
			apis.ErrorView{Code: UnclassifiedCode, Message: code.Internal.Message()},
		},
		{
			"wrapped typed nil error",
			fmt.Errorf("lookup: %w", (*errcode.Error)(nil)),
			apis.ErrorView{Code: UnclassifiedCode, Message: code.Internal.Message()},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ToView(tt.err)); diff != "" {
				t.Fatalf("ToView mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnclassifiedCode(t *testing.T) {
	flag, pathFlag, err := code.Decode(UnclassifiedCode)
	if err != nil || flag != code.Internal.Flag() || pathFlag != 0 {
		t.Fatalf("Decode(UnclassifiedCode) = %v, %d, %v", flag, pathFlag, err)
	}
}
