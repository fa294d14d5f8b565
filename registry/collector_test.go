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
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"dirpx.dev/errcode/code"
)

func TestCollector(t *testing.T) {
	r := fixture()
	r.Submit(code.NotFound.Declare(module))
	c := NewCollector(r)

	want := `
# HELP errcode_declarations Number of unique error code declarations per category.
# TYPE errcode_declarations gauge
errcode_declarations{category="E1000"} 1
errcode_declarations{category="E1004"} 1
errcode_declarations{category="E1100"} 1
# HELP errcode_submissions_total Number of declarations submitted, duplicates included.
# TYPE errcode_submissions_total counter
errcode_submissions_total 4
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(want)); err != nil {
		t.Fatalf("unexpected metrics: %v", err)
	}
}

func TestCollector_Registers(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(NewCollector(New())); err != nil {
		t.Fatalf("Register unexpected error: %v", err)
	}
	if n := testutil.CollectAndCount(NewCollector(New())); n != 1 {
		t.Fatalf("empty registry must only report submissions, got %d metrics", n)
	}
}
