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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"

	"dirpx.dev/errcode/code"
)

const rulesYAML = `
fallback:
  http: 503
categories:
  - category: E2000
    http: 402
    grpc: FAILED_PRECONDITION
    prefixes:
      - path: "00.02"
        http: 502
        grpc: Unavailable
  - category: 1013
    prefixes:
      - path: X00/*/Z07
        grpc: 4
overrides:
  - code: 1004000201
    http: 410
`

func TestParseConfig_Mapper(t *testing.T) {
	cfg, err := ParseConfig([]byte(rulesYAML))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	m, err := cfg.Mapper()
	if err != nil {
		t.Fatalf("Mapper: %v", err)
	}

	billing := code.T(2000, "")
	tests := []struct {
		name     string
		code     uint32
		wantHTTP int
		wantGRPC codes.Code
	}{
		{"category default", billing.Code(cacheGet), 402, codes.FailedPrecondition},
		{"category prefix", billing.Code(dbPool), 502, codes.Unavailable},
		{"wildcard on builtin", code.Unavailable.Code(dbQuery), 503, codes.DeadlineExceeded},
		{"override keeps grpc default", code.NotFound.Code(dbPool), 410, codes.NotFound},
		{"fallback http only", code.T(3000, "").Code(dbPool), 503, codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := m.Status(tt.code)
			if st.HTTP != tt.wantHTTP || st.GRPC != tt.wantGRPC {
				t.Fatalf("Status(%d) = %+v; want HTTP=%d GRPC=%v", tt.code, st, tt.wantHTTP, tt.wantGRPC)
			}
		})
	}
}

func TestParseConfig_Empty(t *testing.T) {
	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	opts, err := cfg.Options()
	if err != nil || len(opts) != 0 {
		t.Fatalf("Options() = %d, %v; want none", len(opts), err)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"unknown field", "fallbacks: {http: 500}", "field fallbacks not found"},
		{"category range", "categories: [{category: E999}]", "out of range"},
		{"category syntax", "categories: [{category: bogus}]", "syntax"},
		{"grpc name", "fallback: {grpc: NOPE}", `unknown gRPC code "NOPE"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("ParseConfig error = %v; want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestConfig_OptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"missing category", "categories: [{http: 400}]", "missing category"},
		{"missing path", "categories: [{category: 2000, prefixes: [{http: 400}]}]", "missing path"},
		{"bad override code", "overrides: [{code: 42, http: 400}]", "overrides[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tt.doc))
			if err != nil {
				t.Fatalf("ParseConfig: %v", err)
			}
			_, err = cfg.Options()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Options error = %v; want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestConfig_InvalidStatusRejectedByNew(t *testing.T) {
	cfg, err := ParseConfig([]byte("categories: [{category: 2000, http: 700}]"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if _, err := cfg.Mapper(); err == nil {
		t.Fatal("expected HTTP status 700 to be rejected")
	}
}

func TestLoadConfig(t *testing.T) {
	name := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(name, []byte(rulesYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(name)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(cfg.Categories) != 2 || len(cfg.Overrides) != 1 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
