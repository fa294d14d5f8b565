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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"google.golang.org/grpc/codes"
	"gopkg.in/yaml.v3"

	"dirpx.dev/errcode/apis"
	"dirpx.dev/errcode/code"
	"dirpx.dev/errcode/segment"
)

// Config is the YAML form of mapper rules:
//
//	fallback:
//	  http: 500
//	  grpc: INTERNAL
//	categories:
//	  - category: E2000
//	    http: 402
//	    grpc: FAILED_PRECONDITION
//	    prefixes:
//	      - path: "00.02"
//	        http: 502
//	overrides:
//	  - code: 1013000201
//	    http: 418
//	    grpc: 10
//
// Every status is optional. gRPC codes may be numbers or names.
type Config struct {
	Fallback   *Status        `yaml:"fallback,omitempty"`
	Categories []CategoryRule `yaml:"categories,omitempty"`
	Overrides  []CodeRule     `yaml:"overrides,omitempty"`
}

// Status is an optional pair of transport statuses.
type Status struct {
	HTTP *int      `yaml:"http,omitempty"`
	GRPC *GRPCCode `yaml:"grpc,omitempty"`
}

// CategoryRule sets the default statuses of a category and its path prefixes.
type CategoryRule struct {
	Category CategoryFlag `yaml:"category"`
	Status   `yaml:",inline"`
	Prefixes []PrefixRule `yaml:"prefixes,omitempty"`
}

// PrefixRule maps a path prefix ("00.02", "X00/*/Z01") within a category.
type PrefixRule struct {
	Path   string `yaml:"path"`
	Status `yaml:",inline"`
}

// CodeRule overrides the statuses of one exact code.
type CodeRule struct {
	Code   uint32 `yaml:"code"`
	Status `yaml:",inline"`
}

// CategoryFlag is a category flag written as 2000 or "E2000".
type CategoryFlag uint32

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *CategoryFlag) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("mapper: line %d: category must be a scalar", n.Line)
	}
	var v segment.CategoryValue
	if err := v.UnmarshalText([]byte(n.Value)); err != nil {
		return fmt.Errorf("mapper: line %d: %w", n.Line, err)
	}
	*f = CategoryFlag(v.Uint())
	return nil
}

// GRPCCode is a gRPC code written as a number (14) or a name
// (UNAVAILABLE, Unavailable).
type GRPCCode codes.Code

// UnmarshalYAML implements yaml.Unmarshaler.
func (g *GRPCCode) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("mapper: line %d: gRPC code must be a scalar", n.Line)
	}
	if i, err := strconv.Atoi(n.Value); err == nil {
		*g = GRPCCode(i)
		return nil
	}
	c, ok := grpcByName[strings.ToUpper(strings.TrimSpace(n.Value))]
	if !ok {
		return fmt.Errorf("mapper: line %d: unknown gRPC code %q", n.Line, n.Value)
	}
	*g = GRPCCode(c)
	return nil
}

var grpcByName = func() map[string]codes.Code {
	m := make(map[string]codes.Code, 2*(int(codes.Unauthenticated)+1))
	for c := codes.OK; c <= codes.Unauthenticated; c++ {
		m[grpcName(c)] = c
		m[strings.ToUpper(c.String())] = c
	}
	return m
}()

// ParseConfig decodes a YAML rules document. Unknown fields are rejected.
// An empty document yields an empty Config.
func ParseConfig(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("mapper: parse config: %w", err)
	}
	return &cfg, nil
}

// LoadConfig reads and parses a YAML rules file.
func LoadConfig(name string) (*Config, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("mapper: load config: %w", err)
	}
	return ParseConfig(data)
}

// Options converts the document into mapper options. Statuses are range
// checked later by New.
func (c *Config) Options() ([]Option, error) {
	if c == nil {
		return nil, nil
	}
	var opts []Option
	if fb := c.Fallback; fb != nil {
		opts = append(opts, func(b *builder) {
			if fb.HTTP != nil {
				b.fallbackHTTP = *fb.HTTP
			}
			if fb.GRPC != nil {
				b.fallbackGRPC = int(*fb.GRPC)
			}
		})
	}
	for i, r := range c.Categories {
		if r.Category == 0 {
			return nil, fmt.Errorf("mapper: categories[%d]: missing category", i)
		}
		cat := code.NewCategory(segment.Must[segment.Category](int(r.Category)), "")
		if r.HTTP != nil {
			opts = append(opts, WithHTTPDefault(cat, *r.HTTP))
		}
		if r.GRPC != nil {
			opts = append(opts, WithGRPCDefault(cat, int(*r.GRPC)))
		}
		for j, p := range r.Prefixes {
			if strings.TrimSpace(p.Path) == "" {
				return nil, fmt.Errorf("mapper: categories[%d].prefixes[%d]: missing path", i, j)
			}
			if p.HTTP != nil {
				opts = append(opts, WithHTTPPrefix(cat, p.Path, *p.HTTP))
			}
			if p.GRPC != nil {
				opts = append(opts, WithGRPCPrefix(cat, p.Path, int(*p.GRPC)))
			}
		}
	}
	for i, r := range c.Overrides {
		if _, _, err := code.Decode(r.Code); err != nil {
			return nil, fmt.Errorf("mapper: overrides[%d]: %w", i, err)
		}
		if r.HTTP != nil {
			opts = append(opts, WithHTTPOverride(r.Code, *r.HTTP))
		}
		if r.GRPC != nil {
			opts = append(opts, WithGRPCOverride(r.Code, int(*r.GRPC)))
		}
	}
	return opts, nil
}

// Mapper builds a mapper from the library defaults plus the rules in c and
// any extra options, applied last.
func (c *Config) Mapper(extra ...Option) (apis.Mapper, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return New(append(opts, extra...)...)
}
