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
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects a catalog serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for unsupported export formats.
var ErrUnknownFormat = errors.New("errcode: unknown catalog format")

// Formats lists the supported formats.
func Formats() []Format { return []Format{FormatJSON, FormatXML, FormatYAML} }

// ParseFormat normalizes s ("JSON", " yml ") into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func (f Format) String() string { return string(f) }

// Catalog is the XML document root wrapping the flattened tree.
type Catalog struct {
	XMLName xml.Name    `json:"-" yaml:"-" xml:"ErrorDeclarations"`
	Roots   []RootEntry `json:"roots" yaml:"roots" xml:"value"`
}

const indent = "  "

// Export serializes the catalog of s.
//
// JSON and YAML encode the TextTree as nested objects with arrays of
// messages; XML wraps the flattened key/value form in an
// <ErrorDeclarations> element. Output is deterministic for a fixed snapshot.
func (s Snapshot) Export(f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return exportJSON(s.TextTree())
	case FormatXML:
		return exportXML(s.Flatten())
	case FormatYAML:
		return exportYAML(s.TextTree())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// exportJSON keeps "<no message>" readable instead of \u003c-escaping it.
func exportJSON(t TextTree) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(t); err != nil {
		return nil, fmt.Errorf("errcode: encode catalog json: %w", err)
	}
	return buf.Bytes(), nil
}

func exportXML(roots []RootEntry) ([]byte, error) {
	body, err := xml.MarshalIndent(Catalog{Roots: roots}, "", indent)
	if err != nil {
		return nil, fmt.Errorf("errcode: encode catalog xml: %w", err)
	}
	out := append([]byte(xml.Header), body...)
	return append(out, '\n'), nil
}

func exportYAML(t TextTree) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(len(indent))
	if err := enc.Encode(t); err != nil {
		return nil, fmt.Errorf("errcode: encode catalog yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("errcode: encode catalog yaml: %w", err)
	}
	return buf.Bytes(), nil
}
