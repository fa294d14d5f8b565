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

// Package mapper provides deterministic, immutable mappings from numeric
// error codes (see dirpx.dev/errcode/code) to transport-level statuses for
// HTTP and gRPC.
//
// # Overview
//
// A code carries two things a transport can key on:
//
//  1. its category (E1013, the four leading digits),
//  2. its path (X00/Y02/Z01, the six trailing digits).
//
// Handlers and gRPC servers need to turn a code into concrete statuses.
// A Mapper is a snapshot, safe for concurrent reuse, and HTTP and gRPC are
// resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the full code;
//  2. per-category longest-prefix-match (LPM) on the path digits;
//  3. per-category default (library or user-adjusted);
//  4. global fallback (500 / codes.Internal).
//
// Codes that do not decode go straight to the fallback.
//
// Prefix rules are written as dotted segments ("00.02") or in tagged form
// ("X00/Y02"), and "*" matches exactly one segment:
//
//	WithHTTPPrefix(code.Unavailable, "00.02", http.StatusBadGateway)
//	WithHTTPPrefix(code.Unavailable, "X00/*/Z01", http.StatusServiceUnavailable)
//
// The more specific prefix wins.
//
// # Library defaults
//
// The built-in categories E1000..E1015 map to the statuses listed in package
// code (E1002 -> 400 / InvalidArgument, E1013 -> 503 / Unavailable, ...).
// Custom categories have no default.
//
// # Configuration
//
// Rules can also be loaded from YAML with ParseConfig or LoadConfig; see
// Config for the document layout.
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a code was resolved,
// including which tier matched and, for prefixes, which pattern was used.
package mapper
