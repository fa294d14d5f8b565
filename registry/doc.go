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

// Package registry collects error-code declarations into a catalog.
//
// Declarations are submitted from wherever they are declared, typically in
// package-level var blocks so that every submission happens during package
// initialization:
//
//	var ErrNoUser = registry.Declare(code.NotFound, users.Lookup)
//
// The registry is append-only. Reads (All, Unique, Tree and the exporters)
// work on a Snapshot captured under a read lock, so they may run
// concurrently with further submissions.
//
// Two renderings of the same Declaration are considered the same catalog
// entry: Unique deduplicates by Declaration.String, not by struct equality.
//
// A process-wide instance is available through Default and the package-level
// Submit and Declare helpers. Independent registries can be created with New,
// which is mostly useful in tests.
package registry
