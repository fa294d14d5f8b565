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
	"slices"
	"sync"

	"go.uber.org/zap"

	"dirpx.dev/errcode/code"
	"dirpx.dev/errcode/path"
)

// Registry is an append-only, concurrency-safe multiset of declarations.
// The zero value is not usable; call New.
type Registry struct {
	mu     sync.RWMutex
	decls  []code.Declaration
	logger *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for debug output.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithCapacity preallocates room for n submissions.
func WithCapacity(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.decls = make([]code.Declaration, 0, n)
		}
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Submit appends decls. Submissions are never retracted.
func (r *Registry) Submit(decls ...code.Declaration) {
	if len(decls) == 0 {
		return
	}
	r.mu.Lock()
	r.decls = append(r.decls, decls...)
	total := len(r.decls)
	r.mu.Unlock()

	if ce := r.logger.Check(zap.DebugLevel, "declarations submitted"); ce != nil {
		ce.Write(zap.Int("count", len(decls)), zap.Int("total", total), zap.Stringer("first", decls[0]))
	}
}

// Declare builds cat.Declare(leaf), submits it and returns it, so a
// declaration can be registered where it is defined.
func (r *Registry) Declare(cat code.Category, leaf path.Leaf) code.Declaration {
	d := cat.Declare(leaf)
	r.Submit(d)
	return d
}

// Len returns the number of submissions, duplicates included.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.decls)
}

// Snapshot captures the current submissions. Later submissions do not
// affect the returned value.
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.decls)
}

// All returns every submission in submission order.
func (r *Registry) All() []code.Declaration {
	return r.Snapshot()
}

// Unique returns submissions deduplicated by rendered text, in first-seen
// order.
func (r *Registry) Unique() []code.Declaration {
	snap := r.Snapshot()
	out := snap.Unique()
	r.logger.Debug("catalog deduplicated", zap.Int("all", len(snap)), zap.Int("unique", len(out)))
	return out
}

// Tree builds the structured catalog tree from a snapshot.
func (r *Registry) Tree() Tree { return r.Snapshot().Tree() }

// TextTree builds the rendered catalog tree from a snapshot.
func (r *Registry) TextTree() TextTree { return r.Snapshot().TextTree() }

// Flatten builds the ordered key/value form from a snapshot.
func (r *Registry) Flatten() []RootEntry { return r.Snapshot().Flatten() }

// Export serializes a snapshot in the given format.
func (r *Registry) Export(f Format) ([]byte, error) {
	snap := r.Snapshot()
	out, err := snap.Export(f)
	if err != nil {
		r.logger.Warn("catalog export failed", zap.Stringer("format", f), zap.Error(err))
		return nil, err
	}
	r.logger.Debug("catalog exported", zap.Stringer("format", f), zap.Int("declarations", len(snap)), zap.Int("bytes", len(out)))
	return out, nil
}

// JSON is shorthand for Export(FormatJSON).
func (r *Registry) JSON() ([]byte, error) { return r.Export(FormatJSON) }

// XML is shorthand for Export(FormatXML).
func (r *Registry) XML() ([]byte, error) { return r.Export(FormatXML) }

// YAML is shorthand for Export(FormatYAML).
func (r *Registry) YAML() ([]byte, error) { return r.Export(FormatYAML) }

// Snapshot is an immutable copy of registry contents in submission order.
type Snapshot []code.Declaration

// Unique deduplicates s by Declaration.String, keeping first-seen order.
func (s Snapshot) Unique() []code.Declaration {
	seen := make(map[string]struct{}, len(s))
	out := make([]code.Declaration, 0, len(s))
	for _, d := range s {
		key := d.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, d)
	}
	return out
}
