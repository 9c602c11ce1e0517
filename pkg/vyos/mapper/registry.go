/*
 Copyright (c) 2023 vyflow authors

 Permission is hereby granted, free of charge, to any person obtaining a copy
 of this software and associated documentation files (the "Software"), to deal
 in the Software without restriction, including without limitation the rights
 to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 copies of the Software, and to permit persons to whom the Software is
 furnished to do so, subject to the following conditions:

 The above copyright notice and this permission notice shall be included in
 all copies or substantial portions of the Software.

 THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
 THE SOFTWARE.
*/

// Package mapper translates typed configuration attributes into the command
// paths of a specific device software version, and parses raw configuration
// subtrees back into normalized version-independent records.
package mapper

import (
	"github.com/vyflow/vyflow/internal/util"
	"github.com/vyflow/vyflow/pkg/vyos"
)

// Feature family names.
const (
	FamilyEthernet = "interface_ethernet"
	FamilyDummy    = "interface_dummy"
)

// FeatureMapper is one feature family's translator, bound to a device
// software version. Implementations are stateless aside from the version and
// safe for concurrent use.
type FeatureMapper interface {
	Family() string
	Version() vyos.Version
}

// Constructor builds a mapper instance for the given version. Families with
// version-specific behavior register a factory that selects the right
// override set; others register their plain constructor.
type Constructor func(v vyos.Version) FeatureMapper

// Registry is the catalog of feature families. It is built once by
// NewRegistry and read-only afterwards, so concurrent reads need no locking.
type Registry struct {
	factories map[string]Constructor
}

// NewRegistry builds the registry with all built-in feature families
// registered in a fixed order. Registration is explicit rather than driven
// by package import side effects.
func NewRegistry() *Registry {
	r := &Registry{factories: map[string]Constructor{}}
	r.Register(FamilyEthernet, func(v vyos.Version) FeatureMapper { return NewEthernetMapper(v) })
	r.Register(FamilyDummy, func(v vyos.Version) FeatureMapper { return NewDummyMapper(v) })
	return r
}

// Register associates a family name with its constructor. The last
// registration for a name wins.
func (r *Registry) Register(family string, c Constructor) {
	r.factories[family] = c
}

// Resolve returns a fresh mapper instance for the family and version.
// Mappers are cheap to construct, so nothing is cached between calls.
func (r *Registry) Resolve(family string, v vyos.Version) (FeatureMapper, error) {
	c, ok := r.factories[family]
	if !ok {
		return nil, &vyos.UnknownFeatureError{Feature: family}
	}
	return c(v), nil
}

// ResolveAll returns one mapper instance per registered family, keyed by
// family name.
func (r *Registry) ResolveAll(v vyos.Version) map[string]FeatureMapper {
	all := make(map[string]FeatureMapper, len(r.factories))
	for name, c := range r.factories {
		all[name] = c(v)
	}
	return all
}

// Families returns the registered family names in sorted order.
func (r *Registry) Families() []string {
	return util.SortedMapKeys(r.factories)
}
