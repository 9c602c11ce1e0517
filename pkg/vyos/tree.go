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

package vyos

import (
	"encoding/json"
	"fmt"
)

// ConfigTree is the raw device configuration export: an arbitrarily nested
// mapping of string keys to scalars, lists of scalars, or nested mappings.
// The core only slices it into feature subtrees and reads leaf values.
type ConfigTree map[string]interface{}

// DecodeConfigTree decodes the JSON configuration export of a device.
func DecodeConfigTree(data []byte) (ConfigTree, error) {
	var tree ConfigTree
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, &ConfigParseError{Reason: "config export is not a JSON object", Err: err}
	}
	return tree, nil
}

// AsConfigTree converts a decoded JSON value into a ConfigTree, failing when
// the value is not an object.
func AsConfigTree(v interface{}) (ConfigTree, error) {
	switch t := v.(type) {
	case nil:
		return ConfigTree{}, nil
	case ConfigTree:
		return t, nil
	case map[string]interface{}:
		return ConfigTree(t), nil
	default:
		return nil, &ConfigParseError{Reason: fmt.Sprintf("expected nested map, got %T", v)}
	}
}

// Subtree walks the given key path and returns the nested tree found there.
// Missing keys and non-map values yield an empty tree.
func (t ConfigTree) Subtree(keys ...string) ConfigTree {
	cur := t
	for _, k := range keys {
		next, ok := cur[k].(map[string]interface{})
		if !ok {
			return ConfigTree{}
		}
		cur = next
	}
	return cur
}

// Has reports whether the key is present at the top level. Presence alone is
// meaningful for flag-style nodes such as "disable".
func (t ConfigTree) Has(key string) bool {
	_, ok := t[key]
	return ok
}

// String returns the scalar string stored under key, or nil when the key is
// absent or not a scalar.
func (t ConfigTree) String(key string) *string {
	s, ok := t[key].(string)
	if !ok {
		return nil
	}
	return &s
}

// StringList returns the value under key normalized to a list of strings.
// Device exports are inconsistent about cardinality-1 values: a single
// address may arrive as a bare string instead of a one-element list.
func (t ConfigTree) StringList(key string) []string {
	switch v := t[key].(type) {
	case string:
		return []string{v}
	case []interface{}:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
