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

import "strings"

// CommandPath is the ordered sequence of tree segments addressing a node in
// the device configuration tree. A path produced for a set operation carries
// the leaf value as its last segment.
type CommandPath []string

// NewPath creates a CommandPath from the given segments.
func NewPath(segments ...string) CommandPath {
	p := make(CommandPath, len(segments))
	copy(p, segments)
	return p
}

// Extend returns a new CommandPath with the given segments appended.
// The receiver is never modified.
func (p CommandPath) Extend(segments ...string) CommandPath {
	np := make(CommandPath, 0, len(p)+len(segments))
	np = append(np, p...)
	np = append(np, segments...)
	return np
}

// Copy returns an independent copy of the path.
func (p CommandPath) Copy() CommandPath {
	np := make(CommandPath, len(p))
	copy(np, p)
	return np
}

// HasPrefix reports whether prefix is a prefix of p.
func (p CommandPath) HasPrefix(prefix CommandPath) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i, s := range prefix {
		if p[i] != s {
			return false
		}
	}
	return true
}

func (p CommandPath) String() string {
	return strings.Join(p, " ")
}
