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

package batch

import "github.com/vyflow/vyflow/pkg/vyos"

// Raw is the escape-hatch builder for config subtrees no typed builder
// covers yet. Paths are passed through verbatim with no version awareness,
// so the caller owns their validity.
type Raw struct {
	Batch
}

// NewRaw creates a raw batch builder for the given version.
func NewRaw(v vyos.Version) *Raw {
	return &Raw{Batch: newBatch(v)}
}

// Set appends a set operation for the given path segments.
func (b *Raw) Set(segments ...string) *Raw {
	b.AddSet(vyos.NewPath(segments...))
	return b
}

// Delete appends a delete operation for the given path segments.
func (b *Raw) Delete(segments ...string) *Raw {
	b.AddDelete(vyos.NewPath(segments...))
	return b
}
