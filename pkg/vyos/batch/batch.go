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

// Package batch accumulates ordered set/delete operations for submission as
// one atomic multi-operation request. Builders are single-writer: one batch
// per logical request, never shared across goroutines.
package batch

import "github.com/vyflow/vyflow/pkg/vyos"

// Batch is the ordered operation list shared by all builders. Operations are
// appended in call order and never reordered or deduplicated; their order is
// semantically meaningful (a VLAN must be created before its address is set).
//
// A batch is single-shot: MarkConsumed flips it to consumed on execution and
// a second execution fails until Clear re-arms it. Re-sending a delete for an
// already-absent path errors on some devices, so silent re-execution is not
// worth the convenience.
type Batch struct {
	version  vyos.Version
	ops      []vyos.Operation
	consumed bool
}

func newBatch(v vyos.Version) Batch {
	return Batch{version: v}
}

// Version returns the device software version this batch is scoped to.
func (b *Batch) Version() vyos.Version {
	return b.version
}

// AddSet appends a set operation.
func (b *Batch) AddSet(path vyos.CommandPath) *Batch {
	b.ops = append(b.ops, vyos.SetOp(path))
	return b
}

// AddDelete appends a delete operation.
func (b *Batch) AddDelete(path vyos.CommandPath) *Batch {
	b.ops = append(b.ops, vyos.DeleteOp(path))
	return b
}

// AddSets appends a set operation for each path in order.
func (b *Batch) AddSets(paths []vyos.CommandPath) *Batch {
	for _, p := range paths {
		b.AddSet(p)
	}
	return b
}

// Operations returns a copy of the queued operations. Mutating the returned
// slice does not affect the batch.
func (b *Batch) Operations() []vyos.Operation {
	ops := make([]vyos.Operation, len(b.ops))
	copy(ops, b.ops)
	return ops
}

// OperationCount returns the number of queued operations.
func (b *Batch) OperationCount() int {
	return len(b.ops)
}

// IsEmpty reports whether no operations are queued.
func (b *Batch) IsEmpty() bool {
	return len(b.ops) == 0
}

// Clear removes all queued operations and re-arms a consumed batch.
func (b *Batch) Clear() {
	b.ops = nil
	b.consumed = false
}

// MarkConsumed flips the batch to consumed. It fails when the batch was
// already executed, guarding against accidental double submission.
func (b *Batch) MarkConsumed() error {
	if b.consumed {
		return &vyos.BatchConsumedError{}
	}
	b.consumed = true
	return nil
}

// Consumed reports whether the batch has been executed.
func (b *Batch) Consumed() bool {
	return b.consumed
}
