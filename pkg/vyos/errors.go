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

import "fmt"

// UnknownFeatureError is returned when a feature family was never registered.
// It always indicates a wiring bug, not a runtime condition worth retrying.
type UnknownFeatureError struct {
	Feature string
}

func (e *UnknownFeatureError) Error() string {
	return fmt.Sprintf("unknown feature: %s", e.Feature)
}

// UnsupportedFeatureError is returned when an attribute exists in the schema
// but not for the bound device version.
type UnsupportedFeatureError struct {
	Feature    string
	Version    Version
	MinVersion Version
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("%s requires version %s or newer, device is running %s",
		e.Feature, e.MinVersion, e.Version)
}

// EmptyBatchError is returned when execution is attempted on a batch with
// zero queued operations.
type EmptyBatchError struct{}

func (e *EmptyBatchError) Error() string {
	return "cannot execute empty batch"
}

// BatchConsumedError is returned when a batch that has already been submitted
// is executed again without an explicit Clear.
type BatchConsumedError struct{}

func (e *BatchConsumedError) Error() string {
	return "batch already executed: call Clear to reuse it"
}

// MalformedValueError is returned when a composite string argument does not
// split into the expected number of parts.
type MalformedValueError struct {
	Value string
	Want  int
	Got   int
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("malformed value %q: want %d comma-separated parts, got %d",
		e.Value, e.Want, e.Got)
}

// ConfigParseError is returned when the raw configuration tree cannot be
// decoded as the expected nested-map shape.
type ConfigParseError struct {
	Reason string
	Err    error
}

func (e *ConfigParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse config tree: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parse config tree: %s", e.Reason)
}

func (e *ConfigParseError) Unwrap() error {
	return e.Err
}
