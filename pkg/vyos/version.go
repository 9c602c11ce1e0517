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
	"strconv"
	"strings"
)

// Version identifies the software version running on the target device.
type Version string

const (
	V14 Version = "1.4"
	V15 Version = "1.5"
)

// Latest is the newest version this library knows about. Unrecognized
// version strings are treated as Latest on the read path so that devices
// newer than the library still get the most complete behavior.
const Latest = V15

// KnownVersions returns the versions with dedicated mapper behavior.
func KnownVersions() []Version {
	return []Version{V14, V15}
}

// Known reports whether v has dedicated mapper behavior.
func (v Version) Known() bool {
	for _, kv := range KnownVersions() {
		if v == kv {
			return true
		}
	}
	return false
}

// Normalize maps unrecognized versions to Latest. Callers that want strict
// version checking should validate with Known before entering the core.
func (v Version) Normalize() Version {
	if v.Known() {
		return v
	}
	return Latest
}

// AtLeast reports whether v is min or newer. Both versions are compared
// numerically on their major.minor components; unparsable versions are
// treated as newest.
func (v Version) AtLeast(min Version) bool {
	vMajor, vMinor, ok := v.components()
	if !ok {
		return true
	}
	mMajor, mMinor, ok := min.components()
	if !ok {
		return false
	}
	if vMajor != mMajor {
		return vMajor > mMajor
	}
	return vMinor >= mMinor
}

func (v Version) components() (int, int, bool) {
	parts := strings.SplitN(string(v), ".", 3)
	if len(parts) < 2 {
		return 0, 0, false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return major, minor, true
}

func (v Version) String() string {
	return string(v)
}
