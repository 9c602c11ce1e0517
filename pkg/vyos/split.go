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

// SplitCompound splits a comma-separated composite argument into exactly
// want parts. Batch endpoints use it for values such as "100,10.0.0.1/24"
// that carry a VLAN id together with an address.
func SplitCompound(value string, want int) ([]string, error) {
	parts := strings.Split(value, ",")
	if len(parts) != want {
		return nil, &MalformedValueError{Value: value, Want: want, Got: len(parts)}
	}
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
		if parts[i] == "" {
			return nil, &MalformedValueError{Value: value, Want: want, Got: len(parts) - 1}
		}
	}
	return parts, nil
}

// SplitPair splits a "first,second" composite argument.
func SplitPair(value string) (string, string, error) {
	parts, err := SplitCompound(value, 2)
	if err != nil {
		return "", "", err
	}
	return parts[0], parts[1], nil
}
