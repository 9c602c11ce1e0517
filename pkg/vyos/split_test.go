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

package vyos_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vyflow/vyflow/pkg/vyos"
)

func TestSplitCompound(t *testing.T) {
	tests := []struct {
		name      string
		given     string
		want      []string
		wantError bool
	}{
		{"ok: two parts", "100,10.0.0.1/24", []string{"100", "10.0.0.1/24"}, false},
		{"ok: whitespace trimmed", " 100 , 10.0.0.1/24 ", []string{"100", "10.0.0.1/24"}, false},
		{"err: too few parts", "100", nil, true},
		{"err: too many parts", "100,200,300", nil, true},
		{"err: empty part", "100,", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := vyos.SplitCompound(tt.given, 2)
			if tt.wantError {
				var merr *vyos.MalformedValueError
				assert.True(t, errors.As(err, &merr))
			} else {
				assert.Nil(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSplitPair(t *testing.T) {
	vlan, addr, err := vyos.SplitPair("100,192.168.0.1/24")
	assert.Nil(t, err)
	assert.Equal(t, "100", vlan)
	assert.Equal(t, "192.168.0.1/24", addr)

	_, _, err = vyos.SplitPair("only-one")
	var merr *vyos.MalformedValueError
	assert.True(t, errors.As(err, &merr))
	assert.Equal(t, 2, merr.Want)
}
