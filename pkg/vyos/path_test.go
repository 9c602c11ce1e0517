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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vyflow/vyflow/pkg/vyos"
)

func TestCommandPath_Extend(t *testing.T) {
	base := vyos.NewPath("interfaces", "ethernet", "eth0")

	got := base.Extend("mtu", "9000")
	assert.Equal(t, vyos.NewPath("interfaces", "ethernet", "eth0", "mtu", "9000"), got)
	assert.Equal(t, vyos.NewPath("interfaces", "ethernet", "eth0"), base)
}

func TestCommandPath_ExtendDoesNotShareBacking(t *testing.T) {
	base := vyos.NewPath("interfaces", "ethernet", "eth0")
	p1 := base.Extend("mtu", "9000")
	p2 := base.Extend("description", "uplink")

	assert.Equal(t, "interfaces ethernet eth0 mtu 9000", p1.String())
	assert.Equal(t, "interfaces ethernet eth0 description uplink", p2.String())
}

func TestCommandPath_HasPrefix(t *testing.T) {
	tests := []struct {
		name   string
		path   vyos.CommandPath
		prefix vyos.CommandPath
		want   bool
	}{
		{
			"ok: strict prefix",
			vyos.NewPath("interfaces", "ethernet", "eth0", "mtu", "9000"),
			vyos.NewPath("interfaces", "ethernet", "eth0"),
			true,
		},
		{
			"ok: equal paths",
			vyos.NewPath("interfaces", "ethernet", "eth0"),
			vyos.NewPath("interfaces", "ethernet", "eth0"),
			true,
		},
		{
			"ok: not a prefix",
			vyos.NewPath("interfaces", "ethernet", "eth0"),
			vyos.NewPath("interfaces", "dummy"),
			false,
		},
		{
			"ok: prefix longer than path",
			vyos.NewPath("interfaces"),
			vyos.NewPath("interfaces", "ethernet"),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.path.HasPrefix(tt.prefix))
		})
	}
}

func TestCommandPath_Copy(t *testing.T) {
	base := vyos.NewPath("interfaces", "ethernet", "eth0")
	cp := base.Copy()
	cp[2] = "eth1"
	assert.Equal(t, "eth0", base[2])
}
