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

package mapper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vyflow/vyflow/pkg/vyos"
	"github.com/vyflow/vyflow/pkg/vyos/mapper"
)

func TestDummyMapper_Paths(t *testing.T) {
	m := mapper.NewDummyMapper(vyos.V15)

	tests := []struct {
		name string
		got  vyos.CommandPath
		want string
	}{
		{"interface", m.Interface("dum0"), "interfaces dummy dum0"},
		{"description", m.Description("dum0", "loop"), "interfaces dummy dum0 description loop"},
		{"address", m.Address("dum0", "10.255.0.1/32"), "interfaces dummy dum0 address 10.255.0.1/32"},
		{"mtu", m.Mtu("dum0", "1400"), "interfaces dummy dum0 mtu 1400"},
		{"disable", m.Disable("dum0"), "interfaces dummy dum0 disable"},
		{"vrf", m.Vrf("dum0", "mgmt"), "interfaces dummy dum0 vrf mgmt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.String())
		})
	}
}

func TestDummyMapper_ParseInterfaces(t *testing.T) {
	m := mapper.NewDummyMapper(vyos.V15)
	summary := m.ParseInterfaces(vyos.ConfigTree{
		"dum0": map[string]interface{}{
			"address":     []interface{}{"10.255.0.1/32"},
			"description": "anycast",
			"vrf":         "blue",
		},
		"dum1": map[string]interface{}{},
	})

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, map[string]int{"dummy": 2}, summary.ByType)
	assert.Equal(t, map[string]int{"blue": 1}, summary.ByVrf)

	dum0 := summary.Interfaces[0]
	assert.Equal(t, "dummy", dum0.Type)
	assert.Equal(t, []string{"10.255.0.1/32"}, dum0.Addresses)
	assert.Equal(t, "anycast", *dum0.Description)

	// ethernet-only attributes never get populated for this family
	assert.Nil(t, dum0.Duplex)
	assert.Nil(t, dum0.Speed)
	assert.Nil(t, dum0.HwID)
	assert.Nil(t, dum0.Offload)
	assert.Nil(t, dum0.RingBuffer)
}
