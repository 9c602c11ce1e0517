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

func ethernetSubtree() vyos.ConfigTree {
	return vyos.ConfigTree{
		"eth0": map[string]interface{}{
			"address":     "10.0.0.1/24",
			"description": "uplink",
			"vrf":         "mgmt",
			"mtu":         "9000",
			"duplex":      "full",
			"speed":       "1000",
			"hw-id":       "00:11:22:33:44:55",
			"offload": map[string]interface{}{
				"gro": map[string]interface{}{},
				"tso": map[string]interface{}{},
			},
			"ip": map[string]interface{}{
				"adjust-mss":                "1400",
				"enable-directed-broadcast": map[string]interface{}{},
			},
			"vif": map[string]interface{}{
				"100": map[string]interface{}{
					"address":     []interface{}{"192.168.1.1/24", "192.168.1.2/24"},
					"description": "tenant-a",
				},
			},
			"vif-s": map[string]interface{}{
				"200": map[string]interface{}{
					"vif-c": map[string]interface{}{
						"300": map[string]interface{}{
							"address": "172.16.0.1/24",
						},
					},
				},
			},
		},
		"eth1": map[string]interface{}{
			"disable": map[string]interface{}{},
		},
		"eth2": "bogus-scalar-entry",
	}
}

func TestEthernetMapper_ParseInterfaces(t *testing.T) {
	m := mapper.NewEthernetMapper(vyos.V15)
	summary := m.ParseInterfaces(ethernetSubtree())

	// non-map entry eth2 is skipped
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, map[string]int{"ethernet": 2}, summary.ByType)

	// interfaces without a vrf never appear in the histogram
	assert.Equal(t, map[string]int{"mgmt": 1}, summary.ByVrf)

	eth0 := summary.Interfaces[0]
	assert.Equal(t, "eth0", eth0.Name)
	assert.Equal(t, "ethernet", eth0.Type)
	assert.Equal(t, []string{"10.0.0.1/24"}, eth0.Addresses)
	assert.Equal(t, "uplink", *eth0.Description)
	assert.Equal(t, "mgmt", *eth0.Vrf)
	assert.Equal(t, "full", *eth0.Duplex)
	assert.Nil(t, eth0.Disable)

	assert.NotNil(t, eth0.Offload)
	assert.True(t, eth0.Offload.GRO)
	assert.True(t, eth0.Offload.TSO)
	assert.False(t, eth0.Offload.LRO)

	assert.NotNil(t, eth0.IP)
	assert.Equal(t, "1400", *eth0.IP.AdjustMSS)
	assert.NotNil(t, eth0.IP.EnableDirectedBroadcast)
	assert.True(t, *eth0.IP.EnableDirectedBroadcast)

	eth1 := summary.Interfaces[1]
	assert.Equal(t, []string{}, eth1.Addresses)
	assert.NotNil(t, eth1.Disable)
	assert.True(t, *eth1.Disable)
	assert.Nil(t, eth1.Vrf)
	assert.Nil(t, eth1.Offload)
	assert.Nil(t, eth1.IP)
}

func TestEthernetMapper_ParseInterfaces_Vifs(t *testing.T) {
	m := mapper.NewEthernetMapper(vyos.V15)
	summary := m.ParseInterfaces(ethernetSubtree())
	eth0 := summary.Interfaces[0]

	assert.Equal(t, 2, len(eth0.Vifs))

	vif := eth0.Vifs[0]
	assert.Equal(t, "100", vif.VlanID)
	assert.Equal(t, "vif", vif.Kind)
	assert.Equal(t, []string{"192.168.1.1/24", "192.168.1.2/24"}, vif.Addresses)
	assert.Equal(t, "tenant-a", *vif.Description)

	vifS := eth0.Vifs[1]
	assert.Equal(t, "200", vifS.VlanID)
	assert.Equal(t, "vif-s", vifS.Kind)
	assert.Equal(t, 1, len(vifS.Vifs))
	assert.Equal(t, "300", vifS.Vifs[0].VlanID)
	assert.Equal(t, "vif-c", vifS.Vifs[0].Kind)
	assert.Equal(t, []string{"172.16.0.1/24"}, vifS.Vifs[0].Addresses)
}

func TestEthernetMapper_ParseInterfaces_VersionOverride(t *testing.T) {
	// on 1.4 the directed-broadcast node does not exist, so the parsed
	// record leaves the field unset instead of reporting false
	m := mapper.NewEthernetMapper(vyos.V14)
	summary := m.ParseInterfaces(ethernetSubtree())
	eth0 := summary.Interfaces[0]

	assert.NotNil(t, eth0.IP)
	assert.Equal(t, "1400", *eth0.IP.AdjustMSS)
	assert.Nil(t, eth0.IP.EnableDirectedBroadcast)
}

func TestEthernetMapper_ParseInterfaces_Empty(t *testing.T) {
	m := mapper.NewEthernetMapper(vyos.V15)
	summary := m.ParseInterfaces(vyos.ConfigTree{})

	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, []mapper.InterfaceRecord{}, summary.Interfaces)
	assert.Equal(t, map[string]int{"ethernet": 0}, summary.ByType)
	assert.Equal(t, map[string]int{}, summary.ByVrf)
}
