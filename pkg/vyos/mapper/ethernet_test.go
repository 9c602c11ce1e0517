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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vyflow/vyflow/pkg/vyos"
	"github.com/vyflow/vyflow/pkg/vyos/mapper"
)

func TestEthernetMapper_Paths(t *testing.T) {
	m := mapper.NewEthernetMapper(vyos.V15)

	tests := []struct {
		name string
		got  vyos.CommandPath
		want string
	}{
		{"interface", m.Interface("eth0"), "interfaces ethernet eth0"},
		{"description", m.Description("eth0", "uplink"), "interfaces ethernet eth0 description uplink"},
		{"description path", m.DescriptionPath("eth0"), "interfaces ethernet eth0 description"},
		{"address", m.Address("eth0", "10.0.0.1/24"), "interfaces ethernet eth0 address 10.0.0.1/24"},
		{"mtu", m.Mtu("eth0", "9000"), "interfaces ethernet eth0 mtu 9000"},
		{"disable", m.Disable("eth0"), "interfaces ethernet eth0 disable"},
		{"vrf", m.Vrf("eth0", "mgmt"), "interfaces ethernet eth0 vrf mgmt"},
		{"hw-id", m.HwID("eth0", "00:11:22:33:44:55"), "interfaces ethernet eth0 hw-id 00:11:22:33:44:55"},
		{"duplex", m.Duplex("eth0", "full"), "interfaces ethernet eth0 duplex full"},
		{"speed", m.Speed("eth0", "1000"), "interfaces ethernet eth0 speed 1000"},
		{"offload gro", m.OffloadGRO("eth0"), "interfaces ethernet eth0 offload gro"},
		{"ring-buffer rx", m.RingBufferRX("eth0", "512"), "interfaces ethernet eth0 ring-buffer rx 512"},
		{"mirror ingress", m.MirrorIngress("eth0", "eth1"), "interfaces ethernet eth0 mirror ingress eth1"},
		{"ip adjust-mss", m.IPAdjustMSS("eth0", "1400"), "interfaces ethernet eth0 ip adjust-mss 1400"},
		{"ip source-validation", m.IPSourceValidation("eth0", "strict"), "interfaces ethernet eth0 ip source-validation strict"},
		{"ipv6 eui64", m.IPv6AddressEUI64("eth0", "2001:db8::/64"), "interfaces ethernet eth0 ipv6 address eui64 2001:db8::/64"},
		{"dhcp client-id", m.DHCPClientID("eth0", "foo"), "interfaces ethernet eth0 dhcp-options client-id foo"},
		{"dhcpv6 rapid-commit", m.DHCPv6RapidCommit("eth0"), "interfaces ethernet eth0 dhcpv6-options rapid-commit"},
		{"evpn uplink", m.EvpnUplink("eth0"), "interfaces ethernet eth0 evpn uplink"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.String())
		})
	}
}

func TestEthernetMapper_DeletePathIsPrefixOfSetPath(t *testing.T) {
	m := mapper.NewEthernetMapper(vyos.V15)

	// single-valued attributes delete by property path
	assert.True(t, m.Mtu("eth0", "9000").HasPrefix(m.MtuPath("eth0")))
	assert.True(t, m.Description("eth0", "x").HasPrefix(m.DescriptionPath("eth0")))
	assert.True(t, m.Speed("eth0", "1000").HasPrefix(m.SpeedPath("eth0")))
}

func TestEthernetMapper_VifPaths(t *testing.T) {
	m := mapper.NewEthernetMapper(vyos.V15)

	assert.Equal(t, "interfaces ethernet eth0 vif 100", m.Vif("eth0", "100").String())
	assert.Equal(t, "interfaces ethernet eth0 vif 100 address 10.0.0.1/24", m.VifAddress("eth0", "100", "10.0.0.1/24").String())
	assert.Equal(t, "interfaces ethernet eth0 vif-s 200", m.VifS("eth0", "200").String())

	// the service VLAN always nests outside the customer VLAN
	assert.Equal(t, "interfaces ethernet eth0 vif-s 200 vif-c 300", m.VifC("eth0", "200", "300").String())
	assert.Equal(t, "interfaces ethernet eth0 vif-s 200 vif-c 300 address 10.0.0.1/24",
		m.VifCAddress("eth0", "200", "300", "10.0.0.1/24").String())
}

func TestEthernetMapper_IPDirectedBroadcast(t *testing.T) {
	t.Run("ok: supported on 1.5", func(t *testing.T) {
		m := mapper.NewEthernetMapper(vyos.V15)
		p, err := m.IPDirectedBroadcast("eth0")
		assert.Nil(t, err)
		assert.Equal(t, "interfaces ethernet eth0 ip enable-directed-broadcast", p.String())
	})

	t.Run("err: unsupported on 1.4", func(t *testing.T) {
		m := mapper.NewEthernetMapper(vyos.V14)
		_, err := m.IPDirectedBroadcast("eth0")
		var uerr *vyos.UnsupportedFeatureError
		assert.True(t, errors.As(err, &uerr))
		assert.Equal(t, "enable-directed-broadcast", uerr.Feature)
		assert.Equal(t, vyos.V14, uerr.Version)
		assert.Equal(t, vyos.V15, uerr.MinVersion)
	})

	t.Run("ok: unknown version behaves as latest", func(t *testing.T) {
		m := mapper.NewEthernetMapper(vyos.Version("1.6"))
		p, err := m.IPDirectedBroadcast("eth0")
		assert.Nil(t, err)
		assert.Equal(t, "interfaces ethernet eth0 ip enable-directed-broadcast", p.String())
	})
}
