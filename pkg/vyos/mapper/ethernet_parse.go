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

package mapper

import (
	"github.com/vyflow/vyflow/internal/util"
	"github.com/vyflow/vyflow/pkg/vyos"
)

// ParseInterface parses one raw ethernet interface subtree into the
// normalized record for the bound version.
func (m *EthernetMapper) ParseInterface(name string, cfg vyos.ConfigTree) InterfaceRecord {
	rec := InterfaceRecord{
		Name:        name,
		Type:        typeEthernet,
		Addresses:   addressList(cfg),
		Description: cfg.String("description"),
		Vrf:         cfg.String("vrf"),
		Mtu:         cfg.String("mtu"),
		Disable:     disableFlag(cfg),
		HwID:        cfg.String("hw-id"),
		Duplex:      cfg.String("duplex"),
		Speed:       cfg.String("speed"),
	}
	rec.Offload = m.parseOffload(cfg)
	rec.RingBuffer = m.parseRingBuffer(cfg)
	rec.IP = m.parseIP(cfg)
	rec.IPv6 = m.parseIPv6(cfg)
	rec.DHCPOptions = m.parseDHCPOptions(cfg)
	rec.DHCPv6Options = m.parseDHCPv6Options(cfg)
	rec.Vifs = m.parseVifs(cfg)
	rec.Mirror = m.parseMirror(cfg)
	rec.EAPOL = m.parseEAPOL(cfg)
	rec.EVPN = m.parseEVPN(cfg)
	return rec
}

// ParseInterfaces parses every entry of the raw ethernet family subtree.
// Entries whose value is not itself a nested map are skipped, tolerating
// sparse or malformed trees.
func (m *EthernetMapper) ParseInterfaces(cfg vyos.ConfigTree) *InterfacesSummary {
	summary := &InterfacesSummary{
		Interfaces: []InterfaceRecord{},
		ByType:     map[string]int{},
		ByVrf:      map[string]int{},
	}
	for _, name := range util.SortedMapKeys(cfg) {
		sub, ok := cfg[name].(map[string]interface{})
		if !ok {
			continue
		}
		rec := m.ParseInterface(name, vyos.ConfigTree(sub))
		summary.Interfaces = append(summary.Interfaces, rec)
		if rec.Vrf != nil {
			summary.ByVrf[*rec.Vrf]++
		}
	}
	summary.Total = len(summary.Interfaces)
	summary.ByType[typeEthernet] = summary.Total
	return summary
}

func (m *EthernetMapper) parseOffload(cfg vyos.ConfigTree) *OffloadConfig {
	if !cfg.Has("offload") {
		return nil
	}
	off := cfg.Subtree("offload")
	return &OffloadConfig{
		GRO: off.Has("gro"),
		GSO: off.Has("gso"),
		LRO: off.Has("lro"),
		RPS: off.Has("rps"),
		SG:  off.Has("sg"),
		TSO: off.Has("tso"),
	}
}

func (m *EthernetMapper) parseRingBuffer(cfg vyos.ConfigTree) *RingBufferConfig {
	if !cfg.Has("ring-buffer") {
		return nil
	}
	rb := cfg.Subtree("ring-buffer")
	return &RingBufferConfig{
		RX: rb.String("rx"),
		TX: rb.String("tx"),
	}
}

func (m *EthernetMapper) parseIP(cfg vyos.ConfigTree) *IPConfig {
	if m.overrides.parseIP != nil {
		return m.overrides.parseIP(m, cfg)
	}
	return m.parseIPBase(cfg)
}

func (m *EthernetMapper) parseIPBase(cfg vyos.ConfigTree) *IPConfig {
	if !cfg.Has("ip") {
		return nil
	}
	ip := cfg.Subtree("ip")
	directed := ip.Has("enable-directed-broadcast")
	return &IPConfig{
		AdjustMSS:               ip.String("adjust-mss"),
		ArpCacheTimeout:         ip.String("arp-cache-timeout"),
		DisableArpFilter:        ip.Has("disable-arp-filter"),
		EnableArpAccept:         ip.Has("enable-arp-accept"),
		EnableArpAnnounce:       ip.Has("enable-arp-announce"),
		EnableArpIgnore:         ip.Has("enable-arp-ignore"),
		EnableProxyArp:          ip.Has("enable-proxy-arp"),
		ProxyArpPvlan:           ip.Has("proxy-arp-pvlan"),
		SourceValidation:        ip.String("source-validation"),
		EnableDirectedBroadcast: &directed,
	}
}

func (m *EthernetMapper) parseIPv6(cfg vyos.ConfigTree) *IPv6Config {
	if !cfg.Has("ipv6") {
		return nil
	}
	ip6 := cfg.Subtree("ipv6")
	addr := ip6.Subtree("address")
	return &IPv6Config{
		AdjustMSS:          ip6.String("adjust-mss"),
		DisableForwarding:  ip6.Has("disable-forwarding"),
		AddressAutoconf:    addr.Has("autoconf"),
		AddressEUI64:       addr.String("eui64"),
		AddressNoDefaultLL: addr.Has("no-default-link-local"),
	}
}

func (m *EthernetMapper) parseDHCPOptions(cfg vyos.ConfigTree) *DHCPOptionsConfig {
	if !cfg.Has("dhcp-options") {
		return nil
	}
	d := cfg.Subtree("dhcp-options")
	return &DHCPOptionsConfig{
		ClientID:             d.String("client-id"),
		HostName:             d.String("host-name"),
		Mtu:                  d.Has("mtu"),
		NoDefaultRoute:       d.Has("no-default-route"),
		DefaultRouteDistance: d.String("default-route-distance"),
	}
}

func (m *EthernetMapper) parseDHCPv6Options(cfg vyos.ConfigTree) *DHCPv6OptionsConfig {
	if !cfg.Has("dhcpv6-options") {
		return nil
	}
	d := cfg.Subtree("dhcpv6-options")
	return &DHCPv6OptionsConfig{
		DUID:           d.String("duid"),
		ParametersOnly: d.Has("parameters-only"),
		RapidCommit:    d.Has("rapid-commit"),
		Temporary:      d.Has("temporary"),
	}
}

func (m *EthernetMapper) parseVifs(cfg vyos.ConfigTree) []VifRecord {
	var vifs []VifRecord
	vifs = append(vifs, parseVifEntries(cfg.Subtree("vif"), "vif")...)
	for _, svc := range util.SortedMapKeys(cfg.Subtree("vif-s")) {
		sub, ok := cfg.Subtree("vif-s")[svc].(map[string]interface{})
		if !ok {
			continue
		}
		svcTree := vyos.ConfigTree(sub)
		rec := parseVifEntry(svc, "vif-s", svcTree)
		rec.Vifs = parseVifEntries(svcTree.Subtree("vif-c"), "vif-c")
		vifs = append(vifs, rec)
	}
	return vifs
}

func parseVifEntries(tree vyos.ConfigTree, kind string) []VifRecord {
	var out []VifRecord
	for _, vlan := range util.SortedMapKeys(tree) {
		sub, ok := tree[vlan].(map[string]interface{})
		if !ok {
			continue
		}
		out = append(out, parseVifEntry(vlan, kind, vyos.ConfigTree(sub)))
	}
	return out
}

func parseVifEntry(vlan, kind string, cfg vyos.ConfigTree) VifRecord {
	return VifRecord{
		VlanID:      vlan,
		Kind:        kind,
		Addresses:   addressList(cfg),
		Description: cfg.String("description"),
		Mtu:         cfg.String("mtu"),
		Disable:     disableFlag(cfg),
	}
}

func (m *EthernetMapper) parseMirror(cfg vyos.ConfigTree) *MirrorConfig {
	if !cfg.Has("mirror") {
		return nil
	}
	mir := cfg.Subtree("mirror")
	return &MirrorConfig{
		Ingress: mir.String("ingress"),
		Egress:  mir.String("egress"),
	}
}

func (m *EthernetMapper) parseEAPOL(cfg vyos.ConfigTree) *EAPOLConfig {
	if !cfg.Has("eapol") {
		return nil
	}
	e := cfg.Subtree("eapol")
	return &EAPOLConfig{
		CACertificate: e.String("ca-certificate"),
		Certificate:   e.String("certificate"),
	}
}

func (m *EthernetMapper) parseEVPN(cfg vyos.ConfigTree) *EVPNConfig {
	if !cfg.Has("evpn") {
		return nil
	}
	e := cfg.Subtree("evpn")
	return &EVPNConfig{
		EsID:           e.String("es-id"),
		EsDFPreference: e.String("es-df-preference"),
		EsSysMac:       e.String("es-sys-mac"),
		Uplink:         e.Has("uplink"),
	}
}

// addressList normalizes the raw "address" field to a list. The field always
// exists in the record, as an empty list when no address is configured.
func addressList(cfg vyos.ConfigTree) []string {
	addrs := cfg.StringList("address")
	if addrs == nil {
		return []string{}
	}
	return addrs
}

// disableFlag returns a pointer to true when the interface carries the
// disable flag, nil otherwise.
func disableFlag(cfg vyos.ConfigTree) *bool {
	if !cfg.Has("disable") {
		return nil
	}
	disabled := true
	return &disabled
}
