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

// InterfaceRecord is the version-independent normalized view of one
// configured interface. Optional attributes are pointers so that "not
// configured" and "not supported on this version" both surface as explicit
// nulls instead of dropped keys. Sub-blocks that do not apply to a family
// (offload on a dummy interface) stay nil for the same reason.
type InterfaceRecord struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Addresses []string `json:"addresses"`

	Description *string `json:"description"`
	Vrf         *string `json:"vrf"`
	Mtu         *string `json:"mtu"`
	Disable     *bool   `json:"disable"`

	// Ethernet-only physical attributes.
	HwID   *string `json:"hw_id"`
	Duplex *string `json:"duplex"`
	Speed  *string `json:"speed"`

	Offload       *OffloadConfig       `json:"offload"`
	RingBuffer    *RingBufferConfig    `json:"ring_buffer"`
	IP            *IPConfig            `json:"ip"`
	IPv6          *IPv6Config          `json:"ipv6"`
	DHCPOptions   *DHCPOptionsConfig   `json:"dhcp_options"`
	DHCPv6Options *DHCPv6OptionsConfig `json:"dhcpv6_options"`
	Vifs          []VifRecord          `json:"vifs"`
	Mirror        *MirrorConfig        `json:"mirror"`
	EAPOL         *EAPOLConfig         `json:"eapol"`
	EVPN          *EVPNConfig          `json:"evpn"`
}

// InterfacesSummary aggregates the records of one feature family together
// with per-type and per-VRF counts. ByVrf only counts interfaces that have a
// VRF assigned; there is deliberately no bucket for VRF-less interfaces.
type InterfacesSummary struct {
	Interfaces []InterfaceRecord `json:"interfaces"`
	Total      int               `json:"total"`
	ByType     map[string]int    `json:"by_type"`
	ByVrf      map[string]int    `json:"by_vrf"`
}

// OffloadConfig holds the hardware offload flags of an ethernet interface.
type OffloadConfig struct {
	GRO bool `json:"gro"`
	GSO bool `json:"gso"`
	LRO bool `json:"lro"`
	RPS bool `json:"rps"`
	SG  bool `json:"sg"`
	TSO bool `json:"tso"`
}

// RingBufferConfig holds the NIC ring-buffer sizes.
type RingBufferConfig struct {
	RX *string `json:"rx"`
	TX *string `json:"tx"`
}

// IPConfig holds per-interface IPv4 settings. EnableDirectedBroadcast stays
// nil on versions that do not support it.
type IPConfig struct {
	AdjustMSS               *string `json:"adjust_mss"`
	ArpCacheTimeout         *string `json:"arp_cache_timeout"`
	DisableArpFilter        bool    `json:"disable_arp_filter"`
	EnableArpAccept         bool    `json:"enable_arp_accept"`
	EnableArpAnnounce       bool    `json:"enable_arp_announce"`
	EnableArpIgnore         bool    `json:"enable_arp_ignore"`
	EnableProxyArp          bool    `json:"enable_proxy_arp"`
	ProxyArpPvlan           bool    `json:"proxy_arp_pvlan"`
	SourceValidation        *string `json:"source_validation"`
	EnableDirectedBroadcast *bool   `json:"enable_directed_broadcast"`
}

// IPv6Config holds per-interface IPv6 settings.
type IPv6Config struct {
	AdjustMSS              *string `json:"adjust_mss"`
	DisableForwarding      bool    `json:"disable_forwarding"`
	AddressAutoconf        bool    `json:"address_autoconf"`
	AddressEUI64           *string `json:"address_eui64"`
	AddressNoDefaultLL     bool    `json:"address_no_default_link_local"`
}

// DHCPOptionsConfig holds the DHCP client options of an interface.
type DHCPOptionsConfig struct {
	ClientID             *string `json:"client_id"`
	HostName             *string `json:"host_name"`
	Mtu                  bool    `json:"mtu"`
	NoDefaultRoute       bool    `json:"no_default_route"`
	DefaultRouteDistance *string `json:"default_route_distance"`
}

// DHCPv6OptionsConfig holds the DHCPv6 client options of an interface.
type DHCPv6OptionsConfig struct {
	DUID           *string `json:"duid"`
	ParametersOnly bool    `json:"parameters_only"`
	RapidCommit    bool    `json:"rapid_commit"`
	Temporary      bool    `json:"temporary"`
}

// VifRecord is one VLAN sub-interface. For QinQ sub-interfaces ServiceVlan
// carries the outer tag and Vifs holds the customer VLANs nested under it.
type VifRecord struct {
	VlanID      string      `json:"vlan_id"`
	Kind        string      `json:"kind"` // vif, vif-s or vif-c
	Addresses   []string    `json:"addresses"`
	Description *string     `json:"description"`
	Mtu         *string     `json:"mtu"`
	Disable     *bool       `json:"disable"`
	Vifs        []VifRecord `json:"vifs"`
}

// MirrorConfig holds port mirroring targets.
type MirrorConfig struct {
	Ingress *string `json:"ingress"`
	Egress  *string `json:"egress"`
}

// EAPOLConfig holds 802.1X supplicant settings.
type EAPOLConfig struct {
	CACertificate *string `json:"ca_certificate"`
	Certificate   *string `json:"certificate"`
}

// EVPNConfig holds the ethernet-segment settings of an interface.
type EVPNConfig struct {
	EsID           *string `json:"es_id"`
	EsDFPreference *string `json:"es_df_preference"`
	EsSysMac       *string `json:"es_sys_mac"`
	Uplink         bool    `json:"uplink"`
}
