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

import "github.com/vyflow/vyflow/pkg/vyos"

const typeEthernet = "ethernet"

// EthernetMapper maps ethernet interface attributes to command paths and
// parses raw ethernet subtrees. Version differences are expressed as an
// override table selected at construction time; methods dispatch to the
// override when present and fall back to the base behavior otherwise.
type EthernetMapper struct {
	version   vyos.Version
	overrides ethernetOverrides
}

// NewEthernetMapper returns the mapper bound to the given version.
// Unrecognized versions get the behavior of the newest known version.
func NewEthernetMapper(v vyos.Version) *EthernetMapper {
	return &EthernetMapper{
		version:   v,
		overrides: ethernetOverridesFor(v.Normalize()),
	}
}

func (m *EthernetMapper) Family() string {
	return FamilyEthernet
}

func (m *EthernetMapper) Version() vyos.Version {
	return m.version
}

func (m *EthernetMapper) ifaceElem(name string) vyos.CommandPath {
	return vyos.NewPath("interfaces", typeEthernet, name)
}

// Interface returns the path to the interface node itself, used to delete
// the whole interface configuration.
func (m *EthernetMapper) Interface(name string) vyos.CommandPath {
	return m.ifaceElem(name)
}

// Description returns the value path for setting the description.
func (m *EthernetMapper) Description(name, description string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("description", description)
}

// DescriptionPath returns the property path, used to delete the description.
func (m *EthernetMapper) DescriptionPath(name string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("description")
}

// Address returns the value path for one address. Addresses are multi-valued
// so deletion also uses this path: deleting the bare property would drop
// every address at once.
func (m *EthernetMapper) Address(name, address string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("address", address)
}

func (m *EthernetMapper) Mtu(name, mtu string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("mtu", mtu)
}

func (m *EthernetMapper) MtuPath(name string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("mtu")
}

// Disable returns the path of the administrative-down flag. Flag nodes carry
// no value, so the same path serves set and delete.
func (m *EthernetMapper) Disable(name string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("disable")
}

func (m *EthernetMapper) Vrf(name, vrf string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("vrf", vrf)
}

func (m *EthernetMapper) HwID(name, mac string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("hw-id", mac)
}

func (m *EthernetMapper) HwIDPath(name string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("hw-id")
}

func (m *EthernetMapper) Duplex(name, duplex string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("duplex", duplex)
}

func (m *EthernetMapper) DuplexPath(name string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("duplex")
}

func (m *EthernetMapper) Speed(name, speed string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("speed", speed)
}

func (m *EthernetMapper) SpeedPath(name string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("speed")
}

// Offload flags. Each is a value-less node under "offload".

func (m *EthernetMapper) offloadElem(name, feature string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("offload", feature)
}

func (m *EthernetMapper) OffloadGRO(name string) vyos.CommandPath { return m.offloadElem(name, "gro") }
func (m *EthernetMapper) OffloadGSO(name string) vyos.CommandPath { return m.offloadElem(name, "gso") }
func (m *EthernetMapper) OffloadLRO(name string) vyos.CommandPath { return m.offloadElem(name, "lro") }
func (m *EthernetMapper) OffloadRPS(name string) vyos.CommandPath { return m.offloadElem(name, "rps") }
func (m *EthernetMapper) OffloadSG(name string) vyos.CommandPath  { return m.offloadElem(name, "sg") }
func (m *EthernetMapper) OffloadTSO(name string) vyos.CommandPath { return m.offloadElem(name, "tso") }

// Ring-buffer sizes.

func (m *EthernetMapper) RingBufferRX(name, size string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("ring-buffer", "rx", size)
}

func (m *EthernetMapper) RingBufferRXPath(name string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("ring-buffer", "rx")
}

func (m *EthernetMapper) RingBufferTX(name, size string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("ring-buffer", "tx", size)
}

func (m *EthernetMapper) RingBufferTXPath(name string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("ring-buffer", "tx")
}

// Port mirroring.

func (m *EthernetMapper) MirrorIngress(name, target string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("mirror", "ingress", target)
}

func (m *EthernetMapper) MirrorIngressPath(name string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("mirror", "ingress")
}

func (m *EthernetMapper) MirrorEgress(name, target string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("mirror", "egress", target)
}

func (m *EthernetMapper) MirrorEgressPath(name string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("mirror", "egress")
}

// IPv4 settings.

func (m *EthernetMapper) ipElem(name string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("ip")
}

func (m *EthernetMapper) IPAdjustMSS(name, mss string) vyos.CommandPath {
	return m.ipElem(name).Extend("adjust-mss", mss)
}

func (m *EthernetMapper) IPAdjustMSSPath(name string) vyos.CommandPath {
	return m.ipElem(name).Extend("adjust-mss")
}

func (m *EthernetMapper) IPArpCacheTimeout(name, seconds string) vyos.CommandPath {
	return m.ipElem(name).Extend("arp-cache-timeout", seconds)
}

func (m *EthernetMapper) IPArpCacheTimeoutPath(name string) vyos.CommandPath {
	return m.ipElem(name).Extend("arp-cache-timeout")
}

func (m *EthernetMapper) IPDisableArpFilter(name string) vyos.CommandPath {
	return m.ipElem(name).Extend("disable-arp-filter")
}

func (m *EthernetMapper) IPEnableArpAccept(name string) vyos.CommandPath {
	return m.ipElem(name).Extend("enable-arp-accept")
}

func (m *EthernetMapper) IPEnableArpAnnounce(name string) vyos.CommandPath {
	return m.ipElem(name).Extend("enable-arp-announce")
}

func (m *EthernetMapper) IPEnableArpIgnore(name string) vyos.CommandPath {
	return m.ipElem(name).Extend("enable-arp-ignore")
}

func (m *EthernetMapper) IPEnableProxyArp(name string) vyos.CommandPath {
	return m.ipElem(name).Extend("enable-proxy-arp")
}

func (m *EthernetMapper) IPProxyArpPvlan(name string) vyos.CommandPath {
	return m.ipElem(name).Extend("proxy-arp-pvlan")
}

func (m *EthernetMapper) IPSourceValidation(name, mode string) vyos.CommandPath {
	return m.ipElem(name).Extend("source-validation", mode)
}

func (m *EthernetMapper) IPSourceValidationPath(name string) vyos.CommandPath {
	return m.ipElem(name).Extend("source-validation")
}

// IPDirectedBroadcast returns the directed-broadcast flag path. The node
// only exists from 1.5 onward; older versions fail instead of producing a
// path the device would reject.
func (m *EthernetMapper) IPDirectedBroadcast(name string) (vyos.CommandPath, error) {
	if m.overrides.ipDirectedBroadcast != nil {
		return m.overrides.ipDirectedBroadcast(m, name)
	}
	return m.ipElem(name).Extend("enable-directed-broadcast"), nil
}

// IPv6 settings.

func (m *EthernetMapper) ipv6Elem(name string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("ipv6")
}

func (m *EthernetMapper) IPv6AdjustMSS(name, mss string) vyos.CommandPath {
	return m.ipv6Elem(name).Extend("adjust-mss", mss)
}

func (m *EthernetMapper) IPv6AdjustMSSPath(name string) vyos.CommandPath {
	return m.ipv6Elem(name).Extend("adjust-mss")
}

func (m *EthernetMapper) IPv6DisableForwarding(name string) vyos.CommandPath {
	return m.ipv6Elem(name).Extend("disable-forwarding")
}

func (m *EthernetMapper) IPv6AddressAutoconf(name string) vyos.CommandPath {
	return m.ipv6Elem(name).Extend("address", "autoconf")
}

func (m *EthernetMapper) IPv6AddressEUI64(name, prefix string) vyos.CommandPath {
	return m.ipv6Elem(name).Extend("address", "eui64", prefix)
}

func (m *EthernetMapper) IPv6AddressEUI64Path(name string) vyos.CommandPath {
	return m.ipv6Elem(name).Extend("address", "eui64")
}

func (m *EthernetMapper) IPv6AddressNoDefaultLinkLocal(name string) vyos.CommandPath {
	return m.ipv6Elem(name).Extend("address", "no-default-link-local")
}

// DHCP client options.

func (m *EthernetMapper) dhcpElem(name string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("dhcp-options")
}

func (m *EthernetMapper) DHCPClientID(name, id string) vyos.CommandPath {
	return m.dhcpElem(name).Extend("client-id", id)
}

func (m *EthernetMapper) DHCPClientIDPath(name string) vyos.CommandPath {
	return m.dhcpElem(name).Extend("client-id")
}

func (m *EthernetMapper) DHCPHostName(name, hostname string) vyos.CommandPath {
	return m.dhcpElem(name).Extend("host-name", hostname)
}

func (m *EthernetMapper) DHCPHostNamePath(name string) vyos.CommandPath {
	return m.dhcpElem(name).Extend("host-name")
}

func (m *EthernetMapper) DHCPMtu(name string) vyos.CommandPath {
	return m.dhcpElem(name).Extend("mtu")
}

func (m *EthernetMapper) DHCPNoDefaultRoute(name string) vyos.CommandPath {
	return m.dhcpElem(name).Extend("no-default-route")
}

func (m *EthernetMapper) DHCPDefaultRouteDistance(name, distance string) vyos.CommandPath {
	return m.dhcpElem(name).Extend("default-route-distance", distance)
}

func (m *EthernetMapper) DHCPDefaultRouteDistancePath(name string) vyos.CommandPath {
	return m.dhcpElem(name).Extend("default-route-distance")
}

// DHCPv6 client options.

func (m *EthernetMapper) dhcpv6Elem(name string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("dhcpv6-options")
}

func (m *EthernetMapper) DHCPv6DUID(name, duid string) vyos.CommandPath {
	return m.dhcpv6Elem(name).Extend("duid", duid)
}

func (m *EthernetMapper) DHCPv6DUIDPath(name string) vyos.CommandPath {
	return m.dhcpv6Elem(name).Extend("duid")
}

func (m *EthernetMapper) DHCPv6ParametersOnly(name string) vyos.CommandPath {
	return m.dhcpv6Elem(name).Extend("parameters-only")
}

func (m *EthernetMapper) DHCPv6RapidCommit(name string) vyos.CommandPath {
	return m.dhcpv6Elem(name).Extend("rapid-commit")
}

func (m *EthernetMapper) DHCPv6Temporary(name string) vyos.CommandPath {
	return m.dhcpv6Elem(name).Extend("temporary")
}

// VLAN sub-interfaces.

func (m *EthernetMapper) vifElem(name, vlan string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("vif", vlan)
}

// Vif returns the path of a single-tag VLAN sub-interface node.
func (m *EthernetMapper) Vif(name, vlan string) vyos.CommandPath {
	return m.vifElem(name, vlan)
}

func (m *EthernetMapper) VifAddress(name, vlan, address string) vyos.CommandPath {
	return m.vifElem(name, vlan).Extend("address", address)
}

func (m *EthernetMapper) VifDescription(name, vlan, description string) vyos.CommandPath {
	return m.vifElem(name, vlan).Extend("description", description)
}

func (m *EthernetMapper) VifDescriptionPath(name, vlan string) vyos.CommandPath {
	return m.vifElem(name, vlan).Extend("description")
}

func (m *EthernetMapper) VifMtu(name, vlan, mtu string) vyos.CommandPath {
	return m.vifElem(name, vlan).Extend("mtu", mtu)
}

func (m *EthernetMapper) VifMtuPath(name, vlan string) vyos.CommandPath {
	return m.vifElem(name, vlan).Extend("mtu")
}

// QinQ sub-interfaces. The service VLAN is always the outer path segment; a
// customer VLAN only exists nested under its service VLAN.

func (m *EthernetMapper) vifSElem(name, serviceVlan string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("vif-s", serviceVlan)
}

func (m *EthernetMapper) VifS(name, serviceVlan string) vyos.CommandPath {
	return m.vifSElem(name, serviceVlan)
}

func (m *EthernetMapper) VifSAddress(name, serviceVlan, address string) vyos.CommandPath {
	return m.vifSElem(name, serviceVlan).Extend("address", address)
}

func (m *EthernetMapper) VifC(name, serviceVlan, customerVlan string) vyos.CommandPath {
	return m.vifSElem(name, serviceVlan).Extend("vif-c", customerVlan)
}

func (m *EthernetMapper) VifCAddress(name, serviceVlan, customerVlan, address string) vyos.CommandPath {
	return m.VifC(name, serviceVlan, customerVlan).Extend("address", address)
}

// EVPN ethernet-segment settings.

func (m *EthernetMapper) evpnElem(name string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("evpn")
}

func (m *EthernetMapper) EvpnEsID(name, id string) vyos.CommandPath {
	return m.evpnElem(name).Extend("es-id", id)
}

func (m *EthernetMapper) EvpnEsIDPath(name string) vyos.CommandPath {
	return m.evpnElem(name).Extend("es-id")
}

func (m *EthernetMapper) EvpnEsDFPreference(name, pref string) vyos.CommandPath {
	return m.evpnElem(name).Extend("es-df-preference", pref)
}

func (m *EthernetMapper) EvpnEsDFPreferencePath(name string) vyos.CommandPath {
	return m.evpnElem(name).Extend("es-df-preference")
}

func (m *EthernetMapper) EvpnEsSysMac(name, mac string) vyos.CommandPath {
	return m.evpnElem(name).Extend("es-sys-mac", mac)
}

func (m *EthernetMapper) EvpnEsSysMacPath(name string) vyos.CommandPath {
	return m.evpnElem(name).Extend("es-sys-mac")
}

func (m *EthernetMapper) EvpnUplink(name string) vyos.CommandPath {
	return m.evpnElem(name).Extend("uplink")
}
