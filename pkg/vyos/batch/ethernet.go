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

package batch

import (
	"fmt"

	"github.com/vyflow/vyflow/pkg/vyos"
	"github.com/vyflow/vyflow/pkg/vyos/mapper"
)

// Ethernet is the batch builder for ethernet interfaces. Its typed methods
// are the sanctioned way to queue operations: each resolves the command path
// through the version-bound mapper before appending.
type Ethernet struct {
	Batch
	mapper *mapper.EthernetMapper
}

// NewEthernet creates an ethernet batch builder for the given version,
// resolving its mapper from the registry.
func NewEthernet(reg *mapper.Registry, v vyos.Version) (*Ethernet, error) {
	fm, err := reg.Resolve(mapper.FamilyEthernet, v)
	if err != nil {
		return nil, err
	}
	em, ok := fm.(*mapper.EthernetMapper)
	if !ok {
		return nil, fmt.Errorf("registry returned %T for %s", fm, mapper.FamilyEthernet)
	}
	return &Ethernet{Batch: newBatch(v), mapper: em}, nil
}

func (b *Ethernet) SetDescription(iface, description string) *Ethernet {
	b.AddSet(b.mapper.Description(iface, description))
	return b
}

func (b *Ethernet) DeleteDescription(iface string) *Ethernet {
	b.AddDelete(b.mapper.DescriptionPath(iface))
	return b
}

func (b *Ethernet) SetAddress(iface, address string) *Ethernet {
	b.AddSet(b.mapper.Address(iface, address))
	return b
}

// DeleteAddress removes one specific address. Addresses are multi-valued, so
// the delete path carries the value.
func (b *Ethernet) DeleteAddress(iface, address string) *Ethernet {
	b.AddDelete(b.mapper.Address(iface, address))
	return b
}

func (b *Ethernet) SetMtu(iface, mtu string) *Ethernet {
	b.AddSet(b.mapper.Mtu(iface, mtu))
	return b
}

func (b *Ethernet) DeleteMtu(iface string) *Ethernet {
	b.AddDelete(b.mapper.MtuPath(iface))
	return b
}

func (b *Ethernet) SetVrf(iface, vrf string) *Ethernet {
	b.AddSet(b.mapper.Vrf(iface, vrf))
	return b
}

func (b *Ethernet) DeleteVrf(iface, vrf string) *Ethernet {
	b.AddDelete(b.mapper.Vrf(iface, vrf))
	return b
}

// Disable queues the administrative-down flag.
func (b *Ethernet) Disable(iface string) *Ethernet {
	b.AddSet(b.mapper.Disable(iface))
	return b
}

// Enable removes the administrative-down flag.
func (b *Ethernet) Enable(iface string) *Ethernet {
	b.AddDelete(b.mapper.Disable(iface))
	return b
}

// DeleteInterface removes the whole interface configuration.
func (b *Ethernet) DeleteInterface(iface string) *Ethernet {
	b.AddDelete(b.mapper.Interface(iface))
	return b
}

func (b *Ethernet) SetDuplex(iface, duplex string) *Ethernet {
	b.AddSet(b.mapper.Duplex(iface, duplex))
	return b
}

func (b *Ethernet) DeleteDuplex(iface string) *Ethernet {
	b.AddDelete(b.mapper.DuplexPath(iface))
	return b
}

func (b *Ethernet) SetSpeed(iface, speed string) *Ethernet {
	b.AddSet(b.mapper.Speed(iface, speed))
	return b
}

func (b *Ethernet) DeleteSpeed(iface string) *Ethernet {
	b.AddDelete(b.mapper.SpeedPath(iface))
	return b
}

func (b *Ethernet) SetHwID(iface, mac string) *Ethernet {
	b.AddSet(b.mapper.HwID(iface, mac))
	return b
}

func (b *Ethernet) DeleteHwID(iface string) *Ethernet {
	b.AddDelete(b.mapper.HwIDPath(iface))
	return b
}

func (b *Ethernet) SetOffloadGRO(iface string) *Ethernet {
	b.AddSet(b.mapper.OffloadGRO(iface))
	return b
}

func (b *Ethernet) DeleteOffloadGRO(iface string) *Ethernet {
	b.AddDelete(b.mapper.OffloadGRO(iface))
	return b
}

func (b *Ethernet) SetOffloadGSO(iface string) *Ethernet {
	b.AddSet(b.mapper.OffloadGSO(iface))
	return b
}

func (b *Ethernet) DeleteOffloadGSO(iface string) *Ethernet {
	b.AddDelete(b.mapper.OffloadGSO(iface))
	return b
}

func (b *Ethernet) SetOffloadLRO(iface string) *Ethernet {
	b.AddSet(b.mapper.OffloadLRO(iface))
	return b
}

func (b *Ethernet) DeleteOffloadLRO(iface string) *Ethernet {
	b.AddDelete(b.mapper.OffloadLRO(iface))
	return b
}

func (b *Ethernet) SetOffloadRPS(iface string) *Ethernet {
	b.AddSet(b.mapper.OffloadRPS(iface))
	return b
}

func (b *Ethernet) DeleteOffloadRPS(iface string) *Ethernet {
	b.AddDelete(b.mapper.OffloadRPS(iface))
	return b
}

func (b *Ethernet) SetOffloadSG(iface string) *Ethernet {
	b.AddSet(b.mapper.OffloadSG(iface))
	return b
}

func (b *Ethernet) DeleteOffloadSG(iface string) *Ethernet {
	b.AddDelete(b.mapper.OffloadSG(iface))
	return b
}

func (b *Ethernet) SetOffloadTSO(iface string) *Ethernet {
	b.AddSet(b.mapper.OffloadTSO(iface))
	return b
}

func (b *Ethernet) DeleteOffloadTSO(iface string) *Ethernet {
	b.AddDelete(b.mapper.OffloadTSO(iface))
	return b
}

func (b *Ethernet) SetRingBufferRX(iface, size string) *Ethernet {
	b.AddSet(b.mapper.RingBufferRX(iface, size))
	return b
}

func (b *Ethernet) DeleteRingBufferRX(iface string) *Ethernet {
	b.AddDelete(b.mapper.RingBufferRXPath(iface))
	return b
}

func (b *Ethernet) SetRingBufferTX(iface, size string) *Ethernet {
	b.AddSet(b.mapper.RingBufferTX(iface, size))
	return b
}

func (b *Ethernet) DeleteRingBufferTX(iface string) *Ethernet {
	b.AddDelete(b.mapper.RingBufferTXPath(iface))
	return b
}

func (b *Ethernet) SetMirrorIngress(iface, target string) *Ethernet {
	b.AddSet(b.mapper.MirrorIngress(iface, target))
	return b
}

func (b *Ethernet) DeleteMirrorIngress(iface string) *Ethernet {
	b.AddDelete(b.mapper.MirrorIngressPath(iface))
	return b
}

func (b *Ethernet) SetMirrorEgress(iface, target string) *Ethernet {
	b.AddSet(b.mapper.MirrorEgress(iface, target))
	return b
}

func (b *Ethernet) DeleteMirrorEgress(iface string) *Ethernet {
	b.AddDelete(b.mapper.MirrorEgressPath(iface))
	return b
}

// SetIPDirectedBroadcast queues the directed-broadcast flag. It fails on
// versions that do not support the node.
func (b *Ethernet) SetIPDirectedBroadcast(iface string) (*Ethernet, error) {
	p, err := b.mapper.IPDirectedBroadcast(iface)
	if err != nil {
		return b, err
	}
	b.AddSet(p)
	return b, nil
}

// DeleteIPDirectedBroadcast removes the directed-broadcast flag, with the
// same version gating as the set side.
func (b *Ethernet) DeleteIPDirectedBroadcast(iface string) (*Ethernet, error) {
	p, err := b.mapper.IPDirectedBroadcast(iface)
	if err != nil {
		return b, err
	}
	b.AddDelete(p)
	return b, nil
}

func (b *Ethernet) SetIPAdjustMSS(iface, mss string) *Ethernet {
	b.AddSet(b.mapper.IPAdjustMSS(iface, mss))
	return b
}

func (b *Ethernet) DeleteIPAdjustMSS(iface string) *Ethernet {
	b.AddDelete(b.mapper.IPAdjustMSSPath(iface))
	return b
}

func (b *Ethernet) SetIPArpCacheTimeout(iface, seconds string) *Ethernet {
	b.AddSet(b.mapper.IPArpCacheTimeout(iface, seconds))
	return b
}

func (b *Ethernet) DeleteIPArpCacheTimeout(iface string) *Ethernet {
	b.AddDelete(b.mapper.IPArpCacheTimeoutPath(iface))
	return b
}

func (b *Ethernet) SetIPSourceValidation(iface, mode string) *Ethernet {
	b.AddSet(b.mapper.IPSourceValidation(iface, mode))
	return b
}

func (b *Ethernet) DeleteIPSourceValidation(iface string) *Ethernet {
	b.AddDelete(b.mapper.IPSourceValidationPath(iface))
	return b
}

// SetVif creates a single-tag VLAN sub-interface. Queue this before any
// operation on the sub-interface itself.
func (b *Ethernet) SetVif(iface, vlan string) *Ethernet {
	b.AddSet(b.mapper.Vif(iface, vlan))
	return b
}

func (b *Ethernet) DeleteVif(iface, vlan string) *Ethernet {
	b.AddDelete(b.mapper.Vif(iface, vlan))
	return b
}

func (b *Ethernet) SetVifAddress(iface, vlan, address string) *Ethernet {
	b.AddSet(b.mapper.VifAddress(iface, vlan, address))
	return b
}

func (b *Ethernet) DeleteVifAddress(iface, vlan, address string) *Ethernet {
	b.AddDelete(b.mapper.VifAddress(iface, vlan, address))
	return b
}

func (b *Ethernet) SetVifDescription(iface, vlan, description string) *Ethernet {
	b.AddSet(b.mapper.VifDescription(iface, vlan, description))
	return b
}

func (b *Ethernet) DeleteVifDescription(iface, vlan string) *Ethernet {
	b.AddDelete(b.mapper.VifDescriptionPath(iface, vlan))
	return b
}

func (b *Ethernet) SetVifMtu(iface, vlan, mtu string) *Ethernet {
	b.AddSet(b.mapper.VifMtu(iface, vlan, mtu))
	return b
}

func (b *Ethernet) DeleteVifMtu(iface, vlan string) *Ethernet {
	b.AddDelete(b.mapper.VifMtuPath(iface, vlan))
	return b
}

func (b *Ethernet) SetVifS(iface, serviceVlan string) *Ethernet {
	b.AddSet(b.mapper.VifS(iface, serviceVlan))
	return b
}

func (b *Ethernet) DeleteVifS(iface, serviceVlan string) *Ethernet {
	b.AddDelete(b.mapper.VifS(iface, serviceVlan))
	return b
}

func (b *Ethernet) SetVifC(iface, serviceVlan, customerVlan string) *Ethernet {
	b.AddSet(b.mapper.VifC(iface, serviceVlan, customerVlan))
	return b
}

func (b *Ethernet) DeleteVifC(iface, serviceVlan, customerVlan string) *Ethernet {
	b.AddDelete(b.mapper.VifC(iface, serviceVlan, customerVlan))
	return b
}

func (b *Ethernet) SetVifCAddress(iface, serviceVlan, customerVlan, address string) *Ethernet {
	b.AddSet(b.mapper.VifCAddress(iface, serviceVlan, customerVlan, address))
	return b
}

func (b *Ethernet) DeleteVifCAddress(iface, serviceVlan, customerVlan, address string) *Ethernet {
	b.AddDelete(b.mapper.VifCAddress(iface, serviceVlan, customerVlan, address))
	return b
}
