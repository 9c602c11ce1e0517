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

// Dummy is the batch builder for dummy interfaces. There are no methods for
// physical-link attributes (duplex, speed, offload) since the device schema
// has no such nodes for this family.
type Dummy struct {
	Batch
	mapper *mapper.DummyMapper
}

// NewDummy creates a dummy batch builder for the given version, resolving
// its mapper from the registry.
func NewDummy(reg *mapper.Registry, v vyos.Version) (*Dummy, error) {
	fm, err := reg.Resolve(mapper.FamilyDummy, v)
	if err != nil {
		return nil, err
	}
	dm, ok := fm.(*mapper.DummyMapper)
	if !ok {
		return nil, fmt.Errorf("registry returned %T for %s", fm, mapper.FamilyDummy)
	}
	return &Dummy{Batch: newBatch(v), mapper: dm}, nil
}

func (b *Dummy) SetDescription(iface, description string) *Dummy {
	b.AddSet(b.mapper.Description(iface, description))
	return b
}

func (b *Dummy) DeleteDescription(iface string) *Dummy {
	b.AddDelete(b.mapper.DescriptionPath(iface))
	return b
}

func (b *Dummy) SetAddress(iface, address string) *Dummy {
	b.AddSet(b.mapper.Address(iface, address))
	return b
}

// DeleteAddress removes one specific address. Addresses are multi-valued, so
// the delete path carries the value.
func (b *Dummy) DeleteAddress(iface, address string) *Dummy {
	b.AddDelete(b.mapper.Address(iface, address))
	return b
}

func (b *Dummy) SetMtu(iface, mtu string) *Dummy {
	b.AddSet(b.mapper.Mtu(iface, mtu))
	return b
}

func (b *Dummy) DeleteMtu(iface string) *Dummy {
	b.AddDelete(b.mapper.MtuPath(iface))
	return b
}

func (b *Dummy) SetVrf(iface, vrf string) *Dummy {
	b.AddSet(b.mapper.Vrf(iface, vrf))
	return b
}

func (b *Dummy) DeleteVrf(iface, vrf string) *Dummy {
	b.AddDelete(b.mapper.Vrf(iface, vrf))
	return b
}

// Disable queues the administrative-down flag.
func (b *Dummy) Disable(iface string) *Dummy {
	b.AddSet(b.mapper.Disable(iface))
	return b
}

// Enable removes the administrative-down flag.
func (b *Dummy) Enable(iface string) *Dummy {
	b.AddDelete(b.mapper.Disable(iface))
	return b
}

// DeleteInterface removes the whole interface configuration.
func (b *Dummy) DeleteInterface(iface string) *Dummy {
	b.AddDelete(b.mapper.Interface(iface))
	return b
}
