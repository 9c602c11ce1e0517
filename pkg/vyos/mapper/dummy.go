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

const typeDummy = "dummy"

// DummyMapper maps dummy (virtual) interface attributes to command paths.
// Dummy interfaces have no physical link, so the device schema has no
// duplex, speed, hw-id, offload or ring-buffer nodes for them; the mapper
// deliberately exposes no methods for those attributes.
type DummyMapper struct {
	version vyos.Version
}

// NewDummyMapper returns the mapper bound to the given version. Dummy
// interface syntax is identical across all known versions.
func NewDummyMapper(v vyos.Version) *DummyMapper {
	return &DummyMapper{version: v}
}

func (m *DummyMapper) Family() string {
	return FamilyDummy
}

func (m *DummyMapper) Version() vyos.Version {
	return m.version
}

func (m *DummyMapper) ifaceElem(name string) vyos.CommandPath {
	return vyos.NewPath("interfaces", typeDummy, name)
}

func (m *DummyMapper) Interface(name string) vyos.CommandPath {
	return m.ifaceElem(name)
}

func (m *DummyMapper) Description(name, description string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("description", description)
}

func (m *DummyMapper) DescriptionPath(name string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("description")
}

func (m *DummyMapper) Address(name, address string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("address", address)
}

func (m *DummyMapper) Mtu(name, mtu string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("mtu", mtu)
}

func (m *DummyMapper) MtuPath(name string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("mtu")
}

func (m *DummyMapper) Disable(name string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("disable")
}

func (m *DummyMapper) Vrf(name, vrf string) vyos.CommandPath {
	return m.ifaceElem(name).Extend("vrf", vrf)
}

// ParseInterface parses one raw dummy interface subtree. Ethernet-only
// attributes stay nil in the record, keeping the normalized schema stable
// across families.
func (m *DummyMapper) ParseInterface(name string, cfg vyos.ConfigTree) InterfaceRecord {
	return InterfaceRecord{
		Name:        name,
		Type:        typeDummy,
		Addresses:   addressList(cfg),
		Description: cfg.String("description"),
		Vrf:         cfg.String("vrf"),
		Mtu:         cfg.String("mtu"),
		Disable:     disableFlag(cfg),
	}
}

// ParseInterfaces parses every entry of the raw dummy family subtree,
// skipping entries whose value is not a nested map.
func (m *DummyMapper) ParseInterfaces(cfg vyos.ConfigTree) *InterfacesSummary {
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
	summary.ByType[typeDummy] = summary.Total
	return summary
}
