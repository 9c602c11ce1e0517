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

package core

import (
	"fmt"
	"net/http"

	"github.com/vyflow/vyflow/internal/derrors"
	"github.com/vyflow/vyflow/pkg/vyos"
	"github.com/vyflow/vyflow/pkg/vyos/batch"
)

// queueEthernetOps translates attribute-level operation records into typed
// builder calls. Composite values such as "100,10.0.0.1/24" carry a VLAN id
// together with the value and are split here.
func queueEthernetOps(b *batch.Ethernet, iface string, ops []HttpBatchOp) error {
	for i, op := range ops {
		var err error
		switch op.Op {
		case "set_description":
			b.SetDescription(iface, op.Value)
		case "delete_description":
			b.DeleteDescription(iface)
		case "set_address":
			b.SetAddress(iface, op.Value)
		case "delete_address":
			b.DeleteAddress(iface, op.Value)
		case "set_mtu":
			b.SetMtu(iface, op.Value)
		case "delete_mtu":
			b.DeleteMtu(iface)
		case "set_vrf":
			b.SetVrf(iface, op.Value)
		case "delete_vrf":
			b.DeleteVrf(iface, op.Value)
		case "disable":
			b.Disable(iface)
		case "enable":
			b.Enable(iface)
		case "delete_interface":
			b.DeleteInterface(iface)
		case "set_duplex":
			b.SetDuplex(iface, op.Value)
		case "delete_duplex":
			b.DeleteDuplex(iface)
		case "set_speed":
			b.SetSpeed(iface, op.Value)
		case "delete_speed":
			b.DeleteSpeed(iface)
		case "set_hw_id":
			b.SetHwID(iface, op.Value)
		case "delete_hw_id":
			b.DeleteHwID(iface)
		case "set_ip_directed_broadcast":
			_, err = b.SetIPDirectedBroadcast(iface)
		case "delete_ip_directed_broadcast":
			_, err = b.DeleteIPDirectedBroadcast(iface)
		case "set_ip_adjust_mss":
			b.SetIPAdjustMSS(iface, op.Value)
		case "delete_ip_adjust_mss":
			b.DeleteIPAdjustMSS(iface)
		case "set_ip_source_validation":
			b.SetIPSourceValidation(iface, op.Value)
		case "delete_ip_source_validation":
			b.DeleteIPSourceValidation(iface)
		case "set_mirror_ingress":
			b.SetMirrorIngress(iface, op.Value)
		case "delete_mirror_ingress":
			b.DeleteMirrorIngress(iface)
		case "set_mirror_egress":
			b.SetMirrorEgress(iface, op.Value)
		case "delete_mirror_egress":
			b.DeleteMirrorEgress(iface)
		case "set_vif":
			b.SetVif(iface, op.Value)
		case "delete_vif":
			b.DeleteVif(iface, op.Value)
		case "set_vif_address":
			err = queuePair(op.Value, func(vlan, addr string) { b.SetVifAddress(iface, vlan, addr) })
		case "delete_vif_address":
			err = queuePair(op.Value, func(vlan, addr string) { b.DeleteVifAddress(iface, vlan, addr) })
		case "set_vif_description":
			err = queuePair(op.Value, func(vlan, desc string) { b.SetVifDescription(iface, vlan, desc) })
		case "set_vif_mtu":
			err = queuePair(op.Value, func(vlan, mtu string) { b.SetVifMtu(iface, vlan, mtu) })
		case "set_vif_s":
			b.SetVifS(iface, op.Value)
		case "delete_vif_s":
			b.DeleteVifS(iface, op.Value)
		case "set_vif_c":
			err = queuePair(op.Value, func(svlan, cvlan string) { b.SetVifC(iface, svlan, cvlan) })
		case "set_vif_c_address":
			var parts []string
			if parts, err = vyos.SplitCompound(op.Value, 3); err == nil {
				b.SetVifCAddress(iface, parts[0], parts[1], parts[2])
			}
		default:
			return opError(i, op.Op, "ethernet")
		}
		if err != nil {
			return fmt.Errorf("operations[%d]: %w", i, err)
		}
	}
	return nil
}

// queueDummyOps dispatches the dummy subset; ethernet-only operations fail
// with a client error rather than silently producing invalid paths.
func queueDummyOps(b *batch.Dummy, iface string, ops []HttpBatchOp) error {
	for i, op := range ops {
		switch op.Op {
		case "set_description":
			b.SetDescription(iface, op.Value)
		case "delete_description":
			b.DeleteDescription(iface)
		case "set_address":
			b.SetAddress(iface, op.Value)
		case "delete_address":
			b.DeleteAddress(iface, op.Value)
		case "set_mtu":
			b.SetMtu(iface, op.Value)
		case "delete_mtu":
			b.DeleteMtu(iface)
		case "set_vrf":
			b.SetVrf(iface, op.Value)
		case "delete_vrf":
			b.DeleteVrf(iface, op.Value)
		case "disable":
			b.Disable(iface)
		case "enable":
			b.Enable(iface)
		case "delete_interface":
			b.DeleteInterface(iface)
		default:
			return opError(i, op.Op, "dummy")
		}
	}
	return nil
}

func queuePair(value string, fn func(first, second string)) error {
	first, second, err := vyos.SplitPair(value)
	if err != nil {
		return err
	}
	fn(first, second)
	return nil
}

func opError(idx int, op, family string) error {
	err := fmt.Errorf("operations[%d]: unsupported operation %q for %s interfaces", idx, op, family)
	return derrors.HTTPErrorf(err, http.StatusBadRequest, "%v", err)
}
