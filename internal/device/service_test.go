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

package device_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vyflow/vyflow/internal/device"
	"github.com/vyflow/vyflow/pkg/vyos"
	"github.com/vyflow/vyflow/pkg/vyos/mapper"
)

type fakeTransport struct {
	tree vyos.ConfigTree

	configureErr  error
	configured    [][]vyos.Operation
	showConfigCnt int
}

func (f *fakeTransport) ConfigureBatch(_ context.Context, ops []vyos.Operation) error {
	if f.configureErr != nil {
		return f.configureErr
	}
	f.configured = append(f.configured, ops)
	return nil
}

func (f *fakeTransport) ShowConfig(_ context.Context, _ []string) (vyos.ConfigTree, error) {
	f.showConfigCnt++
	return f.tree, nil
}

func newTestService(tr *fakeTransport) *device.Service {
	return device.NewService("r1", vyos.V15, mapper.NewRegistry(), tr)
}

func TestService_Config_Caching(t *testing.T) {
	tr := &fakeTransport{tree: vyos.ConfigTree{"system": map[string]interface{}{}}}
	s := newTestService(tr)
	ctx := context.Background()

	_, err := s.Config(ctx, false)
	assert.Nil(t, err)
	_, err = s.Config(ctx, false)
	assert.Nil(t, err)
	assert.Equal(t, 1, tr.showConfigCnt)

	_, err = s.Config(ctx, true)
	assert.Nil(t, err)
	assert.Equal(t, 2, tr.showConfigCnt)
}

func TestService_ExecuteBatch(t *testing.T) {
	tr := &fakeTransport{tree: vyos.ConfigTree{}}
	s := newTestService(tr)
	ctx := context.Background()

	b, err := s.NewEthernetBatch()
	assert.Nil(t, err)
	b.SetMtu("eth0", "9000").SetDescription("eth0", "uplink")

	assert.Nil(t, s.ExecuteBatch(ctx, b))
	assert.Equal(t, 1, len(tr.configured))
	assert.Equal(t, 2, len(tr.configured[0]))
	assert.Equal(t, "interfaces ethernet eth0 mtu 9000", tr.configured[0][0].Path.String())
}

func TestService_ExecuteBatch_Empty(t *testing.T) {
	tr := &fakeTransport{}
	s := newTestService(tr)

	err := s.ExecuteBatch(context.Background(), s.NewRawBatch())
	var eerr *vyos.EmptyBatchError
	assert.True(t, errors.As(err, &eerr))
	assert.Equal(t, 0, len(tr.configured))
}

func TestService_ExecuteBatch_SingleShot(t *testing.T) {
	tr := &fakeTransport{}
	s := newTestService(tr)
	ctx := context.Background()

	b := s.NewRawBatch()
	b.Set("system", "host-name", "r1")
	assert.Nil(t, s.ExecuteBatch(ctx, b))

	err := s.ExecuteBatch(ctx, b)
	var cerr *vyos.BatchConsumedError
	assert.True(t, errors.As(err, &cerr))
	assert.Equal(t, 1, len(tr.configured))

	// Clear re-arms the builder for another round
	b.Clear()
	b.Set("system", "host-name", "r2")
	assert.Nil(t, s.ExecuteBatch(ctx, b))
	assert.Equal(t, 2, len(tr.configured))
}

func TestService_ExecuteBatch_TransportErrorStillConsumes(t *testing.T) {
	tr := &fakeTransport{configureErr: errors.New("device unreachable")}
	s := newTestService(tr)
	ctx := context.Background()

	b := s.NewRawBatch()
	b.Set("system", "host-name", "r1")
	assert.ErrorContains(t, s.ExecuteBatch(ctx, b), "device unreachable")

	// the batch was consumed before the transport call, so a blind retry
	// of the same builder is rejected
	err := s.ExecuteBatch(ctx, b)
	var cerr *vyos.BatchConsumedError
	assert.True(t, errors.As(err, &cerr))
}

func TestService_ExecuteBatch_InvalidatesCache(t *testing.T) {
	tr := &fakeTransport{tree: vyos.ConfigTree{}}
	s := newTestService(tr)
	ctx := context.Background()

	_, err := s.Config(ctx, false)
	assert.Nil(t, err)
	assert.Equal(t, 1, tr.showConfigCnt)

	b := s.NewRawBatch()
	b.Set("system", "host-name", "r1")
	assert.Nil(t, s.ExecuteBatch(ctx, b))

	_, err = s.Config(ctx, false)
	assert.Nil(t, err)
	assert.Equal(t, 2, tr.showConfigCnt)
}

func TestService_Interfaces(t *testing.T) {
	tr := &fakeTransport{tree: vyos.ConfigTree{
		"interfaces": map[string]interface{}{
			"ethernet": map[string]interface{}{
				"eth0": map[string]interface{}{
					"address": "10.0.0.1/24",
					"vrf":     "mgmt",
				},
			},
			"dummy": map[string]interface{}{
				"dum0": map[string]interface{}{
					"address": "10.255.0.1/32",
					"vrf":     "mgmt",
				},
			},
		},
	}}
	s := newTestService(tr)
	ctx := context.Background()

	sum, err := s.Interfaces(ctx, false)
	assert.Nil(t, err)
	assert.Equal(t, 2, sum.Total)
	assert.Equal(t, map[string]int{"ethernet": 1, "dummy": 1}, sum.ByType)
	assert.Equal(t, map[string]int{"mgmt": 2}, sum.ByVrf)
	// one config retrieval serves both family reads
	assert.Equal(t, 1, tr.showConfigCnt)
}

func TestService_EthernetInterfaces(t *testing.T) {
	tr := &fakeTransport{tree: vyos.ConfigTree{
		"interfaces": map[string]interface{}{
			"ethernet": map[string]interface{}{
				"eth0": map[string]interface{}{"mtu": "9000"},
			},
		},
	}}
	s := newTestService(tr)

	sum, err := s.EthernetInterfaces(context.Background(), false)
	assert.Nil(t, err)
	assert.Equal(t, 1, sum.Total)
	assert.Equal(t, "9000", *sum.Interfaces[0].Mtu)
}
