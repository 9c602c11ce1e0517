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

package device

import (
	"context"
	"fmt"
	"sync"

	"github.com/vyflow/vyflow/internal/logger"
	"github.com/vyflow/vyflow/internal/util"
	"github.com/vyflow/vyflow/pkg/vyos"
	"github.com/vyflow/vyflow/pkg/vyos/batch"
	"github.com/vyflow/vyflow/pkg/vyos/mapper"
)

// Transport is the wire-level contract the service needs from a device
// connection. Client satisfies it; tests substitute fakes.
type Transport interface {
	ConfigureBatch(ctx context.Context, ops []vyos.Operation) error
	ShowConfig(ctx context.Context, path []string) (vyos.ConfigTree, error)
}

var _ Transport = &Client{}

// Batch is what the service needs from any batch builder to execute it.
// All builders satisfy it through their embedded operation list.
type Batch interface {
	Operations() []vyos.Operation
	IsEmpty() bool
	MarkConsumed() error
}

// Service binds one device to its version-scoped mappers and caches its
// config export between reads. Safe for concurrent use.
type Service struct {
	name      string
	version   vyos.Version
	registry  *mapper.Registry
	transport Transport

	mu     sync.Mutex
	cached vyos.ConfigTree
}

// NewService creates the service for one device. The version is kept as
// given; mappers normalize it on resolution.
func NewService(name string, version vyos.Version, reg *mapper.Registry, transport Transport) *Service {
	return &Service{
		name:      name,
		version:   version,
		registry:  reg,
		transport: transport,
	}
}

func (s *Service) Name() string {
	return s.name
}

func (s *Service) Version() vyos.Version {
	return s.version
}

// Config returns the device config export, fetching it from the device on
// first use or when refresh is set.
func (s *Service) Config(ctx context.Context, refresh bool) (vyos.ConfigTree, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil && !refresh {
		return s.cached, nil
	}
	l := logger.FromContext(ctx)
	l.Infow("retrieving device config", "device", s.name, "refresh", refresh)
	tree, err := s.transport.ShowConfig(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("retrieve config of %s: %w", s.name, err)
	}
	s.cached = tree
	return tree, nil
}

// ExecuteBatch sends all queued operations to the device as one atomic
// request, marking the batch consumed first so a transport retry storm
// cannot replay it. The cached config is dropped on success.
func (s *Service) ExecuteBatch(ctx context.Context, b Batch) error {
	if b.IsEmpty() {
		return &vyos.EmptyBatchError{}
	}
	if err := b.MarkConsumed(); err != nil {
		return err
	}
	l := logger.FromContext(ctx)
	ops := b.Operations()
	l.Infow("executing batch", "device", s.name, "operations", len(ops))
	if err := s.transport.ConfigureBatch(ctx, ops); err != nil {
		return fmt.Errorf("configure %s: %w", s.name, err)
	}
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
	return nil
}

// NewEthernetBatch creates an ethernet batch builder bound to this device's
// version.
func (s *Service) NewEthernetBatch() (*batch.Ethernet, error) {
	return batch.NewEthernet(s.registry, s.version)
}

// NewDummyBatch creates a dummy batch builder bound to this device's version.
func (s *Service) NewDummyBatch() (*batch.Dummy, error) {
	return batch.NewDummy(s.registry, s.version)
}

// NewRawBatch creates a raw batch builder bound to this device's version.
func (s *Service) NewRawBatch() *batch.Raw {
	return batch.NewRaw(s.version)
}

// EthernetInterfaces returns the normalized summary of the device's ethernet
// interfaces.
func (s *Service) EthernetInterfaces(ctx context.Context, refresh bool) (*mapper.InterfacesSummary, error) {
	m, err := s.ethernetMapper()
	if err != nil {
		return nil, err
	}
	tree, err := s.Config(ctx, refresh)
	if err != nil {
		return nil, err
	}
	return m.ParseInterfaces(tree.Subtree("interfaces", "ethernet")), nil
}

// DummyInterfaces returns the normalized summary of the device's dummy
// interfaces.
func (s *Service) DummyInterfaces(ctx context.Context, refresh bool) (*mapper.InterfacesSummary, error) {
	m, err := s.dummyMapper()
	if err != nil {
		return nil, err
	}
	tree, err := s.Config(ctx, refresh)
	if err != nil {
		return nil, err
	}
	return m.ParseInterfaces(tree.Subtree("interfaces", "dummy")), nil
}

// Interfaces returns the cross-family summary. Family type counts are
// disjoint and merged directly; VRF counts are summed since one VRF can
// hold interfaces of both families.
func (s *Service) Interfaces(ctx context.Context, refresh bool) (*mapper.InterfacesSummary, error) {
	eth, err := s.EthernetInterfaces(ctx, refresh)
	if err != nil {
		return nil, err
	}
	// the second read always hits the cache filled by the first
	dum, err := s.DummyInterfaces(ctx, false)
	if err != nil {
		return nil, err
	}
	combined := &mapper.InterfacesSummary{
		Interfaces: append(eth.Interfaces, dum.Interfaces...),
		Total:      eth.Total + dum.Total,
		ByType:     util.MergeMap(eth.ByType, dum.ByType),
		ByVrf:      map[string]int{},
	}
	for vrf, n := range eth.ByVrf {
		combined.ByVrf[vrf] += n
	}
	for vrf, n := range dum.ByVrf {
		combined.ByVrf[vrf] += n
	}
	return combined, nil
}

func (s *Service) ethernetMapper() (*mapper.EthernetMapper, error) {
	fm, err := s.registry.Resolve(mapper.FamilyEthernet, s.version)
	if err != nil {
		return nil, err
	}
	m, ok := fm.(*mapper.EthernetMapper)
	if !ok {
		return nil, fmt.Errorf("registry returned %T for %s", fm, mapper.FamilyEthernet)
	}
	return m, nil
}

func (s *Service) dummyMapper() (*mapper.DummyMapper, error) {
	fm, err := s.registry.Resolve(mapper.FamilyDummy, s.version)
	if err != nil {
		return nil, err
	}
	m, ok := fm.(*mapper.DummyMapper)
	if !ok {
		return nil, fmt.Errorf("registry returned %T for %s", fm, mapper.FamilyDummy)
	}
	return m, nil
}
