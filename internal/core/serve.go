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
	"context"
	"crypto/tls"
	"fmt"

	"github.com/pkg/errors"
	"github.com/vyflow/vyflow/internal/device"
	"github.com/vyflow/vyflow/internal/logger"
	"github.com/vyflow/vyflow/internal/validator"
	"github.com/vyflow/vyflow/pkg/credentials"
	"github.com/vyflow/vyflow/pkg/vyos/mapper"
)

type ServeCfg struct {
	RootCfg

	Addr         string `validate:"required"`
	NoTLS        bool
	Insecure     bool
	TLSCrtPath   string
	TLSKeyPath   string
	TLSCACrtPath string
}

func (c *ServeCfg) TLSServerConfig() *credentials.TLSServerConfig {
	cfg := &credentials.TLSServerConfig{
		TLSConfigBase: credentials.TLSConfigBase{
			NoTLS:     c.NoTLS,
			CrtPath:   c.TLSCrtPath,
			KeyPath:   c.TLSKeyPath,
			CACrtPath: c.TLSCACrtPath,
		},
	}
	if c.Insecure {
		cfg.ClientAuth = tls.VerifyClientCertIfGiven
	} else {
		cfg.ClientAuth = tls.RequireAndVerifyClientCert
	}

	return cfg
}

// Validate validates exposed fields according to the `validate` tag.
func (c *ServeCfg) Validate() error {
	if !c.NoTLS {
		if c.TLSKeyPath == "" || c.TLSCrtPath == "" {
			return fmt.Errorf("tls-key and tls-crt options must be set to use TLS")
		}
	}
	return validator.Validate(c)
}

// Mask returns the copy whose sensitive data are masked.
func (c *ServeCfg) Mask() *ServeCfg {
	cc := *c
	cc.RootCfg = *c.RootCfg.Mask()
	return &cc
}

// RunServe loads the inventory, builds a service per device and starts the
// HTTP API.
func RunServe(ctx context.Context, cfg *ServeCfg) error {
	l := logger.FromContext(ctx)
	l.Infow("serve called", "config", cfg.Mask())

	inv, err := device.ReadInventory(cfg.InventoryPath)
	if err != nil {
		return fmt.Errorf("load inventory: %w", err)
	}

	services, err := BuildServices(ctx, cfg, inv)
	if err != nil {
		return err
	}

	return RunServeHttp(ctx, cfg, services)
}

// BuildServices turns the inventory into the registry of ready device
// services, rejecting unrecognized device versions unless allowed.
func BuildServices(ctx context.Context, cfg *ServeCfg, inv *device.Inventory) (*device.ServiceRegistry, error) {
	l := logger.FromContext(ctx)
	mappers := mapper.NewRegistry()
	services := device.NewServiceRegistry()

	for _, spec := range inv.Devices {
		spec := spec
		v := spec.VyosVersion()
		if spec.Version != "" && !v.Known() && !cfg.AllowUnknownVersion {
			return nil, errors.WithStack(fmt.Errorf(
				"device %s declares unrecognized version %q: set allow-unknown-version to map it to %s",
				spec.Name, spec.Version, v.Normalize()))
		}
		client, err := device.NewClient(spec.ClientConfig())
		if err != nil {
			return nil, fmt.Errorf("create client for %s: %w", spec.Name, err)
		}
		services.Register(device.NewService(spec.Name, v, mappers, client))
		l.Infow("device registered", "device", spec.Mask(), "version", v.Normalize())
	}
	return services, nil
}
