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
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/vyflow/vyflow/internal/validator"
	"github.com/vyflow/vyflow/pkg/vyos"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// DeviceSpec is one inventory entry describing a managed device.
type DeviceSpec struct {
	Name          string `yaml:"name" validate:"required"`
	Endpoint      string `yaml:"endpoint" validate:"required,url"`
	APIKey        string `yaml:"apiKey" validate:"required"`
	Version       string `yaml:"version"`
	TimeoutSec    int    `yaml:"timeoutSec"`
	NoTLS         bool   `yaml:"noTLS"`
	TLSSkipVerify bool   `yaml:"skipVerify"`
	TLSCrtPath    string `yaml:"tlsCrt"`
	TLSKeyPath    string `yaml:"tlsKey"`
	TLSCACrtPath  string `yaml:"tlsCA"`
}

// Mask returns the copy whose sensitive data are masked.
func (s *DeviceSpec) Mask() *DeviceSpec {
	cc := *s
	cc.APIKey = "***"
	return &cc
}

// VyosVersion returns the declared device version, empty meaning unknown.
func (s *DeviceSpec) VyosVersion() vyos.Version {
	return vyos.Version(s.Version)
}

// ClientConfig converts the inventory entry to the client connection config.
func (s *DeviceSpec) ClientConfig() ClientConfig {
	return ClientConfig{
		Endpoint:      s.Endpoint,
		APIKey:        s.APIKey,
		TimeoutSec:    s.TimeoutSec,
		NoTLS:         s.NoTLS,
		TLSSkipVerify: s.TLSSkipVerify,
		TLSCrtPath:    s.TLSCrtPath,
		TLSKeyPath:    s.TLSKeyPath,
		TLSCACrtPath:  s.TLSCACrtPath,
	}
}

// Inventory is the device list loaded from the inventory file.
type Inventory struct {
	Devices []DeviceSpec `yaml:"devices"`
}

// Validate checks every entry, collecting all violations instead of stopping
// at the first, and rejects duplicate device names.
func (i *Inventory) Validate() error {
	var err error
	seen := map[string]bool{}
	for idx, d := range i.Devices {
		d := d
		if vErr := validator.Validate(&d); vErr != nil {
			err = multierr.Append(err, fmt.Errorf("device[%d]: %w", idx, vErr))
		}
		if seen[d.Name] {
			err = multierr.Append(err, fmt.Errorf("device[%d]: duplicate name %q", idx, d.Name))
		}
		seen[d.Name] = true
	}
	return err
}

// ReadInventory loads and validates the YAML inventory file.
func ReadInventory(path string) (*Inventory, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read inventory file: %w", errors.WithStack(err))
	}
	var inv Inventory
	if err := yaml.Unmarshal(buf, &inv); err != nil {
		return nil, fmt.Errorf("decode inventory file: %w", errors.WithStack(err))
	}
	if err := inv.Validate(); err != nil {
		return nil, fmt.Errorf("validate inventory: %w", err)
	}
	return &inv, nil
}
