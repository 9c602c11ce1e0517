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

// ethernetOverrides is the per-version override table. A nil entry means
// "use the base behavior"; the base behavior is that of the newest known
// version. Versions differ from the baseline only in the entries they fill.
type ethernetOverrides struct {
	ipDirectedBroadcast func(m *EthernetMapper, name string) (vyos.CommandPath, error)
	parseIP             func(m *EthernetMapper, cfg vyos.ConfigTree) *IPConfig
}

func ethernetOverridesFor(v vyos.Version) ethernetOverrides {
	if ov, ok := ethernetOverridesByVersion[v]; ok {
		return ov
	}
	return ethernetOverrides{}
}

var ethernetOverridesByVersion = map[vyos.Version]ethernetOverrides{
	vyos.V14: {
		ipDirectedBroadcast: ethernetV14DirectedBroadcast,
		parseIP:             ethernetV14ParseIP,
	},
	// 1.5 is the baseline; no overrides.
	vyos.V15: {},
}

func ethernetV14DirectedBroadcast(m *EthernetMapper, name string) (vyos.CommandPath, error) {
	return nil, &vyos.UnsupportedFeatureError{
		Feature:    "enable-directed-broadcast",
		Version:    m.version,
		MinVersion: vyos.V15,
	}
}

// ethernetV14ParseIP keeps the normalized shape of the newer parser but pins
// the attributes 1.4 does not have to their "not supported" marker.
func ethernetV14ParseIP(m *EthernetMapper, cfg vyos.ConfigTree) *IPConfig {
	ip := m.parseIPBase(cfg)
	if ip == nil {
		return nil
	}
	ip.EnableDirectedBroadcast = nil
	return ip
}
