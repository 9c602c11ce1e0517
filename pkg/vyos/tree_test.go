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

package vyos_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vyflow/vyflow/pkg/vyos"
)

func TestDecodeConfigTree(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		tree, err := vyos.DecodeConfigTree([]byte(`{"interfaces":{"ethernet":{"eth0":{"mtu":"9000"}}}}`))
		assert.Nil(t, err)
		assert.Equal(t, "9000", *tree.Subtree("interfaces", "ethernet", "eth0").String("mtu"))
	})

	t.Run("err: not an object", func(t *testing.T) {
		_, err := vyos.DecodeConfigTree([]byte(`["not","a","tree"]`))
		var perr *vyos.ConfigParseError
		assert.True(t, errors.As(err, &perr))
	})
}

func TestConfigTree_Subtree(t *testing.T) {
	tree := vyos.ConfigTree{
		"interfaces": map[string]interface{}{
			"ethernet": map[string]interface{}{
				"eth0": map[string]interface{}{"mtu": "1500"},
			},
		},
	}

	assert.Equal(t, "1500", *tree.Subtree("interfaces", "ethernet", "eth0").String("mtu"))
	assert.Equal(t, vyos.ConfigTree{}, tree.Subtree("interfaces", "dummy"))
	assert.Equal(t, vyos.ConfigTree{}, tree.Subtree("missing", "deeper"))
}

func TestConfigTree_String(t *testing.T) {
	tree := vyos.ConfigTree{"mtu": "1500", "vif": map[string]interface{}{}}
	assert.Equal(t, "1500", *tree.String("mtu"))
	assert.Nil(t, tree.String("missing"))
	assert.Nil(t, tree.String("vif"))
}

func TestConfigTree_StringList(t *testing.T) {
	tests := []struct {
		name  string
		given vyos.ConfigTree
		want  []string
	}{
		{
			"ok: bare string becomes one-element list",
			vyos.ConfigTree{"address": "10.0.0.1/24"},
			[]string{"10.0.0.1/24"},
		},
		{
			"ok: list stays a list",
			vyos.ConfigTree{"address": []interface{}{"10.0.0.1/24", "10.0.0.2/24"}},
			[]string{"10.0.0.1/24", "10.0.0.2/24"},
		},
		{
			"ok: missing key",
			vyos.ConfigTree{},
			nil,
		},
		{
			"ok: non-string entries skipped",
			vyos.ConfigTree{"address": []interface{}{"10.0.0.1/24", 42}},
			[]string{"10.0.0.1/24"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.given.StringList("address"))
		})
	}
}
