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

package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vyflow/vyflow/internal/validator"
)

func TestValidate(t *testing.T) {
	type testCfg struct {
		Name     string `validate:"required"`
		Endpoint string `validate:"omitempty,url"`
	}

	tests := []struct {
		name    string
		given   *testCfg
		wantErr bool
	}{
		{"ok", &testCfg{Name: "r1", Endpoint: "https://r1.example.com"}, false},
		{"ok: optional field empty", &testCfg{Name: "r1"}, false},
		{"err: required field empty", &testCfg{}, true},
		{"err: not a url", &testCfg{Name: "r1", Endpoint: "not-a-url"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(tt.given)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}
