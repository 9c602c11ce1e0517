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

// Package device talks to remote routers over their HTTP configuration API
// and exposes a cached, family-aware service layer on top of the raw client.
package device

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vyflow/vyflow/internal/logger"
	"github.com/vyflow/vyflow/internal/validator"
	"github.com/vyflow/vyflow/pkg/credentials"
	"github.com/vyflow/vyflow/pkg/vyos"
)

const (
	endpointConfigure = "configure"
	endpointRetrieve  = "retrieve"

	defaultTimeout = 30 * time.Second
)

// ClientConfig carries the connection parameters of one remote device.
type ClientConfig struct {
	Endpoint      string `validate:"required,url"`
	APIKey        string `validate:"required"`
	TimeoutSec    int
	NoTLS         bool
	TLSSkipVerify bool
	TLSCrtPath    string
	TLSKeyPath    string
	TLSCACrtPath  string
}

func (c *ClientConfig) TLSClientConfig() *credentials.TLSClientConfig {
	return &credentials.TLSClientConfig{
		TLSConfigBase: credentials.TLSConfigBase{
			NoTLS:     c.NoTLS,
			CrtPath:   c.TLSCrtPath,
			KeyPath:   c.TLSKeyPath,
			CACrtPath: c.TLSCACrtPath,
		},
		SkipVerifyServer: c.TLSSkipVerify,
	}
}

// Validate validates exposed fields according to the `validate` tag.
func (c *ClientConfig) Validate() error {
	if c.TLSSkipVerify && c.TLSCACrtPath != "" {
		return fmt.Errorf("skip-verify and tls-ca flags are mutually exclusive")
	}
	return validator.Validate(c)
}

// Mask returns the copy whose sensitive data are masked.
func (c *ClientConfig) Mask() *ClientConfig {
	cc := *c
	cc.APIKey = "***"
	return &cc
}

func (c *ClientConfig) timeout() time.Duration {
	if c.TimeoutSec > 0 {
		return time.Duration(c.TimeoutSec) * time.Second
	}
	return defaultTimeout
}

// apiResponse is the envelope every API endpoint answers with.
type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *string         `json:"error"`
}

// apiRequest is one record of the request payload sent to the configure
// endpoint, or the single record sent to retrieve.
type apiRequest struct {
	Op   string   `json:"op"`
	Path []string `json:"path"`
}

// Client is the low-level HTTP client of the device configuration API. It is
// safe for concurrent use.
type Client struct {
	cfg    ClientConfig
	client *http.Client
}

// NewClient validates the config and builds the HTTP client, applying the
// TLS settings the config carries.
func NewClient(cfg ClientConfig) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate client config: %w", err)
	}
	c, err := httpClient(cfg.TLSClientConfig())
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}
	c.Timeout = cfg.timeout()
	return &Client{cfg: cfg, client: c}, nil
}

func httpClient(cfg *credentials.TLSClientConfig) (*http.Client, error) {
	c := &http.Client{}
	if cfg.NoTLS {
		return c, nil
	}
	tlsCfg, err := credentials.NewTLSConfig(cfg.Certificates(false), cfg.VerifyServer())
	if err != nil {
		return nil, fmt.Errorf("new tls config: %w", err)
	}
	c.Transport = &http.Transport{
		TLSClientConfig: tlsCfg,
	}
	return c, nil
}

// ConfigureBatch sends all operations as one request to the configure
// endpoint. The device applies them in order and commits atomically.
func (c *Client) ConfigureBatch(ctx context.Context, ops []vyos.Operation) error {
	payload := make([]apiRequest, 0, len(ops))
	for _, op := range ops {
		payload = append(payload, apiRequest{Op: string(op.Op), Path: op.Path})
	}
	_, err := c.post(ctx, endpointConfigure, payload)
	return err
}

// ShowConfig retrieves the config subtree under the given path. An empty
// path retrieves the whole config.
func (c *Client) ShowConfig(ctx context.Context, p []string) (vyos.ConfigTree, error) {
	if p == nil {
		p = []string{}
	}
	resp, err := c.post(ctx, endpointRetrieve, apiRequest{Op: "showConfig", Path: p})
	if err != nil {
		return nil, err
	}
	return vyos.DecodeConfigTree(resp.Data)
}

// post sends the payload as the form-encoded `data` field along with the API
// key, the wire format the device expects.
func (c *Client) post(ctx context.Context, endpoint string, payload interface{}) (*apiResponse, error) {
	l := logger.FromContext(ctx)

	u, err := url.Parse(c.cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("url parse error: %w", errors.WithStack(err))
	}
	u.Path = path.Join(u.Path, endpoint)

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("json encode error: %w", errors.WithStack(err))
	}
	form := url.Values{}
	form.Set("data", string(data))
	form.Set("key", c.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	l.Debugw("posting to device", "endpoint", endpoint)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post: %w", errors.WithStack(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", errors.WithStack(err))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.WithStack(fmt.Errorf("device returned code=%d: %s", resp.StatusCode, body))
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("decode api response: %w", errors.WithStack(err))
	}
	if !apiResp.Success {
		msg := "unknown device error"
		if apiResp.Error != nil {
			msg = *apiResp.Error
		}
		return nil, errors.WithStack(fmt.Errorf("device rejected request: %s", msg))
	}
	return &apiResp, nil
}
