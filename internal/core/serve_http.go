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
	"net"
	"net/http"

	"github.com/labstack/echo"
	"github.com/pkg/errors"
	"github.com/vyflow/vyflow/internal/derrors"
	"github.com/vyflow/vyflow/internal/device"
	"github.com/vyflow/vyflow/internal/logger"
	"github.com/vyflow/vyflow/pkg/credentials"
	"github.com/vyflow/vyflow/pkg/vyos"
)

type HttpDevicesRes struct {
	Devices []string `json:"devices"`
}

type HttpBatchOp struct {
	Op    string `json:"op"`
	Value string `json:"value"`
}

type HttpBatchBody struct {
	Interface  string        `json:"interface"`
	Operations []HttpBatchOp `json:"operations"`
}

type HttpRawOp struct {
	Op   string   `json:"op"`
	Path []string `json:"path"`
}

type HttpRawBody struct {
	Operations []HttpRawOp `json:"operations"`
}

type HttpBatchRes struct {
	Device  string `json:"device"`
	Applied int    `json:"applied"`
}

func RunServeHttp(ctx context.Context, cfg *ServeCfg, services *device.ServiceRegistry) error {
	l := logger.FromContext(ctx)
	e := echo.New()

	l.Infow("starting to listen", "address", cfg.Addr)
	listen, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		e.Logger.Fatal(err)
	}
	if !cfg.NoTLS {
		sCfg := cfg.TLSServerConfig()
		tlsCfg, err := credentials.NewTLSConfig(sCfg.Certificates(true), sCfg.VerifyClient())
		if err != nil {
			e.Logger.Fatal(err)
		}
		listen = tls.NewListener(listen, tlsCfg)
	}

	e.GET("/devices", func(c echo.Context) error {
		return HttpListDevices(c, services)
	})
	e.GET("/devices/:device/config", func(c echo.Context) error {
		return HttpDeviceConfig(c, ctx, services)
	})
	e.GET("/devices/:device/interfaces", func(c echo.Context) error {
		return HttpInterfaces(c, ctx, services)
	})
	e.GET("/devices/:device/interfaces/ethernet", func(c echo.Context) error {
		return HttpEthernetInterfaces(c, ctx, services)
	})
	e.GET("/devices/:device/interfaces/dummy", func(c echo.Context) error {
		return HttpDummyInterfaces(c, ctx, services)
	})
	e.POST("/devices/:device/batch/ethernet", func(c echo.Context) error {
		return HttpEthernetBatch(c, ctx, services)
	})
	e.POST("/devices/:device/batch/dummy", func(c echo.Context) error {
		return HttpDummyBatch(c, ctx, services)
	})
	e.POST("/devices/:device/batch/raw", func(c echo.Context) error {
		return HttpRawBatch(c, ctx, services)
	})

	e.Listener = listen
	e.Logger.Fatal(e.Start(""))
	return nil
}

// HttpListDevices responds the registered device names.
func HttpListDevices(c echo.Context, services *device.ServiceRegistry) error {
	return c.JSON(http.StatusOK, HttpDevicesRes{Devices: services.Names()})
}

// HttpDeviceConfig responds the raw config export of the device, refetching
// it when the refresh query parameter is set.
func HttpDeviceConfig(c echo.Context, ctx context.Context, services *device.ServiceRegistry) error {
	svc, err := lookupService(c, services)
	if err != nil {
		return err
	}
	tree, err := svc.Config(ctx, refreshParam(c))
	if err != nil {
		return writeError(ctx, err)
	}
	return c.JSON(http.StatusOK, tree)
}

// HttpInterfaces responds the normalized cross-family interface summary.
func HttpInterfaces(c echo.Context, ctx context.Context, services *device.ServiceRegistry) error {
	svc, err := lookupService(c, services)
	if err != nil {
		return err
	}
	summary, err := svc.Interfaces(ctx, refreshParam(c))
	if err != nil {
		return writeError(ctx, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// HttpEthernetInterfaces responds the normalized ethernet interface summary.
func HttpEthernetInterfaces(c echo.Context, ctx context.Context, services *device.ServiceRegistry) error {
	svc, err := lookupService(c, services)
	if err != nil {
		return err
	}
	summary, err := svc.EthernetInterfaces(ctx, refreshParam(c))
	if err != nil {
		return writeError(ctx, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// HttpDummyInterfaces responds the normalized dummy interface summary.
func HttpDummyInterfaces(c echo.Context, ctx context.Context, services *device.ServiceRegistry) error {
	svc, err := lookupService(c, services)
	if err != nil {
		return err
	}
	summary, err := svc.DummyInterfaces(ctx, refreshParam(c))
	if err != nil {
		return writeError(ctx, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// HttpEthernetBatch queues the requested ethernet operations into one batch
// and executes it on the device.
func HttpEthernetBatch(c echo.Context, ctx context.Context, services *device.ServiceRegistry) error {
	svc, err := lookupService(c, services)
	if err != nil {
		return err
	}
	req := HttpBatchBody{}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("HttpEthernetBatch error: invalid request body: %v", err))
	}
	if req.Interface == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "HttpEthernetBatch error: interface is required")
	}
	b, err := svc.NewEthernetBatch()
	if err != nil {
		return writeError(ctx, err)
	}
	if err := queueEthernetOps(b, req.Interface, req.Operations); err != nil {
		return writeError(ctx, err)
	}
	if err := svc.ExecuteBatch(ctx, b); err != nil {
		return writeError(ctx, err)
	}
	return c.JSON(http.StatusOK, HttpBatchRes{Device: svc.Name(), Applied: b.OperationCount()})
}

// HttpDummyBatch queues the requested dummy operations into one batch and
// executes it on the device. Ethernet-only operations are rejected.
func HttpDummyBatch(c echo.Context, ctx context.Context, services *device.ServiceRegistry) error {
	svc, err := lookupService(c, services)
	if err != nil {
		return err
	}
	req := HttpBatchBody{}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("HttpDummyBatch error: invalid request body: %v", err))
	}
	if req.Interface == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "HttpDummyBatch error: interface is required")
	}
	b, err := svc.NewDummyBatch()
	if err != nil {
		return writeError(ctx, err)
	}
	if err := queueDummyOps(b, req.Interface, req.Operations); err != nil {
		return writeError(ctx, err)
	}
	if err := svc.ExecuteBatch(ctx, b); err != nil {
		return writeError(ctx, err)
	}
	return c.JSON(http.StatusOK, HttpBatchRes{Device: svc.Name(), Applied: b.OperationCount()})
}

// HttpRawBatch executes verbatim set/delete paths with no family typing.
func HttpRawBatch(c echo.Context, ctx context.Context, services *device.ServiceRegistry) error {
	svc, err := lookupService(c, services)
	if err != nil {
		return err
	}
	req := HttpRawBody{}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("HttpRawBatch error: invalid request body: %v", err))
	}
	b := svc.NewRawBatch()
	for i, op := range req.Operations {
		switch vyos.OpKind(op.Op) {
		case vyos.OpSet:
			b.Set(op.Path...)
		case vyos.OpDelete:
			b.Delete(op.Path...)
		default:
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("HttpRawBatch error: operations[%d]: unknown op %q", i, op.Op))
		}
	}
	if err := svc.ExecuteBatch(ctx, b); err != nil {
		return writeError(ctx, err)
	}
	return c.JSON(http.StatusOK, HttpBatchRes{Device: svc.Name(), Applied: b.OperationCount()})
}

func lookupService(c echo.Context, services *device.ServiceRegistry) (*device.Service, error) {
	name := c.Param("device")
	svc, err := services.Get(name)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("device not registered: %s", name))
	}
	return svc, nil
}

func refreshParam(c echo.Context) bool {
	return c.QueryParam("refresh") == "true"
}

// writeError classifies the failure into the client-facing HTTP error and
// logs the underlying one.
func writeError(ctx context.Context, err error) error {
	he, werr := derrors.ToHTTPError(classify(err))
	if werr != nil {
		logger.ErrorWithStack(ctx, werr, "handling http request")
	}
	return he
}

func classify(err error) error {
	var (
		unsupported *vyos.UnsupportedFeatureError
		unknown     *vyos.UnknownFeatureError
		malformed   *vyos.MalformedValueError
		emptyBatch  *vyos.EmptyBatchError
		consumed    *vyos.BatchConsumedError
		parse       *vyos.ConfigParseError
	)
	switch {
	case errors.As(err, &unsupported):
		return derrors.HTTPErrorf(err, http.StatusUnprocessableEntity, "%v", unsupported)
	case errors.As(err, &unknown):
		return derrors.HTTPErrorf(err, http.StatusNotFound, "%v", unknown)
	case errors.As(err, &malformed):
		return derrors.HTTPErrorf(err, http.StatusBadRequest, "%v", malformed)
	case errors.As(err, &emptyBatch):
		return derrors.HTTPErrorf(err, http.StatusBadRequest, "%v", emptyBatch)
	case errors.As(err, &consumed):
		return derrors.HTTPErrorf(err, http.StatusConflict, "%v", consumed)
	case errors.As(err, &parse):
		return derrors.HTTPErrorf(err, http.StatusBadGateway, "%v", parse)
	default:
		return err
	}
}
