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

package derrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo"
)

var _ error = &HTTPWrapError{}

// HTTPWrapError carries a pair of errors: the client-facing HTTP status and
// message, and the underlying error kept for logging.
type HTTPWrapError struct {
	code int
	msg  string
	werr error
}

// HTTPErrorf creates error containing pair errors: an HTTP error with given status code and message, and underlying error.
func HTTPErrorf(err error, code int, format string, a ...interface{}) error {
	return &HTTPWrapError{
		code: code,
		msg:  fmt.Sprintf(format, a...),
		werr: err,
	}
}

func (e *HTTPWrapError) Error() string {
	return e.werr.Error()
}

func (e *HTTPWrapError) Unwrap() error {
	return e.werr
}

func (e *HTTPWrapError) Code() int {
	return e.code
}

func (e *HTTPWrapError) Message() string {
	return e.msg
}

// ToHTTPError separates the client-facing HTTP error and the underlying error.
func ToHTTPError(err error) (*echo.HTTPError, error) {
	if err == nil {
		return nil, nil
	}
	if we := (*HTTPWrapError)(nil); errors.As(err, &we) {
		return echo.NewHTTPError(we.code, we.msg), err
	}
	if he := (*echo.HTTPError)(nil); errors.As(err, &he) {
		return he, nil
	}
	return echo.NewHTTPError(http.StatusInternalServerError), err
}
