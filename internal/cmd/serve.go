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

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vyflow/vyflow/internal/core"
	"github.com/vyflow/vyflow/internal/logger"
)

const (
	FlagServeAddr = "serve-addr"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run HTTP server to expose the device configuration API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := newServeCfg(cmd, args)
			if err != nil {
				return err
			}
			logger.Setup(cfg.Devel, cfg.Verbose)
			return core.RunServe(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringP(FlagServeAddr, "a", ":8080", "Bind address of the northbound API.")
	mustBindToViper(cmd)

	return cmd
}

func newServeCfg(cmd *cobra.Command, args []string) (*core.ServeCfg, error) {
	rootCfg, err := newRootCfg(cmd)
	if err != nil {
		return nil, err
	}
	cfg := &core.ServeCfg{
		RootCfg:      *rootCfg,
		Addr:         viper.GetString(FlagServeAddr),
		NoTLS:        viper.GetBool(FlagNoTLS),
		Insecure:     viper.GetBool(FlagInsecure),
		TLSCrtPath:   viper.GetString(FlagTLSCrt),
		TLSKeyPath:   viper.GetString(FlagTLSKey),
		TLSCACrtPath: viper.GetString(FlagTLSCACrt),
	}
	return cfg, cfg.Validate()
}
