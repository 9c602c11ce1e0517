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
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vyflow/vyflow/internal/core"
	"github.com/vyflow/vyflow/pkg/stacktrace"
)

var cfgFile string

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		stacktrace.Show(os.Stderr, err)
		os.Exit(1)
	}
}

const (
	FlagConfig              = "config"
	FlagDevel               = "devel"
	FlagVerbose             = "verbose"
	FlagInventory           = "inventory"
	FlagAllowUnknownVersion = "allow-unknown-version"
	FlagNoTLS               = "notls"
	FlagTLSCrt              = "tls-crt"
	FlagTLSKey              = "tls-key"
	FlagTLSCACrt            = "tls-ca-crt"
	FlagInsecure            = "insecure"
)

// NewRootCmd creates command root.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "vyflow",
		Short:        "vyflow translates and batches router configuration commands.",
		SilenceUsage: true,
	}

	cobra.OnInitialize(initConfig)

	cmd.PersistentFlags().StringVar(&cfgFile, FlagConfig, "", "config file (default is $HOME/.vyflow.yaml)")

	cmd.PersistentFlags().Uint8P(FlagVerbose, "v", 1, "verbose level")
	cmd.PersistentFlags().BoolP(FlagDevel, "", false, "enable development mode")
	cmd.PersistentFlags().StringP(FlagInventory, "i", "", "path to the device inventory file")
	cmd.PersistentFlags().BoolP(FlagAllowUnknownVersion, "", false, "accept devices declaring an unrecognized software version")
	cmd.PersistentFlags().BoolP(FlagNoTLS, "", false, "disable TLS validation")
	cmd.PersistentFlags().BoolP(FlagInsecure, "", false, "skip TLS validation. Client cert will be verified only when provided.")
	cmd.PersistentFlags().StringP(FlagTLSCrt, "", "", "path to the certificate file")
	cmd.PersistentFlags().StringP(FlagTLSKey, "", "", "path to the private key file")
	cmd.PersistentFlags().StringP(FlagTLSCACrt, "", "", "path to the CA certificate file")

	mustBindToViper(cmd)
	cmd.Version = getVcsRevision()

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newRootCfg(cmd *cobra.Command) (*core.RootCfg, error) {
	cfg := &core.RootCfg{
		Verbose:             cast.ToUint8(viper.GetUint(FlagVerbose)),
		Devel:               viper.GetBool(FlagDevel),
		InventoryPath:       viper.GetString(FlagInventory),
		AllowUnknownVersion: viper.GetBool(FlagAllowUnknownVersion),
	}
	return cfg, cfg.Validate()
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".vyflow" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".vyflow")
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.SetEnvPrefix("VYFLOW")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
