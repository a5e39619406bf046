// Copyright 2024 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Binary protogen compiles a parsed protobuf schema bundle into the
// target-neutral declaration tree and prints one line per lowered module.
// The input is the JSON serialization of the bundle that the schema parser
// emits; parsing itself stays outside this binary.
package main

import (
	"encoding/json"
	goflag "flag"
	"fmt"
	"os"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/openpb/protogen/pbgen"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "protogen",
		Short:         "protogen lowers a parsed schema bundle into a declaration tree for code generation",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().String("ast_bundle", "", "Path to the JSON bundle produced by the schema parser.")
	rootCmd.Flags().String("package_filter", "", "If set, only declarations under this dotted package prefix are printed.")
	rootCmd.Flags().Bool("skip_validation", false, "Skip label validation for bundles known to be valid.")

	cfgFile := rootCmd.PersistentFlags().String("config_file", "", "Path to config file.")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if *cfgFile != "" {
			viper.SetConfigFile(*cfgFile)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("error reading config: %w", err)
			}
		}
		viper.BindPFlags(cmd.Flags())
		viper.AutomaticEnv()
		return nil
	}
	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	bundlePath := viper.GetString("ast_bundle")
	if bundlePath == "" {
		return fmt.Errorf("an AST bundle must be specified")
	}

	raw, err := os.ReadFile(bundlePath)
	if err != nil {
		return fmt.Errorf("error reading bundle: %w", err)
	}
	var wire wireBundle
	if err := json.Unmarshal(raw, &wire); err != nil {
		return fmt.Errorf("error decoding bundle: %w", err)
	}
	bundle, err := wire.toBundle()
	if err != nil {
		return fmt.Errorf("malformed bundle: %w", err)
	}
	log.V(1).Infof("decoded bundle with %d files", len(bundle.Files))

	registry, errs := pbgen.GenerateIR(bundle, pbgen.IROptions{
		SkipValidation: viper.GetBool("skip_validation"),
	})
	if errs != nil {
		for _, e := range errs {
			fmt.Fprintln(cmd.ErrOrStderr(), e)
		}
		return fmt.Errorf("compilation failed with %d diagnostics", len(errs))
	}

	paths := registry.OrderedPaths()
	if filter := viper.GetString("package_filter"); filter != "" {
		paths = registry.Prefixed(filter)
	}
	for _, p := range paths {
		m, _ := registry.Module(p)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", p, m)
	}
	return nil
}

func main() {
	// glog registers its flags on the standard flag set.
	pflag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	if err := newRootCmd().Execute(); err != nil {
		log.Exitf("Error: %v", err)
	}
}
