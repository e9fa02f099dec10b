/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"dirpx.dev/facteur/logger"
)

type rootOptions struct {
	manifest string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "facteur",
		Short:         "Inspect facteur factory manifests",
		SilenceUsage:  true,
	}
	cmd.PersistentFlags().StringVarP(&opts.manifest, "config", "c", "facteur.yaml", "manifest file (yaml or json)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log declarations")

	cmd.AddCommand(newInspectCmd(opts), newVersionCmd())
	return cmd
}

// commandLogger logs to the command's stderr, at debug level when verbose.
func commandLogger(cmd *cobra.Command, opts *rootOptions) logger.Logger {
	zl := logger.NewZerologLoggerWithWriter("facteur", cmd.ErrOrStderr()).(*logger.ZerologLogger)
	if opts.verbose {
		return zl.WithLevel(zerolog.DebugLevel)
	}
	return zl.WithLevel(zerolog.InfoLevel)
}
