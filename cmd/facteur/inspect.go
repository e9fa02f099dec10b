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
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dirpx.dev/facteur"
	"dirpx.dev/facteur/apis"
	"dirpx.dev/facteur/manifest"
	"dirpx.dev/facteur/registry"
	"dirpx.dev/facteur/resolver"
)

type inspectedFactory struct {
	Name     string       `json:"name"`
	Key      string       `json:"key"`
	TypeName string       `json:"type"`
	Options  apis.Options `json:"options"`
}

func newInspectCmd(root *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Declare the manifest's factories and list them",
		Long: `Load a manifest, declare its factories on a fresh registry and print,
for every factory, its declared name, canonical key, the type identifier it
resolves to and its options.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, root, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func runInspect(cmd *cobra.Command, root *rootOptions, asJSON bool) error {
	m, err := manifest.Load(root.manifest)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}
	cfg, err := m.ApisConfig()
	if err != nil {
		return err
	}

	log := commandLogger(cmd, root)
	reg := registry.New(cfg, resolver.New(facteur.Types()), registry.WithLogger(log))
	if err := m.Apply(reg); err != nil {
		return err
	}

	defs := reg.Factories()
	out := make([]inspectedFactory, 0, len(defs))
	for _, d := range defs {
		out = append(out, inspectedFactory{Name: d.Name(), Key: d.Key(), TypeName: d.TypeName(), Options: d.Options()})
	}
	log.Infof("inspected %d factories from %s", len(out), root.manifest)

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKEY\tTYPE\tOPTIONS")
	for _, f := range out {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Name, f.Key, f.TypeName, formatOptions(f.Options))
	}
	return tw.Flush()
}

// formatOptions renders opts as space-separated key=value pairs in key order.
func formatOptions(opts apis.Options) string {
	if len(opts) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(opts))
	for _, k := range slices.Sorted(maps.Keys(opts)) {
		parts = append(parts, fmt.Sprintf("%s=%v", k, opts[k]))
	}
	return strings.Join(parts, " ")
}
