/*
   Copyright 2025 The DIRPX Authors

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

package cli

// This file implements the "catalog" command, which exports the declared
// error codes of a registry.

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/errcode/adapter"
	"dirpx.dev/errcode/registry"
)

// CatalogManager exports a registry.
type CatalogManager struct {
	reg    *registry.Registry
	codes  *CodeManager
	logger *zap.Logger
}

// NewCatalogManager creates a CatalogManager over reg. A nil reg means
// registry.Default().
func NewCatalogManager(reg *registry.Registry, logger *zap.Logger) *CatalogManager {
	if reg == nil {
		reg = registry.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogManager{reg: reg, codes: NewCodeManager(logger), logger: logger}
}

// NewCatalogCmd builds the catalog command over registry.Default().
func NewCatalogCmd(logger *zap.Logger) *cobra.Command {
	return NewCatalogManager(nil, logger).newCatalogCmd()
}

// NewCatalogCmdWithManager returns the catalog command using the provided manager.
func NewCatalogCmdWithManager(mgr *CatalogManager) *cobra.Command {
	return mgr.newCatalogCmd()
}

func (m *CatalogManager) newCatalogCmd() *cobra.Command {
	var (
		format    string
		describe  bool
		rulesFile string
	)

	formats := make([]string, 0, 3)
	for _, f := range registry.Formats() {
		formats = append(formats, f.String())
	}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Export the declared error codes",
		Long: `Export the declared error codes as a root/parent/leaf/category tree.

With --describe, print one JSON descriptor per unique declaration instead,
including the resolved HTTP and gRPC statuses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if describe {
				return m.Describe(cmd.OutOrStdout(), rulesFile)
			}
			return m.Export(cmd.OutOrStdout(), format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Output format: "+strings.Join(formats, ", "))
	cmd.Flags().BoolVar(&describe, "describe", false, "Print flat descriptors with statuses")
	cmd.Flags().StringVar(&rulesFile, "rules", "", "YAML file with mapper rules (with --describe)")

	return cmd
}

// Export writes the catalog tree in format to w.
func (m *CatalogManager) Export(w io.Writer, format string) error {
	f, err := registry.ParseFormat(format)
	if err != nil {
		return fail(ErrBadFormat, err)
	}
	data, err := m.reg.Export(f)
	if err != nil {
		return fail(ErrExport, err)
	}
	_, err = w.Write(data)
	return err
}

// Describe writes the unique declarations as JSON descriptors to w.
func (m *CatalogManager) Describe(w io.Writer, rulesFile string) error {
	mp, err := m.codes.mapper(rulesFile)
	if err != nil {
		return err
	}
	descs := adapter.DescribeAll(m.reg.Unique(), mp)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(descs); err != nil {
		return fail(ErrExport, fmt.Errorf("encode descriptors: %w", err))
	}
	m.logger.Debug("catalog described", zap.Int("declarations", len(descs)))
	return nil
}
