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

// This file implements the "encode", "decode" and "categories" commands.

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/errcode/apis"
	"dirpx.dev/errcode/code"
	"dirpx.dev/errcode/mapper"
	"dirpx.dev/errcode/path"
)

// CodeManager handles code arithmetic commands with injected dependencies.
type CodeManager struct {
	logger *zap.Logger
}

// NewCodeManager creates a CodeManager. A nil logger discards output.
func NewCodeManager(logger *zap.Logger) *CodeManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CodeManager{logger: logger}
}

// NewEncodeCmd builds the encode command.
func NewEncodeCmd(logger *zap.Logger) *cobra.Command {
	return NewCodeManager(logger).newEncodeCmd()
}

// NewDecodeCmd builds the decode command.
func NewDecodeCmd(logger *zap.Logger) *cobra.Command {
	return NewCodeManager(logger).newDecodeCmd()
}

// NewCategoriesCmd builds the categories command.
func NewCategoriesCmd(logger *zap.Logger) *cobra.Command {
	return NewCodeManager(logger).newCategoriesCmd()
}

func (m *CodeManager) newEncodeCmd() *cobra.Command {
	var category, leaf string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Compose a code from a category and a path",
		Long: `Compose the numeric code of a category and a three-level path.

Example:
  errcodes encode --category E1100 --path 00.01.20   # 1100000120`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := m.Encode(category, leaf)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), c)
			return err
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Category flag, e.g. 1004 or E1004")
	cmd.Flags().StringVar(&leaf, "path", "", "Path segments, e.g. 00.01.20 or X00/Y01/Z20")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}

// Encode composes the code of category at leaf.
func (m *CodeManager) Encode(category, leaf string) (uint32, error) {
	cat, err := parseCategory(category)
	if err != nil {
		return 0, fail(ErrBadCategory, err)
	}
	l, err := parseLeaf(leaf)
	if err != nil {
		return 0, fail(ErrBadPath, err)
	}
	c := cat.Code(l)
	m.logger.Debug("encoded", zap.String("category", cat.Flag().Tagged()), zap.Uint32("path", l.Flag()), zap.Uint32("code", c))
	return c, nil
}

func (m *CodeManager) newDecodeCmd() *cobra.Command {
	var rulesFile string

	cmd := &cobra.Command{
		Use:   "decode <code>",
		Short: "Split a code and resolve its transport statuses",
		Long: `Split a code into category and path, and show how HTTP and gRPC
statuses are resolved for it. Rules default to the built-in table; --rules
loads additional mapper rules from a YAML file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := m.Decode(args[0], rulesFile)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&rulesFile, "rules", "", "YAML file with mapper rules")

	return cmd
}

// Decode renders the category and the mapper trace of raw.
func (m *CodeManager) Decode(raw, rulesFile string) (string, error) {
	c, err := parseCode(raw)
	if err != nil {
		return "", fail(ErrBadCode, err)
	}
	flag, pathFlag, err := code.Decode(c)
	if err != nil {
		return "", fail(ErrBadCode, err)
	}
	mp, err := m.mapper(rulesFile)
	if err != nil {
		return "", err
	}

	text := code.NoDescription
	if cat, ok := code.Lookup(flag.Uint()); ok {
		text = cat.Text()
	}
	r, p, l, _ := path.Split(pathFlag)
	m.logger.Debug("decoded", zap.Uint32("code", c), zap.String("category", flag.Tagged()))
	return fmt.Sprintf("%s %s\nX%02d Y%02d Z%02d\n%s", flag.Tagged(), text, r, p, l, mp.Explain(c)), nil
}

func (m *CodeManager) mapper(rulesFile string) (apis.Mapper, error) {
	if rulesFile == "" {
		return mapper.Default(), nil
	}
	cfg, err := mapper.LoadConfig(rulesFile)
	if err != nil {
		return nil, fail(ErrRules, err)
	}
	mp, err := cfg.Mapper()
	if err != nil {
		return nil, fail(ErrRules, err)
	}
	m.logger.Debug("rules loaded", zap.String("file", rulesFile))
	return mp, nil
}

func (m *CodeManager) newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the built-in categories",
		Long:  "List the built-in categories with their HTTP and gRPC statuses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return m.PrintCategories(cmd.OutOrStdout())
		},
	}
}

// PrintCategories writes the built-in category table to w.
func (m *CodeManager) PrintCategories(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "CATEGORY\tHTTP\tGRPC\tTEXT")
	for _, c := range code.Builtin() {
		flag := c.Flag().Uint()
		st, _ := code.HTTPStatus(flag)
		gc, _ := code.GRPCCode(flag)
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", c.Flag().Tagged(), st, gc, c.Text())
	}
	return tw.Flush()
}
