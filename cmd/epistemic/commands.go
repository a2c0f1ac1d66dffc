/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/suparena/epistemic"
	"github.com/suparena/epistemic/errors"
	"github.com/suparena/epistemic/models"
)

func newGetCmd(a *app) *cobra.Command {
	var (
		allow  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Look up one constant under an allow-set",
		Long: `Look up one constant, accepting only the listed labels.
There is no default allow-set; --allow must always be given.

Examples:
  # Only measured reference values
  epistemic get alpha --builtin --allow baseline

  # A validation run that may use derived quantities too
  epistemic get alpha_model --allow baseline,derived -c epistemic.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			allowed, err := models.ParseLabelSet(allow)
			if err != nil {
				return err
			}
			if allowed.IsEmpty() {
				return errors.NewValidationError("allow", "at least one label is required")
			}
			if output != "text" && output != "yaml" {
				return errors.NewValidationError("output", fmt.Sprintf("must be text or yaml, got %q", output))
			}

			reg, err := a.buildRegistry(cmd.Context())
			if err != nil {
				return err
			}
			rec, err := reg.GetConstant(args[0], allowed)
			if err != nil {
				return err
			}

			if output == "yaml" {
				return writeYAML(cmd.OutOrStdout(), rec)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatRecord(rec))
			return err
		},
	}

	cmd.Flags().StringVarP(&allow, "allow", "a", "", "comma-separated labels to accept, or \"all\" (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, yaml)")
	_ = cmd.MarkFlagRequired("allow")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	var store string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered constants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := a.buildRegistry(cmd.Context())
			if err != nil {
				return err
			}

			stores := reg.Stores()
			if store != "" {
				if _, ok := reg.Store(store); !ok {
					return errors.NewValidationError("store", fmt.Sprintf("no store named %q", store))
				}
				stores = []string{store}
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "STORE\tNAME\tVALUE\tUNIT\tLABEL\tSOURCE")
			for _, name := range stores {
				s, _ := reg.Store(name)
				for _, rec := range s.Records() {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
						name, rec.Name, formatValue(rec.Value), rec.Unit, rec.Label, rec.Source)
				}
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&store, "store", "s", "", "only list this store")
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load every table and report names that conflict across stores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := a.buildRegistry(cmd.Context())
			if err != nil {
				return err
			}
			if err := reg.Validate(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d stores, %d constants\n",
				len(reg.Stores()), len(reg.Names()))
			return err
		},
	}
}

func newSnapshotCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Print the frozen registry as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := a.buildRegistry(cmd.Context())
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), epistemic.TakeSnapshot(reg))
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// No configuration is needed to print the version.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := epistemic.GetVersionInfo()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "epistemic version %s\n", info.Version)
			fmt.Fprintf(out, "Git commit: %s\n", info.GitCommit)
			fmt.Fprintf(out, "Build date: %s\n", info.BuildDate)
			_, err := fmt.Fprintf(out, "Go version: %s\n", info.GoVersion)
			return err
		},
	}
}

func formatRecord(rec models.Record) string {
	s := rec.Name + " = " + formatValue(rec.Value)
	if rec.Unit != "" {
		s += " " + rec.Unit
	}
	s += " [" + rec.Label.String() + "]"
	if rec.Source != "" {
		s += " (" + rec.Source + ")"
	}
	return s
}

// formatValue prints integral values in full and everything else in the
// shortest form that round-trips.
func formatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
