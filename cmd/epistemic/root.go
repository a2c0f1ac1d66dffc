/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/spf13/cobra"

	"github.com/suparena/epistemic"
	"github.com/suparena/epistemic/catalog"
	"github.com/suparena/epistemic/config"
	"github.com/suparena/epistemic/datastore"
	"github.com/suparena/epistemic/datastore/ddb"
	"github.com/suparena/epistemic/datastore/file"
)

// app carries the state shared by all subcommands.
type app struct {
	cfgFile  string
	builtin  bool
	logLevel string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "epistemic",
		Short: "Look up physical constants under an explicit epistemic policy",
		Long: `Load constant tables into an epistemic registry, freeze it, and query it.

Every lookup names the labels it accepts (baseline, derived, identified,
calibrated, proposed). A constant outside that set, a missing constant,
or a name with disagreeing values across stores is an error.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file binding stores to tables")
	root.PersistentFlags().BoolVar(&a.builtin, "builtin", false, "register the built-in CODATA 2018 baseline table")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newGetCmd(a),
		newListCmd(a),
		newValidateCmd(a),
		newSnapshotCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("builtin") {
		cfg.Builtin = a.builtin
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.LogFormat, level)
	return nil
}

func newLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// buildRegistry loads every configured table and freezes the registry.
func (a *app) buildRegistry(ctx context.Context) (*epistemic.Registry, error) {
	reg := epistemic.New(epistemic.WithLogger(a.logger))

	if a.cfg.Builtin {
		if err := catalog.RegisterCODATA(reg); err != nil {
			return nil, fmt.Errorf("registering built-in table: %w", err)
		}
	}

	bindings, err := a.bindings(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := epistemic.LoadAll(ctx, reg, bindings...); err != nil {
		return nil, err
	}

	reg.Freeze()
	return reg, nil
}

func (a *app) bindings(ctx context.Context) ([]epistemic.Binding, error) {
	var (
		bindings []epistemic.Binding
		client   *sdk.Client
	)

	for _, store := range a.cfg.Stores {
		for _, sc := range store.Sources {
			var src datastore.Source
			if sc.Path != "" {
				fs, err := file.Open(sc.Path)
				if err != nil {
					return nil, err
				}
				src = fs
			} else {
				if client == nil {
					c, err := ddb.NewDynamoDBClient(ctx, ddb.Credentials{
						AccessKey: a.cfg.DynamoDB.AccessKey,
						SecretKey: a.cfg.DynamoDB.SecretKey,
						Region:    a.cfg.DynamoDB.Region,
						Endpoint:  a.cfg.DynamoDB.Endpoint,
					})
					if err != nil {
						return nil, err
					}
					client = c
				}
				src = ddb.NewSource(client, sc.Table, store.Name, ddb.WithLogger(a.logger))
			}
			bindings = append(bindings, epistemic.Binding{Store: store.Name, Source: src})
		}
	}
	return bindings, nil
}
