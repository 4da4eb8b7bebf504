// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"embed"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/MKhiriev/go-settings-builder/internal/config"
	"github.com/MKhiriev/go-settings-builder/internal/logger"
	"github.com/MKhiriev/go-settings-builder/internal/report"
	"github.com/MKhiriev/go-settings-builder/internal/source"
	"github.com/MKhiriev/go-settings-builder/models"
)

//go:embed inputs
var inputs embed.FS

// app holds the collaborators of a run so tests can replace the process
// environment and file system.
type app struct {
	files     source.FileReader
	resources source.ResourceReader
	env       source.Environment
	out       io.Writer
	logOut    io.Writer
}

func newRootCommand(info models.AppBuildInfo) *cobra.Command {
	return newCommand(info, &app{
		files:     source.OSFileSystem{},
		resources: source.NewResources(inputs),
		env:       source.OSEnvironment{},
	})
}

func newCommand(info models.AppBuildInfo, a *app) *cobra.Command {
	var flags *config.Flags

	cmd := &cobra.Command{
		Use:   "cheese",
		Short: "Build cheese settings from layered sources",
		Long: `cheese builds its settings by applying a JSON file, an embedded JSON
resource and environment variables in a declared order. Values from later
sources override earlier ones; a source that does not exist is skipped.

Environment variables use ":" or "__" between path segments, e.g.
Cheese__Origin__Location=Netherlands or Cheese:Flavours:0=smoky.`,
		Version:      info.Version(),
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.out == nil {
				a.out = cmd.OutOrStdout()
			}
			if a.logOut == nil {
				a.logOut = cmd.ErrOrStderr()
			}
			return a.run(cmd.Context(), flags)
		},
	}

	flags = config.RegisterFlags(cmd.Flags())
	cmd.AddCommand(newBuildInfoCommand(info))

	return cmd
}

func newBuildInfoCommand(info models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "build-info",
		Short: "Print build version, date and commit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return report.NewPrinter(cmd.OutOrStdout()).PrintBuildInfo(info)
		},
	}
}

func (a *app) run(ctx context.Context, flags *config.Flags) error {
	cfg, err := config.GetStructuredConfig(flags)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	// validated by GetStructuredConfig
	level, _ := cfg.Log.ZerologLevel()
	order, _ := cfg.Settings.SourceOrder()

	log := logger.NewLogger(a.logOut, "cheese", level)
	ctx = log.WithContext(ctx)

	cheese, err := source.NewBuilder(models.CheeseSettingsDescriptor).
		WithOrder(order, source.Inputs{
			FilePath:     cfg.Settings.File,
			Files:        a.files,
			ResourceName: cfg.Settings.Resource,
			Resources:    a.resources,
			Section:      cfg.Settings.Section,
			Env:          a.env,
		}).
		Build(ctx)
	if err != nil {
		return fmt.Errorf("error building settings: %w", err)
	}

	encoded, err := models.CheeseSettingsDescriptor.Encode(cheese)
	if err != nil {
		return fmt.Errorf("error encoding settings: %w", err)
	}
	log.Debug().RawJSON("settings", pretty.Ugly([]byte(encoded))).Msg("settings built")

	return report.NewPrinter(a.out).PrintCheese(cheese.Cheese)
}
