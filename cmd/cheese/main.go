package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-settings-builder/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if err := newRootCommand(info).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
