// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"

	"github.com/boasync/boa-sync/internal/cli"
	"github.com/boasync/boa-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	os.Exit(cli.Execute(context.Background(), os.Args[1:], buildInfo))
}
