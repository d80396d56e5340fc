package main

import (
	"fxdeals/internal/app"
	"os"

	"github.com/sirupsen/logrus"
)

// @title FX Deals Importer API
// @version 1.0
// @description Imports FX deals one at a time or in batches.
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("Application stopped with error")
		os.Exit(1)
	}
}
