// @title        Flow Test API
// @version      1.0
// @description  Sample deployable app for exercising deployment pipelines.
// @BasePath     /
package main

import (
	"os"

	"github.com/projecthelena/flowtest/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
