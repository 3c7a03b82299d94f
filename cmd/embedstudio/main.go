package main

import (
	"fmt"
	"os"

	"github.com/hazelnoot/embedstudio/pkg/app"
)

func main() {
	if err := app.Run("embedstudio", "EMBEDSTUDIO_TOKEN"); err != nil {
		fmt.Fprintf(os.Stderr, "embedstudio: %v\n", err)
		os.Exit(1)
	}
}
