package main

import (
	"os"

	"github.com/knightsbridge/faqsite/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
