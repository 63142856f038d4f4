package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/joymap/cmd/joymap"
	"github.com/arthur-debert/joymap/internal/version"
)

func main() {
	rootCmd := joymap.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "JOYMAP",
		Section: "1",
		Source:  "joymap " + version.Version,
		Manual:  "joymap manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
