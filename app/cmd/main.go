package main

import (
	"fmt"
	"os"

	"github.com/ribgsilva/note-widget/app/cmd/render"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notewidget",
	Short: "Tools for the note widget",
}

func main() {
	rootCmd.AddCommand(render.NewCommand())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
