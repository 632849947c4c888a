// Package main provides the CLI entry point for xlreport.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/reportkit/xlreport-go/pkg/xlreport/manifest"
)

var (
	outputPath string
	themePath  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlreport",
		Short: "Generate formatted Excel report workbooks",
		Long: `xlreport lays out structured content (text, captioned textboxes,
images, CSV-backed tables) onto Excel sheets with automatic column
sizing and cursor-driven placement.`,
	}

	buildCmd := &cobra.Command{
		Use:   "build [manifest.yaml]",
		Short: "Build a report workbook from a manifest",
		Args:  cobra.ExactArgs(1),
		RunE:  runBuild,
	}
	buildCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output workbook path (default: manifest output)")
	buildCmd.Flags().StringVar(&themePath, "theme", "", "Theme document path (default: manifest theme)")
	rootCmd.AddCommand(buildCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	manifestPath := args[0]

	if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", manifestPath)
	}

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}
	// Flag overrides are relative to the working directory, not the
	// manifest.
	if outputPath != "" {
		if m.Output, err = filepath.Abs(outputPath); err != nil {
			return err
		}
	}
	if themePath != "" {
		if m.Theme, err = filepath.Abs(themePath); err != nil {
			return err
		}
	}

	if err := m.Build(); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", m.Output)
	return nil
}
