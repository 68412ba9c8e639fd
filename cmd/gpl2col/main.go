package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/mohogain/gpl2col/pkg"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

var (
	inputPath   string
	outputPath  string
	logLevel    string
	versionFlag bool
	rootCmd     *cobra.Command
)

func getBuildTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "gpl2col",
		Short: "Convert GIMP colour palettes to ArtRage colour palettes",
		Long:  `Converts a GIMP colour palette file (.gpl) to an ArtRage colour palette file (.col)`,
		Run:   convertPalette,
	}

	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to .gpl file (required)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path for .col file (required)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	if err := rootCmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
	if err := rootCmd.MarkFlagRequired("output"); err != nil {
		panic(err)
	}
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("gpl2col %s\n", version)
		fmt.Printf("Built: %s\n", getBuildTimestamp())
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func convertPalette(cmd *cobra.Command, args []string) {
	if versionFlag {
		fmt.Printf("gpl2col %s\n", version)
		fmt.Printf("Built: %s\n", getBuildTimestamp())
		return
	}
	if err := pkg.ConvertWithLogLevel(inputPath, outputPath, logLevel); err != nil {
		os.Exit(1)
	}
}
