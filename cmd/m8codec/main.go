// Package main is the entry point for m8codec CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/m8kit/m8codec/pkg/api"
	"github.com/m8kit/m8codec/pkg/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	outputFile string
	format     string
	enumMode   string
	templateIn string
	serverPort int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "m8codec",
	Short: "Read, validate, and convert M8 project and instrument files",
	Long: `m8codec reads, validates, and converts Dirtywave M8 .m8s project
files. Standalone .m8i instrument files are not read or written.

Examples:
  m8codec read project.m8s
  m8codec validate project.m8s
  m8codec export project.m8s --format json --enum-mode name -o project.json
  m8codec import project.json --format json -o project.m8s
  m8codec new -o blank.m8s
  m8codec tui project.m8s
  m8codec serve --port 8080`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

var readCmd = &cobra.Command{
	Use:   "read <project.m8s>",
	Short: "Parse a project file and print a summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runRead,
}

var validateCmd = &cobra.Command{
	Use:   "validate <project.m8s>",
	Short: "Cross-reference validate a project file",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

var exportCmd = &cobra.Command{
	Use:   "export <project.m8s>",
	Short: "Export a project to JSON or YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <project.json|project.yaml>",
	Short: "Import a project from JSON or YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Write a fresh template project file",
	RunE:  runNew,
}

var tuiCmd = &cobra.Command{
	Use:   "tui [project.m8s]",
	Short: "Launch the interactive project browser",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTUI,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	readCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the text summary to this file instead of stdout")

	exportCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file path (required)")
	exportCmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	exportCmd.Flags().StringVar(&enumMode, "enum-mode", "name", "enum rendering: value or name")
	_ = exportCmd.MarkFlagRequired("output")

	importCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output .m8s file path (required)")
	importCmd.Flags().StringVar(&format, "format", "json", "input format: json or yaml")
	_ = importCmd.MarkFlagRequired("output")

	newCmd.Flags().StringVarP(&outputFile, "output", "o", "project.m8s", "output file path")
	newCmd.Flags().StringVar(&templateIn, "template", "", "base the new project on this .m8s file instead of the built-in blank template")

	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "server port")

	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	p, err := loadProject(args[0])
	if err != nil {
		return err
	}
	summary := fmt.Sprintf(
		"version: %d.%d.%d\nname: %q\ntempo: %.1f\ninstruments: %d\n",
		p.Version.Major, p.Version.Minor, p.Version.Patch,
		p.Metadata.Name(), p.Metadata.Tempo(), p.Instruments.Len(),
	)
	if outputFile != "" {
		return os.WriteFile(outputFile, []byte(summary), 0o644)
	}
	fmt.Print(summary)
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	p, err := loadProject(args[0])
	if err != nil {
		return err
	}
	report := p.Validate()
	if report.OK() {
		fmt.Println("project is valid")
		return nil
	}
	for _, e := range report.Errors {
		fmt.Printf("%s: %s\n", e.Path, e.Kind)
	}
	return fmt.Errorf("%d validation error(s)", len(report.Errors))
}

func runExport(cmd *cobra.Command, args []string) error {
	p, err := loadProject(args[0])
	if err != nil {
		return err
	}
	mode, err := parseEnumMode(enumMode)
	if err != nil {
		return err
	}
	data, err := exportProject(p, strings.ToLower(format), mode)
	if err != nil {
		return err
	}
	return os.WriteFile(outputFile, data, 0o644)
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	p, err := importProject(data, strings.ToLower(format))
	if err != nil {
		return err
	}
	return os.WriteFile(outputFile, p.Write(), 0o644)
}

func runNew(cmd *cobra.Command, args []string) error {
	p := newProject()
	if templateIn != "" {
		base, err := loadProject(templateIn)
		if err != nil {
			return fmt.Errorf("new: reading --template: %w", err)
		}
		p = base
	}
	return os.WriteFile(outputFile, p.Write(), 0o644)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return tui.Run(nil)
	}
	p, err := loadProject(args[0])
	if err != nil {
		return err
	}
	return tui.Run(p)
}

func runServe(cmd *cobra.Command, args []string) error {
	return api.StartServer(serverPort)
}
