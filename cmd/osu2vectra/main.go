// Package main is the entry point for the osu2vectra CLI
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vectra-eng/osu2vectra/pkg/api"
	"github.com/vectra-eng/osu2vectra/pkg/converter"
	"github.com/vectra-eng/osu2vectra/pkg/converter/layouts"
	"github.com/vectra-eng/osu2vectra/pkg/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	keyCount   int
	mapTitle   string
	outputFile string
	serverPort int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "osu2vectra",
	Short: "Convert osu!mania charts to Vectra map files",
	Long: `osu2vectra is a tool for converting osu!mania .osu charts into
map.lua files for the Vectra rhythm game engine.

Supports 4 to 7 key layouts. Song and background assets are referenced,
not copied.

Examples:
  osu2vectra convert chart.osu out/ --keys 4
  osu2vectra convert
  osu2vectra midi chart.osu -o preview.mid
  osu2vectra tui
  osu2vectra serve --port 8080`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

var convertCmd = &cobra.Command{
	Use:   "convert [input.osu] [output_dir]",
	Short: "Convert an .osu chart to map.lua",
	Long:  `Converts an osu!mania chart to a Vectra map.lua file. Missing arguments are requested interactively.`,
	Args:  cobra.MaximumNArgs(2),
	RunE:  runConvert,
}

var midiCmd = &cobra.Command{
	Use:   "midi <input.osu>",
	Short: "Export an .osu chart as a MIDI preview",
	Args:  cobra.ExactArgs(1),
	RunE:  runMIDI,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	RunE:  runTUI,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&keyCount, "keys", "k", layouts.DefaultKeys, "Number of keys/columns in the chart (4-7)")

	convertCmd.Flags().StringVarP(&mapTitle, "title", "t", "", "Map title (default: chart filename)")

	midiCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output .mid file path")

	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Server port")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(midiCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, outputDir, err := resolveArgs(args)
	if err != nil {
		return err
	}

	if _, err := os.Stat(input); err != nil {
		fmt.Fprintln(os.Stderr, "Input file not found:", input)
		os.Exit(2)
	}

	conv := converter.New(layouts.New(keyCount))

	fmt.Printf("Converting %s -> %s (%s)\n", input, outputDir, conv.GetLayout().Name())
	outPath, meta, err := conv.ConvertFile(input, outputDir, mapTitle)
	if err != nil {
		return err
	}

	if meta.Title != "" {
		fmt.Println("Chart title:", meta.Title)
	}
	if meta.AudioFilename != "" {
		fmt.Println("Chart audio:", meta.AudioFilename)
	}
	fmt.Println("Wrote", outPath)
	return nil
}

func runMIDI(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := outputFile
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".mid"
	}

	if _, err := os.Stat(input); err != nil {
		fmt.Fprintln(os.Stderr, "Input file not found:", input)
		os.Exit(2)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	conv := converter.New(layouts.New(keyCount))
	result, err := conv.OsuToMIDI(string(data))
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, result, 0644); err != nil {
		return err
	}

	fmt.Printf("Converted %s -> %s\n", input, output)
	return nil
}

// resolveArgs fills missing positional arguments via interactive prompts
func resolveArgs(args []string) (input, outputDir string, err error) {
	if len(args) >= 1 {
		input = args[0]
	}
	if len(args) >= 2 {
		outputDir = args[1]
	}

	if input == "" {
		input, err = tui.Prompt("PATH TO .OSU FILE", "chart.osu")
		if err != nil {
			return "", "", err
		}
	}
	if outputDir == "" {
		outputDir, err = tui.Prompt("OUTPUT FOLDER", "out")
		if err != nil {
			return "", "", err
		}
	}
	return input, outputDir, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.Run(keyCount)
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Printf("Starting API server on port %d...\n", serverPort)
	return api.StartServer(serverPort)
}
