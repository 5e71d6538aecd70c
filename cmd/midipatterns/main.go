// Package main is the entry point for the midipatterns CLI
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/james-see/midipatterns/pkg/api"
	"github.com/james-see/midipatterns/pkg/config"
	"github.com/james-see/midipatterns/pkg/export"
	"github.com/james-see/midipatterns/pkg/generator"
	"github.com/james-see/midipatterns/pkg/theory"
	"github.com/james-see/midipatterns/pkg/tui"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	configFile string
	baseDir    string
	folderName string
	noPrompt   bool
	dryRun     bool
	bars       int
	beats      int
	tempo      float64
	serverPort int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "midipatterns",
	Short: "Generate drum, chord and arpeggio MIDI patterns",
	Long: `midipatterns builds deterministic MIDI patterns from music theory tables:
hi-hat/snare/kick drum lanes, an inverted minor chord progression and a
major 7th arpeggio. Each pattern is written as its own .mid file.

Examples:
  midipatterns generate
  midipatterns generate drums chords -o session1
  midipatterns generate --dry-run
  midipatterns list
  midipatterns inspect ~/Desktop/session1/chords.mid
  midipatterns tui
  midipatterns serve --port 8080`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage: true,
}

var generateCmd = &cobra.Command{
	Use:   "generate [generator...]",
	Short: "Run generators and write .mid files",
	Long:  `Runs the named generators (or all of them) and writes one .mid file per track into a new output folder.`,
	RunE:  runGenerate,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List generators and theory tables",
	RunE:  runList,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Print the notes in a MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
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
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&baseDir, "dir", "", "Base directory for output folders (default ~/Desktop)")

	// generate command
	generateCmd.Flags().StringVarP(&folderName, "output", "o", "", "Output folder name (prompted if omitted)")
	generateCmd.Flags().BoolVar(&noPrompt, "no-prompt", false, "Use a timestamped folder instead of prompting")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be written without writing files")
	generateCmd.Flags().IntVar(&bars, "bars", 0, "Number of bars (overrides config)")
	generateCmd.Flags().IntVar(&beats, "beats", 0, "Beats per bar (overrides config)")
	generateCmd.Flags().Float64Var(&tempo, "tempo", 0, "Tempo in BPM (overrides config)")

	// serve command
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Server port")

	// Add commands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if bars > 0 {
		cfg.Bars = bars
	}
	if beats > 0 {
		cfg.BeatsPerBar = beats
	}
	if tempo > 0 {
		cfg.Tempo = tempo
	}
	return cfg, cfg.Validate()
}

func getBaseDir(cfg *config.Config) (string, error) {
	if baseDir != "" {
		return baseDir, nil
	}
	if cfg.OutputDir != "" {
		return cfg.OutputDir, nil
	}
	return export.DefaultBaseDir()
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	entries, err := generator.NewRegistry(cfg.Params()).Select(args)
	if err != nil {
		return err
	}

	var exp generator.Exporter
	var folder string
	if dryRun {
		exp = &export.DryRun{Out: cmd.OutOrStdout()}
	} else {
		base, err := getBaseDir(cfg)
		if err != nil {
			return err
		}

		name := folderName
		if name == "" && !noPrompt {
			name, err = export.PromptFolderName(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
		}

		folder = export.ResolveFolder(base, name, time.Now())
		if err := export.EnsureDir(folder); err != nil {
			return err
		}
		exp = export.NewSMFWriter(folder, cfg.ExportOptions())
	}

	reports := generator.Run(entries, exp)

	failed := 0
	for _, r := range reports {
		switch {
		case r.Skipped:
			fmt.Fprintf(cmd.OutOrStdout(), "Placeholder: %s (not yet implemented)\n", r.Generator)
		case r.Err != nil:
			failed++
		}
	}

	if folder != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Generated MIDI files saved in: %s\n", folder)
	}
	if failed > 0 {
		return fmt.Errorf("%d generator(s) failed", failed)
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Generators:")
	for _, e := range generator.NewRegistry(cfg.Params()).Entries() {
		status := ""
		if !e.Available {
			status = " [not yet implemented]"
		}
		fmt.Fprintf(out, "  %-16s %s%s\n", e.Generator.Name(), e.Generator.Description(), status)
	}

	fmt.Fprintf(out, "\nNotes: %s\n", strings.Join(theory.NoteNames, " "))
	fmt.Fprintf(out, "Chords: %s\n", strings.Join(theory.ChordNames(), ", "))
	fmt.Fprintf(out, "Inversion tables: %s\n", strings.Join(theory.InversionChordTypes(), ", "))
	fmt.Fprintf(out, "Durations: %s\n", strings.Join(theory.DurationNames(), ", "))
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	decoded, err := export.ReadSMFFile(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d notes at %.1f BPM\n", args[0], len(decoded.Events), decoded.Tempo)
	for _, ev := range decoded.Events {
		fmt.Fprintf(out, "  beat %7.3f  ch %2d  pitch %3d  vel %3d\n", ev.Time, ev.Channel, ev.Pitch, ev.Velocity)
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	base, err := getBaseDir(cfg)
	if err != nil {
		return err
	}
	return tui.Run(cfg, base)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fmt.Printf("Starting API server on port %d...\n", serverPort)
	return api.StartServer(serverPort, cfg)
}
