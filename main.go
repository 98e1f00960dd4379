package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/llehouerou/storytray/internal/app"
	"github.com/llehouerou/storytray/internal/config"
	"github.com/llehouerou/storytray/internal/errmsg"
	"github.com/llehouerou/storytray/internal/icons"
	"github.com/llehouerou/storytray/internal/stories"
	"github.com/llehouerou/storytray/internal/ui/render"
	"github.com/llehouerou/storytray/internal/ui/styles"
	"github.com/llehouerou/storytray/internal/ui/termsize"
)

var (
	cfgFile     string
	storiesFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "storytray",
		Short:        "browse stories in a terminal carousel",
		SilenceUsage: true,
		RunE:         runTray,
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file (default: $XDG_CONFIG_HOME/storytray/config.toml)")
	rootCmd.Flags().StringVar(&storiesFile, "file", "", "show a story file instead of the store, reloading on change")

	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "replace the stored stories with a YAML or TOML story file",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "print the stored stories",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	rootCmd.AddCommand(importCmd, listCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var errNotTerminal = errors.New("storytray needs a terminal; use 'storytray list' to print stories")

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		if _, err := os.Stat(cfgFile); err != nil {
			return nil, err
		}
		return config.LoadFiles(cfgFile)
	}
	return config.Load()
}

// setupLogger opens the log file. The TUI owns the terminal, so logs never
// go to stdout or stderr.
func setupLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	path, err := cfg.LogFile()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.LogLevel()})
	return slog.New(handler), f, nil
}

func runTray(_ *cobra.Command, _ []string) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errNotTerminal
	}

	cfg, err := loadConfig()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	if storiesFile != "" {
		cfg.StoriesFile = storiesFile
	}

	logger, logCloser, err := setupLogger(cfg)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogOpen, err))
	}
	defer logCloser.Close()

	icons.Init(cfg.Icons)

	opts := app.Options{
		Cell:     termsize.Resolve(cfg.CellSize()),
		Duration: cfg.TransitionDuration(),
		FPS:      cfg.FrameRate(),
		Logger:   logger,
	}
	if w, h := cfg.CellSize(); w == 0 || h == 0 {
		opts.CellProbe = termsize.Detect
	}

	if cfg.HasStoriesFile() {
		opts.Source = stories.FileSource{Path: cfg.StoriesFile}
		w, err := stories.Watch(cfg.StoriesFile, stories.DefaultDebounce)
		if err != nil {
			// Showing the file still works without live reload.
			logger.Warn("watch story file", "path", cfg.StoriesFile, "err", err)
		} else {
			opts.Watcher = w
			defer w.Close()
		}
	} else {
		store, err := stories.Open()
		if err != nil {
			return errors.New(errmsg.Format(errmsg.OpStoreOpen, err))
		}
		defer store.Close()
		opts.Source = store
	}

	logger.Info("starting", "cell_width", opts.Cell.Width, "cell_height", opts.Cell.Height,
		"duration", opts.Duration, "fps", opts.FPS, "file", cfg.StoriesFile)

	p := tea.NewProgram(app.New(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		return err
	}
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	list, err := stories.ImportFile(args[0])
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpStoriesImport, args[0], err))
	}

	store, err := stories.Open()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStoreOpen, err))
	}
	defer store.Close()

	if err := store.Replace(list); err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpStoriesImport, args[0], err))
	}
	fmt.Printf("Imported %s\n", english.Plural(len(list), "story", "stories"))
	return nil
}

func runList(_ *cobra.Command, _ []string) error {
	store, err := stories.Open()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStoreOpen, err))
	}
	defer store.Close()

	list, err := store.List()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStoriesList, err))
	}
	if len(list) == 0 {
		fmt.Println("No stories. Add some with: storytray import FILE")
		return nil
	}

	if !isTerminal(os.Stdout) {
		writePlain(os.Stdout, list)
		return nil
	}
	fmt.Println(storyTable(list).Render())
	return nil
}

// writePlain prints one tab-separated story per line for scripts.
func writePlain(w io.Writer, list []stories.Story) {
	for _, s := range list {
		posted := ""
		if !s.PostedAt.IsZero() {
			posted = s.PostedAt.UTC().Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.ID(), s.Author, s.Variant(), posted, render.Sanitize(strings.Join(strings.Fields(s.Content), " ")))
	}
}

func storyTable(list []stories.Story) *table.Table {
	t := styles.T()
	header := t.S().Title
	cell := lipgloss.NewStyle().Padding(0, 1)

	rows := make([][]string, 0, len(list))
	for i, s := range list {
		posted := ""
		if !s.PostedAt.IsZero() {
			posted = humanize.Time(s.PostedAt)
		}
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			s.ID(),
			s.Author,
			s.Variant(),
			posted,
			render.Truncate(s.Content, 40),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Border)).
		Headers("#", "ID", "AUTHOR", "VARIANT", "POSTED", "CONTENT").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header.Padding(0, 1)
			}
			if col == 3 {
				return cell.Foreground(t.Palette(list[row].Variant()).From)
			}
			return cell
		})
}
