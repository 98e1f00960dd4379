// internal/app/app.go
package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storytray/internal/anim"
	"github.com/llehouerou/storytray/internal/carousel"
	"github.com/llehouerou/storytray/internal/keymap"
	"github.com/llehouerou/storytray/internal/schedule"
	"github.com/llehouerou/storytray/internal/stories"
	"github.com/llehouerou/storytray/internal/ui/termsize"
	"github.com/llehouerou/storytray/internal/ui/tray"
)

// StatusRows is the number of rows below the tray used by the status line.
const StatusRows = 1

// Options configures a Model.
type Options struct {
	Source   stories.Source
	Watcher  *stories.Watcher // nil disables live reload
	Cell     termsize.Cell
	Duration time.Duration // navigation commit delay
	FPS      int
	Logger   *slog.Logger

	// CellProbe re-measures the cell size on every resize. nil keeps Cell.
	CellProbe func() termsize.Cell
}

// Model is the root application model.
type Model struct {
	Carousel *carousel.Controller[stories.Story]
	Springs  *anim.Springs
	Sched    *schedule.Tea
	Renderer *tray.Renderer
	Source   stories.Source
	Watcher  *stories.Watcher
	Help     help.Model

	carouselKeys *keymap.Resolver
	overlayKeys  *keymap.Resolver

	ShowHelp bool
	Detail   *stories.Story // story shown in the detail popup, nil when closed

	Loading       bool
	ErrorMsg      string
	StatusMsg     string
	StatusVersion int

	cellProbe func() termsize.Cell
	frameLoop bool
	drag      dragState

	Width  int
	Height int

	logger *slog.Logger
}

// dragState tracks a left button press for click and swipe detection.
type dragState struct {
	active   bool
	col, row int
}

// New creates the application model. Stories are loaded by Init.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cell := opts.Cell
	if cell.Width <= 0 || cell.Height <= 0 {
		cell = termsize.Default()
	}

	springs := anim.New(opts.FPS)
	sched := schedule.NewTea()
	ctrl := carousel.New[stories.Story](nil, springs, sched,
		carousel.WithDuration(opts.Duration),
		carousel.WithLogger(logger.With("component", "carousel")),
	)

	return Model{
		Carousel:     ctrl,
		Springs:      springs,
		Sched:        sched,
		Renderer:     tray.New(cell),
		Source:       opts.Source,
		Watcher:      opts.Watcher,
		Help:         help.New(),
		carouselKeys: keymap.ForContexts("global", "carousel"),
		overlayKeys:  keymap.ForContexts("detail", "global"),
		cellProbe:    opts.CellProbe,
		Loading:      true,
		logger:       logger,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(LoadStoriesCmd(m.Source), WatchCmd(m.Watcher))
}
