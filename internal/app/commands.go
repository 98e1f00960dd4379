// internal/app/commands.go
package app

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storytray/internal/stories"
)

// StatusTimeout is how long a transient status message stays visible.
const StatusTimeout = 3 * time.Second

// LoadStoriesCmd returns a command that loads the story source.
func LoadStoriesCmd(src stories.Source) tea.Cmd {
	if src == nil {
		return nil
	}
	return func() tea.Msg {
		s, err := src.Load()
		return StoriesLoadedMsg{Stories: s, Err: err}
	}
}

// WatchCmd returns a command that waits for the next change of the watched
// story file. It returns nil once the watcher is closed.
func WatchCmd(w *stories.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		err := w.Next()
		switch {
		case errors.Is(err, stories.ErrWatcherClosed):
			return nil
		case err != nil:
			return WatchErrorMsg{Err: err}
		default:
			return StoriesChangedMsg{}
		}
	}
}

// StatusTimeoutCmd returns a command that sends StatusTimeoutMsg after StatusTimeout.
func StatusTimeoutCmd(version int) tea.Cmd {
	return tea.Tick(StatusTimeout, func(_ time.Time) tea.Msg {
		return StatusTimeoutMsg{Version: version}
	})
}
