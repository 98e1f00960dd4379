// Package app contains the root bubbletea model of the story tray.
package app

import "github.com/llehouerou/storytray/internal/stories"

// Message category interfaces for type-based routing in Update().
// External messages (from other packages) cannot implement these interfaces,
// so they are handled separately in the Update() switch.

// StoryMessage is implemented by messages related to the story source.
type StoryMessage interface {
	storyMessage()
}

// StoriesLoadedMsg carries the result of loading the story source.
type StoriesLoadedMsg struct {
	Stories []stories.Story
	Err     error
}

func (StoriesLoadedMsg) storyMessage() {}

// StoriesChangedMsg is sent when the watched story file changed on disk.
type StoriesChangedMsg struct{}

func (StoriesChangedMsg) storyMessage() {}

// WatchErrorMsg is sent when the story file watcher reports an error.
type WatchErrorMsg struct {
	Err error
}

func (WatchErrorMsg) storyMessage() {}

// StatusTimeoutMsg clears the transient status message.
// The Version field is used to ignore stale timeouts when a newer message replaced it.
type StatusTimeoutMsg struct {
	Version int
}
