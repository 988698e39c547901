// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/gantt/internal/task"
)

// DatasetLoadedMsg is sent when the task source has been read.
type DatasetLoadedMsg struct {
	Dataset *task.Dataset
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// FadeMsg advances a tooltip fade. Gen is the hover generation that
// scheduled it; a newer hover makes the message stale.
type FadeMsg struct {
	Gen  uint64
	Step int
}

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// LoadDataset reads the dataset from src.
func LoadDataset(src task.Source) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		ds, err := src.Load(ctx)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading tasks: %w", err)}
		}
		return DatasetLoadedMsg{Dataset: ds}
	}
}

// Fade schedules the next fade step after interval.
func Fade(gen uint64, step int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return FadeMsg{Gen: gen, Step: step}
	})
}

// CopyToClipboard writes text to the system clipboard.
func CopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return StatusMsgCmd{Msg: "Copied: " + text}
	}
}

// ClearStatusAfter clears the status line after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
