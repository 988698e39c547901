package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/gantt/internal/chart"
)

// DebugLogger logs TUI state, keystrokes, and events to a file.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "gantt-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	return initDebugLoggerAt(enabled, DebugLogPath)
}

func initDebugLoggerAt(enabled bool, logPath string) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	f, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = &DebugLogger{
		file:    f,
		enabled: true,
	}

	debugLog.log("DEBUG_START", map[string]any{
		"log_file": logPath,
		"time":     time.Now().Format(time.RFC3339),
	})

	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog != nil && debugLog.file != nil {
		debugLog.log("DEBUG_END", map[string]any{
			"time": time.Now().Format(time.RFC3339),
		})
		_ = debugLog.file.Close()
		debugLog.file = nil
	}
}

// log writes a structured log entry.
func (d *DebugLogger) log(event string, data map[string]any) {
	if d == nil || !d.enabled || d.file == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	entry := map[string]any{
		"seq":   d.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(d.file, "%s\n", b)
}

func debugEnabled() bool {
	return debugLog != nil && debugLog.enabled
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if !debugEnabled() {
		return
	}
	debugLog.log("KEY_PRESS", map[string]any{
		"key": msg.String(),
	})
}

// LogHover logs a tooltip transition.
func LogHover(reason string, active int, tip chart.Tooltip, gen uint64) {
	if !debugEnabled() {
		return
	}
	debugLog.log("HOVER", map[string]any{
		"reason":  reason,
		"active":  active,
		"visible": tip.Visible,
		"content": truncateStr(tip.Content, 60),
		"x":       tip.X,
		"y":       tip.Y,
		"gen":     gen,
	})
}

// LogFade logs a fade step, including stale ones that were dropped.
func LogFade(gen uint64, step int, stale bool) {
	if !debugEnabled() {
		return
	}
	debugLog.log("FADE", map[string]any{
		"gen":   gen,
		"step":  step,
		"stale": stale,
	})
}

// LogRelayout logs a layout recomputation.
func LogRelayout(reason string, width, height, bars int) {
	if !debugEnabled() {
		return
	}
	debugLog.log("RELAYOUT", map[string]any{
		"reason": reason,
		"width":  width,
		"height": height,
		"bars":   bars,
	})
}

// LogDataset logs a loaded dataset.
func LogDataset(name string, tasks, categories int) {
	if !debugEnabled() {
		return
	}
	debugLog.log("DATASET", map[string]any{
		"name":       name,
		"tasks":      tasks,
		"categories": categories,
	})
}

// LogError logs an error.
func LogError(context string, err error) {
	if !debugEnabled() {
		return
	}
	debugLog.log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}

// truncateStr truncates a string to max runes.
func truncateStr(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
