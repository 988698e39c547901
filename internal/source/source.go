// Package source loads task datasets from files.
package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/javiermolinar/gantt/internal/task"
)

// Format names a task file encoding.
type Format string

// Supported formats.
const (
	FormatAuto   Format = "auto"
	FormatYAML   Format = "yaml"
	FormatTOML   Format = "toml"
	FormatJSON   Format = "json"
	FormatCSV    Format = "csv"
	FormatSQLite Format = "sqlite"
)

// Errors.
var (
	ErrUnknownFormat = errors.New("unknown task file format")
	ErrNoPath        = errors.New("no task source given")
)

var extensions = map[string]Format{
	".yaml":    FormatYAML,
	".yml":     FormatYAML,
	".toml":    FormatTOML,
	".json":    FormatJSON,
	".csv":     FormatCSV,
	".db":      FormatSQLite,
	".sqlite":  FormatSQLite,
	".sqlite3": FormatSQLite,
}

// ParseFormat converts a format name. The empty string means auto.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatYAML, FormatTOML, FormatJSON, FormatCSV, FormatSQLite:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Detect returns the format implied by the path extension.
func Detect(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: extension %q", ErrUnknownFormat, ext)
}

// Resolve returns format unless it is auto, in which case the path decides.
func Resolve(path string, format Format) (Format, error) {
	if format == "" || format == FormatAuto {
		return Detect(path)
	}
	return format, nil
}

// decoder turns raw file contents into task records.
type decoder func(data []byte) (name string, tasks []task.Task, err error)

var decoders = map[Format]decoder{
	FormatYAML: decodeYAML,
	FormatTOML: decodeTOML,
	FormatJSON: decodeJSON,
	FormatCSV:  decodeCSV,
}

// File is a task.Source backed by a YAML, TOML, JSON or CSV file.
// The file is read on every Load so a reload picks up edits.
type File struct {
	Path   string
	Format Format
}

// NewFile returns a file source. Format auto is resolved from the extension.
func NewFile(path string, format Format) (*File, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	f, err := Resolve(path, format)
	if err != nil {
		return nil, err
	}
	if _, ok := decoders[f]; !ok {
		return nil, fmt.Errorf("%w: %s is not a file format", ErrUnknownFormat, f)
	}
	return &File{Path: path, Format: f}, nil
}

// Load reads and decodes the file.
func (f *File) Load(ctx context.Context) (*task.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("reading task file: %w", err)
	}
	return Decode(data, f.Format, defaultName(f.Path))
}

// Close is a no-op.
func (f *File) Close() error { return nil }

// Decode parses data in the given format. fallbackName names the dataset
// when the document does not.
func Decode(data []byte, format Format, fallbackName string) (*task.Dataset, error) {
	dec, ok := decoders[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	name, tasks, err := dec(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s tasks: %w", format, err)
	}
	if name == "" {
		name = fallbackName
	}
	for i := range tasks {
		tasks[i] = trim(tasks[i])
	}
	return task.NewDataset(name, tasks)
}

// document is the shared shape of YAML, TOML and JSON task files.
type document struct {
	Name  string      `json:"name" yaml:"name" toml:"name"`
	Tasks []task.Task `json:"tasks" yaml:"tasks" toml:"tasks"`
}

func trim(t task.Task) task.Task {
	t.Label = strings.TrimSpace(t.Label)
	t.Date = strings.TrimSpace(t.Date)
	t.Status = strings.TrimSpace(t.Status)
	t.Type = strings.TrimSpace(t.Type)
	t.Meeting = strings.TrimSpace(t.Meeting)
	return t
}

func defaultName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
