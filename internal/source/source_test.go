package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/javiermolinar/gantt/internal/db"
	"github.com/javiermolinar/gantt/internal/task"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "tasks.yaml", want: FormatYAML},
		{path: "tasks.YML", want: FormatYAML},
		{path: "/a/b/tasks.toml", want: FormatTOML},
		{path: "tasks.json", want: FormatJSON},
		{path: "tasks.csv", want: FormatCSV},
		{path: "tasks.db", want: FormatSQLite},
		{path: "tasks.sqlite3", want: FormatSQLite},
		{path: "tasks.xlsx", wantErr: true},
		{path: "tasks", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			got, err := Detect(tc.path)
			if tc.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("Detect(%q) error = %v, want %v", tc.path, err, ErrUnknownFormat)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Detect(%q) = %s, want %s", tc.path, got, tc.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat(""); err != nil || f != FormatAuto {
		t.Errorf("ParseFormat(\"\") = %s, %v, want auto", f, err)
	}
	if f, err := ParseFormat(" CSV "); err != nil || f != FormatCSV {
		t.Errorf("ParseFormat(\" CSV \") = %s, %v, want csv", f, err)
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(xml) error = %v, want %v", err, ErrUnknownFormat)
	}
}

var wantTasks = []task.Task{
	{Label: "Kickoff", Date: "03/01/2022", Status: "Planned", Type: "Workshop", Meeting: "All hands"},
	{Label: "Build", Date: "03/02/2022", Status: "In Progress"},
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		format   Format
		data     string
		wantName string
	}{
		{
			name:   "yaml document",
			format: FormatYAML,
			data: `name: sprint
tasks:
  - label: Kickoff
    date: 03/01/2022
    status: Planned
    type: Workshop
    meeting: All hands
  - label: Build
    date: 03/02/2022
    status: In Progress
`,
			wantName: "sprint",
		},
		{
			name:   "yaml list",
			format: FormatYAML,
			data: `- {label: Kickoff, date: 03/01/2022, status: Planned, type: Workshop, meeting: All hands}
- {label: Build, date: 03/02/2022, status: In Progress}
`,
			wantName: "fallback",
		},
		{
			name:   "toml",
			format: FormatTOML,
			data: `name = "sprint"

[[tasks]]
label = "Kickoff"
date = "03/01/2022"
status = "Planned"
type = "Workshop"
meeting = "All hands"

[[tasks]]
label = "Build"
date = "03/02/2022"
status = "In Progress"
`,
			wantName: "sprint",
		},
		{
			name:   "json object",
			format: FormatJSON,
			data: `{"name": "sprint", "tasks": [
  {"label": "Kickoff", "date": "03/01/2022", "status": "Planned", "type": "Workshop", "meeting": "All hands"},
  {"label": "Build", "date": "03/02/2022", "status": "In Progress"}
]}`,
			wantName: "sprint",
		},
		{
			name:   "json array",
			format: FormatJSON,
			data: `[
  {"label": "Kickoff", "date": "03/01/2022", "status": "Planned", "type": "Workshop", "meeting": "All hands"},
  {"label": "Build", "date": "03/02/2022", "status": "In Progress"}
]`,
			wantName: "fallback",
		},
		{
			name:   "csv with reordered columns and padding",
			format: FormatCSV,
			data: `Status,Label,Date,Meeting,Type,Owner
Planned, Kickoff ,03/01/2022,All hands,Workshop,ana
In Progress,Build,03/02/2022,,,bo
`,
			wantName: "fallback",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ds, err := Decode([]byte(tc.data), tc.format, "fallback")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ds.Name != tc.wantName {
				t.Errorf("Name = %q, want %q", ds.Name, tc.wantName)
			}
			got := ds.Tasks()
			if len(got) != len(wantTasks) {
				t.Fatalf("got %d tasks, want %d", len(got), len(wantTasks))
			}
			for i := range wantTasks {
				if got[i] != wantTasks[i] {
					t.Errorf("task %d = %+v, want %+v", i, got[i], wantTasks[i])
				}
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		data    string
		wantErr error
	}{
		{name: "csv missing status", format: FormatCSV, data: "label,date\nA,d\n", wantErr: ErrMissingColumn},
		{name: "csv empty status", format: FormatCSV, data: "label,date,status\nA,d,\n", wantErr: task.ErrEmptyStatus},
		{name: "yaml empty label", format: FormatYAML, data: "- {label: '', date: d, status: s}\n", wantErr: task.ErrEmptyLabel},
		{name: "json blank date", format: FormatJSON, data: `[{"label": "A", "date": "  ", "status": "s"}]`, wantErr: task.ErrEmptyDate},
		{name: "sqlite is not a file format", format: FormatSQLite, data: "", wantErr: ErrUnknownFormat},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.data), tc.format, "x")
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("got error %v, want %v", err, tc.wantErr)
			}
		})
	}

	if _, err := Decode([]byte(`{"name": "x", "owner": "y"}`), FormatJSON, "x"); err == nil {
		t.Error("expected error for unknown JSON field")
	}
	if _, err := Decode([]byte("[[tasks]\nlabel = "), FormatTOML, "x"); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestDecode_Empty(t *testing.T) {
	for _, f := range []Format{FormatYAML, FormatCSV} {
		ds, err := Decode(nil, f, "empty")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", f, err)
		}
		if ds.Len() != 0 {
			t.Errorf("%s: got %d tasks, want 0", f, ds.Len())
		}
	}
}

func TestFile_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sprint.csv")
	if err := os.WriteFile(path, []byte("label,date,status\nA,d1,s1\n"), 0o644); err != nil {
		t.Fatalf("failed to write tasks: %v", err)
	}

	src, err := Open(Options{Path: path})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = src.Close() }()

	ds, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ds.Name != "sprint" {
		t.Errorf("Name = %q, want file base name %q", ds.Name, "sprint")
	}

	// A second Load sees edits on disk.
	if err := os.WriteFile(path, []byte("label,date,status\nA,d1,s1\nB,d2,s2\n"), 0o644); err != nil {
		t.Fatalf("failed to rewrite tasks: %v", err)
	}
	ds, err = src.Load(context.Background())
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if ds.Len() != 2 {
		t.Errorf("reload got %d tasks, want 2", ds.Len())
	}
}

func TestFile_LoadCancelled(t *testing.T) {
	src, err := NewFile("tasks.yaml", FormatAuto)
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := src.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, want context.Canceled", err)
	}
}

func TestOpen_Errors(t *testing.T) {
	if _, err := Open(Options{}); !errors.Is(err, ErrNoPath) {
		t.Errorf("got error %v, want %v", err, ErrNoPath)
	}
	if _, err := Open(Options{Path: "tasks.txt"}); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("got error %v, want %v", err, ErrUnknownFormat)
	}
}

func TestOpen_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")
	store, err := db.Create(path)
	if err != nil {
		t.Fatalf("db.Create failed: %v", err)
	}
	_ = store.Close()

	src, err := Open(Options{Path: path, Dataset: "sprint"})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = src.Close() }()

	// The schema exists but holds no rows at all.
	ds, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ds.Len() != 0 {
		t.Errorf("got %d tasks, want 0", ds.Len())
	}
}

func TestOpen_SQLiteMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.db")
	if _, err := Open(Options{Path: path}); !errors.Is(err, db.ErrDatabaseNotFound) {
		t.Errorf("got error %v, want %v", err, db.ErrDatabaseNotFound)
	}
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected %s not to be created", path)
	}
}
