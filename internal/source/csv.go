package source

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/javiermolinar/gantt/internal/task"
)

// ErrMissingColumn is returned when a required CSV column is absent.
var ErrMissingColumn = errors.New("missing column")

var requiredColumns = []string{"label", "date", "status"}

// decodeCSV maps columns by header name, case-insensitively.
// Unknown columns are ignored.
func decodeCSV(data []byte) (string, []task.Task, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, fmt.Errorf("reading header: %w", err)
	}

	columnMap := make(map[string]int, len(header))
	for i, col := range header {
		columnMap[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columnMap[name]; !ok {
			return "", nil, fmt.Errorf("%w %q, available columns: %v", ErrMissingColumn, name, header)
		}
	}

	var tasks []task.Task
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", nil, fmt.Errorf("reading line %d: %w", line, err)
		}
		get := func(name string) string {
			i, ok := columnMap[name]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}
		tasks = append(tasks, task.Task{
			Label:   get("label"),
			Date:    get("date"),
			Status:  get("status"),
			Type:    get("type"),
			Meeting: get("meeting"),
		})
	}
	return "", tasks, nil
}
