package source

import (
	"bytes"
	"encoding/json"

	"github.com/javiermolinar/gantt/internal/task"
)

// decodeJSON accepts either an object with name and tasks or a bare array.
func decodeJSON(data []byte) (string, []task.Task, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var tasks []task.Task
		if err := json.Unmarshal(trimmed, &tasks); err != nil {
			return "", nil, err
		}
		return "", tasks, nil
	}

	var doc document
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return "", nil, err
	}
	return doc.Name, doc.Tasks, nil
}
