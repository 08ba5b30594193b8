// Package inspect classifies how a rendered module instance diverged from
// the template tree it was generated from.
package inspect

import "fmt"

// Status classifies one changed file.
type Status int

const (
	// Added files exist only in the instance.
	Added Status = iota + 1
	// Modified files differ after normalization.
	Modified
	// Deleted files exist only in the template tree.
	Deleted
)

var statusNames = map[Status]string{
	Added:    "added",
	Modified: "modified",
	Deleted:  "deleted",
}

// String returns the lowercase status name.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// MarshalText encodes the status by name in YAML and JSON reports.
func (s Status) MarshalText() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown status %d", int(s))
	}
	return []byte(name), nil
}

// ChangeRecord is one changed file.
type ChangeRecord struct {
	// Path is the instance-relative, slash-separated path.
	Path string `json:"path" yaml:"path"`
	// TemplatePath is the template-relative path, including the .tmpl suffix.
	TemplatePath string `json:"templatePath" yaml:"templatePath"`
	Status       Status `json:"status" yaml:"status"`
	// Diff is only set in detailed mode.
	Diff string `json:"diff,omitempty" yaml:"diff,omitempty"`
}

// Count returns the number of records per status.
func Count(records []ChangeRecord) map[Status]int {
	counts := make(map[Status]int, len(statusNames))
	for _, r := range records {
		counts[r.Status]++
	}
	return counts
}
