package manifest

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
)

// Diff returns a human-readable structural diff between two manifest
// versions, or "" when they are equivalent. JSON input is read as YAML.
func Diff(before, after []byte) (string, error) {
	if len(before) == 0 && len(after) == 0 {
		return "", nil
	}

	from, err := parseInput("before", before)
	if err != nil {
		return "", fmt.Errorf("parsing previous manifest: %w", err)
	}

	to, err := parseInput("after", after)
	if err != nil {
		return "", fmt.Errorf("parsing updated manifest: %w", err)
	}

	report, err := dyff.CompareInputFiles(from, to)
	if err != nil {
		return "", fmt.Errorf("comparing manifests: %w", err)
	}

	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderReport(report)
}

func parseInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{Location: name, Documents: docs}, nil
}

func renderReport(report dyff.Report) (string, error) {
	var buf bytes.Buffer

	writer := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      true,
		OmitHeader:        true,
	}

	if err := writer.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
