package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ReportWriter renders a report into a file under dir and returns the path
// of the file it wrote.
type ReportWriter interface {
	Write(dir string, rep *Report) (string, error)
}

// ReportWriterFunc is a function that implements ReportWriter
type ReportWriterFunc func(dir string, rep *Report) (string, error)

func (f ReportWriterFunc) Write(dir string, rep *Report) (string, error) {
	return f(dir, rep)
}

// writers is the registry of available report writers
var writers = map[string]ReportWriter{}

// RegisterWriter registers a report writer under the given format name
func RegisterWriter(name string, w ReportWriter) {
	writers[name] = w
}

// GetWriter returns the writer for the given format
func GetWriter(format string) (ReportWriter, error) {
	w, ok := writers[format]
	if !ok {
		return nil, fmt.Errorf("unknown report format: %s (available: %v)", format, AvailableFormats())
	}
	return w, nil
}

// AvailableFormats returns the registered format names, sorted
func AvailableFormats() []string {
	var formats []string
	for name := range writers {
		formats = append(formats, name)
	}
	sort.Strings(formats)
	return formats
}

// reportFileName builds the timestamped file name for a report, unique to
// the second.
func reportFileName(rep *Report, ext string) string {
	return rep.GeneratedAt.Format("sales_report_20060102_150405") + ext
}

// ensureReportsDir creates the reports directory on demand.
func ensureReportsDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating reports directory %s: %w", dir, err)
	}
	return nil
}

// WriteTextReport writes the canonical human-readable report: the rendered
// text plus a trailing newline.
func WriteTextReport(dir string, rep *Report) (string, error) {
	if err := ensureReportsDir(dir); err != nil {
		return "", err
	}

	path := filepath.Join(dir, reportFileName(rep, ".txt"))
	if err := os.WriteFile(path, []byte(rep.Render()+"\n"), 0644); err != nil {
		return "", fmt.Errorf("writing report file: %w", err)
	}
	return path, nil
}

func init() {
	RegisterWriter("text", ReportWriterFunc(WriteTextReport))
}
