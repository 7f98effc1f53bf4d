package recipebook

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// ScaleLogger records how each ingredient line was rewritten.
type ScaleLogger interface {
	LogLine(line LineLog) error
}

// NewScaleLogFilePath returns a log file path derived from the full recipe
// key, extension included, so distinct keys never share a file.
func NewScaleLogFilePath(recipe string) string {
	name := strings.ToLower(strings.Trim(recipe, "/"))
	name = strings.Map(func(r rune) rune {
		switch r {
		case ' ', ':', '/', '\\', '.':
			return '_'
		}
		return r
	}, name)
	return fmt.Sprintf("./logs/%d.%s.json", time.Now().Unix(), name)
}

// LineLog is the audit record for one ingredient line.
type LineLog struct {
	Recipe     string    `json:"recipe"`
	Line       int       `json:"line"`
	Timestamp  time.Time `json:"timestamp"`
	Input      string    `json:"input"`
	Output     string    `json:"output"`
	Rule       string    `json:"rule,omitempty"`
	Amount     *float64  `json:"amount,omitempty"`
	Unit       string    `json:"unit,omitempty"`
	Ingredient string    `json:"ingredient,omitempty"`
}

// FileScaleLogger buffers lines and writes them as one JSON document on Flush.
type FileScaleLogger struct {
	lines  []LineLog
	writer io.Writer
}

func NewFileScaleLogger(writer io.Writer) *FileScaleLogger {
	return &FileScaleLogger{
		lines:  make([]LineLog, 0),
		writer: writer,
	}
}

// LogLine appends to the buffer; nothing is written until Flush.
func (l *FileScaleLogger) LogLine(line LineLog) error {
	l.lines = append(l.lines, line)
	return nil
}

// Flush writes all buffered lines and clears the buffer.
func (l *FileScaleLogger) Flush() error {
	if l.writer == nil {
		return nil
	}

	data, err := json.MarshalIndent(map[string]any{
		"scale_session": map[string]any{
			"timestamp": time.Now(),
			"lines":     l.lines,
		},
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scale log: %w", err)
	}

	if _, err := l.writer.Write(data); err != nil {
		return fmt.Errorf("failed to write scale log: %w", err)
	}

	l.lines = l.lines[:0]
	return nil
}

type NoOpScaleLogger struct{}

func NewNoOpScaleLogger() *NoOpScaleLogger {
	return &NoOpScaleLogger{}
}

func (nop *NoOpScaleLogger) LogLine(line LineLog) error {
	return nil
}

// StdoutScaleLogger writes each line as a JSON line to stdout (for Lambda/CloudWatch).
type StdoutScaleLogger struct {
	out io.Writer
}

func NewStdoutScaleLogger() *StdoutScaleLogger {
	return &StdoutScaleLogger{out: os.Stdout}
}

func (l *StdoutScaleLogger) LogLine(line LineLog) error {
	data, err := json.Marshal(line)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(l.out, string(data))
	return err
}
