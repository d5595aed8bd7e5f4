package log

import (
	"io"
	"os"
	"sync"
)

// ConsoleOutput writes formatted entries to the process console. Entries at
// ErrorLevel and above go to stderr, everything else to stdout. The zero
// value is ready to use.
type ConsoleOutput struct{}

// NewConsoleOutput returns a console output.
func NewConsoleOutput() *ConsoleOutput {
	return &ConsoleOutput{}
}

// Write implements Output.
func (o *ConsoleOutput) Write(entry *Entry, formattedEntry []byte) error {
	w := os.Stdout
	if entry.Level >= ErrorLevel {
		w = os.Stderr
	}
	_, err := w.Write(formattedEntry)
	return err
}

// Close implements Output. Console streams are not closed.
func (o *ConsoleOutput) Close() error { return nil }

// FileOutput appends formatted entries to a file.
type FileOutput struct {
	mu   sync.Mutex
	file *os.File
}

// NewFileOutput opens (or creates) the file at path for appending.
func NewFileOutput(path string) (*FileOutput, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &FileOutput{file: f}, nil
}

// Write implements Output.
func (o *FileOutput) Write(_ *Entry, formattedEntry []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := o.file.Write(formattedEntry)
	return err
}

// Close implements Output.
func (o *FileOutput) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.file.Close()
}

// NullOutput discards everything. Useful to silence a logger entirely.
type NullOutput struct{}

// NewNullOutput returns an output that drops all entries.
func NewNullOutput() *NullOutput { return &NullOutput{} }

// Write implements Output.
func (o *NullOutput) Write(*Entry, []byte) error { return nil }

// Close implements Output.
func (o *NullOutput) Close() error { return nil }

// WriterOutput writes formatted entries to an arbitrary io.Writer. Handy in
// tests to capture log lines.
type WriterOutput struct {
	mu sync.Mutex
	W  io.Writer
}

// NewWriterOutput wraps w as an Output.
func NewWriterOutput(w io.Writer) *WriterOutput {
	return &WriterOutput{W: w}
}

// Write implements Output.
func (o *WriterOutput) Write(_ *Entry, formattedEntry []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := o.W.Write(formattedEntry)
	return err
}

// Close implements Output.
func (o *WriterOutput) Close() error { return nil }
