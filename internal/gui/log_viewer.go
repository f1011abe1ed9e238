package gui

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const maxLogMessages = 500

// lineWriter forwards complete lines to sink and copies all bytes to tee.
// A trailing partial line is held until its newline arrives.
type lineWriter struct {
	mu      sync.Mutex
	tee     io.Writer
	sink    func(string)
	pending []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	if w.tee != nil {
		_, _ = w.tee.Write(p)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = append(w.pending, p...)
	for {
		i := bytes.IndexByte(w.pending, '\n')
		if i < 0 {
			break
		}
		line := strings.TrimRight(string(w.pending[:i]), "\r")
		w.pending = w.pending[i+1:]
		if strings.TrimSpace(line) != "" {
			w.sink(line)
		}
	}
	return len(p), nil
}

// flush emits a held partial line
func (w *lineWriter) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if line := strings.TrimSpace(string(w.pending)); line != "" {
		w.sink(line)
	}
	w.pending = nil
}

// LogViewer is a collapsible panel showing captured program output, newest
// line first.
type LogViewer struct {
	widget.BaseWidget

	panel    *widget.Accordion
	logEntry *widget.Entry
	scroll   *container.Scroll

	mu       sync.Mutex
	messages []string

	originalStdout *os.File
	originalStderr *os.File
	pipes          []*os.File
	writers        []*lineWriter
	readers        sync.WaitGroup
}

// NewLogViewer creates a new log viewer widget
func NewLogViewer() *LogViewer {
	v := &LogViewer{}

	v.logEntry = widget.NewMultiLineEntry()
	v.logEntry.Wrapping = fyne.TextWrapWord
	v.logEntry.Disable()

	v.scroll = container.NewVScroll(v.logEntry)
	v.scroll.SetMinSize(fyne.NewSize(0, 120))

	v.panel = widget.NewAccordion(widget.NewAccordionItem("Log", v.scroll))

	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer implements fyne.Widget
func (v *LogViewer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.panel)
}

// StartCapture redirects stdout, stderr and the log package into the
// viewer. The original streams still receive every byte.
func (v *LogViewer) StartCapture() {
	v.originalStdout = os.Stdout
	v.originalStderr = os.Stderr

	stdout, err := v.redirect(v.originalStdout, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot capture stdout: %v\n", err)
		return
	}
	stderr, err := v.redirect(v.originalStderr, "! ")
	if err != nil {
		stdout.Close()
		fmt.Fprintf(os.Stderr, "Warning: cannot capture stderr: %v\n", err)
		return
	}

	os.Stdout = stdout
	os.Stderr = stderr
	log.SetOutput(stderr)
}

func (v *LogViewer) redirect(original *os.File, prefix string) (*os.File, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	lw := &lineWriter{
		tee:  original,
		sink: func(line string) { v.AddMessage(prefix + line) },
	}
	v.pipes = append(v.pipes, w)
	v.writers = append(v.writers, lw)

	v.readers.Add(1)
	go func() {
		defer v.readers.Done()
		_, _ = io.Copy(lw, r)
		lw.flush()
		r.Close()
	}()
	return w, nil
}

// StopCapture restores the original streams and waits for the pipe readers
func (v *LogViewer) StopCapture() {
	if v.originalStdout == nil {
		return
	}
	os.Stdout = v.originalStdout
	os.Stderr = v.originalStderr
	log.SetOutput(os.Stderr)
	v.originalStdout, v.originalStderr = nil, nil

	for _, p := range v.pipes {
		p.Close()
	}
	v.readers.Wait()
	v.pipes, v.writers = nil, nil
}

// AddMessage adds a timestamped line to the top of the log
func (v *LogViewer) AddMessage(message string) {
	v.mu.Lock()
	line := fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), message)
	v.messages = append([]string{line}, v.messages...)
	if len(v.messages) > maxLogMessages {
		v.messages = v.messages[:maxLogMessages]
	}
	text := strings.Join(v.messages, "\n")
	v.mu.Unlock()

	fyne.Do(func() {
		v.logEntry.SetText(text)
		v.scroll.ScrollToTop()
	})
}

// Messages returns the captured lines, newest first
func (v *LogViewer) Messages() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.messages...)
}

// Clear removes all log messages
func (v *LogViewer) Clear() {
	v.mu.Lock()
	v.messages = nil
	v.mu.Unlock()

	fyne.Do(func() {
		v.logEntry.SetText("")
	})
}
