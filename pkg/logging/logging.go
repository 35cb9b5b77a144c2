package logging

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// Setup configures the standard logger.
// If filename is empty, logging is disabled (except log.Fatal/panic).
// If filename is set, logs go to that file and Bubble Tea logs are enabled too.
func Setup(filename string) (cleanup func(), err error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if filename == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	// LogToFile points the standard logger at the file as well.
	f, err := tea.LogToFile(filename, "timeline")
	if err != nil {
		return nil, err
	}

	return func() {
		f.Close()
	}, nil
}
