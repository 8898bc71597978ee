package watcher

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"dockicon/config"
	"dockicon/icon"

	"github.com/fsnotify/fsnotify"
)

// Generator produces an icon from a source image
type Generator interface {
	CreateIcon(inputPath, outputPath string) (*icon.Result, error)
}

// Watcher regenerates the icon whenever the source image changes
type Watcher struct {
	input    string
	output   string
	debounce time.Duration

	generator Generator
	watcher   *fsnotify.Watcher
	events    chan Event

	mu      sync.Mutex // guards timer and stopped
	runMu   sync.Mutex // serialises regenerations
	timer   *time.Timer
	stopped bool
}

// Event reports the outcome of one regeneration
type Event struct {
	Type     EventType
	FilePath string
	Result   *icon.Result
	Err      error
}

// EventType represents the type of file event
type EventType int

const (
	EventCreated EventType = iota
	EventModified
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventModified:
		return "modified"
	default:
		return "unknown"
	}
}

// NewWatcher creates a new source watcher
func NewWatcher(cfg *config.Config, generator Generator) (*Watcher, error) {
	input, err := filepath.Abs(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve input path: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		input:     input,
		output:    cfg.Output,
		debounce:  cfg.Debounce(),
		generator: generator,
		watcher:   fsWatcher,
		events:    make(chan Event, 100),
	}, nil
}

// Start begins monitoring the directory holding the source image
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.input)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch folder %s: %w", dir, err)
	}
	log.Printf("Watching source: %s", w.input)

	go w.processEvents()

	return nil
}

// processEvents filters fsnotify events down to the source image and debounces them
func (w *Watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != w.input {
				continue
			}

			var eventType EventType
			switch {
			case event.Op&fsnotify.Create == fsnotify.Create:
				eventType = EventCreated
			case event.Op&fsnotify.Write == fsnotify.Write:
				eventType = EventModified
			default:
				continue
			}

			w.schedule(eventType)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

// schedule restarts the debounce timer for the source image
func (w *Watcher) schedule(eventType EventType) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.regenerate(eventType)
	})
}

// regenerate runs the icon pipeline once and reports the outcome
func (w *Watcher) regenerate(eventType EventType) {
	w.runMu.Lock()
	defer w.runMu.Unlock()

	log.Printf("Source %s: %s", eventType, w.input)

	result, err := w.generator.CreateIcon(w.input, w.output)
	if err != nil {
		log.Printf("Failed to regenerate icon: %v", err)
	} else {
		log.Printf("Regenerated icon: %s (%dx%d, content %dx%d)",
			result.OutputPath, result.OriginalSize, result.OriginalSize, result.ContentSize, result.ContentSize)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}

	select {
	case w.events <- Event{Type: eventType, FilePath: w.input, Result: result, Err: err}:
	default:
		log.Printf("Event channel full, dropping event for %s", w.input)
	}
}

// Events returns the event channel
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop stops the watcher
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.events)
	w.mu.Unlock()

	return w.watcher.Close()
}
