// Package watcher provides live reload for the settings file. When the
// watched file is written or recreated the settings are parsed again and
// handed to the registered handler.
package watcher

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/juanjux/editorexperiment/internal/config"
)

// ErrWatcherClosed is returned when using a closed watcher.
var ErrWatcherClosed = errors.New("settings watcher is closed")

// Handler receives the freshly loaded settings after a change.
type Handler func(*config.Settings)

// Watcher monitors one settings file for changes.
type Watcher struct {
	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	path    string
	handler Handler
	errs    chan error
	done    chan struct{}
	wg      sync.WaitGroup
	closed  bool
}

// New starts watching path and calls handler with the reloaded settings
// on every write. Parse failures are reported on Errors and keep the
// previous settings in effect; the watcher keeps running.
func New(path string, handler Handler) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// watch the directory: editors replace files on save, which drops
	// a per-file watch
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:     fsw,
		path:    abs,
		handler: handler,
		errs:    make(chan error, 16),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Errors returns the channel carrying reload and watch failures.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			settings, err := config.Load(w.path)
			if err != nil {
				w.report(err)
				continue
			}
			w.handler(settings)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.report(err)
		}
	}
}

// report drops the error when nobody is draining the channel.
func (w *Watcher) report(err error) {
	select {
	case w.errs <- err:
	default:
	}
}
