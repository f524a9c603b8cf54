package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the config file when it changes on disk.
// Editors often replace the file instead of writing it in place, so the
// parent directory is watched and events are filtered by file name.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	loader    *Loader
	path      string

	Events chan *Config
	Errors chan error
	done   chan struct{}
	exited chan struct{}
}

// NewWatcher creates a watcher for the loader's config file.
func NewWatcher(loader *Loader) (*Watcher, error) {
	path, err := loader.Path()
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	return &Watcher{
		fsWatcher: fsw,
		loader:    loader,
		path:      filepath.Clean(path),
		Events:    make(chan *Config, 1),
		Errors:    make(chan error, 10),
		done:      make(chan struct{}),
		exited:    make(chan struct{}),
	}, nil
}

// Start begins watching in the background
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Stop stops the watcher and waits for the loop to exit
func (w *Watcher) Stop() error {
	close(w.done)
	err := w.fsWatcher.Close()
	<-w.exited
	return err
}

func (w *Watcher) watchLoop() {
	defer close(w.exited)
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	cfg, err := w.loader.Load()
	if err != nil {
		w.sendError(err)
		return
	}

	// Only the newest config matters; replace a pending one.
	select {
	case <-w.Events:
	default:
	}
	select {
	case w.Events <- cfg:
	case <-w.done:
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.Errors <- err:
	default:
		// Error channel full, drop
	}
}
