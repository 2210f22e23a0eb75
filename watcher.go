package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

type Watcher struct {
	// watchingFiles maps absolute paths to the names given on the command line
	watchingDirs  map[string]struct{}
	watchingFiles map[string]string

	folder  *folder
	watcher *fsnotify.Watcher
}

func NewWatcher(f *folder) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	return &Watcher{
		watchingDirs:  make(map[string]struct{}),
		watchingFiles: make(map[string]string),
		folder:        f,
		watcher:       watcher,
	}, nil
}

// WatchFile must not be called after Run.
func (w *Watcher) WatchFile(name string) error {
	fullPath, err := filepath.Abs(name)
	if err != nil {
		return err
	}
	w.watchingFiles[fullPath] = name

	// Editors often replace files instead of writing to them, so watch the
	// directory instead
	dir := filepath.Dir(fullPath)
	if _, ok := w.watchingDirs[dir]; ok {
		return nil
	}

	err = w.watcher.Add(dir)
	if err != nil {
		return err
	}

	w.watchingDirs[dir] = struct{}{}

	return nil
}

// Run handles file events until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			fullPath, _ := filepath.Abs(event.Name)

			name, ok := w.watchingFiles[fullPath]
			if !ok {
				continue
			}

			w.fileModified(ctx, name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger().Errorf("watcher error: %s", err)
		}
	}
}

func (w *Watcher) fileModified(ctx context.Context, name string) {
	logger().Infof("file %q modified, folding again...", name)

	w.folder.ws.Invalidate(name)

	if err := w.folder.foldFile(ctx, name); err != nil {
		logger().Errorf("failed to fold file %q: %s", name, err)
	}
}
