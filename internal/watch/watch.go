// Package watch implements the driver's "run --watch" mode: re-running a
// script whenever its source file changes on disk. It wires in
// github.com/fsnotify/fsnotify, a dependency the teacher itself carries
// in runtime/go.mod for reacting to filesystem changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Run watches path's containing directory (rather than the file itself,
// so editors that save by rename-and-replace are still picked up) and
// calls onChange every time path is written or recreated. It blocks
// until ctx is canceled, onChange returns an error, the watcher reports
// an error, or the watcher's channels close.
func Run(ctx context.Context, path string, onChange func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := onChange(); err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch: %w", err)
		}
	}
}
