package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/hovertip/pkg/errors"
)

// debounce collapses the burst of events editors produce on save.
const debounce = 100 * time.Millisecond

// Watch calls fn with a freshly loaded config every time the file at path
// changes, until ctx is done. Load failures are passed to fn as well; the
// watch keeps running. Watch blocks and returns ctx.Err() on cancellation.
func Watch(ctx context.Context, path string, fn func(*Config, error)) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", path)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create watcher")
	}
	defer w.Close()

	// Watch the directory: editors often replace the file instead of
	// writing it in place.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "watch %s", filepath.Dir(abs))
	}

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fn(nil, errors.Wrap(errors.ErrCodeInternal, err, "watch %s", path))

		case <-fire:
			fire = nil
			fn(Load(abs))
		}
	}
}
