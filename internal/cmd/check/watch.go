package check

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 100 * time.Millisecond

// runWatch checks the files once, then again after each change, until ctx is
// done. Directories are watched rather than files so editors that replace a
// file on save keep being tracked.
func runWatch(ctx context.Context, opts *checkOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	tracked := make(map[string]string, len(opts.files))
	dirs := make(map[string]bool)
	for _, file := range opts.files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", file, err)
		}
		tracked[abs] = file
		dirs[filepath.Dir(abs)] = true
	}
	for _, dir := range sortedKeys(dirs) {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	recheck(opts, opts.files)

	pending := make(map[string]bool)
	timer := time.NewTimer(debounceDelay)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			file, ok := tracked[filepath.Clean(event.Name)]
			if !ok || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			opts.logger.Debug("changed", "file", file, "op", event.Op.String())
			pending[file] = true
			timer.Reset(debounceDelay)

		case <-timer.C:
			recheck(opts, sortedKeys(pending))
			pending = make(map[string]bool)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			opts.logger.Warn("watch error", "error", err)
		}
	}
}

// recheck runs a check pass, logging rather than returning warnings so the
// watch loop keeps going.
func recheck(opts *checkOptions, files []string) {
	pass := *opts
	pass.files = files
	if err := runCheck(&pass); err != nil && !errors.Is(err, ErrWarnings) {
		opts.logger.Error("check failed", "error", err)
	}
}
