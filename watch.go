package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// watch parses path once, then again after every write until ctx is done.
// Parse failures are reported and do not stop the loop.
func (a *app) watch(ctx context.Context, path, format string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// The directory is watched so that saves done by rename are seen.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	a.logf("watching %s", path)

	reparse := func() { a.report([]result{a.parseFile(path, format)}, false) }
	reparse()

	return watchLoop(ctx, watcher.Events, watcher.Errors, path, watchDebounce, reparse, func(err error) {
		a.logger.Printf("watcher error: %s", err)
	})
}

// watchLoop calls onChange for every create or write of path. Events
// closer than debounce to the previous call are coalesced into one
// trailing call once the debounce window closes.
func watchLoop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, path string, debounce time.Duration, onChange func(), onError func(error)) error {
	path = filepath.Clean(path)

	var (
		last     time.Time
		trailing *time.Timer
		fire     <-chan time.Time // Nil unless a trailing call is pending.
	)
	defer func() {
		if trailing != nil {
			trailing.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if wait := debounce - time.Since(last); wait > 0 {
				if fire == nil {
					trailing = time.NewTimer(wait)
					fire = trailing.C
				}
				continue
			}
			last = time.Now()
			onChange()

		case <-fire:
			fire = nil
			last = time.Now()
			onChange()

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			onError(err)
		}
	}
}
