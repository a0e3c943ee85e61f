// Package watcher re-runs work when model files change on disk.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// FileWatcher watches files and invokes a debounced callback per file
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	log       *zap.Logger
	debounce  time.Duration
	mu        sync.Mutex
	callbacks map[string]func(string)
	timers    map[string]*time.Timer
	closed    bool
}

// Retry limits for re-adding a watch after a rename
const (
	rewatchAttempts    = 10
	minRewatchInterval = 20 * time.Millisecond
)

// NewFileWatcher creates a new file watcher. A nil logger discards output.
func NewFileWatcher(debounce time.Duration, log *zap.Logger) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &FileWatcher{
		watcher:   w,
		log:       log,
		debounce:  debounce,
		callbacks: make(map[string]func(string)),
		timers:    make(map[string]*time.Timer),
	}, nil
}

// Watch registers callback for each of files. The callback receives the
// absolute path that changed.
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}
		if err := fw.watcher.Add(absPath); err != nil {
			return fmt.Errorf("failed to watch %s: %w", absPath, err)
		}
		fw.callbacks[absPath] = callback
		fw.log.Debug("watching file", zap.String("path", absPath))
	}

	return nil
}

// Run dispatches change events until ctx is cancelled or the watcher is
// closed.
func (fw *FileWatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				fw.handleFileChange(event.Name)
			}
			// Editors that save by rename drop the watch; re-add it.
			if event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				fw.rewatch(event.Name)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.log.Warn("watcher error", zap.Error(err))
		}
	}
}

// handleFileChange schedules the callback, restarting the debounce timer
func (fw *FileWatcher) handleFileChange(filePath string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	callback, exists := fw.callbacks[filePath]
	if !exists || fw.closed {
		return
	}

	if timer, exists := fw.timers[filePath]; exists {
		timer.Stop()
	}
	fw.timers[filePath] = time.AfterFunc(fw.debounce, func() {
		fw.log.Debug("file changed", zap.String("path", filePath))
		callback(filePath)
	})
}

func (fw *FileWatcher) rewatch(filePath string) {
	fw.mu.Lock()
	_, exists := fw.callbacks[filePath]
	fw.mu.Unlock()
	if !exists {
		return
	}

	// The replacement file may not exist yet; the next Create event on the
	// directory is not observed, so retry briefly.
	go func() {
		if fw.retryAdd(filePath) {
			fw.handleFileChange(filePath)
		}
	}()
}

// retryAdd re-adds filePath until it succeeds, the attempts run out or the
// watcher is closed
func (fw *FileWatcher) retryAdd(filePath string) bool {
	for i := 0; i < rewatchAttempts; i++ {
		if fw.isClosed() {
			return false
		}
		if err := fw.watcher.Add(filePath); err == nil {
			return true
		}
		time.Sleep(fw.retryInterval())
	}
	fw.log.Warn("lost watch on file", zap.String("path", filePath))
	return false
}

func (fw *FileWatcher) retryInterval() time.Duration {
	return max(fw.debounce/5, minRewatchInterval)
}

func (fw *FileWatcher) isClosed() bool {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	return fw.closed
}

// Close stops the watcher and pending callbacks
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	if fw.closed {
		fw.mu.Unlock()
		return nil
	}
	fw.closed = true
	for _, timer := range fw.timers {
		timer.Stop()
	}
	fw.mu.Unlock()
	return fw.watcher.Close()
}

// RemoveAll removes all watched files
func (fw *FileWatcher) RemoveAll() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for file := range fw.callbacks {
		if err := fw.watcher.Remove(file); err != nil {
			return err
		}
	}
	for _, timer := range fw.timers {
		timer.Stop()
	}

	fw.callbacks = make(map[string]func(string))
	fw.timers = make(map[string]*time.Timer)
	return nil
}
