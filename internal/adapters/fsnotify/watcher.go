// Package fsnotify implements the ports.Watcher interface using github.com/fsnotify/fsnotify.
// It watches the directory holding one input file, drops events for every other
// name, and debounces bursts (editors often trigger several writes per save).
package fsnotify

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the file must stay quiet before onChange fires.
const DefaultDebounce = 50 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw       *fsnotify.Watcher
	debounce time.Duration
	done     chan struct{}
	stopped  bool
	pending  *time.Timer
	firing   sync.WaitGroup
	mu       sync.Mutex
}

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:       fw,
		debounce: DefaultDebounce,
		done:     make(chan struct{}),
	}, nil
}

// Watch starts monitoring filePath. The file itself need not exist yet, but
// its directory must.
func (w *Watcher) Watch(filePath string, onChange func(filePath string)) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return err
	}
	dir := filepath.Dir(absPath)
	if info, err := os.Stat(dir); err != nil {
		return err
	} else if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	if err := w.fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != absPath {
					continue
				}
				// Rename-over saves show up as Create on the target name.
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					w.schedule(func() { onChange(absPath) })
				}

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// Errors are swallowed; fsnotify recovers automatically

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// schedule (re)starts the debounce timer so fire runs once the burst settles.
func (w *Watcher) schedule(fire func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		if w.stopped {
			w.mu.Unlock()
			return
		}
		w.firing.Add(1)
		w.mu.Unlock()
		defer w.firing.Done()
		fire()
	})
}

// Stop ends monitoring and releases all resources. It waits for a
// callback already running, so it must not be called from onChange.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	if w.pending != nil {
		w.pending.Stop()
	}
	close(w.done)
	w.mu.Unlock()

	err := w.fw.Close()
	w.firing.Wait()
	return err
}
