package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-loads an options file when it changes on disk and
// delivers the result to a callback. Sessions are cheap to rebuild,
// so callers typically construct a fresh session from the delivered
// options.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	done    chan struct{}
}

// Watch starts watching path. onChange receives the freshly loaded
// options after each write; load failures are delivered to onError
// (which may be nil) and the previous options stay in effect.
func Watch(path string, onChange func(Options), onError func(error)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors replace files on save, and a watch
	// on the old inode goes stale.
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fsw,
		path:    abs,
		done:    make(chan struct{}),
	}
	go w.loop(onChange, onError)
	return w, nil
}

func (w *Watcher) loop(onChange func(Options), onError func(error)) {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			opts, err := Load(w.path)
			if err != nil {
				if onError != nil {
					onError(err)
				}
				continue
			}
			onChange(opts)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
