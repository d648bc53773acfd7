package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

type MatchFunc func(name string) bool

// Watcher waits for a file whose base name satisfies match to appear
// anywhere below root. root itself may not exist yet.
type Watcher struct {
	root  string
	match MatchFunc
	fsw   *fsnotify.Watcher
}

func NewWatcher(root string, match MatchFunc) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create file watcher")
	}

	return &Watcher{
		root:  filepath.Clean(root),
		match: match,
		fsw:   fsw,
	}, nil
}

func WaitForFile(ctx context.Context, root string, match MatchFunc, timeout time.Duration) (string, error) {
	w, err := NewWatcher(root, match)
	if err != nil {
		return "", err
	}
	defer w.Stop()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	return w.Wait(ctx)
}

func (w *Watcher) Wait(ctx context.Context) (string, error) {
	found, err := w.watchRoot()
	if err != nil || found != "" {
		return found, err
	}

	for {
		select {
		case <-ctx.Done():
			return "", errors.Wrapf(ctx.Err(), "waiting for file under %s", w.root)
		case event, ok := <-w.fsw.Events:
			if !ok {
				return "", errors.New("file watcher closed")
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}

			found, err = w.handle(event.Name)
			if err != nil || found != "" {
				return found, err
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return "", errors.New("file watcher closed")
			}
			return "", errors.Wrap(err, "file watcher failed")
		}
	}
}

func (w *Watcher) Stop() {
	w.fsw.Close()
}

func (w *Watcher) handle(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", nil
	}

	switch {
	case isWithin(w.root, path) && info.IsDir():
		return w.addRecursive(path)
	case isWithin(w.root, path):
		if w.match(info.Name()) {
			return path, nil
		}
	case info.IsDir() && isWithin(path, w.root):
		return w.watchRoot()
	}
	return "", nil
}

// watchRoot watches root recursively, or its closest existing ancestor
// when root is missing so that its creation is observed.
func (w *Watcher) watchRoot() (string, error) {
	dir := w.root
	for {
		if _, err := os.Stat(dir); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Errorf("no existing ancestor for %s", w.root)
		}
		dir = parent
	}

	if dir == w.root {
		return w.addRecursive(w.root)
	}

	if err := w.fsw.Add(dir); err != nil {
		return "", errors.Wrapf(err, "failed to watch path %s", dir)
	}

	// root may have appeared between the stat and the Add.
	if _, err := os.Stat(w.root); err == nil {
		return w.addRecursive(w.root)
	}
	return "", nil
}

// addRecursive adds a watch on every directory below root and returns the
// first matching file already present.
func (w *Watcher) addRecursive(root string) (string, error) {
	var found string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}

		if info.IsDir() {
			if err = w.fsw.Add(path); err != nil {
				return errors.Wrapf(err, "failed to watch path %s", path)
			}
			return nil
		}

		if w.match(info.Name()) {
			found = path
			return filepath.SkipAll
		}
		return nil
	})

	return found, err
}

func isWithin(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, "../"))
}
