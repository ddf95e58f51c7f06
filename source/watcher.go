package source

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Result is one attempt at loading a curve.
type Result struct {
	Path  string
	Curve Curve
	Err   error
}

// Load parses the complete curve file at path.
func Load(path string) (Curve, error) {
	f, err := os.Open(path)
	if err != nil {
		return Curve{}, fmt.Errorf("failed opening curve: %w", err)
	}
	defer f.Close()
	c, err := Parse(f)
	if err != nil {
		return Curve{}, fmt.Errorf("failed parsing %s: %w", path, err)
	}
	return c, nil
}

// reload parses the curve file at path after a change, skipping a last
// line that is still being written.
func reload(path string) (Curve, error) {
	f, err := os.Open(path)
	if err != nil {
		return Curve{}, fmt.Errorf("failed opening curve: %w", err)
	}
	defer f.Close()
	c, complete, err := ParseGrowing(f)
	if err != nil {
		return Curve{}, fmt.Errorf("failed parsing %s: %w", path, err)
	}
	if !complete {
		log.Printf("%s: skipping unterminated last line until it is written", path)
	}
	return c, nil
}

// Watcher loads curve files and optionally follows them.
type Watcher struct {
	// Follow reloads the file each time it is written or recreated.
	Follow bool
}

// Watch loads the file at path and, when following, loads it again after
// every change. The channel is closed when ctx is done or when the file is
// not followed and has been loaded once.
func (w Watcher) Watch(ctx context.Context, path string) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		send := func(r Result) bool {
			select {
			case out <- r:
				return true
			case <-ctx.Done():
				return false
			}
		}
		load := func(parse func(string) (Curve, error)) Result {
			c, err := parse(path)
			if err != nil {
				log.Printf("%v", err)
			}
			return Result{Path: path, Curve: c, Err: err}
		}
		if !send(load(Load)) || !w.Follow {
			return
		}

		fw, err := fsnotify.NewWatcher()
		if err != nil {
			send(Result{Path: path, Err: fmt.Errorf("failed creating file watcher: %w", err)})
			return
		}
		defer fw.Close()
		// Watch the directory so that editors replacing the file are seen.
		if err := fw.Add(filepath.Dir(path)); err != nil {
			send(Result{Path: path, Err: fmt.Errorf("failed watching %s: %w", path, err)})
			return
		}
		target := filepath.Clean(path)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
					continue
				}
				if !send(load(reload)) {
					return
				}
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				if !send(Result{Path: path, Err: fmt.Errorf("file watcher: %w", err)}) {
					return
				}
			}
		}
	}()
	return out
}

// Read parses a single curve from rc in the background and closes rc. It is
// meant for files handed over without a path, such as those picked in a
// file dialog.
func Read(ctx context.Context, rc io.ReadCloser) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		defer rc.Close()
		c, err := Parse(rc)
		if err != nil {
			log.Printf("failed parsing curve: %v", err)
		}
		select {
		case out <- Result{Curve: c, Err: err}:
		case <-ctx.Done():
		}
	}()
	return out
}
