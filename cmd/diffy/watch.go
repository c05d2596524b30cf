package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"

	"github.com/dacharyc/diffy"
)

// watch prints the diff again every time one of the files changes, until
// interrupted. Directories are watched rather than the files themselves so
// that editors replacing a file by renaming are noticed.
func watch(w io.Writer, oldPath, newPath string, diffOpts []diffy.Option, renderOpts []diffy.RenderOption) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %v", err)
	}
	defer watcher.Close()

	var files []string
	for _, p := range []string{oldPath, newPath} {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolving %s: %v", p, err)
		}
		files = append(files, abs)
		dir := filepath.Dir(abs)
		if slices.Contains(watcher.WatchList(), dir) {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("starting watch: %v", err)
		}
	}
	log.Printf("Watching %s and %s, press Ctrl-C to stop", oldPath, newPath)

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt)
	defer signal.Stop(sigint)

	for {
		select {
		case event := <-watcher.Events:
			if event.Has(fsnotify.Chmod) || !slices.Contains(files, filepath.Clean(event.Name)) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Printf("%s changed", event.Name)
			if err := printDiff(w, oldPath, newPath, diffOpts, renderOpts); err != nil {
				log.Printf("failed to update diff: %v", err)
			}
		case err := <-watcher.Errors:
			return fmt.Errorf("watching: %v", err)
		case <-sigint:
			fmt.Print("\r") // remove Ctrl-C output characters
			log.Printf("Received Ctrl-C, shutting down")
			return nil
		}
	}
}
