package seed

import (
	"context"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 200 * time.Millisecond

// Watch reloads the seed file whenever it changes and hands every document
// that parses to onChange. The parent directory is watched so editors that
// replace the file by rename are picked up. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, logger *zap.Logger, onChange func(*Document)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create seed watcher")
	}
	defer fsw.Close()

	path = filepath.Clean(path)
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		return errors.Wrapf(err, "watch %s", filepath.Dir(path))
	}
	logger.Info("watching seed file", zap.String("path", path))

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.After(defaultDebounce)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("seed watcher error", zap.Error(err))

		case <-pending:
			pending = nil
			doc, err := LoadFile(path)
			if err != nil {
				logger.Warn("seed reload failed", zap.String("path", path), zap.Error(err))
				continue
			}
			onChange(doc)
		}
	}
}
