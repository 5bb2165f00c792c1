package tui

import (
	"context"

	"github.com/vovakirdan/tui-survivor/internal/storage"
)

//go:generate go tool mockgen -destination=./mocks/recorder_mock.go -package=mocks . RunRecorder

// RunRecorder persists finished runs. *storage.Store implements it.
type RunRecorder interface {
	SaveRun(ctx context.Context, run storage.Run) (string, error)
}

// recorderFor avoids wrapping a nil store in a non-nil interface.
func recorderFor(store *storage.Store) RunRecorder {
	if store == nil {
		return nil
	}
	return store
}
