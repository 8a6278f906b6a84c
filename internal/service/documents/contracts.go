package documents

import (
	"context"
	"encoding/json"
)

// DocumentStore is the persistence interface for whole-document collections.
type DocumentStore interface {
	Get(ctx context.Context, name string) (json.RawMessage, error)
	Save(ctx context.Context, name string, body json.RawMessage) error
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
