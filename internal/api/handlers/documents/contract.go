package documents

import (
	"context"
	"encoding/json"
)

type DocumentsService interface {
	Get(ctx context.Context, name string) (json.RawMessage, error)
	Merge(ctx context.Context, name string, patch json.RawMessage) (json.RawMessage, error)
	Replace(ctx context.Context, name string, body json.RawMessage) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
