package uploads

import (
	"context"

	"github.com/five82/marquee/internal/logger"
)

// LogTransport accepts every submission and records it in the log.
type LogTransport struct {
	Log logger.Logger
}

func (t LogTransport) Upload(ctx context.Context, sub Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log := t.Log
	if log == nil {
		log = logger.Nop()
	}
	fields := []logger.Field{
		logger.String("submission", sub.ID),
		logger.String("mode", sub.Mode.String()),
	}
	for _, slot := range Slots {
		if ref, ok := sub.Files[slot]; ok {
			fields = append(fields, logger.String(slot.String(), ref.Path))
		}
	}
	log.Info("upload submitted", fields...)
	return nil
}
