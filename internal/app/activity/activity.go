// Package activity drains the in-process event bus into the structured log,
// giving an audit trail of domain events without any push surface.
package activity

import (
	"backend/internal/utils"

	"go.uber.org/zap"
)

type Logger struct {
	eventBus *utils.EventBus
	logger   *zap.SugaredLogger
}

func NewLogger(eventBus *utils.EventBus, logger *zap.Logger) *Logger {
	return &Logger{
		eventBus: eventBus,
		logger:   logger.Sugar(),
	}
}

// Run consumes events until the bus channel is closed. Meant to be started
// as a goroutine from bootstrap.
func (l *Logger) Run() {
	for event := range l.eventBus.SubscribeCh() {
		l.logger.Infow("Domain event", "event", event.Event, "data", event.Data)
	}
}
