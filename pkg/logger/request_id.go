package logger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type requestIDKeyType struct{}

// ContextWithRequestID сохраняет идентификатор запроса в контексте.
// Для пустого requestID генерируется UUID.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return context.WithValue(ctx, requestIDKeyType{}, requestID)
}

// RequestIDFromContext возвращает идентификатор запроса, если он есть.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(requestIDKeyType{}).(string)
	return id, ok && id != ""
}

// WithRequestID закрепляет за logger идентификатор запроса из ctx.
// Без идентификатора возвращается тот же logger.
func (l *Logger) WithRequestID(ctx context.Context) *Logger {
	id, ok := RequestIDFromContext(ctx)
	if !ok || id == l.requestID {
		return l
	}
	return &Logger{l: l.l.With(zap.String(RequestID, id)), requestID: id}
}
