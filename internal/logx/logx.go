// Package logx writes one JSON object per log line through a *log.Logger.
package logx

import (
	"encoding/json"
	"log"
	"time"
)

type Fields map[string]any

func Info(logger *log.Logger, msg string, fields Fields) {
	Event(logger, "info", msg, fields)
}

func Error(logger *log.Logger, msg string, fields Fields) {
	Event(logger, "error", msg, fields)
}

// Event writes ts, level and msg plus fields. Fields may not override
// the first three.
func Event(logger *log.Logger, level, msg string, fields Fields) {
	if logger == nil {
		return
	}
	payload := make(map[string]any, len(fields)+3)
	for k, v := range fields {
		payload[k] = v
	}
	payload["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	payload["level"] = level
	payload["msg"] = msg

	b, err := json.Marshal(payload)
	if err != nil {
		logger.Printf(`{"level":"error","msg":"log_marshal_failed","error":%q}`, err.Error())
		return
	}
	logger.Print(string(b))
}
