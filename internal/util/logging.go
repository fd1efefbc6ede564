package util

import (
	"contacts-web-server/internal/model/requestresponse"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogConfig struct {
	Level  string
	Pretty bool
	App    string
	Env    string
}

// NewLogger : собирает zap-логгер; уровень по умолчанию info
func NewLogger(c LogConfig) (*zap.Logger, error) {
	var cfg zap.Config
	if c.Pretty {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	level := new(zapcore.Level)
	if err := level.Set(c.Level); err != nil {
		*level = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(*level)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build(
		zap.Fields(
			zap.String("service", c.App),
			zap.String("env", c.Env),
		),
	)
}

// LogError : пишет ошибку в лог и возвращает её обёрнутой в message
func LogError(message string, err error) error {
	zap.L().Error(message, zap.Error(err))
	return fmt.Errorf("%s: %w", message, err)
}

// HandleError : пишет JSON-ошибку в ответ
func HandleError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := requestresponse.ErrorResponse{
		Error: requestresponse.ErrorDetail{
			Code: statusCode,
			Text: message,
		},
	}

	if err := json.NewEncoder(w).Encode(errorResponse); err != nil {
		zap.L().Warn("ошибка кодирования ответа", zap.Error(err))
	}
}
