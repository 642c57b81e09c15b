package util

import "go.uber.org/zap"

// NewLogger builds a sugared zap logger. Call with no argument to get a
// development logger (handy in unit tests).
func NewLogger(env ...string) *zap.SugaredLogger {
	var logger *zap.SugaredLogger

	if len(env) > 0 && env[0] == "production" {
		logger = zap.Must(zap.NewProduction()).Sugar()
	} else {
		logger = zap.Must(zap.NewDevelopment()).Sugar()
	}

	defer logger.Sync()

	return logger
}
