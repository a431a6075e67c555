package logger

import "go.uber.org/zap"

// New builds the application logger: JSON in prod, console otherwise.
func New(env string) *zap.SugaredLogger {
	var l *zap.Logger
	var err error
	if env == "prod" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("Failed to build logger: " + err.Error())
	}
	return l.Sugar()
}
