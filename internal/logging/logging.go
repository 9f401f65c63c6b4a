package logging

import (
	"go.uber.org/zap"
)

// New builds the process logger: JSON production output by default,
// human-readable console output in development.
func New(development bool) (*zap.SugaredLogger, error) {
	var (
		base *zap.Logger
		err  error
	)
	if development {
		base, err = zap.NewDevelopment()
	} else {
		base, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return base.Sugar().Named("weather-now"), nil
}
