package fiberlog

import "github.com/sirupsen/logrus"

// Config is config for middleware
type Config struct {
	// Logger receives request lines; nil falls back to the logrus std logger
	Logger *logrus.Logger
	// Tags selects the fields written for every request, see tags.go
	Tags []string
}

// ConfigDefault is the default config
var ConfigDefault = Config{
	Logger: nil,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		TagIP,
		RequestID,
	},
}
