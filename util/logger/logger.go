package logger

import (
	"os"

	logger "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var L = &logger.Logger{
	Out:   os.Stderr,
	Level: logger.InfoLevel,
	Hooks: make(logger.LevelHooks),
	Formatter: &prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
	},
}

// WithPrefix returns an entry printed with the given prefix by the
// prefixed formatter.
func WithPrefix(l logger.FieldLogger, prefix string) logger.FieldLogger {
	if l == nil {
		l = L
	}
	return l.WithField("prefix", prefix)
}
