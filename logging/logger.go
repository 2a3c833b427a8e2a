package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is usable before BoostrapLogger runs so packages and tests can log freely.
var Log = logrus.New()

func BoostrapLogger(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.DebugLevel
	}

	Log = &logrus.Logger{
		Out:   os.Stdout,
		Hooks: make(logrus.LevelHooks),
		Formatter: &logrus.TextFormatter{
			DisableColors:    false,
			DisableQuote:     false,
			DisableTimestamp: false,
			FullTimestamp:    true,
			TimestampFormat:  "",
		},
		ReportCaller: false,
		Level:        lvl,
		ExitFunc:     os.Exit,
	}

	Log.SetReportCaller(true)

	if err != nil && level != "" {
		Log.Warnf("unknown log level '%s', falling back to debug", level)
	}
}
