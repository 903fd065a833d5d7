package transcript

import "github.com/sirupsen/logrus"

var logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger redirects this package's diagnostics. Parsing and ingestion
// degrade silently toward the caller; the logger is the only place dropped
// input is reported.
func SetLogger(l logrus.FieldLogger) {
	if l != nil {
		logger = l
	}
}
