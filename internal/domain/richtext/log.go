package richtext

import "github.com/sirupsen/logrus"

var logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger redirects this package's diagnostics. Render failures degrade to
// empty output toward the caller; the logger is where they surface.
func SetLogger(l logrus.FieldLogger) {
	if l != nil {
		logger = l
	}
}
