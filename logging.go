package stomp

import "github.com/sirupsen/logrus"

// logger is the package-level logger used for the "log and drop" paths
// named by the spec: unknown verbs, generic commands marshalled without a
// response requirement, and synthesized commands dropped for lack of a
// Transport. Grounded on the configurable-package-logger convention used by
// Frizz925-datagram-toolkit and streamdal-plumber, both of which favor a
// swappable logrus.FieldLogger over the teacher's bare log.Printf calls.
var logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger overrides the package-level logger. Passing nil restores the
// standard logrus logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		logger = logrus.StandardLogger()
		return
	}
	logger = l
}
