package precompute

import "github.com/sirupsen/logrus"

var log = logrus.WithField("prefix", "precompute")
