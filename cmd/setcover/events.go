package main

import (
	"math"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvcover/render"
	"github.com/katalvlaran/lvcover/setcover"
)

// eventLogger adapts search events into log entries.
func eventLogger(log logrus.FieldLogger) func(setcover.Event) {
	return func(ev setcover.Event) {
		entry := log.WithField("event", ev.Kind.String())
		switch ev.Kind {
		case setcover.EventMissingElements:
			entry.WithField("missing", ev.Missing).Warn("missing elements in universe")
		case setcover.EventBoundChecked:
			entry.WithFields(logrus.Fields{
				"bound":        ev.Bound,
				"combinations": humanize.Comma(clampInt64(ev.Combinations)),
			}).Debug("checking bound")
		case setcover.EventBoundDecreased:
			entry.WithFields(logrus.Fields{
				"bound":   ev.Bound,
				"indices": render.FormatSolution(ev.Indices),
			}).Debug("found cover, decreasing bound")
		case setcover.EventBoundFixed:
			entry.WithField("bound", ev.Bound).Info("computed length of shortest solution")
		case setcover.EventSolutionFound:
			entry.WithField("indices", render.FormatSolution(ev.Indices)).Debug("found solution")
		}
	}
}

func clampInt64(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(v)
}
