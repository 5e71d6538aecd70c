package generator

import (
	"errors"
	"fmt"

	"github.com/james-see/midipatterns/pkg/logger"
)

// TrackReport summarizes one exported track
type TrackReport struct {
	Name   string
	Events int
	Err    error
}

// Report summarizes one generator run
type Report struct {
	Generator string
	Tracks    []TrackReport
	Misses    []error
	Skipped   bool
	Err       error
}

// Run executes the entries in order and hands every track to the exporter.
// Failures are isolated: a generator error or export error is recorded in
// its report and the remaining generators still run.
func Run(entries []Entry, exp Exporter) []Report {
	reports := make([]Report, 0, len(entries))
	for _, e := range entries {
		reports = append(reports, runOne(e.Generator, exp))
	}
	return reports
}

func runOne(g Generator, exp Exporter) Report {
	rep := Report{Generator: g.Name()}

	res, err := g.Generate()
	if errors.Is(err, ErrNotImplemented) {
		logger.Info("placeholder generator skipped", logger.Fields{"generator": g.Name()})
		rep.Skipped = true
		return rep
	}
	if err != nil {
		logger.Error("generator failed", err, logger.Fields{"generator": g.Name()})
		rep.Err = err
		return rep
	}

	for _, m := range res.Misses {
		logger.Warn("lookup miss, step skipped", logger.Fields{"generator": g.Name(), "miss": m})
	}
	rep.Misses = res.Misses

	for _, tr := range res.Tracks {
		trep := TrackReport{Name: tr.Name, Events: len(tr.Events)}
		if err := ValidateEvents(tr.Events); err != nil {
			trep.Err = fmt.Errorf("track %s: %w", tr.Name, err)
		} else if err := exp.Export(tr.Name, tr.Events, tr.Channel); err != nil {
			trep.Err = fmt.Errorf("export %s: %w", tr.Name, err)
		}
		if trep.Err != nil {
			logger.Error("track not exported", trep.Err, logger.Fields{"generator": g.Name()})
			if rep.Err == nil {
				rep.Err = trep.Err
			}
		}
		rep.Tracks = append(rep.Tracks, trep)
	}
	return rep
}
