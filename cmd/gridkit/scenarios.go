package main

import (
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridkit/dijkstra"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/internal/puzzles"
)

type answer struct {
	label string
	value string
}

type outcome struct {
	answers []answer
	overlay string
}

type scenario func(cfg config, text string) (outcome, error)

var scenarios = map[string]scenario{
	"fences":   runFences,
	"maze":     runMaze,
	"crucible": runCrucible,
	"garden":   runGarden,
	"tilt":     runTilt,
	"pipes":    runPipes,
	"hike":     runHike,
}

func itoa(n int) string { return strconv.Itoa(n) }

// progress logs every 50,000th settled state at debug level.
func progress[S comparable](name string) dijkstra.Option[S] {
	n := 0
	return dijkstra.WithOnSettle(func(s S, dist int) {
		n++
		if n%50_000 == 0 {
			log.WithFields(logrus.Fields{"search": name, "settled": n, "dist": dist}).Debug("search progress")
		}
	})
}

func runFences(_ config, text string) (outcome, error) {
	g, err := grid.ParseRunes(text)
	if err != nil {
		return outcome{}, err
	}
	p := puzzles.PriceFences(g)
	log.WithField("regions", p.Regions).Debug("partitioned garden")
	return outcome{answers: []answer{
		{"regions", itoa(p.Regions)},
		{"price", itoa(p.Full)},
		{"bulk price", itoa(p.Bulk)},
	}}, nil
}

func runMaze(_ config, text string) (outcome, error) {
	g, err := grid.ParseRunes(text)
	if err != nil {
		return outcome{}, err
	}
	res, err := puzzles.ReindeerMaze(g, progress[puzzles.Pose]("maze"))
	if err != nil {
		return outcome{}, err
	}
	return outcome{
		answers: []answer{{"score", itoa(res.Score)}, {"best tiles", itoa(res.Tiles.Size())}},
		overlay: overlay(g, res.Tiles, 'O'),
	}, nil
}

func runCrucible(cfg config, text string) (outcome, error) {
	g, err := grid.Parse(text, grid.Digits)
	if err != nil {
		return outcome{}, err
	}
	loss, err := puzzles.MinHeatLoss(g, cfg.minRun, cfg.maxRun, progress[puzzles.Crucible]("crucible"))
	if err != nil {
		return outcome{}, err
	}
	return outcome{answers: []answer{{"heat loss", itoa(loss)}}}, nil
}

func runGarden(cfg config, text string) (outcome, error) {
	g, err := grid.ParseRunes(text)
	if err != nil {
		return outcome{}, err
	}
	finite, err := puzzles.ReachableByParity(g, cfg.steps, false)
	if err != nil {
		return outcome{}, err
	}
	infinite, err := puzzles.ReachableByParity(g, cfg.steps, true)
	if err != nil {
		return outcome{}, err
	}
	if cfg.verbose {
		tiled, err := puzzles.ReachableOnTiles(g, cfg.steps)
		if err != nil {
			return outcome{}, err
		}
		entry := log.WithFields(logrus.Fields{"wrapped": infinite, "tiled": tiled})
		if tiled != infinite {
			entry.Warn("infinite walk disagrees with tiled board")
		} else {
			entry.Debug("infinite walk checked on tiled board")
		}
	}
	return outcome{answers: []answer{
		{"plots", itoa(finite)},
		{"plots (infinite map)", itoa(infinite)},
	}}, nil
}

func runTilt(cfg config, text string) (outcome, error) {
	g, err := grid.ParseRunes(text)
	if err != nil {
		return outcome{}, err
	}
	c := puzzles.SpinPeriod(g)
	log.WithFields(logrus.Fields{"offset": c.Offset, "period": c.Period}).Debug("spin cycle repeats")
	load, err := puzzles.LoadAfterSpins(g, cfg.steps)
	if err != nil {
		return outcome{}, err
	}
	return outcome{answers: []answer{
		{"tilted load", itoa(puzzles.NorthLoad(puzzles.TiltNorth(g)))},
		{"load after " + itoa(cfg.steps) + " spins", itoa(load)},
	}}, nil
}

func runPipes(_ config, text string) (outcome, error) {
	g, err := grid.Parse(text, puzzles.ParsePipe)
	if err != nil {
		return outcome{}, err
	}
	loop, err := puzzles.FindLoop(g)
	if err != nil {
		return outcome{}, err
	}
	inside, err := puzzles.EnclosedByLoop(g)
	if err != nil {
		return outcome{}, err
	}
	raw, _ := grid.ParseRunes(text)
	on := mapset.New[grid.Coord]()
	for _, c := range loop {
		on.Put(c)
	}
	return outcome{
		answers: []answer{{"farthest", itoa(len(loop) / 2)}, {"enclosed", itoa(inside)}},
		overlay: overlay(raw, on, 0),
	}, nil
}

func runHike(_ config, text string) (outcome, error) {
	g, err := grid.ParseRunes(text)
	if err != nil {
		return outcome{}, err
	}
	slippery, err := puzzles.LongestHike(g, true)
	if err != nil {
		return outcome{}, err
	}
	dry, err := puzzles.LongestHike(g, false)
	if err != nil {
		return outcome{}, err
	}
	return outcome{answers: []answer{{"longest hike", itoa(slippery)}, {"longest dry hike", itoa(dry)}}}, nil
}
