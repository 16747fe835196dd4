// Package simulator drives the tick engine headless for balance work:
// N runs of M ticks each from deterministic seeds, reported as CSV, a
// terminal table, and optionally a sqlite run history.
package simulator

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/udisondev/emberfall/internal/db"
	"github.com/udisondev/emberfall/internal/engine"
	"github.com/udisondev/emberfall/internal/game/item"
	"github.com/udisondev/emberfall/internal/game/prestige"
	"github.com/udisondev/emberfall/internal/model"
	"github.com/udisondev/emberfall/internal/rng"
)

// Options configure a simulator invocation.
type Options struct {
	Ticks        int
	Seed         uint64
	Prestige     int
	Runs         int
	Verbose      bool
	Quiet        bool
	CSVPath      string
	DBPath       string
	Stormbreaker bool
}

// Validate rejects unusable inputs; the CLI maps errors to a non-zero
// exit code.
func (o Options) Validate() error {
	if o.Ticks <= 0 {
		return fmt.Errorf("ticks must be positive, got %d", o.Ticks)
	}
	if o.Runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", o.Runs)
	}
	if o.Prestige < 0 {
		return fmt.Errorf("prestige must be non-negative, got %d", o.Prestige)
	}
	if o.Verbose && o.Quiet {
		return fmt.Errorf("verbose and quiet are mutually exclusive")
	}
	return nil
}

// Result is one run's report row.
type Result struct {
	Seed           uint64
	Prestige       int
	FinalLevel     int
	FinalZone      int
	FinalSubzone   int
	TotalKills     int
	TotalBosses    int
	LegendaryDrops int
	ItemsEquipped  int
	FishingRank    int
}

// CSVHeader is the report column list, in order.
var CSVHeader = []string{
	"seed", "prestige", "final_level", "final_zone", "final_subzone",
	"total_kills", "total_bosses", "legendary_drops", "items_equipped",
	"fishing_rank",
}

// row renders the record in CSVHeader order.
func (r Result) row() []string {
	return []string{
		strconv.FormatUint(r.Seed, 10),
		strconv.Itoa(r.Prestige),
		strconv.Itoa(r.FinalLevel),
		strconv.Itoa(r.FinalZone),
		strconv.Itoa(r.FinalSubzone),
		strconv.Itoa(r.TotalKills),
		strconv.Itoa(r.TotalBosses),
		strconv.Itoa(r.LegendaryDrops),
		strconv.Itoa(r.ItemsEquipped),
		strconv.Itoa(r.FishingRank),
	}
}

// simulateOne runs one seeded game to completion.
func simulateOne(opts Options, seed uint64) (Result, error) {
	ch, err := model.NewCharacter("Simulant")
	if err != nil {
		return Result{}, err
	}
	for i := 0; i < opts.Prestige; i++ {
		ch.Level = prestige.RequiredLevel(ch.PrestigeRank)
		prestige.Perform(ch, 0)
	}

	state := engine.NewState(ch)
	if opts.Stormbreaker {
		ch.Equipment.Set(model.SlotWeapon, item.NewStormbreaker())
	}

	r := rng.New(seed)
	for i := 0; i < opts.Ticks; i++ {
		res := engine.GameTick(state, r)
		if opts.Verbose {
			for _, ev := range res.Events {
				slog.Debug("event", "tick", state.TickCount, "kind", ev.Kind.String(), "name", ev.Name, "amount", ev.Amount)
			}
		}
	}

	return Result{
		Seed:           seed,
		Prestige:       ch.PrestigeRank,
		FinalLevel:     ch.Level,
		FinalZone:      ch.Progress.CurrentZone,
		FinalSubzone:   ch.Progress.CurrentSubzone,
		TotalKills:     state.Achievements.Counters.Kills + state.Achievements.Counters.Bosses,
		TotalBosses:    state.Achievements.Counters.Bosses,
		LegendaryDrops: state.LegendaryDrops,
		ItemsEquipped:  state.Achievements.Counters.ItemsEquipped,
		FishingRank:    ch.Fishing.Rank,
	}, nil
}

// Run executes all requested runs, in parallel when more than one,
// with per-run seeds seed+i so results stay reproducible regardless of
// scheduling.
func Run(opts Options) ([]Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	results := make([]Result, opts.Runs)
	var group errgroup.Group
	for i := 0; i < opts.Runs; i++ {
		i := i
		group.Go(func() error {
			res, err := simulateOne(opts, opts.Seed+uint64(i))
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// WriteCSV streams the report rows.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, res := range results {
		if err := cw.Write(res.row()); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the report to a file.
func WriteCSVFile(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv file: %w", err)
	}
	defer f.Close()
	return WriteCSV(f, results)
}

// StoreRuns appends the results to the sqlite run history.
func StoreRuns(path string, opts Options, results []Result, now time.Time) error {
	store, err := db.OpenRunStore(path)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, res := range results {
		rec := db.RunRecord{
			Seed:           res.Seed,
			Prestige:       res.Prestige,
			Ticks:          opts.Ticks,
			FinalLevel:     res.FinalLevel,
			FinalZone:      res.FinalZone,
			FinalSubzone:   res.FinalSubzone,
			TotalKills:     res.TotalKills,
			TotalBosses:    res.TotalBosses,
			LegendaryDrops: res.LegendaryDrops,
			ItemsEquipped:  res.ItemsEquipped,
			FishingRank:    res.FishingRank,
			CreatedAt:      now,
		}
		if err := store.InsertRun(rec); err != nil {
			return err
		}
	}
	return nil
}

// PrintTable renders the results as a terminal table.
func PrintTable(w io.Writer, results []Result) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header("SEED", "PRESTIGE", "LEVEL", "ZONE", "SUBZONE", "KILLS", "BOSSES", "LEGENDARIES", "EQUIPPED", "FISHING")
	for _, res := range results {
		table.Append(
			strconv.FormatUint(res.Seed, 10),
			strconv.Itoa(res.Prestige),
			strconv.Itoa(res.FinalLevel),
			strconv.Itoa(res.FinalZone),
			strconv.Itoa(res.FinalSubzone),
			strconv.Itoa(res.TotalKills),
			strconv.Itoa(res.TotalBosses),
			strconv.Itoa(res.LegendaryDrops),
			strconv.Itoa(res.ItemsEquipped),
			strconv.Itoa(res.FishingRank),
		)
	}
	table.Render()
}
