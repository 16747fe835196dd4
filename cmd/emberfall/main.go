// Command emberfall runs the idle RPG: the tick engine at 10 Hz with
// autosave, logging headline events for the external renderer to
// overlay. `emberfall update` defers to the platform's release
// channel; `--debug` raises logging to debug for the overlay.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/emberfall/internal/config"
	"github.com/udisondev/emberfall/internal/constants"
	"github.com/udisondev/emberfall/internal/engine"
	"github.com/udisondev/emberfall/internal/model"
	"github.com/udisondev/emberfall/internal/persist"
	"github.com/udisondev/emberfall/internal/rng"
)

// Version is stamped by the release build.
var Version = "dev"

// defaultCharacterName is used when no save exists yet.
const defaultCharacterName = "Hero"

func main() {
	var debug bool

	root := &cobra.Command{
		Use:     "emberfall",
		Short:   "Emberfall, a terminal idle RPG",
		Version: Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), debug)
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable the debug overlay log stream")

	root.AddCommand(&cobra.Command{
		Use:   "update",
		Short: "Update to the latest release",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Self-update is handled by your package channel; nothing to do here.")
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := root.ExecuteContext(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := config.ParseLogLevel(cfg.LogLevel)
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
	slog.Info("emberfall starting", "version", Version, "save_dir", cfg.SaveDir)

	ch, err := loadOrCreateCharacter(cfg.SaveDir)
	if err != nil {
		return err
	}

	ach, hv, err := persist.LoadAccount(cfg.SaveDir)
	if err != nil {
		return fmt.Errorf("loading account state: %w", err)
	}

	state := engine.NewState(ch)
	state.Achievements = ach
	state.Haven = hv

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	r := rng.New(seed)

	if summary, ticks := engine.ApplyOfflineProgress(state, r, time.Now()); ticks > 0 {
		slog.Info("offline progress applied",
			"ticks", ticks, "kills", summary.Amount, "levels", summary.Level)
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return tickLoop(ctx, cfg, state, r)
	})
	if err := group.Wait(); err != nil && err != context.Canceled {
		return err
	}

	// Clean shutdown: a final save regardless of the autosave phase.
	if err := saveAll(cfg.SaveDir, state, r); err != nil {
		return fmt.Errorf("final save: %w", err)
	}
	slog.Info("goodbye")
	return nil
}

func loadOrCreateCharacter(saveDir string) (*model.Character, error) {
	names, err := persist.ListCharacters(saveDir)
	if err != nil {
		return nil, err
	}
	if len(names) > 0 {
		ch, _, err := persist.LoadCharacter(persist.CharacterPath(saveDir, names[0]))
		if err != nil {
			return nil, fmt.Errorf("loading character %q: %w", names[0], err)
		}
		slog.Info("character loaded", "name", ch.Name, "level", ch.Level, "prestige", ch.PrestigeRank)
		return ch, nil
	}

	ch, err := persist.CreateCharacter(saveDir, defaultCharacterName, time.Now())
	if err != nil {
		return nil, fmt.Errorf("creating character: %w", err)
	}
	slog.Info("character created", "name", ch.Name)
	return ch, nil
}

// tickLoop drives the engine at the fixed tick rate until the context
// cancels. Save failures log a warning and retry on the next autosave
// tick; the game continues on the in-memory state.
func tickLoop(ctx context.Context, cfg config.Game, state *engine.State, r *rng.Rand) error {
	ticker := time.NewTicker(constants.TickDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			res := engine.GameTick(state, r)
			for _, ev := range res.Events {
				logEvent(ev)
			}
			if res.ShouldSave {
				if err := saveAll(cfg.SaveDir, state, r); err != nil {
					slog.Warn("autosave failed; retrying next cycle", "err", err)
				}
			}
		}
	}
}

func saveAll(saveDir string, state *engine.State, r *rng.Rand) error {
	now := time.Now()
	if err := persist.SaveCharacter(saveDir, state.Char, r.State(), now); err != nil {
		return err
	}
	state.Char.LastSaveTime = now
	return persist.SaveAccount(saveDir, state.Achievements, state.Haven)
}

// logEvent surfaces headline events at info and the rest at debug for
// the overlay.
func logEvent(ev engine.Event) {
	switch ev.Kind {
	case engine.EventLevelUp:
		slog.Info("level up", "level", ev.Level)
	case engine.EventZoneUnlocked:
		slog.Info("zone unlocked", "zone", ev.Name)
	case engine.EventZoneBossDefeated:
		slog.Info("zone boss defeated", "boss", ev.Name)
	case engine.EventAchievementUnlocked:
		slog.Info("achievement unlocked", "id", ev.Name)
	case engine.EventLeviathanCaught:
		slog.Info("the Storm Leviathan is caught")
	case engine.EventStormbreakerForged:
		slog.Info("Stormbreaker forged")
	case engine.EventPrestigePerformed:
		slog.Info("prestige", "rank", ev.N)
	default:
		slog.Debug("event", "kind", ev.Kind.String(), "name", ev.Name, "amount", ev.Amount)
	}
}
