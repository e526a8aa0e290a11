package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gookit/color"

	"frostfire/pkg/engine/terminal"
	"frostfire/pkg/engine/world"
	"frostfire/pkg/game/devtools"
	"frostfire/pkg/game/gameplay"
	"frostfire/pkg/game/renderer"
	"frostfire/pkg/game/renderer/tui"
	"frostfire/pkg/game/sequence"
	"frostfire/pkg/game/spectate"
)

// demoLayout is the built-in maze. E and F mark the player spawns.
const demoLayout = `
##############
#E..........##
#...........##
#.......#.#..#
#.......#.#..#
#.......###..#
#............#
#.....#......#
#.....#......#
#............#
#.........F..#
##############
`

func demoSequences() []sequence.Definition {
	return []sequence.Definition{
		{Name: "hall", Steps: []sequence.Step{sequence.Hot(11, 1), sequence.Cold(10, 2)}, Loop: true},
		{Name: "pillar", Steps: []sequence.Step{sequence.Hot(9, 4), sequence.Cold(9, 3)}, Loop: true},
		{Name: "yard", Steps: []sequence.Step{sequence.Hot(7, 7), sequence.Cold(9, 10)}, Loop: true},
	}
}

func main() {
	cfg := gameplay.DefaultConfig()

	ticks := flag.Int("ticks", 40, "number of ticks to run (0 runs until interrupted)")
	delay := flag.Duration("delay", 300*time.Millisecond, "pause between ticks")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for static hazard placement")
	flag.IntVar(&cfg.StaticHazards, "static", cfg.StaticHazards, "number of static hazards to place")
	flag.IntVar(&cfg.HazardLifetime, "lifetime", cfg.HazardLifetime, "ticks a sequence hazard lives")
	serve := flag.String("serve", "", "address to serve the spectator event feed on (e.g. :8080)")
	plain := flag.Bool("plain", false, "disable colour output")
	dump := flag.Bool("dump", false, "write a level dump to map.txt on exit")
	flag.Parse()

	if *plain || !terminal.IsInteractive(os.Stdout) {
		color.Enable = false
	}

	var events sequence.EventSink
	if *serve != "" {
		hub := spectate.NewHub(spectate.DefaultBuffer)
		defer hub.Close()
		events = hub

		mux := http.NewServeMux()
		mux.Handle("/events", hub)
		go func() {
			log.Printf("spectator feed on ws://%s/events", *serve)
			if err := http.ListenAndServe(*serve, mux); err != nil {
				log.Println("serve:", err)
			}
		}()
	}

	s, err := gameplay.NewSession(cfg, demoLayout, demoSequences(), events)
	if err != nil {
		log.Fatalf("start session: %v", err)
	}
	defer s.Close()
	if *dump {
		defer func() {
			path, err := devtools.DumpLevelToFile(s)
			if err != nil {
				log.Println("dump:", err)
				return
			}
			log.Printf("level dump written to %s", path)
		}()
	}

	// Frost patrols up the east corridor through the hall sequence; Ember walks
	// the north hall and down toward the yard
	if s.Frost != nil {
		s.AddWalker(s.Frost, world.P(10, 10), world.P(11, 10), world.P(11, 1))
	}
	if s.Ember != nil {
		s.AddWalker(s.Ember, world.P(1, 1), world.P(7, 1), world.P(7, 7))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var r renderer.Renderer = tui.New(os.Stdout)
	r.Init()

	for tick := 0; *ticks == 0 || tick < *ticks; tick++ {
		r.Clear()
		r.RenderFrame(s)

		select {
		case <-ctx.Done():
			return
		case <-time.After(*delay):
		}
		s.Tick()
	}
	r.Clear()
	r.RenderFrame(s)
}
