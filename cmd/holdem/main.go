// Command holdem plays headless hands at a single table: every seat is an
// AI driven by the configured preflop charts, and hand flow is printed to
// stdout as it happens.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/pokercats/holdem/internal/ai"
	"github.com/pokercats/holdem/internal/config"
	"github.com/pokercats/holdem/internal/deck"
	"github.com/pokercats/holdem/internal/game"
	"github.com/pokercats/holdem/internal/randutil"
)

type CLI struct {
	Config   string `short:"c" default:"holdem.hcl" help:"Path to the HCL configuration file"`
	Hands    int    `default:"10" help:"Number of hands to play before stopping"`
	Seed     int64  `help:"Deterministic shuffle seed (0 uses a crypto-seeded shuffle)"`
	Fast     bool   `help:"Skip the AI thinking delay"`
	LogLevel string `default:"warn" enum:"debug,info,warn,error" help:"Log verbosity"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Headless Texas Hold'em hands between chart-driven AI seats"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	ctx.FatalIfErrorf(run(&cli))
}

func run(cli *CLI) error {
	level, err := log.ParseLevel(cli.LogLevel)
	if err != nil {
		return err
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	tableCfg := cfg.TableConfig()
	tableCfg.HandLimit = cli.Hands
	if cli.Fast {
		tableCfg.AIDelay = 1
	}

	opts := []game.TableOption{game.WithLogger(logger)}
	if cli.Seed != 0 {
		opts = append(opts, game.WithDeck(deck.NewDeckWithSource(randutil.NewSeeded(cli.Seed))))
	}
	bus := game.NewEventBus()
	opts = append(opts, game.WithEventBus(bus))

	table, err := game.NewTable(tableCfg, opts...)
	if err != nil {
		return err
	}

	ranges := config.BuildRanges(cfg, logger)
	for i := 0; i < tableCfg.Seats; i++ {
		name := fmt.Sprintf("ai-%d", i+1)
		if _, err := table.AddPlayer(name, game.AI, ai.New(ranges, logger)); err != nil {
			return err
		}
	}

	printer := newHandPrinter(table)
	bus.Subscribe(printer)

	if err := table.Start(); err != nil {
		return err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	select {
	case <-printer.done:
	case sig := <-sigs:
		logger.Info("interrupted", "signal", sig)
		return nil
	}

	fmt.Printf("\nplayed %d hands\n", table.HandsPlayed())
	for _, p := range table.Players() {
		fmt.Printf("  %-8s %d chips\n", p.Name, p.Chips())
	}
	return nil
}
