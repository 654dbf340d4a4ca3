// Command holdem-server hosts a single table behind a websocket endpoint.
// Human seats are claimed by connecting clients; the remaining seats are
// filled with chart-driven AI players.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/pokercats/holdem/internal/ai"
	"github.com/pokercats/holdem/internal/config"
	"github.com/pokercats/holdem/internal/game"
	"github.com/pokercats/holdem/internal/server"
)

type CLI struct {
	Config   string `short:"c" default:"holdem.hcl" help:"Path to the HCL configuration file"`
	Addr     string `short:"a" default:":8080" help:"Address to listen on"`
	Humans   int    `default:"1" help:"Number of seats reserved for human players"`
	LogLevel string `default:"info" enum:"debug,info,warn,error" help:"Log verbosity"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-server"),
		kong.Description("Websocket server hosting a Texas Hold'em table"),
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
	if cli.Humans < 0 || cli.Humans > tableCfg.Seats {
		return fmt.Errorf("humans must be between 0 and %d", tableCfg.Seats)
	}

	bus := game.NewEventBus()
	table, err := game.NewTable(tableCfg, game.WithLogger(logger), game.WithEventBus(bus))
	if err != nil {
		return err
	}

	ranges := config.BuildRanges(cfg, logger)
	for i := 0; i < cli.Humans; i++ {
		if _, err := table.AddPlayer(fmt.Sprintf("player-%d", i+1), game.Human, nil); err != nil {
			return err
		}
	}
	for i := cli.Humans; i < tableCfg.Seats; i++ {
		if _, err := table.AddPlayer(fmt.Sprintf("ai-%d", i+1), game.AI, ai.New(ranges, logger)); err != nil {
			return err
		}
	}

	srv := server.NewServer(cli.Addr, table, tableCfg, logger)
	bus.Subscribe(srv)

	if err := table.Start(); err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("listening", "addr", cli.Addr)
	return srv.Run(sigCtx)
}
