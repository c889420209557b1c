package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chessengine/bots"
	"chessengine/engine"
)

var (
	flgFen        string
	flgConfig     string
	flgWhite      string
	flgBlack      string
	flgDepth      int
	flgWorkers    int
	flgTimeLimit  time.Duration
	flgSeed       uint64
	flgPlay       int
	flgMaterialOn bool
	flgDebug      bool
)

func main() {
	flag.StringVar(&flgFen, "fen", "", "position to search (default: starting position)")
	flag.StringVar(&flgConfig, "config", "", "YAML engine configuration")
	flag.StringVar(&flgWhite, "white", "minimax", "bot for white: minimax, random or newborn")
	flag.StringVar(&flgBlack, "black", "minimax", "bot for black: minimax, random or newborn")
	flag.IntVar(&flgDepth, "depth", 0, "search depth in plies, overrides the config")
	flag.IntVar(&flgWorkers, "workers", 0, "parallel root workers, overrides the config")
	flag.DurationVar(&flgTimeLimit, "timelimit", 0, "per-move time limit, overrides the config")
	flag.Uint64Var(&flgSeed, "seed", 0, "random seed, overrides the config")
	flag.IntVar(&flgPlay, "play", 0, "play a game of at most this many plies instead of printing one move")
	flag.BoolVar(&flgMaterialOn, "material", false, "score material only")
	flag.BoolVar(&flgDebug, "debug", false, "log every root move")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if flgDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("engine failed")
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	g := chess.NewGame()
	if flgFen != "" {
		opt, err := chess.FEN(flgFen)
		if err != nil {
			return fmt.Errorf("%w: %v", engine.ErrInvalidPosition, err)
		}
		g = chess.NewGame(opt)
	}

	white, err := newBot(flgWhite, cfg)
	if err != nil {
		return err
	}
	black, err := newBot(flgBlack, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if flgPlay > 0 {
		if err := bots.Play(ctx, g, white, black, flgPlay, log.Logger); err != nil {
			return err
		}
		fmt.Println(g.String())
		return nil
	}

	bot := white
	if g.Position().Turn() == chess.Black {
		bot = black
	}
	move, err := bot.BestMove(ctx, g)
	if err != nil {
		return err
	}
	if move == nil {
		fmt.Println("(none)")
		return nil
	}
	fmt.Println(chess.UCINotation{}.Encode(g.Position(), move))
	return nil
}

func loadConfig() (engine.Config, error) {
	cfg := engine.DefaultConfig()
	if flgConfig != "" {
		var err error
		if cfg, err = engine.LoadConfig(flgConfig); err != nil {
			return cfg, err
		}
	}
	if flgDepth != 0 {
		cfg.Depth = flgDepth
	}
	if flgWorkers != 0 {
		cfg.Workers = flgWorkers
	}
	if flgTimeLimit != 0 {
		cfg.TimeLimit = flgTimeLimit
	}
	if flgSeed != 0 {
		cfg.Seed = flgSeed
	}
	if flgMaterialOn {
		cfg.Eval.Mobility = false
		cfg.Eval.Center = false
	}
	return cfg, cfg.Validate()
}

func newBot(name string, cfg engine.Config) (bots.ChessBot, error) {
	switch name {
	case "minimax":
		return bots.NewMinimaxBot(cfg, log.Logger)
	case "random":
		return bots.NewRandomBot(cfg.Seed), nil
	case "newborn":
		return bots.NewNewbornBot(), nil
	default:
		return nil, fmt.Errorf("unknown bot %q", name)
	}
}
