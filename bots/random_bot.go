package bots

import (
	"context"
	"time"

	"github.com/notnil/chess"
	"golang.org/x/exp/rand"
)

type RandomBot struct {
	rnd *rand.Rand
}

// NewRandomBot seeds the bot; a zero seed uses the clock.
func NewRandomBot(seed uint64) *RandomBot {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandomBot{rnd: rand.New(rand.NewSource(seed))}
}

func (b *RandomBot) BestMove(_ context.Context, game *chess.Game) (*chess.Move, error) {
	moves := game.ValidMoves()
	if len(moves) > 0 {
		return moves[b.rnd.Intn(len(moves))], nil
	}
	return nil, nil
}

func (b *RandomBot) Name() string {
	return "Random Bot"
}
