// Package engine picks moves with a fixed-depth alpha-beta minimax search.
//
// Scores are absolute: positive favors White, the maximizing side, at every
// node of the tree. The engine keeps no state between calls other than its
// configuration, so one Engine may serve many positions.
package engine

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Engine[M any] struct {
	cfg       Config
	evaluator Evaluator[M]
	orderer   Orderer[M]
	logger    zerolog.Logger
}

type Option[M any] func(*Engine[M])

func WithEvaluator[M any](evaluator Evaluator[M]) Option[M] {
	return func(e *Engine[M]) {
		e.evaluator = evaluator
	}
}

func WithOrderer[M any](orderer Orderer[M]) Option[M] {
	return func(e *Engine[M]) {
		e.orderer = orderer
	}
}

func WithLogger[M any](logger zerolog.Logger) Option[M] {
	return func(e *Engine[M]) {
		e.logger = logger
	}
}

// New validates cfg and builds an engine with the default evaluator and
// orderer unless options replace them.
func New[M any](cfg Config, options ...Option[M]) (*Engine[M], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine[M]{
		cfg:       cfg,
		evaluator: NewDefaultEvaluator[M](cfg.Eval),
		orderer:   NewKingSafetyOrderer[M](cfg.Order),
		logger:    log.Logger,
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

func (e *Engine[M]) Config() Config {
	return e.cfg
}
