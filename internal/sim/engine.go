// Package sim runs the aircraft simulation as a single goroutine that owns
// all flight state and is driven through channels.
package sim

import (
	"context"
	"time"

	"go.uber.org/zap"

	"vector3/internal/env"
)

type stateReq struct {
	reply chan AircraftState
}

type subscribeReq struct {
	ch chan AircraftState
}

type Engine struct {
	geo GeoRef

	// Actor channels
	cmdCh       chan Command
	stateReqCh  chan stateReq
	subscribeCh chan subscribeReq
	unsubCh     chan chan AircraftState
	done        chan struct{} // closed when Run returns

	tickHz      float64
	startAltM   float64
	tuning      Tuning
	environment env.Environment
	logger      *zap.Logger
}

type Config struct {
	OriginLat float64
	OriginLon float64
	TickHz    float64
	StartAltM float64
	Tuning    Tuning

	Environment env.Environment
	Logger      *zap.Logger
}

func New(cfg Config) *Engine {
	if cfg.TickHz <= 0 {
		cfg.TickHz = 20
	}
	if cfg.StartAltM == 0 {
		cfg.StartAltM = 1000
	}
	if cfg.Tuning == (Tuning{}) {
		cfg.Tuning = DefaultTuning()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Engine{
		geo:         GeoRef{OriginLat: cfg.OriginLat, OriginLon: cfg.OriginLon},
		cmdCh:       make(chan Command, 128),
		stateReqCh:  make(chan stateReq, 32),
		subscribeCh: make(chan subscribeReq, 32),
		unsubCh:     make(chan chan AircraftState, 32),
		done:        make(chan struct{}),
		tickHz:      cfg.TickHz,
		startAltM:   cfg.StartAltM,
		tuning:      cfg.Tuning,
		environment: cfg.Environment,
		logger:      cfg.Logger.Named("sim"),
	}
}

// Submit queues cmd without blocking. ErrQueueFull means it was dropped.
func (e *Engine) Submit(cmd Command) error {
	select {
	case e.cmdCh <- cmd:
		return nil
	default:
		e.logger.Warn("command dropped",
			zap.String("type", string(cmd.Type())),
			zap.Stringer("id", cmd.CommandID()))
		return ErrQueueFull
	}
}

func (e *Engine) GetState(ctx context.Context) (AircraftState, error) {
	req := stateReq{reply: make(chan AircraftState, 1)}
	select {
	case e.stateReqCh <- req:
	case <-ctx.Done():
		return AircraftState{}, ctx.Err()
	}

	select {
	case st := <-req.reply:
		return st, nil
	case <-ctx.Done():
		return AircraftState{}, ctx.Err()
	}
}

// Subscribe returns a channel receiving a snapshot per tick. Slow readers
// miss frames. The channel is closed by unsub or when the engine stops.
func (e *Engine) Subscribe(ctx context.Context) (<-chan AircraftState, func()) {
	ch := make(chan AircraftState, 32)

	select {
	case e.subscribeCh <- subscribeReq{ch: ch}:
	case <-ctx.Done():
		close(ch)
		return ch, func() {}
	case <-e.done:
		close(ch)
		return ch, func() {}
	}

	unsub := func() {
		select {
		case e.unsubCh <- ch:
		case <-e.done:
		}
	}
	return ch, unsub
}

// Run drives the simulation until ctx is canceled. It must be called once.
func (e *Engine) Run(ctx context.Context) error {
	defer close(e.done)
	now := time.Now()

	f := &flight{
		geo:    e.geo,
		tuning: e.tuning,
		env:    e.environment,
		pos:    e.geo.GeoToLocal(e.geo.OriginLat, e.geo.OriginLon, e.startAltM),
	}

	subs := map[chan AircraftState]struct{}{}

	publish := func(st AircraftState) {
		for ch := range subs {
			select {
			case ch <- st:
			default:
				// slow subscriber -> drop frame
			}
		}
	}

	tick := time.NewTicker(time.Duration(float64(time.Second) / e.tickHz))
	defer tick.Stop()

	e.logger.Info("engine started", zap.Float64("tickHz", e.tickHz), zap.Stringer("pos", f.pos))

	for {
		select {
		case <-ctx.Done():
			for ch := range subs {
				close(ch)
			}
			e.logger.Info("engine stopped", zap.Int("subscribers", len(subs)))
			return nil

		case req := <-e.subscribeCh:
			subs[req.ch] = struct{}{}
			req.ch <- f.snapshot(now, "")

		case ch := <-e.unsubCh:
			if _, ok := subs[ch]; ok {
				delete(subs, ch)
				close(ch)
			}

		case req := <-e.stateReqCh:
			req.reply <- f.snapshot(now, "")

		case cmd := <-e.cmdCh:
			e.logger.Debug("command",
				zap.String("type", string(cmd.Type())),
				zap.Stringer("id", cmd.CommandID()))
			f.apply(cmd)

		case t := <-tick.C:
			dt := t.Sub(now).Seconds()
			if dt <= 0 {
				dt = 1.0 / e.tickHz
			}
			now = t

			before := f.active
			warning := f.step(dt)
			if before != nil && f.active == nil {
				e.logger.Info("command complete",
					zap.String("type", string(before.Type())),
					zap.Stringer("id", before.CommandID()))
			}
			if warning != "" {
				e.logger.Debug("environment warning", zap.String("warning", warning))
			}

			publish(f.snapshot(now, warning))
		}
	}
}
