package game

import "github.com/rs/zerolog"

// Subscriber is notified synchronously at the end of every turn transition.
type Subscriber interface {
	TurnChanged(active Owner)
	GameOver(result Result)
}

// Listener adapts plain functions to Subscriber. Nil fields are ignored.
type Listener struct {
	OnTurnChanged func(active Owner)
	OnGameOver    func(result Result)
}

func (l Listener) TurnChanged(active Owner) {
	if l.OnTurnChanged != nil {
		l.OnTurnChanged(active)
	}
}

func (l Listener) GameOver(result Result) {
	if l.OnGameOver != nil {
		l.OnGameOver(result)
	}
}

// LogSubscriber writes notifications to a zerolog logger.
type LogSubscriber struct {
	Logger zerolog.Logger
}

func (s LogSubscriber) TurnChanged(active Owner) {
	s.Logger.Debug().Stringer("active", active).Msg("turn changed")
}

func (s LogSubscriber) GameOver(result Result) {
	s.Logger.Info().
		Stringer("winner", result.Winner).
		Int("red", result.Red).
		Int("blue", result.Blue).
		Msg("game over")
}
