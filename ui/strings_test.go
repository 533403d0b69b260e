package ui

import (
	"fmt"
	"testing"

	"seabattle/engine"
	"seabattle/game"
	"seabattle/types"
)

func TestLookup(t *testing.T) {
	if Lookup("ru").Miss != "Мимо!" {
		t.Errorf("ru Miss = %q", Lookup("ru").Miss)
	}
	if Lookup("en").Miss != "Miss!" {
		t.Errorf("en Miss = %q", Lookup("en").Miss)
	}
	if Lookup("xx") != Lookup("en") {
		t.Error("unknown language should fall back to English")
	}
}

func TestResultMessages(t *testing.T) {
	s := Lookup("ru")
	tests := []struct {
		result game.ShotResult
		want   string
	}{
		{game.ShotMiss, "Мимо!"},
		{game.ShotHit, "Корабль ранен!"},
		{game.ShotSunk, "Корабль уничтожен!"},
	}
	for _, tt := range tests {
		if got := s.Result(tt.result); got != tt.want {
			t.Errorf("Result(%v) = %q, want %q", tt.result, got, tt.want)
		}
	}
}

func TestWinnerAndTurn(t *testing.T) {
	s := Lookup("en")
	if s.Winner(types.SideHuman) != s.HumanWins || s.Winner(types.SideComputer) != s.ComputerWins {
		t.Error("Winner picked the wrong line")
	}
	if s.Turn(types.SideHuman) != s.HumanTurn || s.Turn(types.SideComputer) != s.ComputerTurn {
		t.Error("Turn picked the wrong banner")
	}
}

func TestRejection(t *testing.T) {
	s := Lookup("en")
	p := game.Pos(9, 9)
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: %s", game.ErrOutOfBounds, p), s.OutOfBoard},
		{fmt.Errorf("%w: %s", game.ErrAlreadyTargeted, p), s.AlreadyShot},
		{fmt.Errorf("%w: %q", types.ErrBadCoord, "zz"), s.BadInput},
		{engine.ErrNotYourTurn, s.NotYourTurn},
		{engine.ErrGameOver, s.GameOver},
		{fmt.Errorf("boom"), "boom"},
	}
	for _, tt := range tests {
		if got := s.Rejection(tt.err); got != tt.want {
			t.Errorf("Rejection(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestCatalogsComplete(t *testing.T) {
	for _, lang := range []string{"en", "ru"} {
		s := *Lookup(lang)
		fields := []string{s.Greeting, s.PlayerBoard, s.EnemyBoard, s.HumanTurn, s.ComputerTurn,
			s.ComputerMove, s.Miss, s.Hit, s.Sunk, s.OutOfBoard, s.AlreadyShot, s.BadInput,
			s.NotYourTurn, s.HumanWins, s.ComputerWins, s.Prompt, s.Thinking, s.Controls,
			s.GameOver, s.BackToMenu, s.ShipsLeft, s.Shots, s.Earlier, s.StartError}
		for i, f := range fields {
			if f == "" {
				t.Errorf("%s: message %d is empty", lang, i)
			}
		}
	}
}
