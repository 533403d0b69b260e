package ui

import (
	"errors"
	"fmt"

	"seabattle/engine"
	"seabattle/game"
	"seabattle/types"
)

// Strings holds every user-facing message for one language.
type Strings struct {
	Greeting     string
	PlayerBoard  string
	EnemyBoard   string
	HumanTurn    string
	ComputerTurn string
	ComputerMove string // format, takes the coordinate
	Miss         string
	Hit          string
	Sunk         string
	OutOfBoard   string
	AlreadyShot  string
	BadInput     string
	NotYourTurn  string
	HumanWins    string
	ComputerWins string
	Prompt       string
	Thinking     string
	Controls     string
	GameOver     string
	BackToMenu   string
	ShipsLeft    string // format, takes afloat and total
	Shots        string
	Earlier      string // format, takes the number of hidden shots
	StartError   string // format, takes the error
}

var english = Strings{
	Greeting:     "Welcome to Sea Battle",
	PlayerBoard:  "Your board:",
	EnemyBoard:   "Computer's board:",
	HumanTurn:    "Your turn!",
	ComputerTurn: "Computer's turn!",
	ComputerMove: "Computer's move: %s",
	Miss:         "Miss!",
	Hit:          "Ship hit!",
	Sunk:         "Ship sunk!",
	OutOfBoard:   "You are shooting off the board!",
	AlreadyShot:  "You have already shot at this cell",
	BadInput:     "!!! Invalid coordinates !!!",
	NotYourTurn:  "Wait for your turn",
	HumanWins:    "You win!",
	ComputerWins: "Computer wins!",
	Prompt:       "Enter a cell (e.g. c4): ",
	Thinking:     "Computer is aiming...",
	Controls:     "hjkl/↑↓←→ aim   ⏎ fire   q quit",
	GameOver:     "Game over",
	BackToMenu:   "q · return to menu",
	ShipsLeft:    "Afloat: %d/%d",
	Shots:        "Shots",
	Earlier:      "··· %d earlier",
	StartError:   "Failed to start game:\n%s",
}

var russian = Strings{
	Greeting:     "Приветствуем вас в игре морской бой",
	PlayerBoard:  "Доска игрока:",
	EnemyBoard:   "Доска компьютера:",
	HumanTurn:    "Ходит пользователь!",
	ComputerTurn: "Ходит компьютер!",
	ComputerMove: "Ход компьютера: %s",
	Miss:         "Мимо!",
	Hit:          "Корабль ранен!",
	Sunk:         "Корабль уничтожен!",
	OutOfBoard:   "Вы пытаетесь выстрелить за доску!",
	AlreadyShot:  "Вы уже стреляли в эту клетку",
	BadInput:     "!!! Ошибка при вводе координат !!!",
	NotYourTurn:  "Дождитесь своего хода",
	HumanWins:    "Пользователь выиграл!",
	ComputerWins: "Компьютер выиграл!",
	Prompt:       "Введите клетку (например c4): ",
	Thinking:     "Компьютер целится...",
	Controls:     "hjkl/↑↓←→ прицел   ⏎ огонь   q выход",
	GameOver:     "Игра окончена",
	BackToMenu:   "q · вернуться в меню",
	ShipsLeft:    "На плаву: %d/%d",
	Shots:        "Выстрелы",
	Earlier:      "··· ещё %d",
	StartError:   "Не удалось начать игру:\n%s",
}

// Lookup returns the message catalog for lang, falling back to English.
func Lookup(lang string) *Strings {
	if lang == "ru" {
		return &russian
	}
	return &english
}

// Result returns the message announcing a shot result.
func (s *Strings) Result(r game.ShotResult) string {
	switch r {
	case game.ShotHit:
		return s.Hit
	case game.ShotSunk:
		return s.Sunk
	}
	return s.Miss
}

// Winner returns the game over line for the winning side.
func (s *Strings) Winner(w types.Side) string {
	if w == types.SideComputer {
		return s.ComputerWins
	}
	return s.HumanWins
}

// Turn returns the banner for whoever moves next.
func (s *Strings) Turn(side types.Side) string {
	if side == types.SideComputer {
		return s.ComputerTurn
	}
	return s.HumanTurn
}

// Rejection maps an error from Fire to a message the player can act on.
// Unknown errors are returned as their text.
func (s *Strings) Rejection(err error) string {
	switch {
	case errors.Is(err, game.ErrOutOfBounds):
		return s.OutOfBoard
	case errors.Is(err, game.ErrAlreadyTargeted):
		return s.AlreadyShot
	case errors.Is(err, types.ErrBadCoord):
		return s.BadInput
	case errors.Is(err, engine.ErrNotYourTurn):
		return s.NotYourTurn
	case errors.Is(err, engine.ErrGameOver):
		return s.GameOver
	}
	return fmt.Sprint(err)
}
