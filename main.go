// seabattle is a terminal game of sea battle against the computer.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"seabattle/config"
	"seabattle/engine"
	"seabattle/engine/local"
	"seabattle/types"
	"seabattle/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagSeed    = flag.Int64("seed", 0, "Seed for fleet placement and computer shots (0 = random)")
	flagLang    = flag.String("lang", "", "Message language (en or ru)")
	flagPlain   = flag.Bool("plain", false, "Play in line mode instead of the full screen UI")
	flagFirst   = flag.String("first", "", "Who shoots first (human or computer)")
	flagRecord  = flag.Bool("record", false, "Write a shot transcript to the data directory")
	flagVersion = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.SeaBoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("seabattle %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if logPath, err := config.LogFile(); err == nil {
		if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			defer f.Close()
			local.SetDebugLog(f)
		}
	}

	if *flagPlain {
		if err := runPlain(cfg, os.Stdin, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	runUI()
}

// applyFlags overrides config values with flags given on the command line.
func applyFlags(c *config.Config) error {
	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			c.Game.Seed = *flagSeed
		case "lang":
			c.Game.Language = strings.ToLower(*flagLang)
		case "record":
			c.Game.Record = *flagRecord
		case "first":
			switch strings.ToLower(*flagFirst) {
			case "human", "h":
				c.Game.HumanFirst = true
			case "computer", "c":
				c.Game.HumanFirst = false
			default:
				err = fmt.Errorf("-first must be human or computer, got %q", *flagFirst)
			}
		}
	})
	if err != nil {
		return err
	}
	return c.Validate()
}

func runUI() {
	str := ui.Lookup(cfg.Game.Language)

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ⚓ seabattle ")

	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewSeaBoard(app, cfg, str, gameHint)

	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			if gameBoard.SelectedTile() != nil && !gameBoard.IsFinished() {
				gameBoard.ResetSelection()
			} else {
				gameBoard.Close()
				rootPage.SwitchToPage("setup")
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveSelection(-1, 0)
		case tcell.KeyDown:
			gameBoard.MoveSelection(1, 0)
		case tcell.KeyLeft:
			gameBoard.MoveSelection(0, -1)
		case tcell.KeyRight:
			gameBoard.MoveSelection(0, 1)
		case tcell.KeyEnter:
			gameBoard.Fire()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveSelection(0, -1)
			case 'j':
				gameBoard.MoveSelection(1, 0)
			case 'k':
				gameBoard.MoveSelection(-1, 0)
			case 'l':
				gameBoard.MoveSelection(0, 1)
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			}
		}
		return event
	})

	setupUI := ui.NewGameSetup(cfg,
		func(gameCfg engine.GameConfig, str *ui.Strings) {
			startGame(gameCfg, str)
		},
		func() {
			app.Stop()
		},
	)

	setupUI.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc {
			app.Stop()
			return nil
		}
		return event
	})

	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 60), true, true)
	rootPage.AddPage("gameview", gameFrame, true, false)

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		panic(err)
	}
}

// startGame starts a match with the given configuration.
func startGame(gameCfg engine.GameConfig, str *ui.Strings) {
	gameBoard.SetStrings(str)

	eng := local.NewLocalEngine(gameCfg)
	if err := gameBoard.ConnectEngine(eng); err != nil {
		modal := tview.NewModal().
			SetText(fmt.Sprintf(str.StartError, err.Error())).
			AddButtons([]string{"OK"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				rootPage.RemovePage("error")
			})
		rootPage.AddPage("error", modal, true, true)
		return
	}
	rootPage.SwitchToPage("gameview")
}

// runPlain plays a whole match in line mode, reading cells like c4 from in.
func runPlain(c *config.Config, in io.Reader, out io.Writer) error {
	str := ui.Lookup(c.Game.Language)
	eng := local.NewLocalEngine(c.ToGameConfig(), local.WithSyncTurns())
	defer eng.Close()

	eng.OnShot(func(shot types.ShotEntry, state *types.GameState) {
		if shot.Shooter == types.SideComputer {
			fmt.Fprintf(out, str.ComputerMove+"\n", types.Coord(shot.Pos))
		}
		fmt.Fprintln(out, str.Result(shot.Result))
	})

	fmt.Fprintln(out, str.Greeting)
	if err := eng.Start(); err != nil {
		return err
	}

	sym := c.Theme.Symbols
	scanner := bufio.NewScanner(in)
	for {
		state := eng.GetGameState()
		fmt.Fprint(out, "\n"+ui.RenderText(state, sym, str))
		if state.Finished() {
			fmt.Fprintln(out, str.Winner(state.Winner))
			return nil
		}

		fmt.Fprintln(out, str.Turn(state.Turn))
		fmt.Fprint(out, str.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		p, err := types.ParseCoord(scanner.Text())
		if err != nil {
			fmt.Fprintln(out, str.BadInput)
			continue
		}
		if err := eng.Fire(p); err != nil {
			if !local.IsBoardError(err) {
				return err
			}
			fmt.Fprintln(out, str.Rejection(err))
		}
	}
}
