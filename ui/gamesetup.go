package ui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"seabattle/config"
	"seabattle/engine"
)

var (
	boardSizes    = []string{"6x6", "7x7", "8x8", "9x9", "10x10"}
	languageNames = []string{"English", "Русский"}
)

// GameSetupUI provides a form for configuring a new match.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	banner   *MenuCard
	status   *tview.TextView
	cfg      *config.Config
	save     func(*config.Config) error
	settings config.GameSettings
	onStart  func(engine.GameConfig, *Strings)
	onCancel func()
}

// NewGameSetup creates a new game setup form seeded from cfg.
// onStart receives the engine config and the chosen message language.
func NewGameSetup(cfg *config.Config, onStart func(engine.GameConfig, *Strings), onCancel func()) *GameSetupUI {
	setup := &GameSetupUI{
		cfg:      cfg,
		save:     (*config.Config).Save,
		settings: cfg.Game,
		onStart:  onStart,
		onCancel: onCancel,
	}

	// Dropdown callbacks fire while the form is built.
	setup.banner = NewMenuCard(Lookup(setup.settings.Language).Greeting)

	form := tview.NewForm()

	form.AddDropDown("Board Size", boardSizes, setup.settings.BoardSize-6, func(option string, index int) {
		setup.settings.BoardSize = index + 6
	})

	first := 0
	if !setup.settings.HumanFirst {
		first = 1
	}
	form.AddDropDown("First Shot", []string{"You", "Computer"}, first, func(option string, index int) {
		setup.settings.HumanFirst = index == 0
	})

	lang := 0
	for i, l := range config.Languages {
		if l == setup.settings.Language {
			lang = i
		}
	}
	form.AddDropDown("Language", languageNames, lang, func(option string, index int) {
		setup.settings.Language = config.Languages[index]
		setup.banner.SetText(Lookup(setup.settings.Language).Greeting)
	})

	seed := ""
	if setup.settings.Seed != 0 {
		seed = strconv.FormatInt(setup.settings.Seed, 10)
	}
	form.AddInputField("Seed (blank = random)", seed, 12, func(text string, lastChar rune) bool {
		return (lastChar >= '0' && lastChar <= '9') || lastChar == '-'
	}, func(text string) {
		setup.settings.Seed, _ = strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	})

	form.AddCheckbox("Record shots", setup.settings.Record, func(checked bool) {
		setup.settings.Record = checked
	})

	form.AddButton("Start Game", func() {
		c := *setup.cfg
		c.Game = setup.settings
		onStart(c.ToGameConfig(), Lookup(c.Game.Language))
	})

	form.AddButton("Save Defaults", func() {
		setup.SaveDefaults()
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetBorderColor(MenuColors.Border)
	form.SetFieldBackgroundColor(MenuColors.CardBG)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	setup.status = tview.NewTextView().SetTextAlign(tview.AlignCenter)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(setup.banner, 5, 0, false).
		AddItem(form, 0, 1, true).
		AddItem(setup.status, 1, 0, false).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// SaveDefaults stores the selected settings in the config file and reports
// the outcome on the status line.
func (s *GameSetupUI) SaveDefaults() error {
	c := *s.cfg
	c.Game = s.settings
	err := c.Validate()
	if err == nil {
		err = s.save(&c)
	}
	if err != nil {
		s.status.SetTextColor(tcell.ColorRed)
		s.status.SetText(err.Error())
		return err
	}
	s.cfg.Game = s.settings
	s.status.SetTextColor(MenuColors.Hint)
	s.status.SetText("Defaults saved")
	return nil
}

// Form returns the flex container with banner, form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
