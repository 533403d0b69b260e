package main

import (
	"bytes"
	"flag"
	"fmt"
	"strings"
	"testing"

	"seabattle/config"
)

func allCells(size int) string {
	var b strings.Builder
	for row := 1; row <= size; row++ {
		for col := 0; col < size; col++ {
			fmt.Fprintf(&b, "%c%d\n", rune('a'+col), row)
		}
	}
	return b.String()
}

func plainConfig(lang string, seed int64) *config.Config {
	c := config.DefaultConfig
	c.Game.Language = lang
	c.Game.Seed = seed
	c.Game.EngineDelayMs = 0
	return &c
}

func TestRunPlainPlaysToTheEnd(t *testing.T) {
	var out bytes.Buffer
	if err := runPlain(plainConfig("en", 11), strings.NewReader(allCells(6)), &out); err != nil {
		t.Fatalf("runPlain: %v", err)
	}
	text := out.String()

	if !strings.HasPrefix(text, "Welcome to Sea Battle\n") {
		t.Errorf("missing greeting:\n%s", text)
	}
	if !strings.Contains(text, "You win!") && !strings.Contains(text, "Computer wins!") {
		t.Errorf("match did not finish:\n%s", text)
	}
	if !strings.Contains(text, "Your board:") || !strings.Contains(text, "Computer's board:") {
		t.Errorf("boards not printed:\n%s", text)
	}
}

func TestRunPlainRussianMessages(t *testing.T) {
	var out bytes.Buffer
	input := "zz\nk1\n" + allCells(6)
	if err := runPlain(plainConfig("ru", 12), strings.NewReader(input), &out); err != nil {
		t.Fatalf("runPlain: %v", err)
	}
	text := out.String()

	for _, want := range []string{
		"Приветствуем вас в игре морской бой",
		"!!! Ошибка при вводе координат !!!",
		"Вы пытаетесь выстрелить за доску!",
		"Доска игрока:",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output lacks %q", want)
		}
	}
}

func TestRunPlainRepeatedShot(t *testing.T) {
	var out bytes.Buffer
	input := "a1\na1\na1\n"
	if err := runPlain(plainConfig("en", 13), strings.NewReader(input), &out); err != nil {
		t.Fatalf("runPlain: %v", err)
	}
	if !strings.Contains(out.String(), "You have already shot at this cell") {
		t.Errorf("repeated shot not rejected:\n%s", out.String())
	}
}

func TestApplyFlags(t *testing.T) {
	old := flag.CommandLine
	defer func() { flag.CommandLine = old }()

	tests := []struct {
		args    []string
		check   func(*config.Config) bool
		wantErr bool
	}{
		{[]string{"-seed", "5"}, func(c *config.Config) bool { return c.Game.Seed == 5 }, false},
		{[]string{"-lang", "RU"}, func(c *config.Config) bool { return c.Game.Language == "ru" }, false},
		{[]string{"-first", "computer"}, func(c *config.Config) bool { return !c.Game.HumanFirst }, false},
		{[]string{"-record"}, func(c *config.Config) bool { return c.Game.Record }, false},
		{[]string{"-first", "nobody"}, nil, true},
		{[]string{"-lang", "de"}, nil, true},
	}

	for _, tt := range tests {
		flag.CommandLine = flag.NewFlagSet("seabattle", flag.ContinueOnError)
		flagSeed = flag.Int64("seed", 0, "")
		flagLang = flag.String("lang", "", "")
		flagFirst = flag.String("first", "", "")
		flagRecord = flag.Bool("record", false, "")
		if err := flag.CommandLine.Parse(tt.args); err != nil {
			t.Fatal(err)
		}

		c := config.DefaultConfig
		err := applyFlags(&c)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%v: expected an error", tt.args)
			}
			continue
		}
		if err != nil {
			t.Errorf("%v: %v", tt.args, err)
			continue
		}
		if !tt.check(&c) {
			t.Errorf("%v: flag not applied: %+v", tt.args, c.Game)
		}
	}
}
