package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"seabattle/engine"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

var (
	cfgFile    = "seabattle/config.json"
	recordDir  = "seabattle/records"
	logFile    = "seabattle/debug.log"
	envFile    = ".env"
	envPrefix  = "SEABATTLE_"
	envOptions = []string{"SEED", "LANG", "BOARD_SIZE", "RECORD", "ENGINE_DELAY_MS", "HUMAN_FIRST"}
)

// Supported languages for game messages.
var Languages = []string{"en", "ru"}

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	WaterColor      int `json:"water"`
	WaterColorAlt   int `json:"water_alt"`
	ShipColor       int `json:"ship"`
	HitColor        int `json:"hit"`
	MissColor       int `json:"miss"`
	ClearColor      int `json:"clear"`
	LineColor       int `json:"line"`
	CursorColorFG   int `json:"cursor_fg"`
	CursorColorBG   int `json:"cursor_bg"`
	LastShotColorBG int `json:"last_shot_bg"`
}

type ConfigSymbols struct {
	Water  rune `json:"water"`
	Ship   rune `json:"ship"`
	Hit    rune `json:"hit"`
	Miss   rune `json:"miss"`
	Clear  rune `json:"clear"`
	Cursor rune `json:"cursor"`
}

type Theme struct {
	DrawCursorBackground   bool          `json:"draw_cursor_bg"`
	DrawLastShotBackground bool          `json:"draw_last_shot_bg"`
	Colors                 ConfigColors  `json:"colors"`
	Symbols                ConfigSymbols `json:"symbols"`
}

// GameSettings holds match defaults.
type GameSettings struct {
	BoardSize     int    `json:"board_size"`
	Language      string `json:"language"`
	Seed          int64  `json:"seed"` // 0 = time based
	HumanFirst    bool   `json:"human_first"`
	EngineDelayMs int    `json:"engine_delay_ms"`
	Record        bool   `json:"record"`
}

type Config struct {
	Theme Theme        `json:"theme"`
	Game  GameSettings `json:"game"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err := config.ApplyEnv(loadEnv(envFile)); err != nil {
		return nil, err
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.Water, c.Theme.Symbols.Ship, c.Theme.Symbols.Hit, c.Theme.Symbols.Miss, c.Theme.Symbols.Clear} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Game.BoardSize < 6 || c.Game.BoardSize > 10 {
		return &InvalidConfig{fmt.Sprintf("board size must be between 6 and 10, got %d", c.Game.BoardSize)}
	}
	if !isLanguage(c.Game.Language) {
		return &InvalidConfig{fmt.Sprintf("unsupported language %q", c.Game.Language)}
	}
	if c.Game.EngineDelayMs < 0 {
		return &InvalidConfig{"engine delay must not be negative"}
	}
	return nil
}

// ApplyEnv overrides game settings from SEABATTLE_* variables.
func (c *Config) ApplyEnv(env map[string]string) error {
	for _, name := range envOptions {
		v, ok := env[envPrefix+name]
		if !ok {
			continue
		}
		v = strings.TrimSpace(v)
		var err error
		switch name {
		case "SEED":
			c.Game.Seed, err = strconv.ParseInt(v, 10, 64)
		case "LANG":
			c.Game.Language = strings.ToLower(v)
		case "BOARD_SIZE":
			c.Game.BoardSize, err = strconv.Atoi(v)
		case "RECORD":
			c.Game.Record, err = strconv.ParseBool(v)
		case "ENGINE_DELAY_MS":
			c.Game.EngineDelayMs, err = strconv.Atoi(v)
		case "HUMAN_FIRST":
			c.Game.HumanFirst, err = strconv.ParseBool(v)
		}
		if err != nil {
			return &InvalidConfig{fmt.Sprintf("%s%s=%q: %v", envPrefix, name, v, err)}
		}
	}
	return nil
}

// loadEnv merges the optional .env file with the process environment.
// Process variables win.
func loadEnv(path string) map[string]string {
	env, err := godotenv.Read(path)
	if err != nil {
		env = make(map[string]string)
	}
	for _, name := range envOptions {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			env[envPrefix+name] = v
		}
	}
	return env
}

func isLanguage(lang string) bool {
	for _, l := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

// HistoryDir returns the directory match transcripts are written to.
func HistoryDir() string {
	return filepath.Join(xdg.DataHome, recordDir)
}

// LogFile returns the debug log path, creating its directory.
func LogFile() (string, error) {
	return xdg.StateFile(logFile)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}

// ToGameConfig converts the stored settings into an engine configuration.
func (c *Config) ToGameConfig() engine.GameConfig {
	gc := engine.GameConfig{
		BoardSize:   c.Game.BoardSize,
		Seed:        c.Game.Seed,
		HumanFirst:  c.Game.HumanFirst,
		EngineDelay: time.Duration(c.Game.EngineDelayMs) * time.Millisecond,
	}
	if c.Game.Record {
		gc.RecordDir = HistoryDir()
	}
	return gc
}
