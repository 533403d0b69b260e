package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:   true,
		DrawLastShotBackground: true,
		Colors: ConfigColors{
			WaterColor:      24,
			WaterColorAlt:   25,
			ShipColor:       250,
			HitColor:        196,
			MissColor:       153,
			ClearColor:      67,
			LineColor:       67,
			CursorColorFG:   232,
			CursorColorBG:   220,
			LastShotColorBG: 88,
		},
		Symbols: ConfigSymbols{
			Water:  '~',
			Ship:   '■',
			Hit:    'X',
			Miss:   '•',
			Clear:  '·',
			Cursor: '+',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameSettings{
			BoardSize:     6,
			Language:      "en",
			HumanFirst:    true,
			EngineDelayMs: 400,
			Record:        false,
		},
	}
}
