package config

const (
	defaultWorkspaceDir     = "~/.local/share/capsync"
	defaultLogDir           = "~/.local/share/capsync/logs"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultMinTokenDuration = 0.1
	defaultTrailingRate     = 0.5
	defaultMinMatchRun      = 2
	defaultMinMatchTokenLen = 2
	defaultRoundDecimals    = 2
	defaultDisplayFloor     = 0.15
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			WorkspaceDir: defaultWorkspaceDir,
			LogDir:       defaultLogDir,
		},
		Align: Align{
			MinTokenDuration: defaultMinTokenDuration,
			TrailingRate:     defaultTrailingRate,
			MinMatchRun:      defaultMinMatchRun,
			MinMatchTokenLen: defaultMinMatchTokenLen,
			RoundDecimals:    defaultRoundDecimals,
			DisplayFloor:     defaultDisplayFloor,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
