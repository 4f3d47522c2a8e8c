package config

// Config is the runtime application configuration read from config.toml.
type Config struct {
	Theme     string      `toml:"theme"`
	CardWidth int         `toml:"card_width"` // default card width in pixels for `render`
	MaxHeight int         `toml:"max_height"` // default card height cap in pixels for `render`
	Addr      string      `toml:"addr"`       // listen address for `serve`
	Verbose   bool        `toml:"verbose"`
	Keys      InputConfig `toml:"keys"`
}
