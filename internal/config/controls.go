package config

// InputConfig holds the key bindings. The Nav* and Activate sets are derived
// by InitControls and never read from the file.
type InputConfig struct {
	DisableWasd bool `toml:"disable_wasd_bindings"`
	DisableVim  bool `toml:"disable_vim_bindings"`

	NextGrid string `toml:"next_grid"`
	PrevGrid string `toml:"prev_grid"`
	Copy     string `toml:"copy"`
	Reload   string `toml:"reload"`

	NavUp    []string `toml:"-"`
	NavDown  []string `toml:"-"`
	NavLeft  []string `toml:"-"`
	NavRight []string `toml:"-"`
	Activate []string `toml:"-"`
}

// InitControls rebuilds the movement sets from the toggles. Arrow keys are
// always bound; wasd and hjkl can be switched off for pages whose users type.
func (c *InputConfig) InitControls() {
	c.NavUp, c.NavDown = []string{"up"}, []string{"down"}
	c.NavLeft, c.NavRight = []string{"left"}, []string{"right"}
	c.Activate = []string{"enter", " "}

	bind := func(up, down, left, right string) {
		c.NavUp = append(c.NavUp, up)
		c.NavDown = append(c.NavDown, down)
		c.NavLeft = append(c.NavLeft, left)
		c.NavRight = append(c.NavRight, right)
	}
	if !c.DisableWasd {
		bind("w", "s", "a", "d")
	}
	if !c.DisableVim {
		bind("k", "j", "h", "l")
	}
}
