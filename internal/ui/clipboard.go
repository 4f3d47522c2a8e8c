package ui

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// CopyToClipboard copies text to the system clipboard, falling back to the
// OSC52 terminal sequence when no clipboard utility is available (SSH,
// headless sessions).
func CopyToClipboard(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}

	if !clipboard.Unsupported {
		err := clipboard.WriteAll(s)
		if err == nil {
			zap.L().Debug("copied to system clipboard", zap.Int("bytes", len(s)))
			return true
		}
		zap.L().Debug("system clipboard failed", zap.Error(err))
	}

	return tryOSC52(s)
}

// osc52Sequence builds the OSC52 escape sequence for s, wrapped for tmux
// and screen when they are detected.
func osc52Sequence(s string) string {
	enc := base64.StdEncoding.EncodeToString([]byte(s))
	switch {
	case os.Getenv("TMUX") != "":
		// Tmux requires special wrapping: \x1bPtmux;\x1b ... \x1b\\
		return fmt.Sprintf("\x1bPtmux;\x1b\x1b]52;c;%s\x07\x1b\\", enc)
	case os.Getenv("STY") != "":
		// Screen requires special wrapping: \x1bP ... \x1b\\
		return fmt.Sprintf("\x1bP\x1b]52;c;%s\x07\x1b\\", enc)
	default:
		return fmt.Sprintf("\x1b]52;c;%s\x07", enc)
	}
}

func tryOSC52(s string) bool {
	if _, err := os.Stderr.WriteString(osc52Sequence(s)); err != nil {
		zap.L().Warn("OSC52 copy failed", zap.Error(err))
		return false
	}
	zap.L().Debug("attempted to copy to clipboard using OSC52")
	return true
}
