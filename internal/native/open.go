// Package native hands URLs and files to the operating system.
package native

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open opens target with the OS default application. It does not wait for
// the application, which usually keeps running.
func Open(target string) error {
	name, args := command(runtime.GOOS, target)
	if err := exec.Command(name, args...).Start(); err != nil {
		return fmt.Errorf("failed to open '%s': %w", target, err)
	}
	return nil
}

func command(goos, target string) (string, []string) {
	switch goos {
	case "windows":
		// start is a cmd built-in; the empty argument is the window title.
		return "cmd", []string{"/c", "start", "", target}
	case "darwin":
		return "open", []string{target}
	default:
		return "xdg-open", []string{target}
	}
}
