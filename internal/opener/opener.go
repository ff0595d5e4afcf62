// Package opener launches a file with the operating system's default
// application.
package opener

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open asks the OS to open path with its default handler. The viewer runs
// detached; Open does not wait for it to exit.
func Open(path string) error {
	name, args := command(runtime.GOOS, path)
	if name == "" {
		return fmt.Errorf("no file opener available on %s", runtime.GOOS)
	}
	return exec.Command(name, args...).Start()
}

// command picks the platform launcher. The empty string on Windows is the
// window title slot, so paths with spaces are not mistaken for a title.
func command(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "cmd", []string{"/c", "start", "", path}
	case "linux":
		return "xdg-open", []string{path}
	}
	return "", nil
}
