// Package launch picks and runs the overlay binary built for the current
// platform.
package launch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// ErrUnsupportedPlatform is returned for OS/architecture pairs with no
// overlay binary.
var ErrUnsupportedPlatform = errors.New("unsupported OS/architecture combination")

type platform struct {
	goos, goarch string
}

var binaries = map[platform]string{
	{"darwin", "arm64"}:  "mac_aarch64",
	{"darwin", "amd64"}:  "mac_x86_64",
	{"windows", "amd64"}: "windows_x86_64.exe",
	{"linux", "amd64"}:   "linux_x86_64",
	{"linux", "arm64"}:   "linux_aarch64",
}

// Resolve returns the binary name for goos/goarch.
func Resolve(goos, goarch string) (string, error) {
	name, ok := binaries[platform{goos, goarch}]
	if !ok {
		return "", fmt.Errorf("%w: %s/%s", ErrUnsupportedPlatform, goos, goarch)
	}
	return name, nil
}

// Exec runs a command to completion and returns its exit code. err is set
// only when the command could not be started.
type Exec func(name string, args ...string) (int, error)

// Launcher runs the platform binary from BinDir, falling back to building
// and running the overlay from source when the binary cannot be started.
type Launcher struct {
	GOOS, GOARCH string
	BinDir       string
	SourceDir    string
	Stdout       io.Writer
	Stderr       io.Writer
	Exec         Exec
}

// Run returns the process exit code to use.
func (l *Launcher) Run() int {
	fmt.Fprintf(l.Stdout, "Current OS: %s, architecture: %s\n", l.GOOS, l.GOARCH)

	name, err := Resolve(l.GOOS, l.GOARCH)
	if err != nil {
		fmt.Fprintln(l.Stderr, err)
		return 1
	}

	code, err := l.Exec(filepath.Join(l.BinDir, name))
	if err == nil {
		return code
	}
	fmt.Fprintf(l.Stderr, "[launch] could not start %s: %v, building from source\n", name, err)

	code, err = l.Exec("go", "run", l.SourceDir)
	if err != nil {
		fmt.Fprintf(l.Stderr, "[launch] failed to execute command: %v\n", err)
		return 1
	}
	return code
}

// RunCommand is the Exec used in production: it wires the child to the
// current terminal and reports its exit status.
func RunCommand(name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, nil
	case errors.As(err, &exitErr):
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		return 1, nil
	default:
		return 0, err
	}
}
