package main

import (
	"os"
	"runtime"

	"ScreenCover/launch"
)

func main() {
	binDir := os.Getenv("SCREENCOVER_BIN_DIR")
	if binDir == "" {
		binDir = "bin"
	}

	l := &launch.Launcher{
		GOOS:      runtime.GOOS,
		GOARCH:    runtime.GOARCH,
		BinDir:    binDir,
		SourceDir: ".",
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Exec:      launch.RunCommand,
	}
	os.Exit(l.Run())
}
