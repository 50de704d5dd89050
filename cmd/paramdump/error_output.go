package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	coreerrors "github.com/davidahmann/paramdump/core/errors"
)

const (
	exitOK              = 0
	exitInvalidInput    = 1
	exitIOFailure       = 1
	exitInternalFailure = 1
)

// writeError prints the single failure line and returns the exit code for err.
func writeError(stderr io.Writer, err error) int {
	prefix := color.New(color.FgRed)
	if colorEnabled(stderr) {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}
	_, _ = prefix.Fprint(stderr, "Error:")
	_, _ = fmt.Fprintf(stderr, " %s\n", err.Error())
	return exitCodeForError(err)
}

// colorEnabled reports whether w is a terminal. color.NoColor only looks at
// stdout, so stderr has to be checked on its own.
func colorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func exitCodeForError(err error) int {
	if err == nil {
		return exitOK
	}
	switch coreerrors.CategoryOf(err) {
	case coreerrors.CategoryInvalidInput:
		return exitInvalidInput
	case coreerrors.CategoryIOFailure:
		return exitIOFailure
	default:
		return exitInternalFailure
	}
}
