// Package colorpicker implements colorpicker, an interactive color picker
// for the terminal and the desktop.
package colorpicker

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asticode/go-astilog"
	"github.com/junegunn/colorpicker/src/tui"
	"github.com/junegunn/colorpicker/src/util"
	"github.com/pkg/errors"
)

const (
	appName         = "colorpicker"
	guiCloseTimeout = 3 * time.Second
)

func setupLogger(opts *Options, quiet bool) {
	c := astilog.Configuration{
		AppName:  appName,
		Filename: opts.LogFile,
		Verbose:  opts.Verbose}
	// Log messages would break the full-screen interface
	if len(c.Filename) == 0 && quiet {
		c.Filename = os.DevNull
	}
	astilog.SetLogger(astilog.New(c))
}

func loadPalette(opts *Options) (*Palette, error) {
	var extra []Category
	if len(opts.PaletteFile) > 0 {
		categories, err := LoadPaletteFile(opts.PaletteFile)
		if err != nil {
			return nil, err
		}
		extra = categories
	}
	palette := NewPalette(extra)
	if err := palette.Select(opts.Palette); err != nil {
		return nil, err
	}
	return palette, nil
}

// waitQuit blocks until the Loop finishes and returns the exit code
func waitQuit(eventBox *util.EventBox) int {
	code := ExitError
	for quit := false; !quit; {
		eventBox.Wait(func(events *util.Events) {
			if value, found := (*events)[EvtQuit]; found {
				code = value.(int)
				quit = true
			}
			events.Clear()
		})
	}
	return code
}

// Run starts colorpicker
func Run(opts *Options, version string) (int, error) {
	if opts.Help {
		fmt.Print(Usage())
		return ExitOk, nil
	}
	if opts.Version {
		fmt.Println(version)
		return ExitOk, nil
	}

	if err := opts.initProfiling(); err != nil {
		return ExitError, err
	}
	defer util.RunAtExitFuncs()

	if len(opts.Convert) > 0 {
		setupLogger(opts, false)
		if err := newStdoutPrinter().convert(opts.Convert); err != nil {
			return ExitError, err
		}
		return ExitOk, nil
	}

	useTUI := opts.TUI || !opts.GUI && util.IsTty()
	if !useTUI && !opts.GUI && opts.Listen < 0 {
		return ExitError, errors.New("standard input is not a terminal: use --gui or --listen")
	}
	setupLogger(opts, useTUI)

	palette, err := loadPalette(opts)
	if err != nil {
		return ExitError, err
	}

	var history *History
	if len(opts.HistoryPath) > 0 {
		if history, err = NewHistory(opts.HistoryPath, opts.HistoryMax); err != nil {
			return ExitError, err
		}
	}

	// Event channel
	eventBox := util.NewEventBox()

	var loop *Loop
	post := func(actions ...*action) bool {
		return loop.Post(actions...)
	}

	var view View
	var renderer tui.Renderer
	var terminal *Terminal
	var gui *GUI
	switch {
	case useTUI:
		renderer = tui.NewFullscreenRenderer(opts.Mouse)
		terminal = NewTerminal(renderer, post)
		view = terminal
	case opts.GUI:
		gui = NewGUI(palette.Names(), post)
		view = gui
	}

	loop = NewLoop(view, palette, history, opts.WarningDelay, eventBox)
	if err := loop.initialize(opts.Color); err != nil {
		return ExitError, errors.Wrap(err, "invalid initial color")
	}

	listener, port, err := startHttpServer(opts.Listen, loop)
	if err != nil {
		return ExitError, err
	}
	if listener != nil {
		defer listener.Close()
		astilog.Infof("listening on %s:%d", defaultListenerHost, port)
		if !useTUI {
			fmt.Fprintf(os.Stderr, "%s:%d\n", defaultListenerHost, port)
		}
	}

	if renderer != nil {
		if err := renderer.Init(); err != nil {
			return ExitError, err
		}
		// Restore the terminal even if the program exits by util.Exit
		util.AtExit(renderer.Close)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		if _, ok := <-signals; ok {
			loop.Quit(ExitInterrupt)
		}
	}()

	go loop.Loop()

	if terminal != nil {
		go terminal.Loop()
	}

	guiDone := make(chan error, 1)
	if gui != nil {
		go func() {
			err := gui.Run(appName, opts.Verbose)
			// Closing the window cancels the selection
			loop.Quit(ExitCancel)
			guiDone <- err
		}()
	}

	code := waitQuit(eventBox)
	astilog.Debugf("loop finished with %d", code)

	if renderer != nil {
		renderer.Close()
	}
	if gui != nil {
		gui.Close()
		select {
		case err := <-guiDone:
			if err != nil {
				return ExitError, err
			}
		case <-time.After(guiCloseTimeout):
			astilog.Debugf("window did not close in time")
		}
	}

	if code == ExitOk {
		if accepted := loop.Accepted(); accepted != nil {
			newStdoutPrinter().printColor(*accepted, opts.Format)
		}
	}
	return code, nil
}
