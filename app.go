// Package main wires the global hotkey listener to the overlay controller
// and runs the fyne event loop.
//
// Maintenance notes / tips:
//   - Threads: main() runs on the main OS thread and ends up blocked in
//     AppManager.Run, inside the fyne loop. Every window operation happens
//     there, either through fyne callbacks or through overlay.Loop.Do.
//   - The hotkey listener runs in its own goroutine locked to its own OS
//     thread. It only writes into `queue`; if it dies the cover simply stops
//     reacting to the keyboard, the app keeps running.
//   - `queue` is the only value shared between the two. Do not hand the
//     controller or any fyne.Window to the listener side.
package main

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"github.com/gen2brain/beeep"

	"ScreenCover/config"
	"ScreenCover/control"
	"ScreenCover/cue"
	"ScreenCover/hotkey"
	"ScreenCover/hotkey/system"
	"ScreenCover/i18n"
	"ScreenCover/overlay"
	"ScreenCover/ui"
)

// AppManager holds the application's components.
type AppManager struct {
	cfg        *config.Config
	queue      *control.Queue
	loop       *overlay.FyneLoop
	controller *overlay.Controller
	listener   *hotkey.Listener
	cue        *cue.Player
}

// NewAppManager builds every component. It must be called on the main
// goroutine because it creates the loop's anchor window.
func NewAppManager(fyneApp fyne.App, cfg *config.Config) *AppManager {
	a := &AppManager{
		cfg:   cfg,
		queue: control.NewQueue(),
		loop:  overlay.NewFyneLoop(fyneApp),
		cue:   cue.NewPlayer(cfg.Sound),
	}

	attrs := overlay.CoverAttributes(i18n.T("Screen Cover"))
	attrs.Transparent = !cfg.Opaque

	policy := overlay.Lazy
	if cfg.Eager {
		policy = overlay.Eager
	}

	a.controller = overlay.NewController(
		overlay.NewFyneFactory(fyneApp, ui.NewCover),
		a.queue,
		a.loop,
		overlay.Options{Policy: policy, Attributes: attrs, OnChange: a.stateChanged},
	)

	bindings := hotkey.DefaultBindings()
	a.listener = hotkey.NewListener(system.NewSource(bindings), bindings, a.queue)
	for _, b := range bindings {
		log.Printf("Hotkey %s", b)
	}
	return a
}

// Run starts the listener and blocks in the event loop until an exit
// command, a fatal window error or the platform ends the loop.
func (a *AppManager) Run() (err error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go a.listen(ctx)
	a.controller.Start(ctx, a.cfg.Nudge)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("event loop failed: %v", r)
		}
	}()
	a.loop.Run()
	// fyne.Do runs inline once the loop is gone; stop the pump first.
	cancel()

	return a.controller.Err()
}

func (a *AppManager) listen(ctx context.Context) {
	err := a.listener.Run(ctx)
	if err == nil {
		return
	}
	log.Printf("[hotkey] listener stopped: %v", err)
	if !hotkey.Degraded(ctx, err) {
		return
	}
	if nerr := beeep.Notify(i18n.T("Global hotkeys unavailable"), i18n.T("The cover can no longer be toggled from the keyboard."), ""); nerr != nil {
		log.Printf("[hotkey] notification failed: %v", nerr)
	}
}

func (a *AppManager) stateChanged(s overlay.State) {
	switch s {
	case overlay.Visible:
		a.cue.Shown()
	case overlay.Hidden:
		a.cue.Hidden()
	}
}
