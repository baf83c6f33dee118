package main

import (
	"embed"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/gen2brain/beeep"

	"ScreenCover/config"
	"ScreenCover/i18n"
	"ScreenCover/ui"
)

//go:embed assets/*
var content embed.FS

func main() {
	cfg, err := config.Load(".env", os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	i18n.Setup(cfg.Lang)
	beeep.AppName = i18n.T("Screen Cover")

	fyneApp := app.New()
	if iconBytes, err := content.ReadFile("assets/icon.svg"); err == nil {
		fyneApp.SetIcon(fyne.NewStaticResource("icon.svg", iconBytes))
	} else {
		log.Printf("Failed to load icon. %v", err)
	}
	fyneApp.Settings().SetTheme(ui.NewCoverTheme(!cfg.Opaque))

	a := NewAppManager(fyneApp, cfg)
	if err := a.Run(); err != nil {
		log.Printf("Screen cover stopped: %v", err)
		os.Exit(1)
	}
}
