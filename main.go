package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"ebiten-tanks/config"
	"ebiten-tanks/data"
	"ebiten-tanks/screens"
	"ebiten-tanks/systems"
)

func main() {
	tuningPath := flag.String("config", config.DefaultTuningPath, "path to the tuning YAML file")
	tankDir := flag.String("tanks", data.DefaultTemplateDir, "directory of tank template YAML files")
	seed := flag.Int64("seed", 0, "arena seed; 0 picks a new arena every game")
	debug := flag.Bool("debug", false, "start with collider outlines shown")
	flag.Parse()

	tuning, err := config.LoadTuningOrDefault(*tuningPath)
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}

	templates := data.NewTankTemplateManager()
	if err := templates.LoadTemplatesFromDirectory(*tankDir); err != nil || len(templates.Templates) == 0 {
		log.Printf("[Main] Warning: no tank templates loaded from %s (%v), using built-in tanks", *tankDir, err)
		templates = data.DefaultTemplates()
	}

	// Without a data directory settings live for this run only
	store, err := config.OpenSettingsStore()
	if err != nil {
		log.Printf("[Main] Warning: %v (settings will not be saved)", err)
	}
	settings := config.NewSettingsManager(store)
	if *debug {
		settings.SetDebugOverlay(true)
	}

	session, err := screens.NewSession(tuning, templates, settings, audio.NewContext(systems.SampleRate))
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}

	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Tanks")
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(NewGame(session, *seed)); err != nil {
		log.Fatal(err)
	}
}
