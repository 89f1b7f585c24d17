package main

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"hackpulse/internal/chime"
	"hackpulse/internal/config"
	"hackpulse/internal/core/countdown"
	"hackpulse/internal/core/particles"
	"hackpulse/internal/core/typewriter"
	"hackpulse/internal/platform"
	"hackpulse/internal/storage"
	"hackpulse/internal/ui/animation"
	"hackpulse/internal/ui/page"
	"hackpulse/internal/ui/preferences"
	"hackpulse/internal/ui/tray"
	"hackpulse/resources"
)

const (
	appName  = "HackPulse"
	appID    = "org.algoforge.hackpulse"
	logoFile = "algoforge.svg"
)

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		if errors.Is(err, platform.ErrAlreadyRunning) {
			if err := platform.ActivateRunning(appName); err != nil {
				log.Printf("activate running instance: %v", err)
			}
		}
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	content, err := storage.LoadContent()
	if err != nil {
		log.Printf("load content: %v", err)
		return
	}

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}
	overrides, err := config.LoadOverrides()
	if err != nil {
		log.Printf("environment overrides ignored: %v", err)
	} else {
		settings = overrides.Apply(settings)
	}

	fyneApp := app.NewWithID(appID)
	logo := resources.MustLogo(logoFile)
	fyneApp.SetIcon(logo)

	player := chime.NewPlayer(settings.SoundEnabled)
	pageWindow := page.New(fyneApp, content, logo, pageConfig(settings))

	startSession := func() {
		pageWindow.Start(buildEngines(settings))
		pageWindow.Show()
	}
	showPage := func() {
		if !pageWindow.Running() {
			startSession()
			return
		}
		pageWindow.Show()
	}
	quit := func() {
		pageWindow.Close()
		player.Close()
		fyneApp.Quit()
	}

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("save settings: %v", err)
		}
		player.SetEnabled(settings.SoundEnabled)
		pageWindow.UpdateConfig(pageConfig(settings))
		if pageWindow.Running() {
			pageWindow.Start(buildEngines(settings))
		}
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, traySections(), tray.Callbacks{
			OnShow:        showPage,
			OnJump:        pageWindow.ScrollTo,
			OnDismiss:     pageWindow.Dismiss,
			OnPreferences: prefsWindow.Show,
			OnQuit:        quit,
		})
		desktopApp.SetSystemTrayIcon(logo)
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	pageWindow.SetOnCountdown(func(snapshot countdown.Snapshot) {
		if trayManager != nil {
			trayManager.SetStatus(page.StatusText(snapshot))
		}
	})
	pageWindow.SetOnBanner(func(visible bool) {
		if trayManager != nil {
			trayManager.SetBannerVisible(visible)
		}
	})
	pageWindow.SetOnCompleted(func() {
		go func() {
			if err := player.Play(); err != nil {
				log.Printf("completion chime: %v", err)
			}
		}()
	})
	pageWindow.SetOnHidden(func() {
		// Without a tray nothing could bring the page back.
		if trayManager == nil {
			quit()
		}
	})

	guard.Serve(func() { fyne.Do(showPage) })

	startSession()
	fyneApp.Run()
}

// buildEngines creates fresh engines for one page session. A rejected
// deadline leaves the countdown off and is reported on the page.
func buildEngines(settings preferences.Settings) page.Engines {
	engines := page.Engines{
		Typewriter: typewriter.New(settings.TypewriterConfig(), nil),
	}
	if settings.Particles > 0 {
		engines.Renderer = particles.New(settings.ParticleConfig(), nil)
	}

	countdownConfig, err := settings.CountdownConfig()
	if err == nil {
		engines.Countdown, err = countdown.New(countdownConfig.Target, countdown.Config{
			TickInterval: countdownConfig.TickInterval,
		})
	}
	if err != nil {
		log.Printf("countdown disabled: %v", err)
		engines.CountdownErr = err
	}
	return engines
}

func pageConfig(settings preferences.Settings) page.Config {
	return page.Config{
		Fullscreen: settings.Fullscreen,
		Entrance:   animation.DefaultConfig(),
	}
}

func traySections() []tray.Section {
	sections := make([]tray.Section, 0, len(page.Navigation))
	for _, item := range page.Navigation {
		sections = append(sections, tray.Section{ID: item.ID, Label: item.Label})
	}
	return sections
}
