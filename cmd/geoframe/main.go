package main

import (
	"flag"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"k8s.io/klog/v2"

	"github.com/electronjoe/GeoFrame/internal/config"
	"github.com/electronjoe/GeoFrame/internal/geocode"
	"github.com/electronjoe/GeoFrame/internal/photo"
	"github.com/electronjoe/GeoFrame/internal/remote"
	"github.com/electronjoe/GeoFrame/internal/slideshow"
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	// 1. Read config
	cfg, err := config.Read()
	if err != nil {
		klog.Exitf("Failed to read config: %v", err)
	}

	// 2. Discover images
	paths := photo.Discover(cfg.Albums)
	if len(paths) == 0 {
		klog.Warning("No photos found. Exiting.")
		return
	}
	klog.Infof("Discovered %d photos in %d albums", len(paths), len(cfg.Albums))

	// 3. Build the session with the configured ordering mode
	session := slideshow.NewSession(paths, cfg.IntervalDuration(), orderingMode(cfg.Mode))

	// 4. Build the metadata pipeline
	extractor := &photo.Extractor{}
	if cfg.Geocode.Enabled {
		extractor.Geocoder = geocode.New(cfg.Geocode.Endpoint, cfg.Geocode.UserAgent, geocodeTimeout(cfg.IntervalDuration()))
	}
	cache := photo.NewCache()

	// 5. Create the slideshow game
	game := slideshow.NewGame(session, cache, extractor, cfg.DateOverlay, cfg.LocationOverlay)

	// 6. Load the first slide
	if err := game.LoadCurrentSlide(); err != nil {
		game.SetLoadingError(err)
	}

	// 7. Optional TV power-on and input switch over CEC
	if cfg.CEC.PowerOnAtStart {
		if err := remote.PowerOnTV(); err != nil {
			klog.Warningf("CEC power on failed: %v", err)
		}
		if cfg.CEC.HdmiInput > 0 {
			if err := remote.SwitchToHDMI(cfg.CEC.HdmiInput); err != nil {
				klog.Warningf("CEC input switch failed: %v", err)
			}
		}
	}

	// 8. Start the CEC remote listener and hand its channel to the game
	commands := make(chan slideshow.Event, 10)
	remote.StartListener(commands)
	game.SetCommandChan(commands)

	// 9. Configure Ebiten
	ebiten.SetFullscreen(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowTitle("GeoFrame Slideshow")
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	// 10. Run the Ebiten game loop
	if err := ebiten.RunGame(game); err != nil {
		klog.Exitf("Ebiten run error: %v", err)
	}

	// 11. Optional TV standby once the operator exits
	if cfg.CEC.PowerOffOnExit {
		if err := remote.PowerOffTV(); err != nil {
			klog.Warningf("CEC power off failed: %v", err)
		}
	}
}

func orderingMode(mode string) slideshow.Mode {
	switch mode {
	case config.ModeShuffle:
		return slideshow.ModeShuffledOnce
	case config.ModeRandom:
		return slideshow.ModeRandomEachTick
	}
	return slideshow.ModeSequential
}

// geocodeTimeout bounds a reverse lookup to well under one display interval
// so a stalled network call can never freeze advancement.
func geocodeTimeout(interval time.Duration) time.Duration {
	if interval < geocode.DefaultTimeout {
		return interval
	}
	return geocode.DefaultTimeout
}
