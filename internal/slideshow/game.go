package slideshow

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"k8s.io/klog/v2"

	"github.com/electronjoe/GeoFrame/internal/photo"
)

// annotationResult carries a resolved metadata record back to the update
// loop.
type annotationResult struct {
	path string
	rec  photo.Record
}

// Game drives the slideshow under ebiten. The Update goroutine is the single
// owner of the Session: timer ticks, keyboard input and remote commands are
// all observed there and applied one at a time. Metadata resolution runs on
// separate goroutines and reports back over annotations; it never blocks the
// update loop.
type Game struct {
	session   *Session
	cache     *photo.Cache
	extractor *photo.Extractor

	dateOverlay     bool
	locationOverlay bool

	currentSlide *TiledImage
	loadingError error
	switchTime   time.Time

	annotation  string
	annotations chan annotationResult

	commandChan chan Event

	ctx    context.Context
	cancel context.CancelFunc
}

// NewGame creates a slideshow game over an already-built session.
func NewGame(session *Session, cache *photo.Cache, extractor *photo.Extractor, dateOverlay, locationOverlay bool) *Game {
	ctx, cancel := context.WithCancel(context.Background())
	return &Game{
		session:         session,
		cache:           cache,
		extractor:       extractor,
		dateOverlay:     dateOverlay,
		locationOverlay: locationOverlay,
		switchTime:      time.Now().Add(session.Interval()),
		annotations:     make(chan annotationResult, 16),
		ctx:             ctx,
		cancel:          cancel,
	}
}

// SetCommandChan injects the input-shell channel (e.g. the CEC remote).
func (g *Game) SetCommandChan(ch chan Event) {
	g.commandChan = ch
}

// SetLoadingError records a load failure for display.
func (g *Game) SetLoadingError(err error) {
	g.loadingError = err
}

// Update is called by Ebiten ~60 times/sec. It observes at most the events
// that have arrived, applies them in order, and checks the slide timer.
func (g *Game) Update() error {
	if g.session.Ended() {
		return ebiten.Termination
	}

	for _, ev := range keyboardEvents() {
		g.apply(ev)
	}

	// Non-blocking drain of remote commands
	if g.commandChan != nil {
	readLoop:
		for {
			select {
			case ev := <-g.commandChan:
				g.apply(ev)
			default:
				break readLoop
			}
		}
	}

	// Resolved annotations for slides shown before their metadata arrived
drainLoop:
	for {
		select {
		case res := <-g.annotations:
			if path, ok := g.session.Current(); ok && path == res.path {
				g.annotation = g.displayString(res.rec)
			}
		default:
			break drainLoop
		}
	}

	if g.session.Ended() {
		return ebiten.Termination
	}

	// Auto-advance on interval
	if time.Now().After(g.switchTime) {
		g.apply(EventTick)
	}

	return nil
}

// keyboardEvents maps just-pressed input onto slideshow events: right/left
// arrows navigate, any other key or a mouse click exits.
func keyboardEvents() []Event {
	var events []Event
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		switch key {
		case ebiten.KeyArrowRight:
			events = append(events, EventNext)
		case ebiten.KeyArrowLeft:
			events = append(events, EventPrevious)
		default:
			events = append(events, EventExit)
		}
	}
	for _, btn := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonMiddle, ebiten.MouseButtonRight} {
		if inpututil.IsMouseButtonJustPressed(btn) {
			events = append(events, EventExit)
		}
	}
	return events
}

// apply runs one session transition and, when the slide changed, reloads the
// displayed image and resets the interval timer. Manual navigation grants a
// full fresh interval for the newly shown slide.
func (g *Game) apply(ev Event) {
	if ev == EventExit {
		g.session.Apply(EventExit)
		// Abandon in-flight extraction and geocoding work.
		g.cancel()
		return
	}
	if g.session.Apply(ev) {
		g.reloadSlide()
		g.switchTime = time.Now().Add(g.session.Interval())
	}
}

// LoadCurrentSlide loads the image and requests the annotation for the
// current cursor position. Called once at startup and after every cursor
// move.
func (g *Game) LoadCurrentSlide() error {
	g.freeSlide()
	g.annotation = ""

	path, ok := g.session.Current()
	if !ok {
		return nil
	}

	tiled, err := loadTiledEbitenImage(path)
	if err != nil {
		return err
	}
	g.currentSlide = tiled
	g.requestAnnotation(path)
	return nil
}

func (g *Game) reloadSlide() {
	if err := g.LoadCurrentSlide(); err != nil {
		klog.Warningf("load slide: %v", err)
		g.loadingError = err
	} else {
		g.loadingError = nil
	}
}

// requestAnnotation resolves the metadata record for path. Cached records
// apply immediately; otherwise the computation runs on its own goroutine and
// the result arrives via the annotations channel.
func (g *Game) requestAnnotation(path string) {
	if rec, ok := g.cache.Get(path); ok {
		g.annotation = g.displayString(rec)
		return
	}
	go func() {
		rec := g.cache.GetOrCompute(g.ctx, path, g.extractor.Extract)
		select {
		case g.annotations <- annotationResult{path: path, rec: rec}:
		case <-g.ctx.Done():
		}
	}()
}

// displayString builds the overlay text, honoring the configured overlays.
func (g *Game) displayString(rec photo.Record) string {
	if !g.dateOverlay {
		rec.TakenTime = time.Time{}
	}
	if !g.locationOverlay {
		rec.Place = ""
	}
	return rec.DisplayString()
}

// freeSlide disposes the current slide's textures (if any).
func (g *Game) freeSlide() {
	if g.currentSlide == nil {
		return
	}
	g.currentSlide.dispose()
	g.currentSlide = nil
}

// Draw is called every frame (~60fps).
func (g *Game) Draw(screen *ebiten.Image) {
	if g.loadingError != nil {
		drawDebugString(screen, "Error loading image:\n"+g.loadingError.Error())
		return
	}

	if g.session.Len() == 0 {
		drawDebugString(screen, "No photos found.")
		return
	}

	if g.currentSlide == nil {
		drawDebugString(screen, "Loading slide...")
		return
	}

	drawSlide(screen, g.currentSlide, g.annotation)
}

// Layout sets the logical screen size. Ebiten will scale to the actual display.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 1920, 1080
}
