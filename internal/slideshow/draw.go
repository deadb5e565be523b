package slideshow

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// drawDebugString prints text in the top-left corner of the screen.
// Used for errors and debug messages.
func drawDebugString(screen *ebiten.Image, msg string) {
	screen.Fill(color.RGBA{0, 0, 0, 255}) // Clear to black
	ebitenutil.DebugPrint(screen, msg)
}

// drawSlide renders one image scaled and centered, with the metadata
// annotation (if any) overlaid in the bottom-left corner.
func drawSlide(screen *ebiten.Image, t *TiledImage, annotation string) {
	screen.Fill(color.RGBA{0, 0, 0, 255}) // Clear to black

	drawTiledImage(screen, t)
	if annotation != "" {
		drawAnnotation(screen, annotation)
	}
}

// drawTiledImage centers & scales one TiledImage to fit the screen.
func drawTiledImage(screen *ebiten.Image, t *TiledImage) {
	sw, sh := screen.Size()
	scale := computeScale(t.totalWidth, t.totalHeight, sw, sh)

	totalW := float64(t.totalWidth) * scale
	totalH := float64(t.totalHeight) * scale
	offsetX := (float64(sw) - totalW) / 2
	offsetY := (float64(sh) - totalH) / 2

	tileIndex := 0
	for tileY := 0; tileY*maxTileSize < t.totalHeight; tileY++ {
		for tileX := 0; tileX*maxTileSize < t.totalWidth; tileX++ {
			subX := tileX * maxTileSize
			subY := tileY * maxTileSize

			op := &ebiten.DrawImageOptions{}
			// translate center to (0,0)
			op.GeoM.Translate(-float64(maxTileSize)/2, -float64(maxTileSize)/2)
			// scale
			op.GeoM.Scale(scale, scale)
			// move back
			op.GeoM.Translate(
				offsetX+float64(subX)*scale+float64(maxTileSize)*scale/2,
				offsetY+float64(subY)*scale+float64(maxTileSize)*scale/2,
			)

			tile := t.tiles[tileIndex]
			screen.DrawImage(tile, op)
			tileIndex++
		}
	}
}

// drawAnnotation places the annotation string in the bottom-left corner.
func drawAnnotation(screen *ebiten.Image, annotation string) {
	face := basicfont.Face7x13
	_, sh := screen.Size()

	x := 20
	y := sh - 20
	text.Draw(screen, annotation, face, x, y, color.White)
}
