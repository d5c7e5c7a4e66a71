package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Debug font glyph size in pixels
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// textCache keeps one rendered image per string so coloured text is not
// re-rasterised every frame
var textCache = map[string]*ebiten.Image{}

// maxCachedTexts bounds textCache; live entity dumps change every frame
const maxCachedTexts = 512

// drawColoredText draws text tinted with clr at x, y
func drawColoredText(dst *ebiten.Image, text string, x, y int, clr color.Color) {
	img, ok := textCache[text]
	if !ok {
		if len(textCache) >= maxCachedTexts {
			for k, old := range textCache {
				old.Deallocate()
				delete(textCache, k)
			}
		}
		img = ebiten.NewImage(max(len(text)*glyphWidth, 1), glyphHeight)
		ebitenutil.DebugPrintAt(img, text, 0, 0)
		textCache[text] = img
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(img, op)
}

// centeredX returns the x that centres text within width
func centeredX(text string, width int) int {
	return (width - len(text)*glyphWidth) / 2
}
