package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"starfolio/field"
)

const (
	hudMarginX = 8
	hudMarginY = 6
)

var (
	hudFace      = text.NewGoXFace(basicfont.Face7x13)
	colorHUDText = color.NRGBA{R: 134, G: 239, B: 172, A: 220}
)

// hudText formats the overlay lines for the current field.
func hudText(st field.State, tps float64) string {
	return fmt.Sprintf("TPS %.0f\nstars %d\nshooting %d/%d\ncomets %d/%d",
		tps,
		len(st.Ambient),
		len(st.Shooting), field.MaxShootingStars,
		len(st.Comets), field.MaxComets)
}

// drawHUD draws the population overlay in the top-left corner.
func drawHUD(screen *ebiten.Image, st field.State, tps float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(hudMarginX, hudMarginY)
	op.ColorScale.ScaleWithColor(colorHUDText)
	op.LineSpacing = hudFace.Metrics().HAscent + hudFace.Metrics().HDescent + 2
	text.Draw(screen, hudText(st, tps), hudFace, op)
}
