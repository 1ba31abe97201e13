package hopper

import (
	"math"

	"github.com/vovakirdan/hopper/internal/assets"
	"github.com/vovakirdan/hopper/internal/core"
	"github.com/vovakirdan/hopper/internal/engine"
	"github.com/vovakirdan/hopper/internal/physics"
)

const hintText = "ENTER or click PLAY"

// Render draws the scene back to front.
func (s *Scene) Render(ctx *engine.Context, dst *core.Screen) {
	view := ctx.View
	lib := ctx.Assets

	s.drawBackground(dst, view, lib)

	s.drawBody(dst, view, lib, imgBase, s.ground, 0)

	life := lib.ImageOr(imgLife, 2, 1)
	for _, pos := range s.lifeIcons {
		drawCentered(dst, view, life, pos.X, pos.Y, 0)
	}

	enemy := lib.ImageOr(imgEnemy, cellsX(view, s.enemy.Size.X), cellsY(view, s.enemy.Size.Y))
	s.drawBody(dst, view, lib, imgEnemy, s.enemy, rotationFrame(s.enemyAngle, len(enemy.Frames)))
	s.drawBody(dst, view, lib, imgPlayer, s.player, 0)

	col, row := view.ToCell(s.cfg.HUD.ScoreX, s.cfg.HUD.ScoreY)
	dst.DrawTextColored(col, row, s.scoreText, core.ColorWhite)

	if s.button != nil && s.button.Alive() {
		btn := lib.ImageOr(imgPlayBtn, 16, 3)
		drawCentered(dst, view, btn, s.cfg.HUD.ButtonX, s.cfg.HUD.ButtonY, 0)

		bcol, brow := view.ToCell(s.cfg.HUD.ButtonX, s.cfg.HUD.ButtonY)
		dst.DrawTextColored(bcol-len(hintText)/2, brow+btn.Height()/2+1, hintText, core.ColorGray)
	}

	if s.ambience != nil && s.ambience.IsPlaying() {
		dst.DrawTextColored(view.Cols-2, 0, "♪", core.ColorCyan)
	}
}

// drawBackground tiles the background horizontally, scrolled by bgScroll,
// with its bottom row on the floor line.
func (s *Scene) drawBackground(dst *core.Screen, view core.Viewport, lib *assets.Library) {
	_, floorRow := view.ToCell(0, s.cfg.Playfield.Floor)
	bg, ok := lib.Image(imgBg)
	if !ok || bg.Width() == 0 {
		return
	}

	shift := int(s.bgScroll/view.CellSize().X) % bg.Width()
	top := floorRow - bg.Height()
	for x := -shift; x < view.Cols; x += bg.Width() {
		bg.Draw(dst, x, top, 0)
	}
}

// drawBody draws a sprite centered on a physics body.
func (s *Scene) drawBody(dst *core.Screen, view core.Viewport, lib *assets.Library, name string, b *physics.Body, frame int) {
	spr := lib.ImageOr(name, cellsX(view, b.Size.X), cellsY(view, b.Size.Y))
	c := b.Center()
	drawCentered(dst, view, spr, c.X, c.Y, frame)
}

// drawCentered draws spr with its middle cell on world point (x, y).
func drawCentered(dst *core.Screen, view core.Viewport, spr *assets.Sprite, x, y float64, frame int) {
	col, row := view.ToCell(x, y)
	spr.Draw(dst, col-spr.Width()/2, row-spr.Height()/2, frame)
}

func cellsX(view core.Viewport, px float64) int {
	return int(math.Round(px / view.CellSize().X))
}

func cellsY(view core.Viewport, px float64) int {
	return int(math.Round(px / view.CellSize().Y))
}
