package skydive

import "github.com/vovakirdan/tui-skydive/internal/core"

// Draw colors used by the game.
const (
	colorsSky     core.DrawColors = 0x10
	colorsGround  core.DrawColors = 0x02
	colorsSprite  core.DrawColors = 0x40
	colorsText    core.DrawColors = 0x4
	colorsPlane   core.DrawColors = 0x44
	colorsTarget  core.DrawColors = 0x30
	colorsWinText core.DrawColors = 0x3
)

// Render draws the current frame: background and wind flag, the active
// phase, then the tries and score overlay.
func (g *Game) Render(dst core.Surface) {
	drawBackground(dst, g.wind)
	g.phase.draw(g, dst)
	drawOverlay(dst, g.tries, g.score)
}

func drawBackground(dst core.Surface, w Wind) {
	dst.SetColors(colorsSky)
	dst.Rect(0, 0, core.FramebufferWidth, core.FramebufferHeight)

	dst.SetColors(colorsGround)
	dst.Rect(0, int(GroundY), core.FramebufferWidth, core.FramebufferHeight-int(GroundY))

	drawWind(dst, w)
}

func drawWind(dst core.Surface, w Wind) {
	x := 0
	flags := core.Blit1BPP
	if w.DX < 0 {
		flags |= core.BlitFlipX
		x -= 4
	}
	dst.SetColors(colorsSprite)
	dst.Blit(spriteFlags[w.Strength()], 76+x, 137, 8, 8, flags)
}

func drawOverlay(dst core.Surface, tries, score int) {
	dst.SetColors(colorsText)
	for i := range tries {
		dst.Text("X", 2+i*10, 2)
	}
	for i := range score {
		dst.Text("+", 148-i*10, 2)
	}
}

func drawPlane(dst core.Surface, p Plane) {
	x := int(p.X)
	dst.SetColors(colorsPlane)
	dst.Rect(x, PlaneY, 2, 4)
	dst.Rect(x+2, PlaneY+2, 2, 2)
	dst.Rect(x, PlaneY+4, 20, 4)
}

func drawTarget(dst core.Surface, t Target) {
	dst.SetColors(colorsTarget)
	left := int(t.Left)
	dst.Oval(left, int(GroundY)+1, int(t.Right)-left, 5)
}

func drawDiver(dst core.Surface, d Diver, splat bool) {
	x, y := int(d.X), int(d.Y)
	dst.SetColors(colorsSprite)
	switch {
	case splat:
		dst.Blit(spriteSplat, x-4, y, 8, 4, core.Blit1BPP)
	case d.Open:
		dst.Blit(spriteChute, x-4, y-4, 8, 8, core.Blit1BPP)
	default:
		dst.Blit(spriteFalling, x-4, y, 8, 5, core.Blit1BPP)
	}
}

// countdownText returns the countdown label for the given number of ticks
// since STARTING was entered.
func countdownText(elapsed uint64) (string, int) {
	switch {
	case elapsed > 180:
		return "GO!", 68
	case elapsed > 120:
		return "1", 78
	case elapsed > 60:
		return "2", 78
	case elapsed > 0:
		return "3", 78
	}
	return "", 0
}

func (titlePhase) draw(_ *Game, dst core.Surface) {
	dst.SetColors(colorsText)
	dst.Text("INSERT COIN", 45, 70)
}

func (startingPhase) draw(g *Game, dst core.Surface) {
	dst.SetColors(colorsText)
	if s, x := countdownText(g.ticks - g.enteredAt); s != "" {
		dst.Text(s, x, 70)
	}
}

func (p *readyPhase) draw(_ *Game, dst core.Surface) {
	drawPlane(dst, p.plane)
	drawTarget(dst, p.target)
}

func (noJumpPhase) draw(_ *Game, dst core.Surface) {
	dst.SetColors(colorsText)
	dst.Text("NO JUMP?", 45, 70)
}

func (p *fallingPhase) draw(_ *Game, dst core.Surface) {
	drawPlane(dst, p.plane)
	drawTarget(dst, p.target)
	drawDiver(dst, p.diver, false)
}

func (p crashedPhase) draw(_ *Game, dst core.Surface) {
	drawDiver(dst, p.diver, !p.tooFast)
	dst.SetColors(colorsText)
	if p.tooFast {
		dst.Text("TOO FAST!!!", 45, 60)
	}
	dst.Text("OUCH!!!", 45, 70)
}

func (winPhase) draw(_ *Game, dst core.Surface) {
	dst.SetColors(colorsWinText)
	dst.Text("YOU DID IT!", 8, 30)
	dst.Text("YOU MADE 10 JUMPS!", 8, 40)
	dst.Text("GREAT JOB!!", 8, 50)
}

func (gameOverPhase) draw(_ *Game, dst core.Surface) {
	dst.SetColors(colorsSprite)
	dst.Text("GAME OVER", 45, 70)
}
