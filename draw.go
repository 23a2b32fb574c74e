package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/sanity/common"
	"github.com/milk9111/sanity/ecs"
	"github.com/milk9111/sanity/ecs/component"
	"golang.org/x/image/colornames"
)

var (
	backgroundColor = color.RGBA{R: 0x14, G: 0x14, B: 0x1c, A: 0xff}
	lowSanityColor  = color.RGBA{R: 0x2a, G: 0x10, B: 0x14, A: 0xff}
	barColor        = color.RGBA{R: 0x8c, G: 0x7c, B: 0xc8, A: 0xff}
)

// camera maps world units (y up) to screen pixels (y down) around a focus.
type camera struct {
	focus common.Vec2
}

func (c camera) point(p common.Vec2) (float32, float32) {
	x := (p.X-c.focus.X)*pixelsPerUnit + baseWidth/2
	y := baseHeight/2 - (p.Y-c.focus.Y)*pixelsPerUnit
	return float32(x), float32(y)
}

// rect returns the screen-space top-left corner and size of box.
func (c camera) rect(box common.Box) (x, y, w, h float32) {
	lo, hi := box.Min(), box.Max()
	x, y = c.point(common.Vec2{X: lo.X, Y: hi.Y})
	return x, y, float32(box.Size.X * pixelsPerUnit), float32(box.Size.Y * pixelsPerUnit)
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.lowSanity {
		screen.Fill(lowSanityColor)
	} else {
		screen.Fill(backgroundColor)
	}

	sc := g.scene
	cam := camera{focus: sc.player.Position()}
	w := sc.world

	ecs.ForEach(w, component.GroundComponent.Kind(), func(_ ecs.Entity, gr *component.Ground) {
		x, y, bw, bh := cam.rect(gr.Box)
		vector.FillRect(screen, x, y, bw, bh, colornames.Dimgray, false)
	})

	ecs.ForEach2(w, component.DrawableComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, d *component.Drawable, b *component.Body) {
		x, y, bw, bh := cam.rect(common.Box{Center: b.Rigid.Position(), Size: d.Size})
		vector.FillRect(screen, x, y, bw, bh, d.Color, false)
	})

	if g.debug {
		g.drawDebug(screen, cam)
	}
	g.drawHUD(screen)

	if g.paused {
		op := &text.DrawOptions{}
		op.GeoM.Translate(baseWidth/2-24, baseHeight/2)
		op.ColorScale.ScaleWithColor(colornames.White)
		text.Draw(screen, "PAUSED", g.face, op)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image, cam camera) {
	w := g.scene.world

	ecs.ForEach(w, component.TrapComponent.Kind(), func(_ ecs.Entity, t *component.Trap) {
		x, y, bw, bh := cam.rect(t.Area)
		clr := colornames.Orange
		if t.Strike == nil || !t.Strike.Armed() {
			clr = colornames.Gray
		}
		vector.StrokeRect(screen, x, y, bw, bh, 1, clr, false)
	})

	ecs.ForEach(w, component.ActorComponent.Kind(), func(_ ecs.Entity, a *component.Actor) {
		c := a.Controller
		if c == nil {
			return
		}
		pos := c.Position()
		if c.Ground != nil {
			px, py := cam.point(pos.Add(c.Ground.Offset))
			clr := colornames.Red
			if c.Grounded() {
				clr = colornames.Lime
			}
			vector.StrokeCircle(screen, px, py, float32(c.Ground.Radius*pixelsPerUnit), 1, clr, false)
		}

		label := fmt.Sprintf("%d %v", c.CurrentResource(), c.Abilities.State())
		if c.AI != nil {
			label += fmt.Sprintf(" %v", c.AI.Mode())
		}
		x, y := cam.point(pos)
		ebitenutil.DebugPrintAt(screen, label, int(x)-20, int(y)-44)
	})
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	p := g.scene.player
	frac := p.Resource.Fraction()
	vector.FillRect(screen, 16, 16, 200, 12, colornames.Darkslategray, false)
	vector.FillRect(screen, 16, 16, float32(200*frac), 12, barColor, false)

	status := fmt.Sprintf("sanity %d/%d  %s", p.CurrentResource(), p.MaxResource(), g.scene.spec.Name)
	if g.debug {
		status += fmt.Sprintf("  t=%.2f  %.0f fps", g.scene.clock.Now, ebiten.ActualFPS())
	}
	ebitenutil.DebugPrintAt(screen, status, 224, 14)
	ebitenutil.DebugPrintAt(screen, strings.Join(g.lines, "\n"), 16, 40)
}
