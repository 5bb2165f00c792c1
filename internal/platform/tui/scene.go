package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/games/survivor"
)

// hudRows is the number of status lines above the arena.
const hudRows = 1

// SpriteSource resolves sprite frames and colors for drawing.
type SpriteSource interface {
	survivor.Assets
	Color(spriteID string) core.Color
}

// Viewport places the fixed-size world on the terminal. One terminal cell
// shows one glyph cell of the world.
type Viewport struct {
	OriginX, OriginY int // screen cell of world (0, 0)
	Cols, Rows       int // world size in cells
}

// NewViewport centers a world of the given size below the HUD.
func NewViewport(screenW, screenH int, world core.Vec2) Viewport {
	cols := int(math.Ceil(world.X / core.GlyphW))
	rows := int(math.Ceil(world.Y / core.GlyphH))
	return Viewport{
		OriginX: max((screenW-cols)/2, 0),
		OriginY: hudRows + max((screenH-hudRows-rows)/2, 0),
		Cols:    cols,
		Rows:    rows,
	}
}

// ToWorld returns the world point at the center of a screen cell.
func (v Viewport) ToWorld(x, y int) core.Vec2 {
	return core.V(
		(float64(x-v.OriginX)+0.5)*core.GlyphW,
		(float64(y-v.OriginY)+0.5)*core.GlyphH,
	)
}

// ToCell returns the screen cell containing a world point.
func (v Viewport) ToCell(p core.Vec2) (x, y int) {
	return v.OriginX + int(math.Floor(p.X/core.GlyphW)), v.OriginY + int(math.Floor(p.Y/core.GlyphH))
}

// inArena reports whether a screen cell shows part of the world.
func (v Viewport) inArena(x, y int) bool {
	return x >= v.OriginX && x < v.OriginX+v.Cols && y >= v.OriginY && y < v.OriginY+v.Rows
}

// upgradeColors tints the level-up options.
var upgradeColors = map[string]core.Color{
	"SNIPER":    core.ColorLightBlue,
	"SPEEDSTER": core.ColorCyan,
	"ARCHER":    core.ColorGreen,
	"BERSERK":   core.ColorRed,
	"HEALER":    core.ColorPink,
	"INVESTOR":  core.ColorYellow,
	"SEEKER":    core.ColorPurple,
	"BOMBER":    core.ColorOrange,
}

func upgradeColor(name string) core.Color {
	if c, ok := upgradeColors[name]; ok {
		return c
	}
	return core.ColorWhite
}

// mirrored swaps direction-sensitive glyphs when a sprite faces left.
var mirrored = map[rune]rune{
	'/': '\\', '\\': '/',
	'(': ')', ')': '(',
	'<': '>', '>': '<',
	'{': '}', '}': '{',
	'[': ']', ']': '[',
}

// DrawScene renders a snapshot into the screen buffer.
func DrawScene(s *core.Screen, snap survivor.Snapshot, src SpriteSource) {
	s.Clear()
	if s.Width() < 40 || s.Height() < 12 {
		s.DrawTextCentered(s.Height()/2, "terminal too small", core.ColorRed)
		return
	}

	vp := NewViewport(s.Width(), s.Height(), snap.World)
	drawArenaFrame(s, vp)

	views := append([]survivor.SpriteView(nil), snap.Sprites...)
	sort.SliceStable(views, func(i, j int) bool { return views[i].Layer < views[j].Layer })
	for _, v := range views {
		if v.Blink && (snap.Tick/4)%2 == 0 {
			continue
		}
		drawSprite(s, vp, v, src)
	}
	for _, b := range snap.Blasts {
		drawBlast(s, vp, b)
	}

	drawHUD(s, snap.HUD)

	switch snap.State {
	case core.StateLevelUpMenu:
		drawLevelUp(s, snap.HUD.Level, snap.Options)
	case core.StatePaused:
		drawDialog(s, core.ColorYellow, "PAUSED", []string{"p: resume   b: menu   q: quit"})
	case core.StateGameOver:
		drawDialog(s, core.ColorRed, "GAME OVER", []string{
			fmt.Sprintf("score %d   level %d   kills %d", snap.HUD.Score, snap.HUD.Level, snap.HUD.Kills),
			"r: restart   b: menu   q: quit",
		})
	}
}

// drawArenaFrame outlines the world when the terminal has room for it.
func drawArenaFrame(s *core.Screen, vp Viewport) {
	if vp.OriginX < 1 || vp.OriginY < hudRows+1 {
		return
	}
	if vp.OriginX+vp.Cols >= s.Width() || vp.OriginY+vp.Rows >= s.Height() {
		return
	}
	s.DrawBox(vp.OriginX-1, vp.OriginY-1, vp.Cols+2, vp.Rows+2, core.ColorGray)
}

// drawSprite samples the scaled frame once per covered screen cell.
func drawSprite(s *core.Screen, vp Viewport, v survivor.SpriteView, src SpriteSource) {
	frame := src.Animation(v.Sprite, v.Anim).Frame(v.Frame)
	body := core.Body{Frame: frame, Center: v.Pos, Scale: v.Scale, Mirror: v.Mirror}
	r := body.Rect()
	scale := v.Scale
	if scale <= 0 {
		scale = 1
	}
	color := src.Color(v.Sprite)
	cols := frame.Cols()

	x0, y0 := vp.ToCell(core.V(r.X, r.Y))
	x1, y1 := vp.ToCell(core.V(r.Right()-0.001, r.Bottom()-0.001))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !vp.inArena(x, y) {
				continue
			}
			p := vp.ToWorld(x, y)
			col := int(math.Floor((p.X - r.X) / (core.GlyphW * scale)))
			row := int(math.Floor((p.Y - r.Y) / (core.GlyphH * scale)))
			if v.Mirror {
				col = cols - 1 - col
			}
			ch := frame.At(col, row)
			if ch == ' ' {
				continue
			}
			if v.Mirror {
				if m, ok := mirrored[ch]; ok {
					ch = m
				}
			}
			s.SetColored(x, y, ch, color)
		}
	}

	if v.Bar >= 0 {
		drawBar(s, vp, x0, x1-x0+1, y0-1, v)
	}
}

// drawBar draws a health or durability bar above a sprite.
func drawBar(s *core.Screen, vp Viewport, x, width, y int, v survivor.SpriteView) {
	if width < 1 || !vp.inArena(x, y) {
		return
	}
	filled := int(math.Round(v.Bar * float64(width)))
	color := barColor(v.Bar)
	if v.Layer == survivor.LayerWeapon {
		color = core.ColorLightBlue
	}
	for i := range width {
		if !vp.inArena(x+i, y) {
			continue
		}
		if i < filled {
			s.SetColored(x+i, y, '▀', color)
		} else {
			s.SetColored(x+i, y, '▀', core.ColorGray)
		}
	}
}

func barColor(ratio float64) core.Color {
	switch {
	case ratio > 0.5:
		return core.ColorGreen
	case ratio > 0.25:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}

// drawBlast draws the expanding explosion ring.
func drawBlast(s *core.Screen, vp Viewport, b survivor.BlastView) {
	points := max(8, int(b.Radius/4))
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(points)
		x, y := vp.ToCell(b.Pos.Add(core.FromAngle(angle, b.Radius)))
		if vp.inArena(x, y) {
			s.SetColored(x, y, '*', core.ColorOrange)
		}
	}
}

// drawHUD writes the status line.
func drawHUD(s *core.Screen, h survivor.HUD) {
	s.FillRect(0, 0, s.Width(), hudRows, ' ', core.ColorDefault)

	x := 1
	for i := range h.MaxHealth {
		if i < h.Health {
			s.SetColored(x, 0, '♥', core.ColorRed)
		} else {
			s.SetColored(x, 0, '♡', core.ColorGray)
		}
		x++
	}
	x += 2

	level := fmt.Sprintf("LV %d ", h.Level)
	s.DrawTextColored(x, 0, level, core.ColorWhite)
	x += len(level)
	x = drawMeter(s, x, 10, h.XP/h.XPNext, core.ColorBrightGreen)
	x += 2

	stats := fmt.Sprintf("SCORE %d  KILLS %d", h.Score, h.Kills)
	s.DrawTextColored(x, 0, stats, core.ColorYellow)
	x += len(stats) + 2

	if h.Weapon > 0 {
		wand := fmt.Sprintf("WAND %d", h.Weapon)
		s.DrawTextColored(x, 0, wand, core.ColorPurple)
		x += len(wand) + 2
	}

	if h.BossHealth >= 0 && x+17 < s.Width() {
		s.DrawTextColored(x, 0, "BOSS ", core.ColorBrightRed)
		drawMeter(s, x+5, 10, h.BossHealth, core.ColorBrightRed)
	}
}

// drawMeter draws a bracketed bar and returns the next free column.
func drawMeter(s *core.Screen, x, width int, ratio float64, c core.Color) int {
	if math.IsNaN(ratio) {
		ratio = 0
	}
	ratio = core.ClampF(ratio, 0, 1)
	filled := int(math.Round(ratio * float64(width)))
	s.SetColored(x, 0, '[', core.ColorGray)
	for i := range width {
		if i < filled {
			s.SetColored(x+1+i, 0, '=', c)
		} else {
			s.SetColored(x+1+i, 0, ' ', core.ColorGray)
		}
	}
	s.SetColored(x+1+width, 0, ']', core.ColorGray)
	return x + width + 2
}

// drawLevelUp shows the upgrade choices.
func drawLevelUp(s *core.Screen, level int, options []survivor.Upgrade) {
	lines := make([]string, 0, len(options))
	width := 0
	for i, o := range options {
		line := fmt.Sprintf("%d  %-10s %s", i+1, o.Name, o.Description)
		lines = append(lines, line)
		width = max(width, len([]rune(line)))
	}
	footer := fmt.Sprintf("press 1-%d to choose", len(options))
	width = max(width, len(footer), 20)

	w := min(width+4, s.Width())
	h := len(lines) + 5
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2

	s.FillRect(x, y, w, h, ' ', core.ColorDefault)
	s.DrawBox(x, y, w, h, core.ColorBrightYellow)
	s.DrawTextCentered(y+1, fmt.Sprintf("LEVEL %d!", level), core.ColorBrightYellow)
	for i, line := range lines {
		s.DrawTextColored(x+2, y+2+i, line, upgradeColor(options[i].Name))
	}
	s.DrawTextCentered(y+h-2, footer, core.ColorGray)
}

// drawDialog draws a centered box with a title and body lines.
func drawDialog(s *core.Screen, c core.Color, title string, body []string) {
	width := len(title)
	for _, line := range body {
		width = max(width, len(line))
	}
	w := min(width+6, s.Width())
	h := len(body) + 4
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2

	s.FillRect(x, y, w, h, ' ', core.ColorDefault)
	s.DrawBox(x, y, w, h, c)
	s.DrawTextCentered(y+1, strings.ToUpper(title), c)
	for i, line := range body {
		s.DrawTextCentered(y+2+i, line, core.ColorWhite)
	}
}
