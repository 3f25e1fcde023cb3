package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Mouse tracks pointer state per frame. The game itself is pad and
// keyboard driven; this exists for the level editor.
type Mouse struct {
	X, Y   int
	DX, DY int
	prevX  int
	prevY  int

	LeftPressed       bool
	RightPressed      bool
	MiddlePressed     bool
	LeftJustPressed   bool
	RightJustPressed  bool
	LeftJustReleased  bool
	RightJustReleased bool
	ScrollY           float64

	DragStartX, DragStartY int
	Dragging               bool
	DragThreshold          int
}

func NewMouse() *Mouse {
	return &Mouse{DragThreshold: 5}
}

// Update should be called every frame
func (m *Mouse) Update() {
	m.prevX = m.X
	m.prevY = m.Y
	m.X, m.Y = ebiten.CursorPosition()
	m.DX = m.X - m.prevX
	m.DY = m.Y - m.prevY

	leftDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	m.LeftPressed = leftDown
	m.RightPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	m.MiddlePressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	m.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	m.RightJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	m.LeftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	m.RightJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight)

	_, scrollY := ebiten.Wheel()
	m.ScrollY = scrollY

	if m.LeftJustPressed {
		m.DragStartX = m.X
		m.DragStartY = m.Y
		m.Dragging = false
	}
	if leftDown && !m.Dragging {
		dx := m.X - m.DragStartX
		dy := m.Y - m.DragStartY
		if dx*dx+dy*dy > m.DragThreshold*m.DragThreshold {
			m.Dragging = true
		}
	}
	if !leftDown {
		m.Dragging = false
	}
}

// DragRect returns the selection rectangle if dragging
func (m *Mouse) DragRect() (x1, y1, x2, y2 int, active bool) {
	if !m.Dragging {
		return 0, 0, 0, 0, false
	}
	return m.DragStartX, m.DragStartY, m.X, m.Y, true
}
