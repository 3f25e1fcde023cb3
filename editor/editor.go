// Package editor holds the level editor state: a blueprint being
// edited plus an undo/redo stack of ship edits.
package editor

import (
	"fmt"
	"math"

	"github.com/relayzero/drift-engine/engine/level"
	"github.com/relayzero/drift-engine/engine/vec"
)

// Action is one undoable edit. Old is nil when the ship was just
// placed, New is nil when it was removed.
type Action struct {
	Index int
	Old   *level.ShipBlueprint
	New   *level.ShipBlueprint
}

// Editor holds level editor state
type Editor struct {
	Level     *level.Blueprint
	Brush     level.ShipBlueprint
	UndoStack [][]Action
	RedoStack [][]Action
	FilePath  string
	Modified  bool
	ShowGrid  bool
	placed    int
}

// NewEditor creates an editor with an empty level and a raider brush
func NewEditor() *Editor {
	return &Editor{
		Level:    level.New("untitled"),
		Brush:    level.ShipBlueprint{Kind: "raider", Health: 3, TurnSpeed: 0.03, MoveSpeed: 0.8},
		ShowGrid: true,
	}
}

// Load reads a level file into the editor
func (e *Editor) Load(path string) error {
	b, err := level.LoadJSON(path)
	if err != nil {
		return err
	}
	e.Level = b
	e.FilePath = path
	e.Modified = false
	e.UndoStack = nil
	e.RedoStack = nil
	e.placed = len(b.Ships)
	return nil
}

// Save writes the current level
func (e *Editor) Save(path string) error {
	if path == "" {
		path = e.FilePath
	}
	if path == "" {
		path = "untitled.level"
	}
	if err := e.Level.Validate(); err != nil {
		return err
	}
	e.FilePath = path
	e.Modified = false
	return e.Level.SaveJSON(path)
}

// NewLevel replaces the working level with a fresh one
func (e *Editor) NewLevel(name string) {
	e.Level = level.New(name)
	e.FilePath = ""
	e.Modified = false
	e.UndoStack = nil
	e.RedoStack = nil
	e.placed = 0
}

// Place stamps the brush at a world position
func (e *Editor) Place(x, y float64) int {
	e.placed++
	ship := e.Brush
	ship.Name = fmt.Sprintf("%s-%d", ship.Kind, e.placed)
	ship.X = x
	ship.Y = y
	e.Level.Ships = append(e.Level.Ships, ship)
	index := len(e.Level.Ships) - 1
	e.push([]Action{{Index: index, New: &ship}})
	return index
}

// Remove deletes the ship at index
func (e *Editor) Remove(index int) {
	if index < 0 || index >= len(e.Level.Ships) {
		return
	}
	old := e.Level.Ships[index]
	e.Level.Ships = append(e.Level.Ships[:index], e.Level.Ships[index+1:]...)
	e.push([]Action{{Index: index, Old: &old}})
}

// MoveShip drags the ship at index to a new position
func (e *Editor) MoveShip(index int, x, y float64) {
	if index < 0 || index >= len(e.Level.Ships) {
		return
	}
	old := e.Level.Ships[index]
	e.Level.Ships[index].X = x
	e.Level.Ships[index].Y = y
	moved := e.Level.Ships[index]
	e.push([]Action{{Index: index, Old: &old, New: &moved}})
}

// RotateShip sets the heading of the ship at index
func (e *Editor) RotateShip(index int, rot float64) {
	if index < 0 || index >= len(e.Level.Ships) {
		return
	}
	old := e.Level.Ships[index]
	e.Level.Ships[index].Rotation = rot
	turned := e.Level.Ships[index]
	e.push([]Action{{Index: index, Old: &old, New: &turned}})
}

// SetPlayer marks the ship at index as the player and clears the flag
// everywhere else, as one undoable edit
func (e *Editor) SetPlayer(index int) {
	if index < 0 || index >= len(e.Level.Ships) {
		return
	}
	var actions []Action
	for i := range e.Level.Ships {
		want := i == index
		if e.Level.Ships[i].Player == want {
			continue
		}
		old := e.Level.Ships[i]
		e.Level.Ships[i].Player = want
		changed := e.Level.Ships[i]
		actions = append(actions, Action{Index: i, Old: &old, New: &changed})
	}
	if len(actions) > 0 {
		e.push(actions)
	}
}

// PickAt returns the index of the nearest ship within the given
// distance of a world position, or -1
func (e *Editor) PickAt(x, y, within float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, s := range e.Level.Ships {
		d := vec.V(s.X-x, s.Y-y).Len()
		if d <= within && d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Undo reverts the last edit
func (e *Editor) Undo() {
	if len(e.UndoStack) == 0 {
		return
	}
	actions := e.UndoStack[len(e.UndoStack)-1]
	e.UndoStack = e.UndoStack[:len(e.UndoStack)-1]
	for i := len(actions) - 1; i >= 0; i-- {
		e.apply(actions[i], true)
	}
	e.RedoStack = append(e.RedoStack, actions)
	e.Modified = true
}

// Redo re-applies the last undone edit
func (e *Editor) Redo() {
	if len(e.RedoStack) == 0 {
		return
	}
	actions := e.RedoStack[len(e.RedoStack)-1]
	e.RedoStack = e.RedoStack[:len(e.RedoStack)-1]
	for _, a := range actions {
		e.apply(a, false)
	}
	e.UndoStack = append(e.UndoStack, actions)
	e.Modified = true
}

func (e *Editor) apply(a Action, undo bool) {
	target := a.New
	if undo {
		target = a.Old
	}
	switch {
	case target == nil:
		// the edit being restored had no ship here
		if a.Index >= 0 && a.Index < len(e.Level.Ships) {
			e.Level.Ships = append(e.Level.Ships[:a.Index], e.Level.Ships[a.Index+1:]...)
		}
	case (undo && a.New == nil) || (!undo && a.Old == nil):
		// restoring a removal or redoing a placement inserts
		ships := e.Level.Ships
		ships = append(ships, level.ShipBlueprint{})
		copy(ships[a.Index+1:], ships[a.Index:])
		ships[a.Index] = *target
		e.Level.Ships = ships
	default:
		if a.Index >= 0 && a.Index < len(e.Level.Ships) {
			e.Level.Ships[a.Index] = *target
		}
	}
}

func (e *Editor) push(actions []Action) {
	e.UndoStack = append(e.UndoStack, actions)
	e.RedoStack = nil
	e.Modified = true
}
