package editor

import (
	"path/filepath"
	"testing"
)

func TestPlaceUndoRedo(t *testing.T) {
	e := NewEditor()
	e.Place(100, 50)
	if len(e.Level.Ships) != 1 {
		t.Fatalf("ships = %d after place, want 1", len(e.Level.Ships))
	}
	if !e.Modified {
		t.Error("place did not mark the level modified")
	}
	s := e.Level.Ships[0]
	if s.X != 100 || s.Y != 50 || s.Kind != "raider" {
		t.Fatalf("placed ship = %+v", s)
	}
	if s.Name != "raider-1" {
		t.Errorf("auto name = %q, want raider-1", s.Name)
	}

	e.Undo()
	if len(e.Level.Ships) != 0 {
		t.Fatalf("ships = %d after undo, want 0", len(e.Level.Ships))
	}
	e.Redo()
	if len(e.Level.Ships) != 1 {
		t.Fatalf("ships = %d after redo, want 1", len(e.Level.Ships))
	}
	if e.Level.Ships[0] != s {
		t.Errorf("redo restored %+v, want %+v", e.Level.Ships[0], s)
	}
}

func TestRemoveRestoresInPlace(t *testing.T) {
	e := NewEditor()
	e.Place(0, 0)
	e.Place(10, 0)
	e.Place(20, 0)
	middle := e.Level.Ships[1]

	e.Remove(1)
	if len(e.Level.Ships) != 2 {
		t.Fatalf("ships = %d after remove, want 2", len(e.Level.Ships))
	}
	if e.Level.Ships[1].X != 20 {
		t.Fatalf("remove left %+v at index 1", e.Level.Ships[1])
	}

	e.Undo()
	if len(e.Level.Ships) != 3 {
		t.Fatalf("ships = %d after undo, want 3", len(e.Level.Ships))
	}
	if e.Level.Ships[1] != middle {
		t.Errorf("undo put %+v at index 1, want %+v", e.Level.Ships[1], middle)
	}
}

func TestMoveShipUndo(t *testing.T) {
	e := NewEditor()
	e.Place(0, 0)
	e.MoveShip(0, 75, -30)
	if e.Level.Ships[0].X != 75 || e.Level.Ships[0].Y != -30 {
		t.Fatalf("move left ship at (%v, %v)", e.Level.Ships[0].X, e.Level.Ships[0].Y)
	}
	e.Undo()
	if e.Level.Ships[0].X != 0 || e.Level.Ships[0].Y != 0 {
		t.Fatalf("undo left ship at (%v, %v)", e.Level.Ships[0].X, e.Level.Ships[0].Y)
	}
}

func TestSetPlayerKeepsSingleFlag(t *testing.T) {
	e := NewEditor()
	e.Place(0, 0)
	e.Place(50, 0)
	e.SetPlayer(0)
	e.SetPlayer(1)

	if e.Level.Ships[0].Player {
		t.Error("ship 0 still flagged player after handoff")
	}
	if !e.Level.Ships[1].Player {
		t.Error("ship 1 not flagged player")
	}
	if err := e.Level.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	e.Undo()
	if !e.Level.Ships[0].Player || e.Level.Ships[1].Player {
		t.Error("undo did not restore the previous player flag")
	}
}

func TestNewEditDropsRedoStack(t *testing.T) {
	e := NewEditor()
	e.Place(0, 0)
	e.Undo()
	e.Place(5, 5)
	if len(e.RedoStack) != 0 {
		t.Fatalf("redo stack = %d entries after a fresh edit, want 0", len(e.RedoStack))
	}
	e.Redo()
	if len(e.Level.Ships) != 1 {
		t.Fatalf("redo after a fresh edit changed the level, ships = %d", len(e.Level.Ships))
	}
}

func TestPickAtFindsNearest(t *testing.T) {
	e := NewEditor()
	e.Place(0, 0)
	e.Place(30, 0)
	if got := e.PickAt(22, 0, 15); got != 1 {
		t.Errorf("PickAt(22,0) = %d, want 1", got)
	}
	if got := e.PickAt(8, 0, 15); got != 0 {
		t.Errorf("PickAt(8,0) = %d, want 0", got)
	}
	if got := e.PickAt(200, 200, 15); got != -1 {
		t.Errorf("PickAt far away = %d, want -1", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.level")

	e := NewEditor()
	e.Level.Name = "arena"
	e.Place(120, -40)
	e.SetPlayer(0)
	if err := e.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if e.Modified {
		t.Error("save left the modified flag set")
	}

	f := NewEditor()
	if err := f.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Level.Name != "arena" || len(f.Level.Ships) != 1 {
		t.Fatalf("loaded %+v", f.Level)
	}
	if f.Level.Ships[0] != e.Level.Ships[0] {
		t.Errorf("loaded ship %+v, want %+v", f.Level.Ships[0], e.Level.Ships[0])
	}
	if len(f.UndoStack) != 0 {
		t.Error("load kept a stale undo stack")
	}

	f.Place(0, 0)
	if f.Level.Ships[1].Name != "raider-2" {
		t.Errorf("auto name after load = %q, want raider-2", f.Level.Ships[1].Name)
	}
}

func TestSaveRejectsInvalidLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.level")

	e := NewEditor()
	e.Brush.Health = 0
	e.Place(0, 0)
	if err := e.Save(path); err == nil {
		t.Fatal("Save accepted a ship with no health")
	}
}
