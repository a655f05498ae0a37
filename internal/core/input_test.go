package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionJump) {
		t.Error("empty frame should not have Jump")
	}

	f.Set(ActionJump)
	f.Set(ActionLeft)
	if !f.Has(ActionJump) || !f.Has(ActionLeft) {
		t.Error("frame should have Jump and Left after Set")
	}
	if f.Has(ActionRight) {
		t.Error("frame should not have Right")
	}

	f.Clear()
	if f.Has(ActionJump) || f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameShoot(t *testing.T) {
	f := NewInputFrame()
	f.Shoot(12, 7)

	if !f.Has(ActionShoot) {
		t.Fatal("Shoot should set ActionShoot")
	}
	if f.Aim == nil || *f.Aim != (Point{X: 12, Y: 7}) {
		t.Errorf("Aim = %v, expected (12, 7)", f.Aim)
	}

	f.Clear()
	if f.Aim != nil {
		t.Error("Clear should reset the aim point")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	f.Shoot(1, 2)

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionJump) || !c.Has(ActionShoot) {
		t.Error("clone should keep actions after original is cleared")
	}
	if c.Aim == nil || c.Aim.X != 1 || c.Aim.Y != 2 {
		t.Errorf("clone aim = %v, expected (1, 2)", c.Aim)
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:   "None",
		ActionLeft:   "Left",
		ActionShoot:  "Shoot",
		ActionQuit:   "Quit",
		Action(9999): "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}
