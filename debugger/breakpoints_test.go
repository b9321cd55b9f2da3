package debugger

import "testing"

func TestAddBreakpoint(t *testing.T) {
	bm := NewBreakpointManager()

	bp := bm.AddBreakpoint(0x1000, false)
	if bp.ID != 1 {
		t.Errorf("ID = %d, want 1", bp.ID)
	}
	if bp.Address != 0x1000 {
		t.Errorf("Address = 0x%X, want 0x1000", bp.Address)
	}
	if !bp.Enabled {
		t.Error("new breakpoint should be enabled")
	}
	if bp.Temporary {
		t.Error("AddBreakpoint(_, false) should not be temporary")
	}
}

func TestAddBreakpointReplacesExisting(t *testing.T) {
	bm := NewBreakpointManager()

	first := bm.AddBreakpoint(0x2000, false)
	bm.DisableBreakpoint(first.ID)

	second := bm.AddBreakpoint(0x2000, true)
	if second.ID != first.ID {
		t.Errorf("re-adding at the same address should reuse its ID, got %d want %d", second.ID, first.ID)
	}
	if !second.Enabled {
		t.Error("re-adding a breakpoint should re-enable it")
	}
	if !second.Temporary {
		t.Error("re-adding with temporary=true should set Temporary")
	}
	if bm.Count() != 1 {
		t.Errorf("Count() = %d, want 1", bm.Count())
	}
}

func TestDeleteBreakpoint(t *testing.T) {
	bm := NewBreakpointManager()
	bp := bm.AddBreakpoint(0x3000, false)

	if err := bm.DeleteBreakpoint(bp.ID); err != nil {
		t.Fatalf("DeleteBreakpoint: %v", err)
	}
	if bm.GetBreakpoint(0x3000) != nil {
		t.Error("breakpoint should be gone after delete")
	}
	if err := bm.DeleteBreakpoint(bp.ID); err == nil {
		t.Error("deleting a missing breakpoint should error")
	}
}

func TestEnableDisableBreakpoint(t *testing.T) {
	bm := NewBreakpointManager()
	bp := bm.AddBreakpoint(0x4000, false)

	if err := bm.DisableBreakpoint(bp.ID); err != nil {
		t.Fatalf("DisableBreakpoint: %v", err)
	}
	if bm.GetBreakpoint(0x4000).Enabled {
		t.Error("breakpoint should be disabled")
	}

	if err := bm.EnableBreakpoint(bp.ID); err != nil {
		t.Fatalf("EnableBreakpoint: %v", err)
	}
	if !bm.GetBreakpoint(0x4000).Enabled {
		t.Error("breakpoint should be enabled again")
	}

	if err := bm.EnableBreakpoint(999); err == nil {
		t.Error("enabling an unknown id should error")
	}
}

func TestProcessHitIncrementsCount(t *testing.T) {
	bm := NewBreakpointManager()
	bm.AddBreakpoint(0x5000, false)

	bm.ProcessHit(0x5000)
	hit := bm.ProcessHit(0x5000)
	if hit.HitCount != 2 {
		t.Errorf("HitCount = %d, want 2", hit.HitCount)
	}
	if bm.GetBreakpoint(0x5000) == nil {
		t.Error("non-temporary breakpoint should survive a hit")
	}
}

func TestProcessHitDeletesTemporary(t *testing.T) {
	bm := NewBreakpointManager()
	bm.AddBreakpoint(0x6000, true)

	hit := bm.ProcessHit(0x6000)
	if hit == nil || hit.HitCount != 1 {
		t.Fatalf("expected a single recorded hit, got %+v", hit)
	}
	if bm.GetBreakpoint(0x6000) != nil {
		t.Error("temporary breakpoint should be removed after its first hit")
	}
}

func TestProcessHitOnUnsetAddress(t *testing.T) {
	bm := NewBreakpointManager()
	if bm.ProcessHit(0x7000) != nil {
		t.Error("ProcessHit on an address with no breakpoint should return nil")
	}
}

func TestGetAllBreakpoints(t *testing.T) {
	bm := NewBreakpointManager()
	bm.AddBreakpoint(0x100, false)
	bm.AddBreakpoint(0x200, false)
	bm.AddBreakpoint(0x300, false)

	all := bm.GetAllBreakpoints()
	if len(all) != 3 {
		t.Errorf("len(GetAllBreakpoints()) = %d, want 3", len(all))
	}
}
