package curve

import "testing"

func TestNormalizeLastWriteWins(t *testing.T) {
	traj := Trajectory{
		NewPoint(3, 30, 30, StatusNormal),
		NewPoint(1, 10, 10, StatusNormal),
		NewPoint(3, 33, 33, StatusKeyframe),
		NewPoint(2, 20, 20, StatusNormal),
	}
	got := traj.Normalize()
	if len(got) != 3 {
		t.Fatalf("expected 3 points, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Frame <= got[i-1].Frame {
			t.Fatalf("frames not strictly increasing: %v", got)
		}
	}
	pt, ok := got.PointAt(3)
	if !ok || pt.X != 33 || pt.Status != StatusKeyframe {
		t.Errorf("expected last write to win at frame 3, got %+v", pt)
	}
	// Input untouched
	if traj[0].Frame != 3 {
		t.Error("Normalize must not mutate its input")
	}
}

func TestPointBeforeAfter(t *testing.T) {
	traj := Trajectory{
		NewPoint(5, 0, 0, StatusNormal),
		NewPoint(10, 0, 0, StatusNormal),
		NewPoint(20, 0, 0, StatusNormal),
	}
	if pt, ok := traj.PointBefore(10); !ok || pt.Frame != 5 {
		t.Errorf("PointBefore(10): got %+v ok=%v", pt, ok)
	}
	if pt, ok := traj.PointAfter(10); !ok || pt.Frame != 20 {
		t.Errorf("PointAfter(10): got %+v ok=%v", pt, ok)
	}
	if _, ok := traj.PointBefore(5); ok {
		t.Error("PointBefore(5) should not exist")
	}
	if _, ok := traj.PointAfter(20); ok {
		t.Error("PointAfter(20) should not exist")
	}
}

func TestFrameRange(t *testing.T) {
	traj := Trajectory{
		NewPoint(7, 0, 0, StatusNormal),
		NewPoint(2, 0, 0, StatusNormal),
		NewPoint(11, 0, 0, StatusNormal),
	}
	first, last, ok := traj.FrameRange()
	if !ok || first != 2 || last != 11 {
		t.Errorf("FrameRange: got (%d, %d, %v)", first, last, ok)
	}
	if _, _, ok := (Trajectory{}).FrameRange(); ok {
		t.Error("empty trajectory must have no frame range")
	}
}
