package program

import (
	"testing"
)

func TestAnalyzeLiteral(t *testing.T) {
	res := mustParse(t, "ab", 0)
	prog, err := Build(res.Terms, res.ProgramSizeUpperBound)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	sm := Analyze(prog)
	if sm.NumSlots != 4 { // BEGIN, CHAR, CHAR, END
		t.Fatalf("got NumSlots=%d, want 4", sm.NumSlots)
	}
	if sm.IDCheck {
		t.Fatalf("IDCheck should be false for a plain literal")
	}
	if sm.Width != 2 {
		t.Fatalf("got Width=%d, want 2", sm.Width)
	}
	for i, inst := range prog.Insts {
		if sm.SlotOf(i) < 0 {
			t.Fatalf("position %d (%v) expected a slot, got -1", i, inst.Op)
		}
	}
}

func TestAnalyzeEpsilonOnlyPositions(t *testing.T) {
	res := mustParse(t, "a*b", 0)
	prog, err := Build(res.Terms, res.ProgramSizeUpperBound)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	sm := Analyze(prog)
	for i, inst := range prog.Insts {
		switch inst.Op {
		case OpBranch, OpJump:
			if sm.SlotOf(i) != -1 {
				t.Fatalf("position %d (%v) should have no slot, got %d", i, inst.Op, sm.SlotOf(i))
			}
		case OpBegin, OpChar, OpRngEnd, OpEnd:
			if sm.SlotOf(i) < 0 {
				t.Fatalf("position %d (%v) expected a slot", i, inst.Op)
			}
		}
	}
}

func TestAnalyzeIDCheck(t *testing.T) {
	res := mustParse(t, "(ab){3!}", 0)
	prog, err := Build(res.Terms, res.ProgramSizeUpperBound)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	sm := Analyze(prog)
	if !sm.IDCheck {
		t.Fatalf("expected IDCheck=true for a pattern with an id tag")
	}
	if sm.Width != 3 {
		t.Fatalf("got Width=%d, want 3 when IDCheck is set", sm.Width)
	}
}

func TestAnalyzeCharClassWidth(t *testing.T) {
	res := mustParse(t, "[a-z0-9_]", 0)
	prog, err := Build(res.Terms, res.ProgramSizeUpperBound)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	sm := Analyze(prog)
	if sm.MaxClassWidth != 5 { // RNG_LEFT+RNG_RIGHT for a-z and 0-9, RNG_CHAR for _
		t.Fatalf("got MaxClassWidth=%d, want 5", sm.MaxClassWidth)
	}
}

func TestAnalyzeOutOfRangeSlotOf(t *testing.T) {
	sm := &SlotMap{Slots: []int32{0, -1, 1}}
	if sm.SlotOf(-1) != -1 || sm.SlotOf(99) != -1 {
		t.Fatalf("out-of-range SlotOf should return -1")
	}
}
