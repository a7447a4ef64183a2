package align

import (
	"reflect"
	"testing"
)

func runes(s string) []rune { return []rune(s) }

func TestDiffIdenticalSequences(t *testing.T) {
	ops := Diff(runes("abcdef"), runes("abcdef"))
	want := []Opcode{{Tag: OpEqual, I1: 0, I2: 6, J1: 0, J2: 6}}
	if !reflect.DeepEqual(ops, want) {
		t.Fatalf("expected single equal opcode, got %+v", ops)
	}
}

func TestDiffPartitionsBothSequences(t *testing.T) {
	ref := runes("the quick brown fox")
	hyp := runes("the quack brwn fox!")
	ops := Diff(ref, hyp)

	i, j := 0, 0
	for _, op := range ops {
		if op.I1 != i || op.J1 != j {
			t.Fatalf("opcode %+v does not continue from (%d,%d)", op, i, j)
		}
		if op.I2 < op.I1 || op.J2 < op.J1 {
			t.Fatalf("opcode %+v has reversed range", op)
		}
		switch op.Tag {
		case OpEqual:
			if op.I2-op.I1 != op.J2-op.J1 {
				t.Fatalf("equal opcode %+v has mismatched lengths", op)
			}
			for k := 0; k < op.I2-op.I1; k++ {
				if ref[op.I1+k] != hyp[op.J1+k] {
					t.Fatalf("equal opcode %+v covers non-equal content", op)
				}
			}
		case OpInsert:
			if op.I1 != op.I2 {
				t.Fatalf("insert opcode %+v consumes reference", op)
			}
		case OpDelete:
			if op.J1 != op.J2 {
				t.Fatalf("delete opcode %+v consumes hypothesis", op)
			}
		}
		i, j = op.I2, op.J2
	}
	if i != len(ref) || j != len(hyp) {
		t.Fatalf("opcodes end at (%d,%d), want (%d,%d)", i, j, len(ref), len(hyp))
	}
}

func TestDiffInsertDelete(t *testing.T) {
	ops := Diff(runes("abc"), runes("ac"))
	want := []Opcode{
		{Tag: OpEqual, I1: 0, I2: 1, J1: 0, J2: 1},
		{Tag: OpDelete, I1: 1, I2: 2, J1: 1, J2: 1},
		{Tag: OpEqual, I1: 2, I2: 3, J1: 1, J2: 2},
	}
	if !reflect.DeepEqual(ops, want) {
		t.Fatalf("unexpected opcodes: %+v", ops)
	}

	ops = Diff(runes("ac"), runes("abc"))
	want = []Opcode{
		{Tag: OpEqual, I1: 0, I2: 1, J1: 0, J2: 1},
		{Tag: OpInsert, I1: 1, I2: 1, J1: 1, J2: 2},
		{Tag: OpEqual, I1: 1, I2: 2, J1: 2, J2: 3},
	}
	if !reflect.DeepEqual(ops, want) {
		t.Fatalf("unexpected opcodes: %+v", ops)
	}
}

func TestDiffReplace(t *testing.T) {
	ops := Diff(runes("axc"), runes("ayc"))
	want := []Opcode{
		{Tag: OpEqual, I1: 0, I2: 1, J1: 0, J2: 1},
		{Tag: OpReplace, I1: 1, I2: 2, J1: 1, J2: 2},
		{Tag: OpEqual, I1: 2, I2: 3, J1: 2, J2: 3},
	}
	if !reflect.DeepEqual(ops, want) {
		t.Fatalf("unexpected opcodes: %+v", ops)
	}
}

func TestDiffNoCommonContent(t *testing.T) {
	ops := Diff(runes("abc"), runes("xyz"))
	want := []Opcode{{Tag: OpReplace, I1: 0, I2: 3, J1: 0, J2: 3}}
	if !reflect.DeepEqual(ops, want) {
		t.Fatalf("unexpected opcodes: %+v", ops)
	}
}

func TestDiffEmptySides(t *testing.T) {
	if ops := Diff(runes(""), runes("")); len(ops) != 0 {
		t.Fatalf("expected no opcodes for empty inputs, got %+v", ops)
	}
	ops := Diff(runes("ab"), runes(""))
	want := []Opcode{{Tag: OpDelete, I1: 0, I2: 2, J1: 0, J2: 0}}
	if !reflect.DeepEqual(ops, want) {
		t.Fatalf("unexpected opcodes for empty hypothesis: %+v", ops)
	}
	ops = Diff(runes(""), runes("ab"))
	want = []Opcode{{Tag: OpInsert, I1: 0, I2: 0, J1: 0, J2: 2}}
	if !reflect.DeepEqual(ops, want) {
		t.Fatalf("unexpected opcodes for empty reference: %+v", ops)
	}
}

func TestDiffTieBreaksEarliestPosition(t *testing.T) {
	// "ab" appears twice in the hypothesis; the earliest occurrence must win.
	ops := Diff(runes("ab"), runes("abxab"))
	if ops[0].Tag != OpEqual || ops[0].J1 != 0 {
		t.Fatalf("expected earliest hypothesis match at j=0, got %+v", ops[0])
	}
}

func TestDiffTokenSequences(t *testing.T) {
	ref := []string{"we", "all", "stayed", "home"}
	hyp := []string{"we", "<unk>", "stayed", "home"}
	ops := Diff(ref, hyp)
	want := []Opcode{
		{Tag: OpEqual, I1: 0, I2: 1, J1: 0, J2: 1},
		{Tag: OpReplace, I1: 1, I2: 2, J1: 1, J2: 2},
		{Tag: OpEqual, I1: 2, I2: 4, J1: 2, J2: 4},
	}
	if !reflect.DeepEqual(ops, want) {
		t.Fatalf("unexpected opcodes: %+v", ops)
	}
}

func TestDiffDeterministic(t *testing.T) {
	ref := runes("sphinx of black quartz judge my vow")
	hyp := runes("sfinx of blck quarts judge my vow vow")
	first := Diff(ref, hyp)
	for i := 0; i < 10; i++ {
		if again := Diff(ref, hyp); !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d produced different opcodes: %+v vs %+v", i, again, first)
		}
	}
}
