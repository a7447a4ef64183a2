package align

import "sort"

// OpTag classifies how a range of the reference sequence maps onto the
// hypothesis sequence.
type OpTag uint8

const (
	// OpEqual marks ranges that match exactly.
	OpEqual OpTag = iota
	// OpReplace marks ranges present on both sides with different content.
	OpReplace
	// OpInsert marks hypothesis content absent from the reference.
	OpInsert
	// OpDelete marks reference content absent from the hypothesis.
	OpDelete
)

func (t OpTag) String() string {
	switch t {
	case OpEqual:
		return "equal"
	case OpReplace:
		return "replace"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Opcode describes one aligned range pair: reference units [I1,I2)
// correspond to hypothesis units [J1,J2). A full opcode list partitions
// both sequences end to end.
type Opcode struct {
	Tag OpTag
	I1  int
	I2  int
	J1  int
	J2  int
}

// match is one maximal common block found during recursive partitioning.
type match struct {
	a    int
	b    int
	size int
}

// Diff computes a single global alignment between two sequences using
// greedy longest-common-block recursive partitioning: the longest common
// contiguous block is emitted as equal, then the prefix pair and suffix
// pair are partitioned independently. Residues become replace, insert, or
// delete opcodes depending on which side is empty. Ties in the longest
// block search break toward the earliest reference position, then the
// earliest hypothesis position, so identical inputs always produce
// identical output.
func Diff[T comparable](ref, hyp []T) []Opcode {
	blocks := matchingBlocks(ref, hyp)

	ops := make([]Opcode, 0, 2*len(blocks)+1)
	i, j := 0, 0
	emitGap := func(i2, j2 int) {
		switch {
		case i < i2 && j < j2:
			ops = append(ops, Opcode{Tag: OpReplace, I1: i, I2: i2, J1: j, J2: j2})
		case i < i2:
			ops = append(ops, Opcode{Tag: OpDelete, I1: i, I2: i2, J1: j, J2: j})
		case j < j2:
			ops = append(ops, Opcode{Tag: OpInsert, I1: i, I2: i, J1: j, J2: j2})
		}
	}

	for _, blk := range blocks {
		emitGap(blk.a, blk.b)
		ops = append(ops, Opcode{Tag: OpEqual, I1: blk.a, I2: blk.a + blk.size, J1: blk.b, J2: blk.b + blk.size})
		i, j = blk.a+blk.size, blk.b+blk.size
	}
	emitGap(len(ref), len(hyp))

	return ops
}

// matchingBlocks returns all maximal common blocks in ascending reference
// order via iterative recursion on the unmatched prefix/suffix pairs.
func matchingBlocks[T comparable](a, b []T) []match {
	// Index hypothesis positions by value so the longest-match scan only
	// visits candidate columns.
	b2j := make(map[T][]int, len(b))
	for j, v := range b {
		b2j[v] = append(b2j[v], j)
	}

	type window struct {
		alo, ahi, blo, bhi int
	}
	stack := []window{{0, len(a), 0, len(b)}}
	var blocks []match

	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		m := longestMatch(a, b2j, w.alo, w.ahi, w.blo, w.bhi)
		if m.size == 0 {
			continue
		}
		blocks = append(blocks, m)
		if w.alo < m.a && w.blo < m.b {
			stack = append(stack, window{w.alo, m.a, w.blo, m.b})
		}
		if m.a+m.size < w.ahi && m.b+m.size < w.bhi {
			stack = append(stack, window{m.a + m.size, w.ahi, m.b + m.size, w.bhi})
		}
	}

	sort.Slice(blocks, func(i, j int) bool {
		if blocks[i].a != blocks[j].a {
			return blocks[i].a < blocks[j].a
		}
		return blocks[i].b < blocks[j].b
	})
	return blocks
}

// longestMatch finds the longest common contiguous block within the given
// window. The strict size comparison keeps the earliest candidate on ties.
func longestMatch[T comparable](a []T, b2j map[T][]int, alo, ahi, blo, bhi int) match {
	best := match{a: alo, b: blo}
	runs := map[int]int{}
	for i := alo; i < ahi; i++ {
		next := map[int]int{}
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := runs[j-1] + 1
			next[j] = k
			if k > best.size {
				best = match{a: i - k + 1, b: j - k + 1, size: k}
			}
		}
		runs = next
	}
	return best
}
