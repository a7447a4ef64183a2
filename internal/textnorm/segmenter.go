package textnorm

// Segmenter performs dictionary-driven longest-match word segmentation for
// scripts written without word boundaries. At each position the longest
// dictionary word wins; runs of runes with no dictionary coverage collapse
// into a single unknown token so downstream alignment still sees them in
// order.
type Segmenter struct {
	root *trieNode
}

type trieNode struct {
	children map[rune]*trieNode
	terminal bool
}

// NewSegmenter builds a segmenter from a word list. Callers typically feed
// a base lexicon plus project-specific vocabulary that generic
// dictionaries split incorrectly (slang, names, coined compounds).
func NewSegmenter(words []string) *Segmenter {
	s := &Segmenter{root: &trieNode{}}
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add inserts one word into the dictionary. Words are normalized the same
// way script text is, so lookups compare like with like.
func (s *Segmenter) Add(word string) {
	word = Normalize(word)
	if word == "" {
		return
	}
	node := s.root
	for _, r := range word {
		if node.children == nil {
			node.children = make(map[rune]*trieNode)
		}
		next := node.children[r]
		if next == nil {
			next = &trieNode{}
			node.children[r] = next
		}
		node = next
	}
	node.terminal = true
}

// Segment splits text greedily on the longest dictionary word at each
// position.
func (s *Segmenter) Segment(text string) []string {
	input := []rune(text)
	var out []string
	var unknown []rune

	i := 0
	for i < len(input) {
		size := s.longestPrefix(input[i:])
		if size == 0 {
			unknown = append(unknown, input[i])
			i++
			continue
		}
		if len(unknown) > 0 {
			out = append(out, string(unknown))
			unknown = unknown[:0]
		}
		out = append(out, string(input[i:i+size]))
		i += size
	}
	if len(unknown) > 0 {
		out = append(out, string(unknown))
	}
	return out
}

func (s *Segmenter) longestPrefix(input []rune) int {
	node := s.root
	best := 0
	for i, r := range input {
		node = node.children[r]
		if node == nil {
			break
		}
		if node.terminal {
			best = i + 1
		}
	}
	return best
}
