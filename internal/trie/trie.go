// Package trie implements a character trie mapping terms to sets of
// document ids, supporting exact lookup and prefix enumeration for the
// inverted index's prefix strategy (§4.5 of the engine's design).
package trie

// Trie is a radix-free character trie. It is not safe for concurrent
// use; callers synchronize externally, consistent with the engine's
// single-writer model.
type Trie struct {
	root *node
	size int
}

type node struct {
	children map[rune]*node
	terminal bool
	docIDs   map[int]struct{}
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// New creates an empty trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Insert walks/creates nodes for term and unions docIDs into the
// terminal node's doc-id set.
func (t *Trie) Insert(term string, docIDs []int) {
	if term == "" {
		return
	}
	cur := t.root
	for _, r := range term {
		next, ok := cur.children[r]
		if !ok {
			next = newNode()
			cur.children[r] = next
		}
		cur = next
	}
	if !cur.terminal {
		cur.terminal = true
		cur.docIDs = make(map[int]struct{})
		t.size++
	}
	for _, id := range docIDs {
		cur.docIDs[id] = struct{}{}
	}
}

// Get returns the doc-id set stored at term's terminal node, or nil if
// term is not an indexed key.
func (t *Trie) Get(term string) map[int]struct{} {
	n := t.descend(term)
	if n == nil || !n.terminal {
		return nil
	}
	return n.docIDs
}

// Match is a (term, doc-id-set) pair returned by FindWithPrefix.
type Match struct {
	Term   string
	DocIDs map[int]struct{}
}

// FindWithPrefix descends to the node for prefix, then collects every
// terminal word below it (including prefix itself if it is a complete
// term). Running time is O(|prefix| + |matches|).
func (t *Trie) FindWithPrefix(prefix string) []Match {
	start := t.descend(prefix)
	if start == nil {
		return nil
	}
	var out []Match
	collect(start, prefix, &out)
	return out
}

// Keys returns every indexed term, equivalent to FindWithPrefix("").
func (t *Trie) Keys() []string {
	matches := t.FindWithPrefix("")
	keys := make([]string, len(matches))
	for i, m := range matches {
		keys[i] = m.Term
	}
	return keys
}

// Len returns the number of distinct terms stored in the trie.
func (t *Trie) Len() int { return t.size }

// Remove deletes docID from term's posting set. If the set becomes
// empty, the terminal marker (but not necessarily the node, which may
// have descendants) is cleared.
func (t *Trie) Remove(term string, docID int) {
	n := t.descend(term)
	if n == nil || !n.terminal {
		return
	}
	delete(n.docIDs, docID)
	if len(n.docIDs) == 0 {
		n.terminal = false
		n.docIDs = nil
		t.size--
	}
}

func (t *Trie) descend(s string) *node {
	cur := t.root
	for _, r := range s {
		next, ok := cur.children[r]
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

func collect(n *node, prefix string, out *[]Match) {
	if n.terminal {
		*out = append(*out, Match{Term: prefix, DocIDs: n.docIDs})
	}
	for r, child := range n.children {
		collect(child, prefix+string(r), out)
	}
}
