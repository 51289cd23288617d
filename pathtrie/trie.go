package pathtrie

import (
	"fmt"

	"github.com/hideo55/go-popcount"
)

// AlphabetSize bounds the identifier range: every path element must lie
// in [0, AlphabetSize). Fixed by the 64-bit membership word.
const AlphabetSize = 64

// Trie stores paths of identifiers over a single node chain, sharing
// chain positions between paths with a common prefix.
type Trie struct {
	root  *Node
	nodes int // live nodes, root included
	size  int // distinct terminal nodes
	limit int // max nodes, <=0 means unbounded
}

// New returns an empty trie with no node limit.
func New() *Trie {
	return &Trie{
		root:  &Node{},
		nodes: 1,
	}
}

// NewWithLimit returns an empty trie that refuses to grow beyond limit
// nodes, root included. A limit <= 0 means unbounded.
func NewWithLimit(limit int) *Trie {
	t := New()
	t.limit = limit
	return t
}

// Len returns the number of stored paths that end at distinct nodes.
func (t *Trie) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// NodeCount returns the number of live nodes, root included.
func (t *Trie) NodeCount() int {
	if t == nil {
		return 0
	}
	return t.nodes
}

// Root returns the root node, or nil after Release.
func (t *Trie) Root() *Node {
	return t.root
}

// Insert stores path and records weight at its terminal chain node,
// overwriting the weight of any path already ending there. Identifiers
// must lie in [0, AlphabetSize); a range or empty-path error leaves the
// trie untouched. ErrOutOfMemory can fire mid-walk, in which case the
// membership bits and nodes of the already-processed prefix remain.
func (t *Trie) Insert(path []int, weight uint32) error {
	if t.root == nil {
		return ErrReleased
	}
	if len(path) == 0 {
		return ErrEmptyPath
	}
	for _, id := range path {
		if id < 0 || id >= AlphabetSize {
			return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, id, AlphabetSize)
		}
	}

	cur := t.root
	last := len(path) - 1

	for k, id := range path {
		mask := uint64(1) << uint(id)
		seen := cur.membership&mask != 0
		cur.membership |= mask

		if k == last {
			break
		}

		// Rank walk to the continuation node for id: one step per
		// strictly higher member, plus one for id's own node when
		// id was already a member here.
		steps := popcount.Count(cur.membership >> uint(id+1))
		if seen {
			steps++
		}
		for ; steps > 0; steps-- {
			if cur.next == nil {
				node, err := t.alloc()
				if err != nil {
					return err
				}
				cur.next = node
			}
			cur = cur.next
		}
		if !seen {
			node, err := t.alloc()
			if err != nil {
				return err
			}
			node.next = cur.next
			cur.next = node
			cur = node
		}
	}

	if !cur.terminal {
		cur.terminal = true
		t.size++
	}
	cur.weight = weight

	return nil
}

func (t *Trie) alloc() (*Node, error) {
	if t.limit > 0 && t.nodes >= t.limit {
		return nil, ErrOutOfMemory
	}
	t.nodes++
	return &Node{}, nil
}

// Release severs every node in the chain and leaves the trie unusable:
// any further Insert fails with ErrReleased. It returns the number of
// nodes released, root included.
func (t *Trie) Release() int {
	released := 0

	cur := t.root
	t.root = nil

	for cur != nil {
		next := cur.next
		cur.next = nil
		cur = next
		released++
	}

	t.nodes = 0
	t.size = 0

	return released
}

// DebugDump prints the chain, one node per line.
func (t *Trie) DebugDump() {
	pos := 0
	for cur := t.root; cur != nil; cur = cur.next {
		fmt.Printf("%3d: %v\n", pos, cur)
		pos++
	}
}
