package pathtrie

import "fmt"

// Node is one position in the chain. Its membership word records which
// identifiers occur at this position across every stored path sharing
// the prefix leading here.
type Node struct {
	membership uint64
	next       *Node
	weight     uint32
	terminal   bool
}

// Membership returns the node's membership word, bit i set for id i.
func (n *Node) Membership() uint64 {
	return n.membership
}

// Has reports whether id is recorded at this node.
func (n *Node) Has(id int) bool {
	if id < 0 || id >= AlphabetSize {
		return false
	}
	return n.membership&(1<<uint(id)) != 0
}

// Terminal reports whether at least one stored path ends at this node.
func (n *Node) Terminal() bool {
	return n.terminal
}

// Weight returns the weight of the path most recently stored ending at
// this node. Only meaningful when Terminal is true.
func (n *Node) Weight() uint32 {
	return n.weight
}

// Next returns the following node in the chain, or nil at the tail.
func (n *Node) Next() *Node {
	return n.next
}

// IDs returns the identifiers recorded at this node, in ascending order.
func (n *Node) IDs() []int {
	ids := make([]int, 0, 8)
	for id := 0; id < AlphabetSize; id++ {
		if n.membership&(1<<uint(id)) != 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

func (n *Node) String() string {
	if n == nil {
		return "Node(nil)"
	}
	if n.terminal {
		return fmt.Sprintf("<Node ids=%v end weight=%v>", n.IDs(), n.weight)
	}
	return fmt.Sprintf("<Node ids=%v>", n.IDs())
}
