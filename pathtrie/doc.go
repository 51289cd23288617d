// Package pathtrie implements a prefix-compressed store for sequences of
// small integer identifiers (paths), e.g. router hop IDs, with a weight
// (e.g. latency) recorded at the end of each stored path.
//
// Instead of a branching child-per-letter trie, the whole structure is a
// single chain of nodes. Each node carries a 64-bit membership word — one
// bit per identifier recorded at that chain position — plus a terminal
// flag and a weight:
//
//	[ membership:64 ] [ terminal:bool ] [ weight:32 ] [ next ]
//	 one bit per id    a path ends here  last weight   chain link
//
// Descending from a node to the continuation of identifier id is a rank
// walk: count the membership bits at positions strictly greater than id
// and step that many links down the chain (one more if id itself is
// already a member). A freshly recorded identifier gets a new node
// spliced right after the landing position, so at any one depth the
// continuation node of a higher identifier sits earlier in the chain
// than that of a lower one.
//
// Example chain after storing [0,1] w=10, [0,1,2] w=25 and [1,2] w=15:
//
//	[{0,1}] -- [{2} w=15] -- [{1} w=10] -- [{2} w=25]
//	 root       1's cont.     0's cont.     [0,1]'s cont.
//
// Membership bits are only ever set, never cleared: there is no deletion,
// no search and no persistence. A Trie is not safe for concurrent
// mutation.
package pathtrie
