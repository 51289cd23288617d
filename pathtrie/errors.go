package pathtrie

import "errors"

var (
	// ErrEmptyPath is returned by Insert for a zero-length path.
	ErrEmptyPath = errors.New("pathtrie: empty path")

	// ErrOutOfRange is returned by Insert when an identifier falls
	// outside [0, AlphabetSize).
	ErrOutOfRange = errors.New("pathtrie: id out of range")

	// ErrOutOfMemory is returned by Insert when allocating a node
	// would exceed the trie's node limit.
	ErrOutOfMemory = errors.New("pathtrie: node limit exceeded")

	// ErrReleased is returned by Insert after Release has been called.
	ErrReleased = errors.New("pathtrie: trie released")
)
