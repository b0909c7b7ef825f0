package ipv4

import "fmt"

// Match describes how a query matched against a Trie: either nothing
// covered the probe, a stored prefix contained it, or a stored prefix
// matched it exactly.
type Match int

const (
	// MatchNone means no stored prefix covers the probe.
	MatchNone Match = iota
	// MatchContains means a stored prefix less specific than the probe covers it.
	MatchContains
	// MatchExact means a stored prefix with the same length as the probe matched.
	MatchExact
)

// Trie is a path-compressed binary trie over 32-bit keys, supporting
// insertion, deletion, and longest-prefix-match lookup in at most 32 steps.
// The zero value is a valid, empty Trie.
type Trie struct {
	root *node

	// selfAllocated records whether Init allocated this header. Release does
	// not consult it: it only drops the node graph either way.
	selfAllocated bool
}

// NewTrie returns an initialized, empty Trie.
func NewTrie() *Trie {
	return &Trie{}
}

// Init initializes header in place and returns it, or allocates a new
// header if header is nil. It mirrors the explicit init/release lifecycle
// from the trie's C ancestor for callers that manage their own storage.
func Init(header *Trie) *Trie {
	if header == nil {
		return &Trie{selfAllocated: true}
	}
	header.root = nil
	header.selfAllocated = false
	return header
}

// Release discards the node graph. After Release, t must not be used again.
// There is no explicit free: Go's garbage collector reclaims the nodes once
// nothing references them.
func (t *Trie) Release() {
	if t == nil {
		return
	}
	t.root = nil
}

// Size returns the number of distinct (key, prefixLen) bindings stored.
func (t *Trie) Size() int {
	return size(t.root)
}

// Add inserts a new binding for (key, prefixLen). It returns an error
// without modifying the trie if a binding for that exact prefix already
// exists.
func (t *Trie) Add(key uint32, prefixLen int, value interface{}) error {
	if prefixLen < 0 || prefixLen > SIZE {
		return fmt.Errorf("ipv4: prefix length %d out of range [0,%d]", prefixLen, SIZE)
	}
	newRoot, err := add(t.root, key, prefixLen, value, true, false)
	if err != nil {
		return err
	}
	t.root = newRoot
	return nil
}

// Update overwrites the value of an existing binding for (key, prefixLen).
// It returns an error if no such binding exists.
func (t *Trie) Update(key uint32, prefixLen int, value interface{}) error {
	if prefixLen < 0 || prefixLen > SIZE {
		return fmt.Errorf("ipv4: prefix length %d out of range [0,%d]", prefixLen, SIZE)
	}
	newRoot, err := add(t.root, key, prefixLen, value, false, true)
	if err != nil {
		return err
	}
	t.root = newRoot
	return nil
}

// InsertOrUpdate inserts a new binding for (key, prefixLen), or overwrites
// the value if one already exists. It never fails on account of duplicates.
func (t *Trie) InsertOrUpdate(key uint32, prefixLen int, value interface{}) error {
	if prefixLen < 0 || prefixLen > SIZE {
		return fmt.Errorf("ipv4: prefix length %d out of range [0,%d]", prefixLen, SIZE)
	}
	newRoot, err := add(t.root, key, prefixLen, value, true, true)
	if err != nil {
		return err
	}
	t.root = newRoot
	return nil
}

// Lookup returns the value bound to the longest stored prefix of which key
// is a member, or ok=false if no stored prefix covers key. This is the
// core longest-prefix-match operation.
func (t *Trie) Lookup(key uint32) (value interface{}, ok bool) {
	_, _, value, ok = lookup(t.root, key, SIZE)
	return value, ok
}

// Match behaves like Lookup but also reports whether the match was exact
// (the matched prefix has the same length as prefixLen) or merely contains
// the query, and returns the matched prefix itself.
func (t *Trie) Match(key uint32, prefixLen int) (Match, Prefix, interface{}) {
	mkey, mplen, value, ok := lookup(t.root, key, prefixLen)
	if !ok {
		return MatchNone, Prefix{}, nil
	}
	prefix, _ := PrefixFromUint32(mkey, mplen)
	if mplen == prefixLen {
		return MatchExact, prefix, value
	}
	return MatchContains, prefix, value
}

// GetOrInsert returns the value already bound to the exact (key, prefixLen)
// binding if one exists; otherwise it inserts value and returns it.
func (t *Trie) GetOrInsert(key uint32, prefixLen int, value interface{}) (interface{}, error) {
	if match, _, existing := t.Match(key, prefixLen); match == MatchExact {
		return existing, nil
	}
	if err := t.Add(key, prefixLen, value); err != nil {
		return nil, err
	}
	return value, nil
}

// Delete removes the binding exactly matching (key, prefixLen) and returns
// its value, or ok=false if no such binding exists.
func (t *Trie) Delete(key uint32, prefixLen int) (value interface{}, ok bool) {
	if prefixLen < 0 || prefixLen > SIZE {
		return nil, false
	}
	newRoot, value, ok := del(t.root, key, prefixLen)
	if !ok {
		return nil, false
	}
	t.root = newRoot
	return value, true
}

// depth reports the maximum number of nodes a lookup through t could visit,
// used only by tests to check that a lookup examines at most 33 nodes.
func (t *Trie) depth() int {
	return depth(t.root)
}
