package ipv4

// Map is a structure that maps IP prefixes to values. For example, you can
// insert the following values and they will all exist as distinct prefix/value
// pairs in the map.
//
// 10.0.0.0/16 -> 1
// 10.0.0.0/24 -> 1
// 10.0.0.0/32 -> 2
//
// The map supports looking up values based on a longest prefix match. The
// zero value of Map is an empty, usable map.
type Map struct {
	trie Trie
}

// Size returns the number of exact prefixes stored in the map.
func (m *Map) Size() int {
	return m.trie.Size()
}

// InsertPrefix inserts the given prefix with the given value into the map.
func (m *Map) InsertPrefix(prefix Prefix, value interface{}) error {
	return m.trie.Add(prefix.Addr.Uint32(), prefix.Length(), value)
}

// Insert is a convenient alternative to InsertPrefix that treats the given IP
// address as a host prefix (i.e. /32).
func (m *Map) Insert(ip Addr, value interface{}) error {
	return m.trie.Add(ip.Uint32(), SIZE, value)
}

// InsertOrUpdatePrefix inserts the given prefix with the given value into the map.
// If the prefix already existed, it updates the associated value in place.
func (m *Map) InsertOrUpdatePrefix(prefix Prefix, value interface{}) error {
	return m.trie.InsertOrUpdate(prefix.Addr.Uint32(), prefix.Length(), value)
}

// InsertOrUpdate is a convenient alternative to InsertOrUpdatePrefix that treats
// the given IP address as a host prefix (i.e. /32).
func (m *Map) InsertOrUpdate(ip Addr, value interface{}) error {
	return m.trie.InsertOrUpdate(ip.Uint32(), SIZE, value)
}

// GetPrefix returns the value in the map associated with the given network prefix
// with an exact match: both the IP and the prefix length must match. If an
// exact match is not found, found is false and value is nil and should be
// ignored.
func (m *Map) GetPrefix(prefix Prefix) (interface{}, bool) {
	match, _, value := m.trie.Match(prefix.Addr.Uint32(), prefix.Length())
	if match == MatchExact {
		return value, true
	}
	return nil, false
}

// Get is a convenient alternative to GetPrefix that treats the given IP address
// as a host prefix (i.e. /32).
func (m *Map) Get(ip Addr) (interface{}, bool) {
	match, _, value := m.trie.Match(ip.Uint32(), SIZE)
	if match == MatchExact {
		return value, true
	}
	return nil, false
}

// GetOrInsertPrefix returns the value associated with the given prefix if it
// already exists. If it does not exist, it inserts it with the given value and
// returns that.
func (m *Map) GetOrInsertPrefix(prefix Prefix, value interface{}) (interface{}, error) {
	return m.trie.GetOrInsert(prefix.Addr.Uint32(), prefix.Length(), value)
}

// GetOrInsert is a convenient alternative to GetOrInsertPrefix that treats the
// given IP address as a host prefix (i.e. /32).
func (m *Map) GetOrInsert(ip Addr, value interface{}) (interface{}, error) {
	return m.trie.GetOrInsert(ip.Uint32(), SIZE, value)
}

// MatchPrefix returns the value in the map associated with the given network
// prefix using a longest prefix match. If a match is found, it returns a
// Prefix representing the longest prefix matched. If a match is *not*
// found, matched is MatchNone and the other fields should be ignored.
func (m *Map) MatchPrefix(searchPrefix Prefix) (matched Match, prefix Prefix, value interface{}) {
	return m.trie.Match(searchPrefix.Addr.Uint32(), searchPrefix.Length())
}

// Match is a convenient alternative to MatchPrefix that treats the given IP
// address as a host prefix (i.e. /32).
func (m *Map) Match(ip Addr) (matched Match, prefix Prefix, value interface{}) {
	return m.trie.Match(ip.Uint32(), SIZE)
}

// RemovePrefix removes the given prefix from the map with its associated value.
// Only a prefix with an exact match will be removed.
func (m *Map) RemovePrefix(prefix Prefix) (interface{}, bool) {
	return m.trie.Delete(prefix.Addr.Uint32(), prefix.Length())
}

// Remove is a convenient alternative to RemovePrefix that treats the given IP
// address as a host prefix (i.e. /32).
func (m *Map) Remove(ip Addr) (interface{}, bool) {
	return m.trie.Delete(ip.Uint32(), SIZE)
}
