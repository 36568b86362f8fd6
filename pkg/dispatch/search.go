package dispatch

// Lookup returns the handler bound to key. The table must be non-empty and
// sorted; an empty table is a caller bug and panics.
func (t Table[K, H]) Lookup(key K) (H, bool) {
	if len(t) == 0 {
		panic("dispatch: lookup in empty table")
	}
	i, _ := t.search(key)
	if t[i].Key == key {
		return t[i].Handler, true
	}
	var zero H
	return zero, false
}

// search narrows [0, n-1] to the first index whose key is not below key.
// It returns that index and the number of ordering comparisons made, which
// never exceeds ceil(log2 n).
func (t Table[K, H]) search(key K) (int, int) {
	l, r := 0, len(t)-1
	probes := 0
	for l < r {
		m := l + (r-l)/2
		probes++
		if t[m].Key < key {
			l = m + 1
		} else {
			r = m
		}
	}
	return l, probes
}
