package nfa

// stateSet is a sparse set of states over a fixed universe with O(1)
// insert, membership and clear, and insertion-ordered iteration.
type stateSet struct {
	sparse []uint32
	dense  []StateID
}

func newStateSet(capacity int) *stateSet {
	return &stateSet{
		sparse: make([]uint32, capacity),
		dense:  make([]StateID, 0, capacity),
	}
}

// insert adds s and reports whether it was absent.
func (ss *stateSet) insert(s StateID) bool {
	if ss.contains(s) {
		return false
	}
	ss.sparse[s] = uint32(len(ss.dense))
	ss.dense = append(ss.dense, s)
	return true
}

func (ss *stateSet) contains(s StateID) bool {
	i := ss.sparse[s]
	return int(i) < len(ss.dense) && ss.dense[i] == s
}

func (ss *stateSet) clear() {
	ss.dense = ss.dense[:0]
}

func (ss *stateSet) len() int {
	return len(ss.dense)
}
