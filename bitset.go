package argtable

// MaxRequiredOptions is the most flag or value options a table may mark as required.
const MaxRequiredOptions = 128

// Fixed-size presence set for required options, indexed by their ordinal among the required
// options of a table.
type requiredSet [MaxRequiredOptions / 64]uint64

func (s *requiredSet) set(i int) {
	s[i/64] |= 1 << uint(i%64)
}

func (s *requiredSet) has(i int) bool {
	return s[i/64]&(1<<uint(i%64)) != 0
}
