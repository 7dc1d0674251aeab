package corrector

// inAlphabet reports whether s is non-empty and every rune of s is one of
// the corrector's letters.
func (c *Corrector) inAlphabet(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if _, ok := c.letters[r]; !ok {
			return false
		}
	}
	return true
}
