package game

// Keyboard tracks the best mark seen for each guessed letter, for colouring an
// on-screen keyboard. A letter only ever upgrades: absent → present → exact.
type Keyboard map[byte]Mark

// Record folds one guess and its feedback into the keyboard.
func (k Keyboard) Record(word string, fb Feedback) {
	for i := 0; i < len(word) && i < WordLength; i++ {
		c := word[i]
		if rank(fb[i]) > rank(k[c]) {
			k[c] = fb[i]
		}
	}
}

// Status returns the mark for letter c, or "" if it has not been guessed.
// Upper-case letters are looked up as lower-case.
func (k Keyboard) Status(c byte) Mark {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	return k[c]
}

func rank(m Mark) int {
	switch m {
	case MarkExact:
		return 3
	case MarkPresent:
		return 2
	case MarkAbsent:
		return 1
	}
	return 0
}
