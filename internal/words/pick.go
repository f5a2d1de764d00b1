package words

import (
	"fmt"

	"github.com/robalobadob/wordle/internal/dependencies/random"
)

// PickTarget returns a uniformly random word from list.
func PickTarget(rng random.Random, list []string) (string, error) {
	if len(list) == 0 {
		return "", fmt.Errorf("no target words available: %w", ErrEmptyWordList)
	}
	return list[rng.Intn(len(list))], nil
}
