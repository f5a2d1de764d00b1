package game

import "errors"

var (
	// ErrInvalidWord is returned by Evaluate when either word is not five lowercase letters.
	ErrInvalidWord = errors.New("word must be exactly 5 lowercase letters")

	// Guess validation; all recoverable, the driver re-prompts.
	ErrInvalidGuess  = errors.New("please enter exactly 5 letters")
	ErrNotInWordList = errors.New("word not in list")
	ErrGameFinished  = errors.New("game finished")

	ErrInvalidMode = errors.New("unknown mode, expected Easy or Medium")
)
