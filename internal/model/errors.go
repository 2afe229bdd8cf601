package model

import "errors"

// Common errors used across the application
var (
	// Board errors
	ErrInvalidBoard     = errors.New("invalid board")
	ErrInvalidLetter    = errors.New("invalid letter")
	ErrCellExhausted    = errors.New("no letter under the repetition cap could be drawn for cell")
	ErrGenerationFailed = errors.New("board generation failed")

	// Round errors
	ErrRoundNotFound = errors.New("round not found")
	ErrRoundEnded    = errors.New("round has already ended")
	ErrRoundExpired  = errors.New("round time is up")

	// Dictionary errors
	ErrDictionaryNotFound  = errors.New("dictionary file not found")
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
	ErrDictionaryEmpty     = errors.New("dictionary is empty")

	// Score log errors
	ErrMalformedScoreLog = errors.New("malformed score log")
)
