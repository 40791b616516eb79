package model

import "errors"

// Common errors used across the application
var (
	// Rules and board errors
	ErrInvalidRules     = errors.New("invalid board rules")
	ErrInvalidBoard     = errors.New("board does not match the configured size")
	ErrInvalidLetter    = errors.New("invalid letter")
	ErrInvalidMask      = errors.New("mask has squares outside the board")
	ErrOverlappingMasks = errors.New("ownership masks overlap")
	ErrInvalidPosition  = errors.New("invalid board position")

	// Game errors
	ErrGameNotFound        = errors.New("game not found")
	ErrNotPlayerTurn       = errors.New("not this side's turn")
	ErrInvalidSide         = errors.New("invalid side")
	ErrGameComplete        = errors.New("game is already complete")
	ErrWordNotInDictionary = errors.New("word is not in the dictionary")
	ErrWordAlreadyPlayed   = errors.New("word or a longer form of it has already been played")
	ErrPlacementMismatch   = errors.New("placement does not spell the word")

	// Analysis errors
	ErrAnalysisNotFound = errors.New("analysis not found")

	// Bot errors
	ErrUnknownStrategy = errors.New("unknown bot strategy")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)
