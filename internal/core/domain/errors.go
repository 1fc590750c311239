package domain

import "errors"

// ============================================================================
// Game Session Errors
// ============================================================================

var (
	ErrGameNotFound     = errors.New("game session not found")
	ErrGameFinished     = errors.New("game session is already finished")
	ErrInvalidPlayer    = errors.New("player name is required")
	ErrTooManySessions  = errors.New("active session limit reached")
	ErrInvalidFieldSize = errors.New("field width and height must be positive")
	ErrInvalidStatus    = errors.New("status filter must be GAME_OVER or ABANDONED")
)

// ============================================================================
// Simulation Control Errors
// ============================================================================

var (
	ErrInvalidTickCount = errors.New("tick count must be between 1 and the configured maximum")
	ErrInvalidTurn      = errors.New("turn must be -1, 0 or 1")
)

// ============================================================================
// Leaderboard Errors
// ============================================================================

var (
	ErrInvalidLimit = errors.New("limit must be between 1 and 100")
)
