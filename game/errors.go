package game

import "errors"

// Rule errors. Every failed action is rejected with one of these and no
// state change; callers may simply try a different action.
var (
	// ErrGameNotFound is returned by lookup layers above the engine; the
	// engine itself holds no game registry.
	ErrGameNotFound = errors.New("game not found")

	ErrGameFinished            = errors.New("game is finished")
	ErrQueenRequiredByRound4   = errors.New("queen must be placed by the fourth round")
	ErrQueenNotPlaced          = errors.New("queen must be placed before moving pieces")
	ErrWrongColor              = errors.New("not this color's turn")
	ErrNoPiecesRemaining       = errors.New("no pieces of that type remaining in hand")
	ErrTileOccupied            = errors.New("cannot place on an occupied tile")
	ErrMustTouchHive           = errors.New("must place next to the existing hive")
	ErrMustTouchOwnColor       = errors.New("placement must touch a piece of its own color")
	ErrCannotTouchOpponent     = errors.New("placement cannot touch an opponent piece")
	ErrNoPieceAtOrigin         = errors.New("no piece at origin")
	ErrNotOwnPiece             = errors.New("cannot move an opponent's piece")
	ErrHiveDisconnected        = errors.New("removal would split the hive")
	ErrDestinationDisconnected = errors.New("destination would be disconnected from the hive")
	ErrIllegalGeometry         = errors.New("illegal move for this piece type")
)
