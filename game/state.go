package game

import (
	"encoding/binary"
	"hash/fnv"
	"sort"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a game.
type Status int

const (
	InProgress Status = iota
	Finished
)

func (s Status) String() string {
	if s == Finished {
		return "FINISHED"
	}
	return "IN_PROGRESS"
}

// StateHash identifies a game position.
type StateHash uint64

// State is the surface search algorithms consume: enumerate legal moves and
// apply one. Implementations must be pure: Play always returns a new copy
// and never mutates the receiver, so independent searches can run
// concurrently on their own values with nothing shared.
type State interface {
	Player() string
	LegalMoves() []Action
	Play(Action) State
	Hash() StateHash
	Winner() string
}

// Evaluate scores a state between -1 and 1 from the current player's
// perspective (positive is favorable).
type Evaluate func(State) float64

// GameState is the complete state of one game. The zero board with full
// hands and White to move on turn 1 is the starting position.
//
// TurnNumber counts plies: it increments once per applied action regardless
// of color, so a player's Nth round is ply 2N-1 (White) or 2N (Black).
type GameState struct {
	ID          string
	Board       Board
	Hands       map[Color]Hand
	CurrentTurn Color
	TurnNumber  int
	Status      Status
	Won         *Color // nil while in progress, and nil on a draw
}

// NewGameState returns a fresh game: empty board, full hands, White to
// move, turn number 1.
func NewGameState() *GameState {
	return &GameState{
		ID:          uuid.NewString(),
		Board:       Board{},
		Hands:       map[Color]Hand{White: NewHand(), Black: NewHand()},
		CurrentTurn: White,
		TurnNumber:  1,
		Status:      InProgress,
	}
}

func (gs *GameState) Copy() *GameState {
	var won *Color
	if gs.Won != nil {
		w := *gs.Won
		won = &w
	}
	return &GameState{
		ID:          gs.ID,
		Board:       gs.Board.Copy(),
		Hands:       map[Color]Hand{White: gs.Hands[White].Copy(), Black: gs.Hands[Black].Copy()},
		CurrentTurn: gs.CurrentTurn,
		TurnNumber:  gs.TurnNumber,
		Status:      gs.Status,
		Won:         won,
	}
}

func (gs *GameState) hand(c Color) Hand {
	return gs.Hands[c]
}

// queenPlaced reports whether the color's queen has left its hand.
func (gs *GameState) queenPlaced(c Color) bool {
	return gs.Hands[c][Queen] == 0
}

// fourthRound reports whether the current ply is the mover's fourth round
// (ply 7 for White, ply 8 for Black).
func (gs *GameState) fourthRound() bool {
	if gs.CurrentTurn == White {
		return gs.TurnNumber == 7
	}
	return gs.TurnNumber == 8
}

// Apply validates the action for the current player and returns the
// resulting game state. On failure it returns the error and the receiver
// is untouched; Apply never partially mutates.
func (gs *GameState) Apply(a Action) (*GameState, error) {
	if gs.Status == Finished {
		return nil, ErrGameFinished
	}

	var next *GameState
	switch a := a.(type) {
	case Placement:
		if gs.fourthRound() && !gs.queenPlaced(gs.CurrentTurn) && a.Type != Queen {
			return nil, ErrQueenRequiredByRound4
		}
		if err := gs.validatePlacement(a); err != nil {
			return nil, err
		}
		next = gs.Copy()
		next.Board.Place(a.To, Piece{Type: a.Type, Color: gs.CurrentTurn, ID: uuid.NewString()})
		next.Hands[gs.CurrentTurn][a.Type]--

	case Movement:
		if !gs.queenPlaced(gs.CurrentTurn) {
			return nil, ErrQueenNotPlaced
		}
		if err := gs.validateMovement(a); err != nil {
			return nil, err
		}
		next = gs.Copy()
		next.Board.MoveTop(a.From, a.To)

	default:
		return nil, ErrIllegalGeometry
	}

	next.checkWin()
	next.CurrentTurn = next.CurrentTurn.Opponent()
	next.TurnNumber++
	return next, nil
}

// ApplyAs is Apply with an explicit acting color, for callers that carry
// player identity (sessions, agents).
func (gs *GameState) ApplyAs(c Color, a Action) (*GameState, error) {
	if gs.Status != Finished && c != gs.CurrentTurn {
		return nil, ErrWrongColor
	}
	return gs.Apply(a)
}

// checkWin scans every queen on the board, buried queens included, and
// finishes the game when one or both are fully surrounded.
func (gs *GameState) checkWin() {
	whiteSurrounded := false
	blackSurrounded := false

	for h, stack := range gs.Board {
		for _, p := range stack {
			if p.Type != Queen {
				continue
			}
			surrounded := true
			for _, n := range h.Neighbors() {
				if !gs.Board.Occupied(n) {
					surrounded = false
					break
				}
			}
			if !surrounded {
				continue
			}
			if p.Color == White {
				whiteSurrounded = true
			} else {
				blackSurrounded = true
			}
		}
	}

	switch {
	case whiteSurrounded && blackSurrounded:
		gs.Status = Finished
		gs.Won = nil // draw
	case whiteSurrounded:
		gs.Status = Finished
		w := Black
		gs.Won = &w
	case blackSurrounded:
		gs.Status = Finished
		w := White
		gs.Won = &w
	}
}

// Player returns the identifier of the color to move.
func (gs *GameState) Player() string {
	return gs.CurrentTurn.String()
}

// Winner returns the winning color's identifier, or "" while the game is in
// progress or drawn.
func (gs *GameState) Winner() string {
	if gs.Won == nil {
		return ""
	}
	return gs.Won.String()
}

// Play applies a legal move and returns the new state. It is the State
// adapter for search consumers, which only ever play moves they got from
// LegalMoves; an illegal move is a programming error and panics.
func (gs *GameState) Play(a Action) State {
	next, err := gs.Apply(a)
	if err != nil {
		panic("illegal move played: " + a.String() + ": " + err.Error())
	}
	return next
}

// Hash folds the position (board, hands, turn) into a 64-bit FNV-1a value.
// Board and hand iteration is sorted so the hash is deterministic.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.CurrentTurn))
	binary.Write(hasher, binary.LittleEndian, int64(gs.TurnNumber))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Status))

	hexes := make([]Hex, 0, len(gs.Board))
	for h := range gs.Board {
		hexes = append(hexes, h)
	}
	sort.Slice(hexes, func(i, j int) bool {
		if hexes[i].Q != hexes[j].Q {
			return hexes[i].Q < hexes[j].Q
		}
		return hexes[i].R < hexes[j].R
	})
	for _, h := range hexes {
		binary.Write(hasher, binary.LittleEndian, int64(h.Q))
		binary.Write(hasher, binary.LittleEndian, int64(h.R))
		for _, p := range gs.Board[h] {
			binary.Write(hasher, binary.LittleEndian, int64(p.Type))
			binary.Write(hasher, binary.LittleEndian, int64(p.Color))
		}
	}

	for _, c := range []Color{White, Black} {
		for _, t := range PieceTypes {
			binary.Write(hasher, binary.LittleEndian, int64(gs.Hands[c][t]))
		}
	}

	return StateHash(hasher.Sum64())
}
