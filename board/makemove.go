package board

// UndoInfo captures everything MakeMove mutated, so UnmakeMove can restore
// the position exactly. Push (MakeMove) and pop (UnmakeMove) are required
// to be exact inverses; any push must eventually be paired with a pop
// before the search returns.
type UndoInfo struct {
	CapturedPiece  Piece
	CapturedColor  Color
	CapturedSquare int // differs from m.To only for en passant
	CastleRights   uint8
	EnPassant      int
	HalfmoveClock  int
	Hash           uint64
	history        []uint64
}

// MakeMove applies m to the position and returns the information needed
// to undo it. The caller must eventually call UnmakeMove(m, undo).
func (p *Position) MakeMove(m Move) UndoInfo {
	us := p.SideToMove
	them := us.Other()

	undo := UndoInfo{
		CastleRights:  p.CastleRights,
		EnPassant:     p.EnPassant,
		HalfmoveClock: p.HalfmoveClock,
		Hash:          p.Hash,
		history:       p.history,
	}

	h := p.Hash
	h ^= zobristCastle[p.CastleRights&0xF]
	if p.EnPassant >= 0 {
		h ^= zobristEP[fileOf(p.EnPassant)]
	}

	capSq := m.To
	if m.Flags&FlagEnPassant != 0 {
		if us == White {
			capSq = m.To - 8
		} else {
			capSq = m.To + 8
		}
	}
	if m.Captured != Empty {
		undo.CapturedPiece = m.Captured
		undo.CapturedColor = them
		undo.CapturedSquare = capSq
		p.removePiece(them, m.Captured, capSq)
		h ^= zobristPieces[them][m.Captured][capSq]
	}

	p.removePiece(us, m.Piece, m.From)
	h ^= zobristPieces[us][m.Piece][m.From]

	placed := m.Piece
	if m.Promotion != Empty {
		placed = m.Promotion
	}
	p.addPiece(us, placed, m.To)
	h ^= zobristPieces[us][placed][m.To]

	if m.Flags&FlagCastling != 0 {
		rank := rankOf(m.From)
		var rookFrom, rookTo int
		if fileOf(m.To) == 6 { // king side
			rookFrom, rookTo = squareIndex(7, rank), squareIndex(5, rank)
		} else { // queen side
			rookFrom, rookTo = squareIndex(0, rank), squareIndex(3, rank)
		}
		p.removePiece(us, Rook, rookFrom)
		p.addPiece(us, Rook, rookTo)
		h ^= zobristPieces[us][Rook][rookFrom]
		h ^= zobristPieces[us][Rook][rookTo]
	}

	p.CastleRights &^= castleMask(m.From) | castleMask(m.To)

	p.EnPassant = -1
	if m.Flags&FlagDoublePawnPush != 0 {
		if us == White {
			p.EnPassant = m.From + 8
		} else {
			p.EnPassant = m.From - 8
		}
	}

	h ^= zobristCastle[p.CastleRights&0xF]
	if p.EnPassant >= 0 {
		h ^= zobristEP[fileOf(p.EnPassant)]
	}
	h ^= zobristSide

	if m.Piece == Pawn || m.Captured != Empty {
		p.HalfmoveClock = 0
		// A fresh backing array, not p.history[:0]: GenerateLegalMoves
		// probes legality via a shallow `scratch := *p` copy that aliases
		// this slice's backing array, and truncating in place would let
		// that scratch's own MakeMove/UnmakeMove clobber entries still in
		// view of the real p.
		p.history = nil
	} else {
		p.HalfmoveClock++
	}
	p.history = append(p.history, h)

	if us == Black {
		p.FullmoveNumber++
	}

	p.SideToMove = them
	p.Hash = h

	return undo
}

// castleMask returns the castling rights a move to/from sq permanently
// revokes: moving the king or a rook off its home square, or capturing a
// rook on its home square, forfeits that right.
func castleMask(sq int) uint8 {
	switch sq {
	case 4:
		return CastleWhiteKingSide | CastleWhiteQueenSide
	case 60:
		return CastleBlackKingSide | CastleBlackQueenSide
	case 0:
		return CastleWhiteQueenSide
	case 7:
		return CastleWhiteKingSide
	case 56:
		return CastleBlackQueenSide
	case 63:
		return CastleBlackKingSide
	default:
		return 0
	}
}

// UnmakeMove reverses a previously applied MakeMove, restoring the
// position to its exact prior state.
func (p *Position) UnmakeMove(m Move, undo UndoInfo) {
	them := p.SideToMove
	us := them.Other()

	placed := m.Piece
	if m.Promotion != Empty {
		placed = m.Promotion
	}
	p.removePiece(us, placed, m.To)
	p.addPiece(us, m.Piece, m.From)

	if m.Flags&FlagCastling != 0 {
		rank := rankOf(m.From)
		var rookFrom, rookTo int
		if fileOf(m.To) == 6 {
			rookFrom, rookTo = squareIndex(7, rank), squareIndex(5, rank)
		} else {
			rookFrom, rookTo = squareIndex(0, rank), squareIndex(3, rank)
		}
		p.removePiece(us, Rook, rookTo)
		p.addPiece(us, Rook, rookFrom)
	}

	if undo.CapturedPiece != Empty {
		p.addPiece(undo.CapturedColor, undo.CapturedPiece, undo.CapturedSquare)
	}

	p.CastleRights = undo.CastleRights
	p.EnPassant = undo.EnPassant
	p.HalfmoveClock = undo.HalfmoveClock
	p.Hash = undo.Hash
	p.history = undo.history
	if us == Black {
		p.FullmoveNumber--
	}
	p.SideToMove = us
}
