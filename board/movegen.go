package board

// GenerateLegalMoves returns every legal move for the side to move. It
// generates pseudo-legal moves per piece and discards any that would
// leave the mover's own king in check, by making each one on a scratch
// copy of the position and then discarding that copy. This is simpler to get right than incremental
// pin/check detection and is fast enough at club-level search depths.
func (p *Position) GenerateLegalMoves(t *AttackTables) []Move {
	pseudo := p.generatePseudoLegalMoves(t)
	legal := make([]Move, 0, len(pseudo))

	us := p.SideToMove
	for _, m := range pseudo {
		scratch := *p
		undo := scratch.MakeMove(m)
		_ = undo
		if !scratch.IsSquareAttacked(t, scratch.King(us), us.Other()) {
			legal = append(legal, m)
		}
	}
	return legal
}

// generatePseudoLegalMoves generates every move obeying piece movement
// rules, without checking whether it leaves the mover's own king exposed.
func (p *Position) generatePseudoLegalMoves(t *AttackTables) []Move {
	us := p.SideToMove
	them := us.Other()
	moves := make([]Move, 0, 48)

	ownOcc := p.occupied[us]
	enemyOcc := p.occupied[them]
	all := ownOcc | enemyOcc

	// Knights
	knights := p.pieces[us][Knight]
	for knights != 0 {
		from := knights.PopLSB()
		targets := t.Knight[from] &^ ownOcc
		moves = appendPieceMoves(moves, p, Knight, from, targets, enemyOcc)
	}

	// King (non-castling steps first, castling appended separately)
	kingBB := p.pieces[us][King]
	if kingBB != 0 {
		from := kingBB.LSB()
		targets := t.King[from] &^ ownOcc
		moves = appendPieceMoves(moves, p, King, from, targets, enemyOcc)
		moves = p.appendCastlingMoves(t, moves, us, all)
	}

	// Bishops / Rooks / Queens
	bishops := p.pieces[us][Bishop]
	for bishops != 0 {
		from := bishops.PopLSB()
		targets := bishopAttacks(t, from, all) &^ ownOcc
		moves = appendPieceMoves(moves, p, Bishop, from, targets, enemyOcc)
	}
	rooks := p.pieces[us][Rook]
	for rooks != 0 {
		from := rooks.PopLSB()
		targets := rookAttacks(t, from, all) &^ ownOcc
		moves = appendPieceMoves(moves, p, Rook, from, targets, enemyOcc)
	}
	queens := p.pieces[us][Queen]
	for queens != 0 {
		from := queens.PopLSB()
		targets := queenAttacks(t, from, all) &^ ownOcc
		moves = appendPieceMoves(moves, p, Queen, from, targets, enemyOcc)
	}

	moves = p.appendPawnMoves(t, moves, us, all, enemyOcc)

	return moves
}

func appendPieceMoves(moves []Move, p *Position, pc Piece, from int, targets, enemyOcc Bitboard) []Move {
	for targets != 0 {
		to := targets.PopLSB()
		captured := Empty
		if enemyOcc.IsBitSet(to) {
			captured, _ = p.PieceAt(to)
		}
		moves = append(moves, Move{From: from, To: to, Piece: pc, Captured: captured})
	}
	return moves
}

var promotionPieces = [4]Piece{Queen, Rook, Bishop, Knight}

func (p *Position) appendPawnMoves(t *AttackTables, moves []Move, us Color, all, enemyOcc Bitboard) []Move {
	pawns := p.pieces[us][Pawn]
	forward, startRank, promoRank := 8, Rank2, Rank8
	if us == Black {
		forward, startRank, promoRank = -8, Rank7, Rank1
	}

	for pawns != 0 {
		from := pawns.PopLSB()
		rank := rankOf(from)

		// Single push
		to := from + forward
		if to >= 0 && to < 64 && !all.IsBitSet(to) {
			moves = appendPawnAdvance(moves, from, to, promoRank)

			// Double push from the starting rank.
			if rank == startRank {
				to2 := to + forward
				if !all.IsBitSet(to2) {
					moves = append(moves, Move{From: from, To: to2, Piece: Pawn, Flags: FlagDoublePawnPush})
				}
			}
		}

		// Captures (including en passant)
		capTargets := t.Pawn[us][from]
		bb := capTargets
		for bb != 0 {
			to := bb.PopLSB()
			if enemyOcc.IsBitSet(to) {
				captured, _ := p.PieceAt(to)
				moves = appendPawnCapture(moves, from, to, captured, promoRank)
			} else if to == p.EnPassant && p.EnPassant >= 0 {
				moves = append(moves, Move{From: from, To: to, Piece: Pawn, Captured: Pawn, Flags: FlagEnPassant})
			}
		}
	}
	return moves
}

func appendPawnAdvance(moves []Move, from, to, promoRank int) []Move {
	if rankOf(to) == promoRank {
		for _, promo := range promotionPieces {
			moves = append(moves, Move{From: from, To: to, Piece: Pawn, Promotion: promo})
		}
		return moves
	}
	return append(moves, Move{From: from, To: to, Piece: Pawn})
}

func appendPawnCapture(moves []Move, from, to int, captured Piece, promoRank int) []Move {
	if rankOf(to) == promoRank {
		for _, promo := range promotionPieces {
			moves = append(moves, Move{From: from, To: to, Piece: Pawn, Captured: captured, Promotion: promo})
		}
		return moves
	}
	return append(moves, Move{From: from, To: to, Piece: Pawn, Captured: captured})
}

func (p *Position) appendCastlingMoves(t *AttackTables, moves []Move, us Color, all Bitboard) []Move {
	them := us.Other()
	if p.IsSquareAttacked(t, p.King(us), them) {
		return moves // cannot castle out of check
	}

	var kingSide, queenSide uint8
	var kingFrom, rank int
	if us == White {
		kingSide, queenSide, kingFrom, rank = CastleWhiteKingSide, CastleWhiteQueenSide, 4, 0
	} else {
		kingSide, queenSide, kingFrom, rank = CastleBlackKingSide, CastleBlackQueenSide, 60, 7
	}

	if p.CastleRights&kingSide != 0 {
		f, g := squareIndex(5, rank), squareIndex(6, rank)
		if !all.IsBitSet(f) && !all.IsBitSet(g) &&
			!p.IsSquareAttacked(t, f, them) && !p.IsSquareAttacked(t, g, them) {
			moves = append(moves, Move{From: kingFrom, To: g, Piece: King, Flags: FlagCastling})
		}
	}
	if p.CastleRights&queenSide != 0 {
		d, c, b := squareIndex(3, rank), squareIndex(2, rank), squareIndex(1, rank)
		if !all.IsBitSet(d) && !all.IsBitSet(c) && !all.IsBitSet(b) &&
			!p.IsSquareAttacked(t, d, them) && !p.IsSquareAttacked(t, c, them) {
			moves = append(moves, Move{From: kingFrom, To: c, Piece: King, Flags: FlagCastling})
		}
	}
	return moves
}
