package board

import (
	"fmt"
	"strconv"
	"strings"
)

var pieceRunes = map[rune]Piece{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

var pieceChars = map[Piece]string{
	Pawn: "p", Knight: "n", Bishop: "b", Rook: "r", Queen: "q", King: "k",
}

// ParseFEN builds a Position from Forsyth-Edwards Notation. It panics on
// malformed input; engine.Engine.SetPosition, through which protocol
// text reaches it, recovers that panic and returns it as an error (a
// ProtocolError) instead.
func ParseFEN(fen string) Position {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		panic(fmt.Sprintf("board: malformed FEN %q", fen))
	}

	var p Position
	p.EnPassant = -1

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		panic(fmt.Sprintf("board: malformed FEN piece placement %q", fields[0]))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				lower := ch
				color := White
				if ch >= 'a' && ch <= 'z' {
					color = Black
				} else {
					lower = ch + ('a' - 'A')
				}
				pc, ok := pieceRunes[lower]
				if !ok {
					panic(fmt.Sprintf("board: unknown piece char %q", ch))
				}
				p.addPiece(color, pc, squareIndex(file, rank))
				file++
			}
		}
	}

	p.SideToMove = White
	if fields[1] == "b" {
		p.SideToMove = Black
	}

	for _, ch := range fields[2] {
		switch ch {
		case 'K':
			p.CastleRights |= CastleWhiteKingSide
		case 'Q':
			p.CastleRights |= CastleWhiteQueenSide
		case 'k':
			p.CastleRights |= CastleBlackKingSide
		case 'q':
			p.CastleRights |= CastleBlackQueenSide
		}
	}

	if fields[3] != "-" {
		if sq, ok := AlgebraicToIndex(fields[3]); ok {
			p.EnPassant = sq
		}
	}

	if len(fields) > 4 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			p.HalfmoveClock = n
		}
	}
	p.FullmoveNumber = 1
	if len(fields) > 5 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			p.FullmoveNumber = n
		}
	}

	p.Hash = p.computeHash()
	return p
}

// FEN renders the position back to Forsyth-Edwards Notation.
func (p *Position) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := squareIndex(file, rank)
			pc, color := p.PieceAt(sq)
			if pc == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			ch := pieceChars[pc]
			if color == White {
				ch = strings.ToUpper(ch)
			}
			sb.WriteString(ch)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteString("/")
		}
	}

	sb.WriteString(" ")
	if p.SideToMove == White {
		sb.WriteString("w")
	} else {
		sb.WriteString("b")
	}

	sb.WriteString(" ")
	castling := ""
	if p.CastleRights&CastleWhiteKingSide != 0 {
		castling += "K"
	}
	if p.CastleRights&CastleWhiteQueenSide != 0 {
		castling += "Q"
	}
	if p.CastleRights&CastleBlackKingSide != 0 {
		castling += "k"
	}
	if p.CastleRights&CastleBlackQueenSide != 0 {
		castling += "q"
	}
	if castling == "" {
		castling = "-"
	}
	sb.WriteString(castling)

	sb.WriteString(" ")
	if p.EnPassant >= 0 {
		sb.WriteString(IndexToAlgebraic(p.EnPassant))
	} else {
		sb.WriteString("-")
	}

	fmt.Fprintf(&sb, " %d %d", p.HalfmoveClock, p.FullmoveNumber)
	return sb.String()
}
