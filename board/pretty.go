package board

import "strings"

// Pretty renders the board as an 8x8 ASCII grid, White pieces uppercase.
func (p *Position) Pretty() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteString("+---+---+---+---+---+---+---+---+\n")
		for file := 0; file < 8; file++ {
			pc, color := p.PieceAt(squareIndex(file, rank))
			ch := " "
			if pc != Empty {
				ch = pieceChars[pc]
				if color == White {
					ch = strings.ToUpper(ch)
				}
			}
			sb.WriteString("| " + ch + " ")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	return sb.String()
}
