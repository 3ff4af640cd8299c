// Package board Layout: https://gekomad.github.io/Cinnamon/BitboardCalculator/
//
//	56	57	58	59	60	61	62	63
//	48	49	50	51	52	53	54	55
//	40	41	42	43	44	45	46	47
//	32	33	34	35	36	37	38	39
//	24	25	26	27	28	29	30	31
//	16	17	18	19	20	21	22	23
//	08	09	10	11	12	13	14	15
//	00	01	02	03	04	05	06	07
package board

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares, one bit per square (LSB = a1).
type Bitboard uint64

const (
	FileA = 0
	FileB = 1
	FileC = 2
	FileD = 3
	FileE = 4
	FileF = 5
	FileG = 6
	FileH = 7

	Rank1 = 0
	Rank2 = 1
	Rank3 = 2
	Rank4 = 3
	Rank5 = 4
	Rank6 = 5
	Rank7 = 6
	Rank8 = 7
)

func (b *Bitboard) bit(index int) uint64 {
	mask := uint64(1) << uint(index)
	return (uint64(*b) & mask) >> uint(index)
}

func (b *Bitboard) IsBitSet(index int) bool {
	return b.bit(index) == 1
}

func (b *Bitboard) SetBit(index int) {
	*b |= 1 << uint(index)
}

func (b *Bitboard) ClearBit(index int) {
	*b &^= 1 << uint(index)
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the index of the least significant set bit, or -1 if empty.
func (b Bitboard) LSB() int {
	if b == 0 {
		return -1
	}
	return bits.TrailingZeros64(uint64(b))
}

// PopLSB clears and returns the index of the least significant set bit.
func (b *Bitboard) PopLSB() int {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

func squareIndex(f, r int) int {
	return (r << 3) + f
}

func fileOf(sq int) int { return sq & 7 }
func rankOf(sq int) int { return sq >> 3 }

func IndexToBitBoard(i int) Bitboard {
	var b Bitboard
	b.SetBit(i)
	return b
}

func (b *Bitboard) Pretty() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.IsBitSet(squareIndex(f, r)) {
				sb.WriteString("| X ")
			} else {
				sb.WriteString("|   ")
			}
		}
		fmt.Fprintf(&sb, "| %d\n+---+---+---+---+---+---+---+---+\n", r+1)
	}
	sb.WriteString("  a   b   c   d   e   f   g   h\n")
	return sb.String()
}

// ToSlice returns a slice of single-bit bitboards, one per set square.
func (b *Bitboard) ToSlice() []Bitboard {
	slice := []Bitboard{}
	rest := *b
	for rest != 0 {
		sq := rest.PopLSB()
		slice = append(slice, IndexToBitBoard(sq))
	}
	return slice
}

func (b *Bitboard) Hex() string {
	return fmt.Sprintf("0x%x", *b)
}

// IndexToAlgebraic converts a square index to algebraic notation (e.g., 0 -> "a1").
func IndexToAlgebraic(idx int) string {
	if idx < 0 || idx > 63 {
		return "??"
	}
	return fmt.Sprintf("%c%d", 'a'+fileOf(idx), rankOf(idx)+1)
}

// AlgebraicToIndex converts algebraic notation (e.g., "e4") to a square index.
func AlgebraicToIndex(s string) (int, bool) {
	if len(s) != 2 {
		return 0, false
	}
	f := int(s[0] - 'a')
	r := int(s[1] - '1')
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return 0, false
	}
	return squareIndex(f, r), true
}
