package board

import "math/rand"

// Zobrist hashing XORs per-feature random constants together to produce a
// 64-bit position identity: each (color, piece, square) combination, each
// of the 16 castling-rights subsets, each en-passant file, and side to move.
var (
	zobristPieces [2][7][64]uint64
	zobristCastle [16]uint64
	zobristEP     [8]uint64
	zobristSide   uint64
)

// zobristSeed is fixed so that hashes (and therefore transposition table
// behavior) are reproducible across runs for the same sequence of moves.
const zobristSeed = 0x5EED_C0FF_EE15_B00B

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for c := 0; c < 2; c++ {
		for pc := Pawn; pc <= King; pc++ {
			for sq := 0; sq < 64; sq++ {
				zobristPieces[c][pc][sq] = r.Uint64()
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = r.Uint64()
	}
	for i := range zobristEP {
		zobristEP[i] = r.Uint64()
	}
	zobristSide = r.Uint64()
}

// HashSide returns the constant XORed into the hash when side to move flips.
func HashSide() uint64 { return zobristSide }

// computeHash derives the Zobrist hash of the position from scratch. It is
// used only at construction time; MakeMove/UnmakeMove maintain Hash
// incrementally afterward.
func (p *Position) computeHash() uint64 {
	var h uint64
	for c := 0; c < 2; c++ {
		for pc := Pawn; pc <= King; pc++ {
			bb := p.pieces[c][pc]
			for bb != 0 {
				sq := bb.PopLSB()
				h ^= zobristPieces[c][pc][sq]
			}
		}
	}
	h ^= zobristCastle[p.CastleRights&0xF]
	if p.EnPassant >= 0 {
		h ^= zobristEP[fileOf(p.EnPassant)]
	}
	if p.SideToMove == Black {
		h ^= zobristSide
	}
	return h
}
