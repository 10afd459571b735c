package web

import (
	"github.com/notnil/chess"
)

type SquareView struct {
	Glyph  string
	Class  string
	Square string
}

var pieceGlyphs = map[chess.Piece]string{
	chess.WhiteKing:   "♔",
	chess.WhiteQueen:  "♕",
	chess.WhiteRook:   "♖",
	chess.WhiteBishop: "♗",
	chess.WhiteKnight: "♘",
	chess.WhitePawn:   "♙",
	chess.BlackKing:   "♚",
	chess.BlackQueen:  "♛",
	chess.BlackRook:   "♜",
	chess.BlackBishop: "♝",
	chess.BlackKnight: "♞",
	chess.BlackPawn:   "♟",
}

// boardFromPosition lays out the preview rank 8 first, from white's side.
func boardFromPosition(pos *chess.Position) [][]SquareView {
	b := pos.Board()
	rows := make([][]SquareView, 0, 8)
	for r := chess.Rank8; r >= chess.Rank1; r-- {
		row := make([]SquareView, 0, 8)
		for f := chess.FileA; f <= chess.FileH; f++ {
			sq := chess.NewSquare(f, r)
			class := "sq dark" // a1 is dark
			if (int(f)+int(r))%2 == 1 {
				class = "sq light"
			}
			row = append(row, SquareView{
				Glyph:  pieceGlyphs[b.Piece(sq)],
				Class:  class,
				Square: sq.String(),
			})
		}
		rows = append(rows, row)
	}
	return rows
}
