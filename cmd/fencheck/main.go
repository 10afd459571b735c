package main

import (
	"fmt"
	"os"
	"strings"

	"arbiter/internal/pairing"
)

// fencheck validates a starting position the way the schedule form does and
// prints the board.
func main() {
	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	if len(os.Args) > 1 {
		fen = strings.Join(os.Args[1:], " ")
	}
	pos, err := pairing.ValidateFEN(fen)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Print(pos.Board().Draw())
	fmt.Println("to move:", pos.Turn().Name())
}
