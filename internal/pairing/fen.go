package pairing

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// ValidateFEN parses a custom starting position.
func ValidateFEN(fen string) (*chess.Position, error) {
	opt, err := chess.FEN(strings.TrimSpace(fen))
	if err != nil {
		return nil, fmt.Errorf("Invalid FEN: %w", err)
	}
	return chess.NewGame(opt).Position(), nil
}
