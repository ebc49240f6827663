package console

import (
	"checkers/game"
	"context"
)

// Human is a seat played from the console.
type Human struct {
	console *Console
}

func NewHuman(c *Console) *Human {
	return &Human{console: c}
}

// FindMove reads tokens until one parses as a move or ctx is done. Legality
// is left to the engine.
func (h *Human) FindMove(ctx context.Context, b *game.Board) (game.Move, error) {
	for {
		input, err := h.console.next(ctx)
		if err != nil {
			return game.Move{}, err
		}
		m, err := ParseMove(input)
		if err == nil {
			return m, nil
		}
		h.console.RejectInput()
	}
}
