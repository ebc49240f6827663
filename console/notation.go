package console

import (
	"checkers/game"
	"checkers/utils"
	"errors"
	"fmt"
	"strings"
)

var ErrBadNotation = errors.New("bad move notation")

var (
	rows    = []rune("12345678")
	columns = []rune("abcdefgh")
)

// ParseMove reads a move written as from-to, each square a row digit
// followed by a column letter: "3a-4b".
func ParseMove(input string) (game.Move, error) {
	s := []rune(strings.ToLower(strings.TrimSpace(input)))
	if len(s) != 5 || s[2] != '-' {
		return game.Move{}, fmt.Errorf("%q: %w", input, ErrBadNotation)
	}

	fromRow := utils.FindIndex(rows, s[0]) + 1
	fromCol := utils.FindIndex(columns, s[1]) + 1
	toRow := utils.FindIndex(rows, s[3]) + 1
	toCol := utils.FindIndex(columns, s[4]) + 1
	for _, v := range []int{fromRow, fromCol, toRow, toCol} {
		if v == 0 {
			return game.Move{}, fmt.Errorf("%q: %w", input, ErrBadNotation)
		}
	}
	return game.NewMove(fromRow, fromCol, toRow, toCol), nil
}
