package console

import (
	"bufio"
	"checkers/game"
	"checkers/meta"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/logrusorgru/aurora"
)

type Mode int

const (
	TwoPlayer Mode = iota + 1
	OnePlayer
)

const turnPrompt = " - your turn.\nChoose a cell position of piece to be moved and the new position. e.g., 3a-4b"

// Console is the text front end. It reads whitespace separated tokens from
// its input and writes prompts and boards to its output.
type Console struct {
	in     *bufio.Scanner
	tokens chan token
	once   sync.Once
	out    io.Writer
	au     aurora.Aurora
}

type token struct {
	text string
	err  error
}

func New(in io.Reader, out io.Writer, colour bool) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Console{
		in:     scanner,
		tokens: make(chan token),
		out:    out,
		au:     aurora.NewAurora(colour),
	}
}

func (c *Console) Begin() {
	fmt.Fprintln(c.out, "Begin Game.\n Enter 'P' if you want to play against another player; enter 'C' to play against computer.")
}

// ChooseMode reads until it gets P (two players) or C (against the
// computer), in either case.
func (c *Console) ChooseMode(ctx context.Context) (Mode, error) {
	for {
		input, err := c.next(ctx)
		if err != nil {
			return 0, err
		}
		switch strings.ToUpper(input) {
		case "P":
			return TwoPlayer, nil
		case "C":
			return OnePlayer, nil
		}
		c.RejectInput()
	}
}

func (c *Console) ConfirmOnePlayerMode() {
	fmt.Fprintln(c.out, "Start game against computer. You are Player X and Computer is Player O.")
}

func (c *Console) RequestMove(side game.Side) {
	fmt.Fprintln(c.out, name(side)+turnPrompt)
}

func (c *Console) RequestComputerMove(side game.Side) {
	fmt.Fprintf(c.out, "%s -  Computer's turn.\n\n", name(side))
}

func (c *Console) RejectInput() {
	fmt.Fprintln(c.out, "Invalid input.  Try again")
}

func (c *Console) AnnounceWinner(side game.Side) {
	fmt.Fprintln(c.out, c.au.Bold(name(side)+" Won the Game").String())
}

// DisplayBoard prints rows from 8 down to 1 with the column letters below.
func (c *Console) DisplayBoard(b *game.Board) {
	snap := b.Snapshot()
	var sb strings.Builder
	for row := meta.BOARD_SIZE; row >= 1; row-- {
		fmt.Fprintf(&sb, "%d |", row)
		for col := 1; col <= meta.BOARD_SIZE; col++ {
			fmt.Fprintf(&sb, " %s |", c.paint(snap.Occupant(row, col)))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  ")
	for _, letter := range columns {
		fmt.Fprintf(&sb, "  %c ", letter)
	}
	sb.WriteString("\n")
	fmt.Fprintln(c.out, sb.String())
}

func (c *Console) paint(side game.Side) string {
	switch side {
	case game.X:
		return c.au.Red(side.String()).String()
	case game.O:
		return c.au.Cyan(side.String()).String()
	default:
		return side.String()
	}
}

// next returns the next input token, io.EOF once input is exhausted, or the
// context's error if it is done first. The token being read when ctx ends is
// kept for the next call.
func (c *Console) next(ctx context.Context) (string, error) {
	c.once.Do(func() { go c.read() })
	if err := ctx.Err(); err != nil {
		return "", err
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case t, ok := <-c.tokens:
		if !ok {
			return "", io.EOF
		}
		return t.text, t.err
	}
}

// read is the only reader of the input.
func (c *Console) read() {
	defer close(c.tokens)
	for c.in.Scan() {
		c.tokens <- token{text: c.in.Text()}
	}
	err := c.in.Err()
	if err == nil {
		err = io.EOF
	}
	c.tokens <- token{err: err}
}

func name(side game.Side) string {
	return "Player" + strings.ToUpper(side.String())
}

func (c *Console) TurnStarted(b *game.Board, side game.Side, computer bool) {
	c.DisplayBoard(b)
	if computer {
		c.RequestComputerMove(side)
		return
	}
	c.RequestMove(side)
}

func (c *Console) MoveRejected(side game.Side, m game.Move, err error) {
	c.RejectInput()
}

func (c *Console) MovePlayed(b *game.Board, side game.Side, m game.Move) {}

func (c *Console) GameOver(b *game.Board, winner game.Side) {
	c.DisplayBoard(b)
	c.AnnounceWinner(winner)
}
