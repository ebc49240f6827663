package game

// Rules is the rule set the engine plays under.
type Rules interface {
	IsValidMove(m Move, b *Board) bool
	CheckWin(b *Board) bool
}

// StandardRules are the forward-only, single-jump rules with no kings.
type StandardRules struct{}

func NewStandardRules() *StandardRules {
	return &StandardRules{}
}

func (sr *StandardRules) IsValidMove(m Move, b *Board) bool {
	return IsValidMove(m, b)
}

func (sr *StandardRules) CheckWin(b *Board) bool {
	return CheckWin(b)
}
