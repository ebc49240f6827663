package searcher

import "checkers/game"

func mockMove(id int) game.Move {
	return game.NewMove(id, 0, id, 0)
}

type mockState struct {
	player   string
	moves    []game.Move
	played   []game.Move
	winner   string
	outcomes map[game.Move]mockState
}

func (m mockState) Player() string {
	return m.player
}

func (m mockState) LegalMoves() []game.Move {
	return m.moves
}

func (m mockState) Play(move game.Move) game.State {
	played := append(append([]game.Move{}, m.played...), move)
	if next, ok := m.outcomes[move]; ok {
		next.played = played
		return next
	}
	return mockState{played: played}
}

func (m mockState) Winner() string {
	return m.winner
}
