// meta/meta.go
package meta

import "time"

// BOARD_SIZE is the number of rows and columns on the board.
const BOARD_SIZE = 8

// PIECES_PER_SIDE is the number of pieces each side starts with.
const PIECES_PER_SIDE = 12

// COMPUTER_DELAY is the pause before a computer seat moves in interactive play.
const COMPUTER_DELAY = 2 * time.Second

// GO_ROUTINES defines the number of goroutines to use.
const GO_ROUTINES = 4

// EPISODES defines the number of episodes for MCTS.
const EPISODES = 400

// WITH_CUTOFF defines the rollout cutoff for MCTS.
const WITH_CUTOFF = 40

// SELF_PLAY_GAMES defines the number of games per self-play matchup.
const SELF_PLAY_GAMES = 20
