package searcher

// Hyperparameters for MCTS

const MaxCutoff = 1<<31 - 1 // Rollout to the end of the game by default
