package game

import "github.com/victormf2/gameioc/state"

// World adds the game systems to the state manager in update order.
type World struct {
	Manager *state.Manager
	Spawner *Spawner
	Arena   *Arena
	Score   *ScoreKeeper
	Board   *StatusBoard
}

func NewWorld(manager *state.Manager, spawner *Spawner, arena *Arena, score *ScoreKeeper, board *StatusBoard) *World {
	manager.AddSystem(spawner)
	manager.AddSystem(arena)
	manager.AddSystem(score)
	manager.AddSystem(board)

	return &World{
		Manager: manager,
		Spawner: spawner,
		Arena:   arena,
		Score:   score,
		Board:   board,
	}
}
