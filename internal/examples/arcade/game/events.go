package game

type EnemySpawned struct {
	ID    string
	Kind  string
	Frame int
}

type EnemyDefeated struct {
	ID     string
	Kind   string
	Points int
}
