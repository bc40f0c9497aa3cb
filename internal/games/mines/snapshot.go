package mines

// Snapshot captures the simulation state for determinism testing and logging.
type Snapshot struct {
	Tick      uint64
	BallRow   int
	BallCol   int
	VelRow    int
	VelCol    int
	TokenRow  int
	TokenCol  int
	Mines     int
	Score     int
	MineTimer int
	Status    Status
}

// Snapshot returns a flat copy of the state without the mine positions.
func (s State) Snapshot() Snapshot {
	return Snapshot{
		Tick:      s.Tick,
		BallRow:   s.Ball.Row,
		BallCol:   s.Ball.Col,
		VelRow:    s.Velocity.Row,
		VelCol:    s.Velocity.Col,
		TokenRow:  s.Token.Row,
		TokenCol:  s.Token.Col,
		Mines:     len(s.Mines),
		Score:     s.Score,
		MineTimer: s.MineTimer,
		Status:    s.Status,
	}
}
