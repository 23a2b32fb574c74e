package component

// Input is one frame of sampled intent. Jump, Dash, Slide and Attack are
// press edges; the directional flags are held state.
type Input struct {
	Move float64

	Up    bool
	Down  bool
	Left  bool
	Right bool

	Jump   bool
	Dash   bool
	Slide  bool
	Attack bool
}

// Clamped returns a copy with Move limited to [-1, 1].
func (in Input) Clamped() Input {
	if in.Move > 1 {
		in.Move = 1
	}
	if in.Move < -1 {
		in.Move = -1
	}
	return in
}
