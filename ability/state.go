package ability

// State is the single exclusive ability an actor is running.
type State int

const (
	Idle State = iota
	Jumping
	Dashing
	PostDashHang
	Sliding
	Attacking
	Hopping
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Jumping:
		return "jumping"
	case Dashing:
		return "dashing"
	case PostDashHang:
		return "post_dash_hang"
	case Sliding:
		return "sliding"
	case Attacking:
		return "attacking"
	case Hopping:
		return "hopping"
	default:
		return "unknown"
	}
}

// interruptible states accept a new ability start.
func (s State) interruptible() bool {
	return s == Idle || s == Jumping
}

// Gates switches whole abilities on or off, e.g. in hub scenes.
type Gates struct {
	Jump   bool
	Dash   bool
	Slide  bool
	Attack bool
}

func AllGates() Gates {
	return Gates{Jump: true, Dash: true, Slide: true, Attack: true}
}

func NoGates() Gates {
	return Gates{}
}
