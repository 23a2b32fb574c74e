package component

// Cooldown gates an ability: it is ready when now >= lastUsed + Duration.
// A cooldown that was never triggered is always ready.
type Cooldown struct {
	Duration float64

	lastUsed float64
	used     bool
}

func NewCooldown(duration float64) Cooldown {
	if duration < 0 {
		duration = 0
	}
	return Cooldown{Duration: duration}
}

func (c *Cooldown) Ready(now float64) bool {
	if c == nil || !c.used {
		return true
	}
	return now >= c.lastUsed+c.duration()
}

func (c *Cooldown) Trigger(now float64) {
	if c == nil {
		return
	}
	c.lastUsed = now
	c.used = true
}

// LastUsed reports the last trigger time, if any.
func (c *Cooldown) LastUsed() (float64, bool) {
	if c == nil {
		return 0, false
	}
	return c.lastUsed, c.used
}

func (c *Cooldown) Remaining(now float64) float64 {
	if c.Ready(now) {
		return 0
	}
	return c.lastUsed + c.duration() - now
}

func (c *Cooldown) Reset() {
	if c == nil {
		return
	}
	c.used = false
	c.lastUsed = 0
}

func (c *Cooldown) duration() float64 {
	if c.Duration < 0 {
		return 0
	}
	return c.Duration
}

// Window is a monotonic deadline. It backs the action lock and
// invulnerability: Extend never shortens it.
type Window struct {
	until float64
	set   bool
}

func (w *Window) Extend(now, duration float64) {
	if w == nil || duration <= 0 {
		return
	}
	end := now + duration
	if !w.set || end > w.until {
		w.until = end
		w.set = true
	}
}

func (w *Window) Active(now float64) bool {
	return w != nil && w.set && now < w.until
}

func (w *Window) Until() float64 {
	if w == nil {
		return 0
	}
	return w.until
}

func (w *Window) Clear() {
	if w == nil {
		return
	}
	w.set = false
	w.until = 0
}
