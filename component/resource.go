package component

// Persister is the key/value store a Resource survives actor re-creation with.
type Persister interface {
	GetInt(key string, def int) int
	SetInt(key string, value int)
}

// ResourceListener receives every successful mutation.
type ResourceListener func(current, max int)

// Resource is a bounded value such as health or sanity. Every mutation goes
// through Set, which clamps to [0, Max], persists, and notifies.
type Resource struct {
	key     string
	current int
	max     int
	store   Persister

	nextID    int
	listeners []subscription
}

type subscription struct {
	id int
	fn ResourceListener
}

// NewResource starts full. A max below 1 is raised to 1.
func NewResource(max int, key string, store Persister) *Resource {
	if max < 1 {
		max = 1
	}
	return &Resource{
		key:     key,
		current: max,
		max:     max,
		store:   store,
	}
}

// Load restores the persisted value, defaulting to the current one.
func (r *Resource) Load() {
	if r == nil || r.store == nil || r.key == "" {
		return
	}
	r.Set(r.store.GetInt(r.key, r.current))
}

func (r *Resource) Set(value int) {
	if r == nil {
		return
	}
	if value < 0 {
		value = 0
	}
	if value > r.max {
		value = r.max
	}
	r.current = value
	if r.store != nil && r.key != "" {
		r.store.SetInt(r.key, value)
	}
	r.notify()
}

// Damage lowers the value by amount. Non-positive amounts are ignored.
func (r *Resource) Damage(amount int) bool {
	if r == nil || amount <= 0 {
		return false
	}
	if amount >= r.current {
		r.Set(0)
		return true
	}
	r.Set(r.current - amount)
	return true
}

// Restore raises the value by amount. Non-positive amounts are ignored.
func (r *Resource) Restore(amount int) bool {
	if r == nil || amount <= 0 {
		return false
	}
	if amount >= r.max-r.current {
		r.Set(r.max)
		return true
	}
	r.Set(r.current + amount)
	return true
}

func (r *Resource) Current() int {
	if r == nil {
		return 0
	}
	return r.current
}

func (r *Resource) Max() int {
	if r == nil {
		return 0
	}
	return r.max
}

func (r *Resource) Depleted() bool {
	return r == nil || r.current <= 0
}

func (r *Resource) Fraction() float64 {
	if r == nil || r.max <= 0 {
		return 0
	}
	return float64(r.current) / float64(r.max)
}

// Subscribe registers fn and returns a func that removes it.
func (r *Resource) Subscribe(fn ResourceListener) func() {
	if r == nil || fn == nil {
		return func() {}
	}
	r.nextID++
	id := r.nextID
	r.listeners = append(r.listeners, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range r.listeners {
			if sub.id == id {
				r.listeners = append(r.listeners[:i:i], r.listeners[i+1:]...)
				return
			}
		}
	}
}

func (r *Resource) notify() {
	subs := append([]subscription(nil), r.listeners...)
	for _, sub := range subs {
		sub.fn(r.current, r.max)
	}
}

// ThresholdWatch reports when a resource crosses at or below Threshold.
type ThresholdWatch struct {
	Threshold int
	OnChange  func(active bool)

	active bool
	primed bool
}

// Observe is meant to be passed to Resource.Subscribe.
func (w *ThresholdWatch) Observe(current, _ int) {
	if w == nil {
		return
	}
	active := current <= w.Threshold
	if w.primed && active == w.active {
		return
	}
	w.primed = true
	w.active = active
	if w.OnChange != nil {
		w.OnChange(active)
	}
}

func (w *ThresholdWatch) Active() bool {
	return w != nil && w.active
}
