// Package dial models the pending-amount control: a value nudged in
// fixed increments or dragged along one axis, always clamped to a
// range derived from the savings target.
package dial

// Step sizes and drag geometry defaults.
const (
	DefaultPending  int64 = 1000
	StepAmount      int64 = 1000
	LargeStepAmount int64 = 10000

	// DefaultStepWidth is how far the pointer travels, in cells or
	// pixels, to turn the dial by one step.
	DefaultStepWidth = 10
)

// Dial holds the amount staged for the next ledger entry. A drag
// session converts horizontal displacement into whole steps; leftover
// displacement short of a step carries into the next motion event.
type Dial struct {
	pending   int64
	target    int64
	stepWidth int
	dragging  bool
	anchor    int
}

// New returns a dial staged at the default pending amount.
func New(target int64) *Dial {
	return &Dial{
		pending:   DefaultPending,
		target:    target,
		stepWidth: DefaultStepWidth,
	}
}

// SetStepWidth adjusts the drag sensitivity. Widths below 1 are ignored.
func (d *Dial) SetStepWidth(w int) {
	if w >= 1 {
		d.stepWidth = w
	}
}

// Pending returns the staged amount.
func (d *Dial) Pending() int64 { return d.pending }

// Dragging reports whether a drag session is active.
func (d *Dial) Dragging() bool { return d.dragging }

// Nudge moves the staged amount by delta and clamps it.
func (d *Dial) Nudge(delta int64) {
	d.pending = d.clamp(d.pending + delta)
}

// StartDrag opens a drag session anchored at x. A press that arrives
// while a session is already open is ignored.
func (d *Dial) StartDrag(x int) {
	if d.dragging {
		return
	}
	d.dragging = true
	d.anchor = x
}

// Drag consumes pointer motion. Each stepWidth of displacement from
// the anchor turns the dial one step; the anchor then advances by the
// consumed distance so partial steps accumulate across events. Motion
// outside a session is ignored.
func (d *Dial) Drag(x int) {
	if !d.dragging {
		return
	}
	steps := (x - d.anchor) / d.stepWidth
	if steps == 0 {
		return
	}
	d.pending = d.clamp(d.pending + int64(steps)*StepAmount)
	d.anchor += steps * d.stepWidth
}

// EndDrag closes the drag session. Safe to call when no session is open.
func (d *Dial) EndDrag() {
	d.dragging = false
}

// Commit hands over the staged amount and restages the default.
func (d *Dial) Commit() int64 {
	amount := d.pending
	d.pending = DefaultPending
	return amount
}

// Retarget updates the clamp ceiling when the savings target changes
// and re-clamps the staged amount against it.
func (d *Dial) Retarget(target int64) {
	d.target = target
	d.pending = d.clamp(d.pending)
}

// Ceiling is the largest stageable amount: twice the target, but never
// below one step.
func (d *Dial) Ceiling() int64 {
	if c := 2 * d.target; c > StepAmount {
		return c
	}
	return StepAmount
}

func (d *Dial) clamp(v int64) int64 {
	if v < 0 {
		return 0
	}
	if c := d.Ceiling(); v > c {
		return c
	}
	return v
}
