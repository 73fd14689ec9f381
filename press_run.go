package tactile

import "github.com/tanema/gween/ease"

// scaleRun is one in-flight ease of a node's scale.
type scaleRun struct {
	from, to Vec2
	elapsed  float64
	duration float64
}

// scaleLeg is a run waiting for the current one to finish.
type scaleLeg struct {
	to       Vec2
	duration float64
}

// scaleAnimator owns the scale of its target while a run is active. At most
// one run exists; starting another replaces it at once, with no queueing
// except the second leg of a pulse.
type scaleAnimator struct {
	target *Node
	curve  ease.TweenFunc
	run    *scaleRun
	next   *scaleLeg
}

// evaluate maps normalized progress k through the easing curve.
func (a *scaleAnimator) evaluate(k float64) float64 {
	if a.curve == nil {
		return k
	}
	return float64(a.curve(float32(k), 0, 1, 1))
}

// start cancels any run (including a pending pulse leg) and eases from the
// target's current scale to `to`. A duration that is not positive snaps
// immediately.
func (a *scaleAnimator) start(to Vec2, duration float64) {
	a.cancel()
	if a.target == nil || a.target.IsDisposed() {
		return
	}
	if !(duration > 0) {
		a.target.SetScale(to.X, to.Y)
		return
	}
	a.run = &scaleRun{
		from:     a.target.Scale(),
		to:       to,
		duration: duration,
	}
}

// startPulse runs down then up. The up leg starts only once the down leg has
// reached its end, from whatever scale the down leg left.
func (a *scaleAnimator) startPulse(down, up Vec2, duration float64) {
	a.start(down, duration)
	if a.run == nil {
		// The down leg finished synchronously (or there is no target).
		a.start(up, duration)
		return
	}
	a.next = &scaleLeg{to: up, duration: duration}
}

// tick advances the run by dt seconds. Writing the scale is the last thing a
// tick does, so no caller ever observes a half-updated run.
func (a *scaleAnimator) tick(dt float64) {
	r := a.run
	if r == nil {
		return
	}
	if a.target == nil || a.target.IsDisposed() {
		a.cancel()
		return
	}
	r.elapsed += dt
	k := clamp01(r.elapsed / r.duration)
	if k >= 1 {
		a.run = nil
		a.target.SetScale(r.to.X, r.to.Y)
		if leg := a.next; leg != nil {
			a.next = nil
			a.start(leg.to, leg.duration)
		}
		return
	}
	v := lerpVec2(r.from, r.to, a.evaluate(k))
	a.target.SetScale(v.X, v.Y)
}

// cancel stops scheduling further ticks. The scale is left where it is.
func (a *scaleAnimator) cancel() {
	a.run = nil
	a.next = nil
}

func (a *scaleAnimator) running() bool {
	return a.run != nil
}
