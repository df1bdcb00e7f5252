package engine

import "time"

// Arm starts the scheduler: Tick runs every cfg.TickInterval until Disarm or
// a halt. Idempotent, and a no-op while the session is halted — a halted
// session only resumes after Reset.
func (e *Engine) Arm() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.armed || e.governor.HaltedNow() {
		return
	}

	e.armed = true
	e.stop = make(chan struct{})
	go e.loop(e.cfg.TickInterval, e.stop)
	e.log.Info().Dur("interval", e.cfg.TickInterval).Msg("scheduler armed")
}

// Disarm stops the scheduler. Idempotent.
func (e *Engine) Disarm() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.disarmLocked()
}

func (e *Engine) disarmLocked() {
	if !e.armed {
		return
	}
	e.armed = false
	close(e.stop)
	e.stop = nil
	e.log.Info().Msg("scheduler disarmed")
}

// Armed reports whether the scheduler is ticking.
func (e *Engine) Armed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.armed
}

// loop drives ticks at a fixed period. time.Ticker drops ticks when a pass
// overruns the interval, so there is no catch-up backlog.
func (e *Engine) loop(interval time.Duration, stop <-chan struct{}) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-stop:
			return
		case <-t.C:
			// A disarm can race the ticker; never run a tick after it.
			if !e.Armed() {
				return
			}
			if !e.Tick() {
				// Halt breached during the tick: self-shutdown.
				e.Disarm()
				return
			}
		}
	}
}
