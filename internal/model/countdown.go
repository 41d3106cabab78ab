package model

import "fmt"

// ReminderPeriodSeconds is the fixed reminder interval. The countdown
// always resets to this value, whether it stopped, fired, or restarted.
const ReminderPeriodSeconds = 5 * 60

// Countdown is the reminder state machine. Running is true exactly when
// at least one task is pending; SecondsLeft stays in [0, ReminderPeriodSeconds].
type Countdown struct {
	SecondsLeft int
	Running     bool
}

func NewCountdown() Countdown {
	return Countdown{SecondsLeft: ReminderPeriodSeconds}
}

// Reevaluate applies the pending-task count after a store mutation.
// isAdd marks an add mutation, which force-resets the countdown to the
// full period even when already running (restart on new work). All
// other mutations reset only on a state transition.
func (c *Countdown) Reevaluate(pending int, isAdd bool) {
	if pending > 0 {
		if isAdd || !c.Running {
			c.SecondsLeft = ReminderPeriodSeconds
			c.Running = true
		}
		return
	}
	c.Running = false
	c.SecondsLeft = ReminderPeriodSeconds
}

// Tick advances the countdown by one second and reports whether the
// reminder fired. The pending check precedes the decrement: a tick that
// observes zero pending tasks stops the countdown and never fires.
// Firing resets the countdown but leaves it running.
func (c *Countdown) Tick(pending int) (fired bool) {
	if pending == 0 {
		c.Running = false
		c.SecondsLeft = ReminderPeriodSeconds
		return false
	}
	c.SecondsLeft--
	if c.SecondsLeft <= 0 {
		c.SecondsLeft = ReminderPeriodSeconds
		return true
	}
	return false
}

// Display renders the countdown as zero-padded MM:SS.
func (c Countdown) Display() string {
	sec := c.SecondsLeft
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}
