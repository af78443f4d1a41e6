package ui

import "rockfall/internal/core"

const helpText = `space  pause
n      single tick
r      reset
s      reseed
up/dn  speed
q      quit`

// StatusProvider is implemented by sims that can describe their progress.
type StatusProvider interface {
	Status() []string
}

// StatusLines returns the sim's status, or nothing for sims without one.
func StatusLines(sim core.Sim) []string {
	if p, ok := sim.(StatusProvider); ok {
		return p.Status()
	}
	return nil
}
