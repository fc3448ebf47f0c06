// Package countdown computes the remaining time until the event. Display
// formatting belongs to the client; this is only the arithmetic.
package countdown

import "time"

// Remaining is the time left until a target instant, broken into the units
// guests see on the landing page. All fields are zero once the target has
// passed.
type Remaining struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Reached bool `json:"reached"`
}

// Until breaks down target minus now, clamped at zero.
func Until(target, now time.Time) Remaining {
	diff := target.Sub(now)
	if diff <= 0 {
		return Remaining{Reached: true}
	}
	return Remaining{
		Days:    int(diff / (24 * time.Hour)),
		Hours:   int(diff/time.Hour) % 24,
		Minutes: int(diff/time.Minute) % 60,
		Seconds: int(diff/time.Second) % 60,
	}
}
