package commandhandler

import "time"

// CountdownTarget yields the instant a countdown is running to, as seen at now.
type CountdownTarget interface {
	Target(now time.Time) time.Time
}

// annualTarget is midnight of a fixed calendar day, moved to next year once passed.
type annualTarget struct {
	month time.Month
	day   int
	loc   *time.Location
}

func (a annualTarget) Target(now time.Time) time.Time {
	year := now.In(a.loc).Year()
	target := time.Date(year, a.month, a.day, 0, 0, 0, 0, a.loc)
	if now.After(target) {
		target = time.Date(year+1, a.month, a.day, 0, 0, 0, 0, a.loc)
	}
	return target
}

// fixedTarget is one literal instant; it never rolls over.
type fixedTarget time.Time

func (f fixedTarget) Target(time.Time) time.Time {
	return time.Time(f)
}

// secondsLeft truncates towards zero like the reply texts expect
func secondsLeft(now, target time.Time) int {
	return int(target.Sub(now) / time.Second)
}
