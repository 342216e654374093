package authz

import "time"

// Clock は現在時刻を提供します
type Clock interface {
	Now() time.Time
}

// SystemClock はシステム時刻を返すClockです
type SystemClock struct{}

// Now は現在時刻を返します
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock は固定時刻を返すClockです
type FixedClock time.Time

// Now は固定時刻を返します
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
