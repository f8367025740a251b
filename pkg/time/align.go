package ltime

import "time"

// UntilNextAlignment returns how long to wait from nowSecs (seconds since the
// Unix epoch) until the next multiple of interval. Alignment works on whole
// seconds: an interval shorter than one second yields zero, and being exactly
// on a boundary waits a full interval.
func UntilNextAlignment(nowSecs int64, interval time.Duration) time.Duration {
	intervalSecs := int64(interval / time.Second)
	if intervalSecs <= 0 {
		return 0
	}
	remainder := nowSecs % intervalSecs
	if remainder == 0 {
		return interval
	}
	return interval - time.Duration(remainder)*time.Second
}
