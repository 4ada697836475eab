package dict

import "time"

// nowMillis is the sole time read in the package, isolated so
// RehashMilliseconds' budget check has one call site.
func nowMillis() int64 {
	return time.Now().UnixMilli()
}
