package timezone

import "time"

var Location = time.UTC

// force timezone to UTC because the upstream site publishes both its date
// headers and its exact epoch attributes in UTC; a server landing in another
// zone would shift dates when manipulating <time.Time>.Year()/Month()/Day()
func Now() time.Time {
	return time.Now().In(Location)
}
