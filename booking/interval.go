package booking

import "time"

// Overlaps reports whether the half-open date ranges [aPickup, aDropoff) and
// [bPickup, bDropoff) conflict. Pickup is inclusive and dropoff exclusive, so
// a dropoff and a pickup on the same instant allow a back-to-back handover.
func Overlaps(aPickup, aDropoff, bPickup, bDropoff time.Time) bool {
	return aPickup.Before(bDropoff) && bPickup.Before(aDropoff)
}
