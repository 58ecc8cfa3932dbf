package domain

// VehicleWidthFeet is the lateral space reserved per vehicle. Every vehicle
// is assumed ten feet wide regardless of its length; keeping it named lets
// the unit change without touching the footprint math.
const VehicleWidthFeet = 10

// Footprint is the rectangle a sub-group of vehicles occupies when parked
// in one orientation.
type Footprint struct {
	Width  int
	Length int
}

// EndToEnd returns the space taken when count vehicles of the given length
// park end to end.
func EndToEnd(vehicleLength, count int) Footprint {
	return Footprint{
		Width:  vehicleLength * count,
		Length: count * VehicleWidthFeet,
	}
}

// SideBySide returns the space taken when count vehicles of the given
// length park side by side.
func SideBySide(vehicleLength, count int) Footprint {
	return Footprint{
		Width:  VehicleWidthFeet * count,
		Length: vehicleLength,
	}
}

// Fits reports whether the listing is at least as large as the footprint in
// both dimensions. Only the two supported orientations are considered;
// listings are never rotated.
func (l Listing) Fits(f Footprint) bool {
	return l.Length >= f.Length && l.Width >= f.Width
}

// CanHold reports whether count vehicles of the given length fit on the
// listing in either orientation.
func (l Listing) CanHold(vehicleLength, count int) bool {
	return l.Fits(EndToEnd(vehicleLength, count)) || l.Fits(SideBySide(vehicleLength, count))
}
