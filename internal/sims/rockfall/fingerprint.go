package rockfall

// Profile is the shape of the tower's top surface: each column's top row
// relative to the lowest column top.
type Profile [Width]int

// NormalizeTops shifts column tops so the lowest becomes zero. Adding the
// same constant to every column yields the same profile.
func NormalizeTops(tops [Width]int) Profile {
	low := tops[0]
	for _, t := range tops[1:] {
		low = min(low, t)
	}
	var p Profile
	for x, t := range tops {
		p[x] = t - low
	}
	return p
}

// Fingerprint is everything future rocks depend on: the surface profile, which
// shape comes next and where the jet pattern resumes.
type Fingerprint struct {
	Profile Profile
	Rock    int
	Jet     int
}

// Fingerprint captures the engine state between rocks.
func (e *Engine) Fingerprint() Fingerprint {
	return Fingerprint{
		Profile: NormalizeTops(e.well.Tops()),
		Rock:    e.rocks % ShapeCount,
		Jet:     e.jet % len(e.jets),
	}
}
