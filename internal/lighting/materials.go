package lighting

// Medium is a named refractive index
type Medium struct {
	Name  string
	Index float32
}

// Media lists the refractive indices the cubemap exercise cycles through
var Media = []Medium{
	{"air", 1.00},
	{"water", 1.33},
	{"ice", 1.309},
	{"glass", 1.52},
	{"diamond", 2.42},
}

// Ratio returns the eta passed to refract for a ray entering m from air
func (m Medium) Ratio() float32 {
	return 1.0 / m.Index
}

// NextMedium returns the index after i in Media, wrapping around
func NextMedium(i int) int {
	if len(Media) == 0 {
		return 0
	}
	return (i + 1) % len(Media)
}
