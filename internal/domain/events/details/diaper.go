package details

// Diaper modela un cambio de pañal.
type Diaper struct {
	Type DiaperType

	// ImageRef es una referencia opaca al Image Store (vacía = sin foto).
	ImageRef string
}
