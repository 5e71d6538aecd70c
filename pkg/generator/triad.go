package generator

// VelocityTriad is the velocity-layered triad generator. It is registered
// so the roster stays stable but produces no events yet.
type VelocityTriad struct {
	params Params
}

// NewVelocityTriad creates the placeholder generator
func NewVelocityTriad(p Params) *VelocityTriad {
	return &VelocityTriad{params: p}
}

// Name returns the registry name
func (v *VelocityTriad) Name() string {
	return "velocity-triad"
}

// Description returns a short summary
func (v *VelocityTriad) Description() string {
	return "Velocity-layered triad (placeholder)"
}

// Generate always returns ErrNotImplemented
func (v *VelocityTriad) Generate() (*Result, error) {
	return nil, ErrNotImplemented
}
