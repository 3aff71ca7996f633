package impact

import "fmt"

// Composition is a spectral asteroid class with its mean bulk density.
type Composition struct {
	Name    string  `json:"name" yaml:"name"`
	Label   string  `json:"label" yaml:"label"`
	Density float64 `json:"density_g_cm3" yaml:"density_g_cm3"`
}

// Mean densities (g/cm³) for the three spectral classes.
var (
	CType = Composition{Name: "c-type", Label: "C-type", Density: 1.38}
	SType = Composition{Name: "s-type", Label: "S-type", Density: 2.71}
	MType = Composition{Name: "m-type", Label: "M-type", Density: 5.32}
)

// Registry keeps compositions in registration order.
type Registry struct {
	order  []string
	byName map[string]Composition
}

func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]Composition)}
	for _, c := range []Composition{CType, SType, MType} {
		_ = r.Register(c)
	}
	return r
}

func (r *Registry) Register(c Composition) error {
	if _, ok := r.byName[c.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateComposition, c.Name)
	}
	r.byName[c.Name] = c
	r.order = append(r.order, c.Name)
	return nil
}

func (r *Registry) Get(name string) (Composition, error) {
	c, ok := r.byName[name]
	if !ok {
		return Composition{}, fmt.Errorf("%w: %s", ErrUnknownComposition, name)
	}
	return c, nil
}

// All returns the compositions in registration order.
func (r *Registry) All() []Composition {
	out := make([]Composition, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
