package compare

import (
	"fmt"

	"github.com/thealanjason/MiniThesis/internal/ode"
	"github.com/thealanjason/MiniThesis/internal/steppers"
)

// MethodOrder is the canonical display order of the four schemes.
var MethodOrder = []string{
	"explicit",
	"implicit-analytic",
	"implicit-matrix",
	"implicit-iterative",
}

// Registry maps method names to fresh stepper instances.
type Registry struct {
	methods map[string]func() ode.Method
}

func NewRegistry() *Registry {
	r := &Registry{methods: make(map[string]func() ode.Method)}

	r.methods["explicit"] = func() ode.Method { return steppers.NewExplicit() }
	r.methods["implicit-analytic"] = func() ode.Method { return steppers.NewImplicitAnalytic() }
	r.methods["implicit-matrix"] = func() ode.Method { return steppers.NewImplicitMatrix() }
	r.methods["implicit-iterative"] = func() ode.Method { return steppers.NewImplicitIterative() }

	return r
}

// Get returns a fresh instance of the named method.
func (r *Registry) Get(name string) (ode.Method, error) {
	factory, ok := r.methods[name]
	if !ok {
		return nil, fmt.Errorf("unknown method: %s (available: %v)", name, MethodOrder)
	}
	return factory(), nil
}

// Names lists the registered methods in canonical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(MethodOrder))
	for _, n := range MethodOrder {
		if _, ok := r.methods[n]; ok {
			names = append(names, n)
		}
	}
	return names
}
