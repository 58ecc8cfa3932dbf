package domain

// Represents a request to park Quantity identical vehicles of the same
// Length at one location. The request as a whole is an unordered set of
// groups; the solver decides processing order, not the caller.
type VehicleGroup struct {
	Length   int
	Quantity int
}

// Demand is the footprint pressure a group puts on a location. The solver
// places high-demand groups first so infeasible locations fail early.
func (g VehicleGroup) Demand() int { return g.Quantity * g.Length }
