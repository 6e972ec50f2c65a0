package entity

// Actor is the authenticated identity performing a request. It is passed
// explicitly into every operation that needs ownership checks instead of
// being read from ambient request state.
type Actor struct {
	ID   string
	Role UserRole
}

// CanModify reports whether the actor may mutate a resource owned by
// ownerID: owners and admins only.
func (a Actor) CanModify(ownerID string) bool {
	return a.ID != "" && (a.ID == ownerID || a.Role == RoleAdmin)
}
