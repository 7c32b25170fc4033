package entities

// Permission names known to the back office. Permissions travel as plain
// strings so new modules can be gated without touching this package.
const (
	PermissionServiceOrders = "service_orders"
	PermissionStock         = "estoque"
	PermissionFinance       = "financeiro"
)

// Actor is the capability object passed into every mutating operation.
//
// Authorization is enforced at the use-case boundary, not trusted from the
// caller: handlers build an Actor from the request and the engine decides.
type Actor struct {
	ID          string
	Permissions map[string]bool
}

func NewActor(id string, permissions ...string) Actor {
	set := make(map[string]bool, len(permissions))
	for _, p := range permissions {
		set[p] = true
	}
	return Actor{ID: id, Permissions: set}
}

// Can reports whether the actor holds the named edit permission.
func (a Actor) Can(permission string) bool {
	return a.Permissions[permission]
}
