package contracts

import "context"

// RoleAuthority resolves a verified identity's role. A token holder who was
// never registered legitimately resolves to found=false; callers decide
// whether that is a 403 or an "admin: false".
type RoleAuthority interface {
	ResolveRole(ctx context.Context, email string) (role string, found bool, err error)
	IsAdmin(ctx context.Context, email string) (bool, error)
}
