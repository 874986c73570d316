package entity

// Sort directions accepted by list queries.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListOptions is offset pagination plus creation-time ordering, shared by
// slot and appointment listings.
type ListOptions struct {
	Skip      int
	Limit     int
	SortOrder string // SortAsc or SortDesc, over created_at
}

// UserFilter is a domain-level filter for querying users.
// Used by repository layer to avoid coupling with delivery DTOs.
type UserFilter struct {
	Search    string // matches full_name or email (ILIKE)
	Role      Role   // empty means all roles
	SortBy    string // full_name, email, created_at or updated_at
	SortOrder string
	Skip      int
	Limit     int
}
