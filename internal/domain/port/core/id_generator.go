package core

// IDGenerator produces sortable, prefixed identifiers such as "topup_01J..."
type IDGenerator interface {
	NewID(prefix string) string
}
