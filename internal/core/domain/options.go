package domain

// ResolvedOptions maps every schema option to its effective value. It is
// produced once per packaging run and treated as immutable afterwards.
type ResolvedOptions map[string]bool

// Enabled reports the value of the named option. Options the mapping does not
// carry report false.
func (o ResolvedOptions) Enabled(name string) bool {
	return o[name]
}
