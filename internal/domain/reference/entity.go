package reference

// Reference is a generic (type, value, description) lookup row used to
// classify shipments, e.g. packaging type. The (Type, Value) pair acts as a
// de facto unique key for the find-or-create path, but the table carries no
// hard constraint on it.
type Reference struct {
	RowID       int64  `json:"id"`
	Type        string `json:"type"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// HasID reports whether the reference carries a persisted row id. Incoming
// request payloads use id 0 to mean "no id supplied".
func (r *Reference) HasID() bool {
	return r != nil && r.RowID != 0
}
