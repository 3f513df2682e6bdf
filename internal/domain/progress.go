package domain

// ProgressDocument is the opaque per-learner progress blob. The core never
// interprets its contents: a write always replaces the whole document and a
// read returns it as stored. Absence is represented by the empty document,
// never by an error.
type ProgressDocument map[string]any

// EmptyProgress returns a fresh empty progress document.
func EmptyProgress() ProgressDocument {
	return ProgressDocument{}
}
