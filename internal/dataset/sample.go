package dataset

// Sample is one generated question/answer/metadata record.
//
// Samples are value objects: they carry no identity beyond their content and
// are produced fresh on every access, never cached.
type Sample struct {
	// Question is the human-readable task text shown to a model or person.
	Question string

	// Answer is the ground-truth answer as a string.
	Answer string

	// Metadata records the parameters actually used to produce this exact
	// sample, sufficient to audit and reproduce it. Keys are generator
	// specific (snake_case, matching the JSON export).
	Metadata map[string]any
}
