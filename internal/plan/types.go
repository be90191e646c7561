package plan

// Kind classifies a planned filesystem entry.
type Kind int

const (
	// KindFile is a regular file entry.
	KindFile Kind = iota
	// KindDirectory is a directory entry.
	KindDirectory
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// Item is one entry of a path plan.
//
// Items are value objects: once a plan is built it is never mutated,
// only consumed by the selection and generation stages.
type Item struct {
	// Path is normalized: forward-slash joined, relative, no ".." segments.
	// Unique within a plan.
	Path string
	// Kind is the entry classification. First classification wins when the
	// same path appears more than once in a response.
	Kind Kind
	// Content is the initial file content. Empty for files until generation
	// fills it in; meaningless for directories.
	Content string
}
