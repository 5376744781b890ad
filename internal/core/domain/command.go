package domain

type ResolutionKind string

const (
	ResolutionEmpty    ResolutionKind = "empty"
	ResolutionBuiltin  ResolutionKind = "builtin"
	ResolutionPrefixed ResolutionKind = "prefixed"
	ResolutionUnknown  ResolutionKind = "unknown"
)

// Resolution is the outcome of matching one input line against the command tables.
// Name is the matched command (prefix commands without the trailing space), Argument the
// free-form remainder for prefix commands.
type Resolution struct {
	Kind     ResolutionKind
	Name     string
	Argument string
}
