package contract

// CheckKind determines which kind of failure is raised when a check is violated.
type CheckKind int

const (
	KindRequire CheckKind = iota // KindRequire checks a precondition, so a violation is the caller's defect.
	KindEnsure                   // KindEnsure checks a postcondition, so a violation is the callee's defect.
)

func (k CheckKind) String() string {
	switch k {
	case KindRequire:
		return "Require"
	case KindEnsure:
		return "Ensure"
	default:
		return "Unknown"
	}
}

func (k CheckKind) sentinel() error {
	if k == KindEnsure {
		return ErrEnsureViolation
	}
	return ErrRequireViolation
}
