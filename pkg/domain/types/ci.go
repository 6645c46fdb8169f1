package types

// CIKind identifies which supported CI system a run was detected in.
type CIKind string

const (
	CIGitHubActions CIKind = "github-actions"
	CIVela          CIKind = "vela"
)

func (x CIKind) String() string {
	return string(x)
}
