package reconcile

import "errors"

// Sentinel errors for the three ways a sync cycle can fail. Callers match
// with errors.Is; none of them is retried automatically.
var (
	// ErrConfiguration means the target scope could not be resolved
	// (missing application ID, or dev mode without a guild).
	ErrConfiguration = errors.New("reconcile: scope not resolvable")

	// ErrFetch means the remote command list could not be retrieved.
	ErrFetch = errors.New("reconcile: fetch remote commands failed")

	// ErrPush means Discord rejected the bulk command or permission
	// payload. The two pushes are not transactional: a permission failure
	// leaves commands updated with stale permissions until the next sync.
	ErrPush = errors.New("reconcile: push rejected")
)
