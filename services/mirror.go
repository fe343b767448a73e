package services

// MirrorResult reports what happened to the mirror record of a best-effort
// dual write. The primary operation's outcome never depends on it; handlers
// only log it, tests assert on it.
type MirrorResult struct {
	// Attempted is false when the operation had no mirror work to do
	// (e.g. a credit transaction, or no heuristic match was found).
	Attempted bool
	// Synced is true when the mirror record was created/patched/deleted.
	Synced bool
	// Err holds the swallowed mirror error, if any.
	Err error
}

func mirrorSkipped() MirrorResult {
	return MirrorResult{}
}

func mirrorSynced() MirrorResult {
	return MirrorResult{Attempted: true, Synced: true}
}

func mirrorFailed(err error) MirrorResult {
	return MirrorResult{Attempted: true, Err: err}
}
