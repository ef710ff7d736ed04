package repositories

// HistoryRepository gives read-only access to the commit history of a local
// version-control repository. Implementations open one repository handle per
// call and release it before returning.
type HistoryRepository interface {
	// LastAuthorTime opens the repository at path, walks the history from
	// HEAD and returns the author time (seconds since epoch) of the first
	// commit visited. found is false when the repository has no commits or
	// HEAD does not resolve. err is non-nil when the repository cannot be opened.
	LastAuthorTime(path string) (seconds int64, found bool, err error)

	// Verify opens the repository at path and closes it again, reporting
	// whether it can be opened.
	Verify(path string) error
}
