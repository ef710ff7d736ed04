package repositories

// DescriptionRepository reads the free-text description of a repository.
type DescriptionRepository interface {
	// ReadDescription returns the first line of the first readable
	// description source of the repository at path, terminator included,
	// reading at most limit bytes. It returns "" when no source is readable.
	ReadDescription(path string, limit int) string
}
