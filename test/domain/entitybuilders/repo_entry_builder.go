//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/repoindex/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// RepoEntryBuilder helps create test repository entries with a fluent interface.
type RepoEntryBuilder struct {
	*testkit.BaseBuilder
	sourcePath   string
	name         string
	description  string
	lastActivity int64
	hasActivity  bool
}

// NewRepoEntryBuilder creates a new entry builder with sensible defaults.
func NewRepoEntryBuilder() *RepoEntryBuilder {
	return &RepoEntryBuilder{
		BaseBuilder:  testkit.NewBaseBuilder(),
		sourcePath:   "/srv/git/test-repo.git",
		name:         "test-repo.git",
		description:  "test repository\n",
		lastActivity: 1700000000,
		hasActivity:  true,
	}
}

// WithSourcePath sets the caller-supplied path.
func (b *RepoEntryBuilder) WithSourcePath(path string) *RepoEntryBuilder {
	b.sourcePath = path
	return b
}

// WithName sets the repository name.
func (b *RepoEntryBuilder) WithName(name string) *RepoEntryBuilder {
	b.name = name
	return b
}

// WithDescription sets the raw description.
func (b *RepoEntryBuilder) WithDescription(description string) *RepoEntryBuilder {
	b.description = description
	return b
}

// WithLastActivity sets the last author time and marks the entry as active.
func (b *RepoEntryBuilder) WithLastActivity(seconds int64) *RepoEntryBuilder {
	b.lastActivity = seconds
	b.hasActivity = true
	return b
}

// WithoutActivity marks the entry as having no commits.
func (b *RepoEntryBuilder) WithoutActivity() *RepoEntryBuilder {
	b.lastActivity = 0
	b.hasActivity = false
	return b
}

// Build creates the entry (satisfies testkit.Builder interface).
func (b *RepoEntryBuilder) Build() interface{} {
	return b.BuildRepoEntry()
}

// BuildRepoEntry creates the entry with a concrete return type.
func (b *RepoEntryBuilder) BuildRepoEntry() entities.RepoEntry {
	return entities.NewRepoEntry(b.sourcePath, b.name, b.description, b.lastActivity, b.hasActivity)
}

// Reset clears the builder state, allowing it to be reused.
func (b *RepoEntryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.sourcePath = "/srv/git/test-repo.git"
	b.name = "test-repo.git"
	b.description = "test repository\n"
	b.lastActivity = 1700000000
	b.hasActivity = true
	return b
}

// Clone creates a deep copy of the RepoEntryBuilder.
func (b *RepoEntryBuilder) Clone() testkit.Builder {
	return &RepoEntryBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		sourcePath:   b.sourcePath,
		name:         b.name,
		description:  b.description,
		lastActivity: b.lastActivity,
		hasActivity:  b.hasActivity,
	}
}
