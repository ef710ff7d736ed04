package entities

import (
	"strings"
	"time"
)

const (
	// MaxNameLength bounds RepoEntry.Name in bytes (PATH_MAX).
	MaxNameLength = 4096
	// MaxDescriptionLength bounds RepoEntry.Description in bytes. A longer
	// first line is cut at this boundary, trailing line terminator included.
	MaxDescriptionLength = 254

	shortDateLayout = "2006-01-02"
)

// RepoEntry holds the metadata collected for one repository path.
// Entries are built once by the collector and never modified afterwards.
type RepoEntry struct {
	SourcePath       string // caller-supplied path, unmodified
	Name             string // final segment of the canonical path, at most MaxNameLength bytes
	Description      string // first line of the description file, at most MaxDescriptionLength bytes
	LastActivityTime int64  // author time of the newest commit on HEAD, 0 when unknown
	HasActivity      bool   // true when a commit was found
}

// NewRepoEntry builds an entry, truncating the bounded fields.
func NewRepoEntry(sourcePath, name, description string, lastActivity int64, hasActivity bool) RepoEntry {
	if lastActivity < 0 {
		lastActivity = 0
	}
	return RepoEntry{
		SourcePath:       sourcePath,
		Name:             Truncate(name, MaxNameLength),
		Description:      Truncate(description, MaxDescriptionLength),
		LastActivityTime: lastActivity,
		HasActivity:      hasActivity,
	}
}

// Truncate cuts s to at most limit bytes. It never grows s.
func Truncate(s string, limit int) string {
	if limit < 0 {
		return ""
	}
	if len(s) > limit {
		return s[:limit]
	}
	return s
}

// NameFromPath returns the text after the final '/' of a canonical path.
// When the path ends with a separator, the last non-empty segment is used,
// and a path made only of separators is returned whole.
func NameFromPath(canonical string) string {
	idx := strings.LastIndexByte(canonical, '/')
	if idx < 0 {
		return canonical
	}
	if name := canonical[idx+1:]; name != "" {
		return name
	}
	trimmed := strings.TrimRight(canonical, "/")
	if trimmed == "" {
		return canonical
	}
	return NameFromPath(trimmed)
}

// LinkName returns the name with suffix removed when it ends the name exactly.
func (e RepoEntry) LinkName(suffix string) string {
	if suffix == "" {
		return e.Name
	}
	return strings.TrimSuffix(e.Name, suffix)
}

// LastCommitDate formats the activity time as YYYY-MM-DD in UTC,
// or returns an empty string when no commit was found.
func (e RepoEntry) LastCommitDate() string {
	if !e.HasActivity {
		return ""
	}
	return time.Unix(e.LastActivityTime, 0).UTC().Format(shortDateLayout)
}
