package filesystem

import (
	"bufio"
	"errors"
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repoindex/internal/domain/repositories"
)

// descriptionSources lists the description files relative to the
// repository path, in lookup order.
//
//nolint:gochecknoglobals // fixed lookup order
var descriptionSources = []string{
	"description",
	".git/description",
}

// FilesystemFactory returns a filesystem rooted at a repository path.
type FilesystemFactory func(root string) billy.Filesystem

// DescriptionRepository implements repositories.DescriptionRepository over
// a go-billy filesystem.
type DescriptionRepository struct {
	newFilesystem FilesystemFactory
}

// NewDescriptionRepository reads descriptions from the operating system.
func NewDescriptionRepository() repositories.DescriptionRepository {
	return NewDescriptionRepositoryWithFactory(func(root string) billy.Filesystem {
		return osfs.New(root)
	})
}

// NewDescriptionRepositoryWithFactory reads descriptions from filesystems
// built by factory.
func NewDescriptionRepositoryWithFactory(factory FilesystemFactory) *DescriptionRepository {
	return &DescriptionRepository{newFilesystem: factory}
}

// ReadDescription returns the first line of the first readable source.
func (r *DescriptionRepository) ReadDescription(path string, limit int) string {
	fs := r.newFilesystem(path)
	for _, source := range descriptionSources {
		line, err := readFirstLine(fs, source, limit)
		if err != nil {
			logger.Debugf("%s: %s not readable: %v", path, source, err)
			continue
		}
		return line
	}
	return ""
}

// readFirstLine reads up to limit bytes, stopping after the first '\n'.
func readFirstLine(fs billy.Filesystem, name string, limit int) (string, error) {
	limit = max(limit, 0)
	file, err := fs.Open(name)
	if err != nil {
		return "", err
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	line := make([]byte, 0, limit)
	for len(line) < limit {
		b, readErr := reader.ReadByte()
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return "", readErr
		}
		line = append(line, b)
		if b == '\n' {
			break
		}
	}
	return string(line), nil
}
