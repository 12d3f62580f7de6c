package repository

import "github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/models"

// DirectoryStore holds every account as one serialized map under
// KeyDirectory.
type DirectoryStore struct {
	repo *Repository
}

func NewDirectoryStore(repo *Repository) *DirectoryStore {
	return &DirectoryStore{repo: repo}
}

// All returns the whole directory; never nil.
func (s *DirectoryStore) All() models.Directory {
	dir := load[models.Directory](s.repo, KeyDirectory)
	if dir == nil {
		dir = models.Directory{}
	}
	return dir
}

// Read is All for callers that must tell a failed store read apart from an
// empty directory.
func (s *DirectoryStore) Read() (models.Directory, error) {
	dir, err := read[models.Directory](s.repo, KeyDirectory)
	if dir == nil {
		dir = models.Directory{}
	}
	return dir, err
}

func (s *DirectoryStore) Get(id string) (*models.AccountRecord, bool) {
	acc, ok := s.All()[id]
	return acc, ok && acc != nil
}

// Mutate rewrites the directory with fn's changes.
func (s *DirectoryStore) Mutate(fn func(models.Directory) error) (models.Directory, error) {
	return mutate(s.repo, KeyDirectory, func(dir *models.Directory) error {
		if *dir == nil {
			*dir = models.Directory{}
		}
		return fn(*dir)
	})
}
