package repository

// SessionStore holds the bare id of the signed-in account under
// KeySession. Absence means logged out.
type SessionStore struct {
	repo *Repository
}

func NewSessionStore(repo *Repository) *SessionStore {
	return &SessionStore{repo: repo}
}

func (s *SessionStore) Current() (string, bool) {
	id, ok := s.repo.Raw(KeySession)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

func (s *SessionStore) Set(accountID string) error {
	unlock := s.repo.Lock(KeySession)
	defer unlock()
	return s.repo.setRaw(KeySession, accountID)
}

func (s *SessionStore) Clear() error {
	unlock := s.repo.Lock(KeySession)
	defer unlock()
	return s.repo.remove(KeySession)
}

// ClearIf ends the session only when it belongs to accountID.
func (s *SessionStore) ClearIf(accountID string) error {
	unlock := s.repo.Lock(KeySession)
	defer unlock()
	if id, ok := s.repo.Raw(KeySession); ok && id == accountID {
		return s.repo.remove(KeySession)
	}
	return nil
}
