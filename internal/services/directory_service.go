package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/nutrition"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DirectoryService owns accounts, the session pointer and profiles.
type DirectoryService struct {
	dir       *repository.DirectoryStore
	sessions  *repository.SessionStore
	logs      *repository.DailyLogStore
	prefs     *repository.MuscleContextStore
	community *CommunityService
	cfg       *config.Config
	clock     Clock
	cost      int
}

func NewDirectoryService(repo *repository.Repository, community *CommunityService, cfg *config.Config, clock Clock) *DirectoryService {
	return &DirectoryService{
		dir:       repository.NewDirectoryStore(repo),
		sessions:  repository.NewSessionStore(repo),
		logs:      repository.NewDailyLogStore(repo),
		prefs:     repository.NewMuscleContextStore(repo),
		community: community,
		cfg:       cfg,
		clock:     clock,
		cost:      bcrypt.DefaultCost,
	}
}

// SetPasswordCost overrides the bcrypt work factor.
func (s *DirectoryService) SetPasswordCost(cost int) {
	s.cost = cost
}

// NormalizeEmail lower-cases and trims an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *DirectoryService) newAccountID() string {
	return strconv.FormatInt(s.clock.Now().UnixMilli(), 10) + "_" + uuid.NewString()[:8]
}

func findByEmail(dir models.Directory, email string) *models.AccountRecord {
	for _, acc := range dir {
		if acc != nil && acc.Email == email {
			return acc
		}
	}
	return nil
}

// Register creates a password or federated account and signs it in.
func (s *DirectoryService) Register(email, password, provider string) (*models.AccountRecord, error) {
	email = NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	if provider == "" {
		provider = models.ProviderPassword
	}

	var proof string
	if provider == models.ProviderPassword {
		if password == "" {
			return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		proof = string(hash)
	}

	now := s.clock.Now()
	account := &models.AccountRecord{
		ID:              s.newAccountID(),
		Email:           email,
		CredentialProof: proof,
		AuthProvider:    provider,
		CreatedAt:       now,
		LastLoginAt:     now,
	}

	_, err := s.dir.Mutate(func(dir models.Directory) error {
		if findByEmail(dir, email) != nil {
			return ErrDuplicateEmail
		}
		dir[account.ID] = account
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Set(account.ID); err != nil {
		return nil, err
	}
	slog.Info("account registered", "user_id", account.ID, "provider", provider)
	return account, nil
}

// Login verifies a password account and makes it the active session. The
// admin flag is recomputed on every login.
func (s *DirectoryService) Login(email, password string) (*models.AccountRecord, error) {
	email = NormalizeEmail(email)

	dir, err := s.dir.Read()
	if err != nil {
		return nil, err
	}
	existing := findByEmail(dir, email)
	if existing == nil {
		return nil, ErrAccountNotFound
	}
	if existing.AuthProvider != models.ProviderPassword {
		return nil, fmt.Errorf("%w: this account signs in with %s", ErrInvalidCredential, existing.AuthProvider)
	}
	if password == "" {
		return nil, ErrInvalidCredential
	}
	if err := bcrypt.CompareHashAndPassword([]byte(existing.CredentialProof), []byte(password)); err != nil {
		return nil, ErrInvalidCredential
	}

	isAdmin := s.isAdminLogin(email, password)

	var out *models.AccountRecord
	_, err = s.dir.Mutate(func(dir models.Directory) error {
		acc, ok := dir[existing.ID]
		if !ok || acc == nil {
			return ErrAccountNotFound
		}
		acc.LastLoginAt = s.clock.Now()
		acc.IsAdmin = isAdmin
		out = acc
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Set(out.ID); err != nil {
		return nil, err
	}
	return out, nil
}

// FederatedSignIn signs in the account for email, creating a profile-less
// one on first use.
func (s *DirectoryService) FederatedSignIn(email, provider string) (*models.AccountRecord, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if provider != models.ProviderGoogle && provider != models.ProviderApple {
		return nil, fmt.Errorf("%w: unknown provider %q", ErrInvalidInput, provider)
	}

	var out *models.AccountRecord
	_, err := s.dir.Mutate(func(dir models.Directory) error {
		now := s.clock.Now()
		if acc := findByEmail(dir, email); acc != nil {
			acc.LastLoginAt = now
			acc.IsAdmin = false
			out = acc
			return nil
		}
		out = &models.AccountRecord{
			ID:           s.newAccountID(),
			Email:        email,
			AuthProvider: provider,
			CreatedAt:    now,
			LastLoginAt:  now,
		}
		dir[out.ID] = out
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Set(out.ID); err != nil {
		return nil, err
	}
	return out, nil
}

// Logout clears the session pointer. The directory is not touched.
func (s *DirectoryService) Logout() error {
	return s.sessions.Clear()
}

// CurrentAccount returns the account the session points at.
func (s *DirectoryService) CurrentAccount() (*models.AccountRecord, error) {
	id, ok := s.sessions.Current()
	if !ok {
		return nil, ErrNoActiveSession
	}
	acc, ok := s.dir.Get(id)
	if !ok {
		return nil, ErrNoActiveSession
	}
	return acc, nil
}

// SaveProfile replaces the session account's profile wholesale. Targets are
// recomputed from the submitted fields.
func (s *DirectoryService) SaveProfile(profile models.FitnessProfile) (*models.FitnessProfile, error) {
	current, err := s.CurrentAccount()
	if err != nil {
		return nil, err
	}
	if err := validateProfile(&profile); err != nil {
		return nil, err
	}
	return s.storeProfile(current.ID, func(existing *models.FitnessProfile) (*models.FitnessProfile, error) {
		p := profile
		if existing != nil && !existing.CreatedAt.IsZero() {
			p.CreatedAt = existing.CreatedAt
		}
		return &p, nil
	})
}

// UpdateProfile merges patch into the stored profile under the directory
// lock.
func (s *DirectoryService) UpdateProfile(patch dto.ProfilePatch) (*models.FitnessProfile, error) {
	current, err := s.CurrentAccount()
	if err != nil {
		return nil, err
	}
	return s.storeProfile(current.ID, func(existing *models.FitnessProfile) (*models.FitnessProfile, error) {
		if existing == nil {
			return nil, fmt.Errorf("%w: profile", ErrRecordNotFound)
		}
		merged := *existing
		patch.Apply(&merged)
		if err := validateProfile(&merged); err != nil {
			return nil, err
		}
		return &merged, nil
	})
}

func (s *DirectoryService) storeProfile(accountID string, build func(existing *models.FitnessProfile) (*models.FitnessProfile, error)) (*models.FitnessProfile, error) {
	var (
		saved   models.FitnessProfile
		isAdmin bool
	)
	_, err := s.dir.Mutate(func(dir models.Directory) error {
		acc, ok := dir[accountID]
		if !ok || acc == nil {
			return ErrNoActiveSession
		}
		p, err := build(acc.Profile)
		if err != nil {
			return err
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = s.clock.Now()
		}
		p.IsAdmin = false
		nutrition.ApplyTargets(p)
		acc.Profile = p
		saved = *p
		isAdmin = acc.IsAdmin
		return nil
	})
	if err != nil {
		return nil, err
	}
	saved.IsAdmin = isAdmin
	return &saved, nil
}

// ReadProfile returns the session account's profile with the account's
// admin flag merged in, or nil before onboarding.
func (s *DirectoryService) ReadProfile() (*models.FitnessProfile, error) {
	current, err := s.CurrentAccount()
	if err != nil {
		return nil, err
	}
	if current.Profile == nil {
		return nil, nil
	}
	view := *current.Profile
	if current.IsAdmin {
		view.IsAdmin = true
	}
	return &view, nil
}

// ListAccounts returns every account, oldest first, without credentials.
func (s *DirectoryService) ListAccounts() []models.AccountRecord {
	dir := s.dir.All()
	out := make([]models.AccountRecord, 0, len(dir))
	for _, acc := range dir {
		if acc != nil {
			out = append(out, acc.Public())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// DeleteAccount removes the account and everything keyed by its id: the
// log bucket, preferences, authored community records and the session.
func (s *DirectoryService) DeleteAccount(id string) error {
	_, err := s.dir.Mutate(func(dir models.Directory) error {
		if _, ok := dir[id]; !ok {
			return fmt.Errorf("%w: account %s", ErrRecordNotFound, id)
		}
		delete(dir, id)
		return nil
	})
	if err != nil {
		return err
	}

	var errs []error
	if err := s.logs.DeleteAll(id); err != nil {
		errs = append(errs, err)
	}
	if err := s.prefs.Delete(id); err != nil {
		errs = append(errs, err)
	}
	if _, err := s.community.PurgeUser(id); err != nil {
		errs = append(errs, err)
	}
	if err := s.sessions.ClearIf(id); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		slog.Error("account cascade incomplete", "user_id", id, "error", errors.Join(errs...))
		return errors.Join(errs...)
	}

	slog.Info("account deleted", "user_id", id)
	return nil
}

func (s *DirectoryService) isAdminLogin(email, password string) bool {
	if s.cfg == nil || s.cfg.AdminEmail == "" || s.cfg.AdminPasswordHash == "" {
		return false
	}
	if NormalizeEmail(s.cfg.AdminEmail) != email {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)) == nil
}

func validateProfile(p *models.FitnessProfile) error {
	switch {
	case p.Age <= 0 || p.Age > 120:
		return fmt.Errorf("%w: age must be between 1 and 120", ErrInvalidInput)
	case p.Height <= 0:
		return fmt.Errorf("%w: height must be positive", ErrInvalidInput)
	case p.CurrentWeight <= 0:
		return fmt.Errorf("%w: current weight must be positive", ErrInvalidInput)
	case p.GoalWeight < 0:
		return fmt.Errorf("%w: goal weight cannot be negative", ErrInvalidInput)
	}
	return nil
}
