package services

import (
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/nutrition"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/repository"
	"github.com/google/uuid"
)

const (
	maxPostLength    = 2000
	maxCommentLength = 500
)

// CommunityService manages the global contest, submission and post
// collections.
type CommunityService struct {
	contests    *repository.Collection[models.Contest]
	submissions *repository.Collection[models.ContestSubmission]
	posts       *repository.Collection[models.CommunityPost]
	filter      *ContentFilter
	clock       Clock
}

func NewCommunityService(repo *repository.Repository, filter *ContentFilter, clock Clock) *CommunityService {
	return &CommunityService{
		contests:    repository.NewContests(repo),
		submissions: repository.NewSubmissions(repo),
		posts:       repository.NewPosts(repo),
		filter:      filter,
		clock:       clock,
	}
}

// DisplayName is the name shown next to an account's community content.
func DisplayName(acc *models.AccountRecord) string {
	if acc.Profile != nil && strings.TrimSpace(acc.Profile.Name) != "" {
		return strings.TrimSpace(acc.Profile.Name)
	}
	return strings.Split(acc.Email, "@")[0]
}

// --- Contests ---

func (s *CommunityService) ListContests() []models.Contest {
	return s.contests.List()
}

func (s *CommunityService) CreateContest(req dto.CreateContestRequest) (*models.Contest, error) {
	if err := validateContest(req); err != nil {
		return nil, err
	}
	contest := models.Contest{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		Type:         req.Type,
		Prize:        req.Prize,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Participants: []string{},
		CreatedAt:    s.clock.Now(),
	}
	if _, err := s.contests.Create(contest); err != nil {
		return nil, err
	}
	return &contest, nil
}

func (s *CommunityService) UpdateContest(id string, req dto.CreateContestRequest) (*models.Contest, error) {
	if err := validateContest(req); err != nil {
		return nil, err
	}
	updated, found, err := s.contests.Modify(id, func(c *models.Contest) error {
		c.Title = strings.TrimSpace(req.Title)
		c.Description = req.Description
		c.Type = req.Type
		c.Prize = req.Prize
		c.StartDate = req.StartDate
		c.EndDate = req.EndDate
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: contest %s", ErrRecordNotFound, id)
	}
	return &updated, nil
}

// DeleteContest removes the contest and returns the remaining list.
func (s *CommunityService) DeleteContest(id string) ([]models.Contest, error) {
	if _, ok := s.contests.Get(id); !ok {
		return nil, fmt.Errorf("%w: contest %s", ErrRecordNotFound, id)
	}
	return s.contests.Remove(id)
}

// JoinContest adds userID to the contest's participants once.
func (s *CommunityService) JoinContest(id, userID string) (*models.Contest, error) {
	updated, found, err := s.contests.Modify(id, func(c *models.Contest) error {
		for _, p := range c.Participants {
			if p == userID {
				return nil
			}
		}
		c.Participants = append(c.Participants, userID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: contest %s", ErrRecordNotFound, id)
	}
	return &updated, nil
}

func validateContest(req dto.CreateContestRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if req.StartDate != "" {
		if _, err := nutrition.ParseDateKey(req.StartDate); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if req.EndDate != "" {
		if _, err := nutrition.ParseDateKey(req.EndDate); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if req.StartDate != "" && req.EndDate != "" && req.EndDate < req.StartDate {
		return fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}
	return nil
}

// --- Submissions ---

// ListSubmissions returns all submissions, or only those with status.
func (s *CommunityService) ListSubmissions(status string) []models.ContestSubmission {
	all := s.submissions.List()
	if status == "" {
		return all
	}
	out := make([]models.ContestSubmission, 0, len(all))
	for _, sub := range all {
		if sub.Status == status {
			out = append(out, sub)
		}
	}
	return out
}

func (s *CommunityService) CreateSubmission(author *models.AccountRecord, req dto.CreateSubmissionRequest) (*models.ContestSubmission, error) {
	if _, ok := s.contests.Get(req.ContestID); !ok {
		return nil, fmt.Errorf("%w: contest %s", ErrRecordNotFound, req.ContestID)
	}
	sub := models.ContestSubmission{
		ID:        uuid.NewString(),
		ContestID: req.ContestID,
		UserID:    author.ID,
		UserName:  DisplayName(author),
		ProofURL:  req.ProofURL,
		Note:      req.Note,
		Status:    models.SubmissionPending,
		AIVerdict: req.AIVerdict,
		CreatedAt: s.clock.Now(),
	}
	if _, err := s.submissions.Create(sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *CommunityService) ReviewSubmission(id, status string) (*models.ContestSubmission, error) {
	switch status {
	case models.SubmissionPending, models.SubmissionApproved, models.SubmissionRejected:
	default:
		return nil, fmt.Errorf("%w: status must be pending, approved or rejected", ErrInvalidInput)
	}
	updated, found, err := s.submissions.Modify(id, func(sub *models.ContestSubmission) error {
		sub.Status = status
		now := s.clock.Now()
		sub.ReviewedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: submission %s", ErrRecordNotFound, id)
	}
	return &updated, nil
}

func (s *CommunityService) DeleteSubmission(id string) ([]models.ContestSubmission, error) {
	if _, ok := s.submissions.Get(id); !ok {
		return nil, fmt.Errorf("%w: submission %s", ErrRecordNotFound, id)
	}
	return s.submissions.Remove(id)
}

// --- Posts ---

func (s *CommunityService) ListPosts() []models.CommunityPost {
	return s.posts.List()
}

func (s *CommunityService) CreatePost(author *models.AccountRecord, req dto.CreatePostRequest) (*models.CommunityPost, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" && req.ImageURL == "" {
		return nil, fmt.Errorf("%w: post is empty", ErrInvalidInput)
	}
	if len(content) > maxPostLength {
		return nil, fmt.Errorf("%w: post exceeds %d characters", ErrInvalidInput, maxPostLength)
	}
	if err := s.filter.Check(content); err != nil {
		return nil, err
	}

	post := models.CommunityPost{
		ID:        uuid.NewString(),
		UserID:    author.ID,
		User:      DisplayName(author),
		Content:   content,
		ImageURL:  req.ImageURL,
		LikedBy:   []string{},
		Comments:  []models.Comment{},
		CreatedAt: s.clock.Now(),
	}
	if author.Profile != nil {
		post.Avatar = author.Profile.Avatar
	}
	if _, err := s.posts.Create(post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes a post when actor wrote it or is an admin, returning
// the remaining posts.
func (s *CommunityService) DeletePost(id string, actor *models.AccountRecord) ([]models.CommunityPost, error) {
	post, ok := s.posts.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: post %s", ErrRecordNotFound, id)
	}
	if post.UserID != actor.ID && !actor.IsAdmin {
		return nil, ErrForbidden
	}
	return s.posts.Remove(id)
}

// LikePost toggles userID's like.
func (s *CommunityService) LikePost(id, userID string) (*models.CommunityPost, error) {
	updated, found, err := s.posts.Modify(id, func(p *models.CommunityPost) error {
		for i, u := range p.LikedBy {
			if u == userID {
				p.LikedBy = append(p.LikedBy[:i], p.LikedBy[i+1:]...)
				return nil
			}
		}
		p.LikedBy = append(p.LikedBy, userID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: post %s", ErrRecordNotFound, id)
	}
	return &updated, nil
}

func (s *CommunityService) AddComment(postID string, author *models.AccountRecord, text string) (*models.CommunityPost, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment is empty", ErrInvalidInput)
	}
	if len(text) > maxCommentLength {
		return nil, fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidInput, maxCommentLength)
	}
	if err := s.filter.Check(text); err != nil {
		return nil, err
	}
	comment := models.Comment{
		ID:        uuid.NewString(),
		UserID:    author.ID,
		UserName:  DisplayName(author),
		Text:      text,
		CreatedAt: s.clock.Now(),
	}
	updated, found, err := s.posts.Modify(postID, func(p *models.CommunityPost) error {
		p.Comments = append(p.Comments, comment)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: post %s", ErrRecordNotFound, postID)
	}
	return &updated, nil
}

// --- Bulk removal ---

// RemoveAllPostsByUser drops every post authored by userID.
func (s *CommunityService) RemoveAllPostsByUser(userID string) ([]models.CommunityPost, int, error) {
	removed := 0
	left, err := s.posts.RemoveWhere(func(p models.CommunityPost) bool {
		if p.UserID == userID {
			removed++
			return true
		}
		return false
	})
	return left, removed, err
}

// RemoveAllSubmissionsByUser drops every submission made by userID.
func (s *CommunityService) RemoveAllSubmissionsByUser(userID string) ([]models.ContestSubmission, int, error) {
	removed := 0
	left, err := s.submissions.RemoveWhere(func(sub models.ContestSubmission) bool {
		if sub.UserID == userID {
			removed++
			return true
		}
		return false
	})
	return left, removed, err
}

// PurgeUser removes everything userID authored across the collections,
// their comments and likes on other posts, and their contest entries.
func (s *CommunityService) PurgeUser(userID string) (*dto.BanResult, error) {
	result := &dto.BanResult{UserID: userID}

	_, n, err := s.RemoveAllPostsByUser(userID)
	if err != nil {
		return nil, err
	}
	result.PostsRemoved = n

	_, n, err = s.RemoveAllSubmissionsByUser(userID)
	if err != nil {
		return nil, err
	}
	result.SubmissionsRemoved = n

	_, err = s.posts.Rewrite(func(posts []models.CommunityPost) []models.CommunityPost {
		for i := range posts {
			kept := posts[i].Comments[:0]
			for _, c := range posts[i].Comments {
				if c.UserID == userID {
					result.CommentsRemoved++
					continue
				}
				kept = append(kept, c)
			}
			posts[i].Comments = kept
			posts[i].LikedBy = without(posts[i].LikedBy, userID)
		}
		return posts
	})
	if err != nil {
		return nil, err
	}

	_, err = s.contests.Rewrite(func(contests []models.Contest) []models.Contest {
		for i := range contests {
			contests[i].Participants = without(contests[i].Participants, userID)
		}
		return contests
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func without(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
