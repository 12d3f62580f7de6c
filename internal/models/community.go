package models

import "time"

const (
	SubmissionPending  = "pending"
	SubmissionApproved = "approved"
	SubmissionRejected = "rejected"
)

type Contest struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Type         string    `json:"type"`
	Prize        string    `json:"prize,omitempty"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	Participants []string  `json:"participants"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (c Contest) GetID() string { return c.ID }

type ContestSubmission struct {
	ID         string     `json:"id"`
	ContestID  string     `json:"contestId"`
	UserID     string     `json:"userId"`
	UserName   string     `json:"userName"`
	ProofURL   string     `json:"proofUrl,omitempty"`
	Note       string     `json:"note,omitempty"`
	Status     string     `json:"status"`
	AIVerdict  string     `json:"aiVerdict,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	ReviewedAt *time.Time `json:"reviewedAt,omitempty"`
}

func (s ContestSubmission) GetID() string { return s.ID }

type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type CommunityPost struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	User      string    `json:"user"`
	Avatar    string    `json:"avatar,omitempty"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	LikedBy   []string  `json:"likedBy"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p CommunityPost) GetID() string { return p.ID }

// Likes is the number of distinct accounts that liked the post.
func (p CommunityPost) Likes() int { return len(p.LikedBy) }
