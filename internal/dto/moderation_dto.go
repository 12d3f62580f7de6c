package dto

type CreatePostRequest struct {
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}

type CreateContestRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Prize       string `json:"prize"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

type CreateSubmissionRequest struct {
	ContestID string `json:"contestId"`
	ProofURL  string `json:"proofUrl"`
	Note      string `json:"note"`
	AIVerdict string `json:"aiVerdict"`
}

type ReviewSubmissionRequest struct {
	Status string `json:"status"`
}

type BanResult struct {
	UserID             string `json:"userId"`
	PostsRemoved       int    `json:"postsRemoved"`
	SubmissionsRemoved int    `json:"submissionsRemoved"`
	CommentsRemoved    int    `json:"commentsRemoved"`
}

// PlatformStats is the admin console snapshot. Fields suffixed Estimate are
// display approximations.
type PlatformStats struct {
	TotalUsers           int     `json:"totalUsers"`
	ActiveToday          int     `json:"activeToday"`
	TotalPosts           int     `json:"totalPosts"`
	TotalContests        int     `json:"totalContests"`
	TotalSubmissions     int     `json:"totalSubmissions"`
	PendingSubmissions   int     `json:"pendingSubmissions"`
	RevenueEstimate      float64 `json:"revenueEstimate"`
	StorageBytesEstimate int     `json:"storageBytesEstimate"`
	RecentErrors         int     `json:"recentErrors"`
	GeneratedAt          string  `json:"generatedAt"`
}
