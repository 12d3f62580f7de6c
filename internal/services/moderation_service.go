package services

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/dto"
)

// Gym talk ("LETS GOOOO", "PR!!!", "AMRAP") passes; only long runs and
// mostly-caps paragraphs are flagged.
const (
	maxRepeatedRun = 7
	capsMinLetters = 16
	capsMaxRatio   = 0.8
)

// ContentFilter screens user-authored text for community posts and
// comments. The word list comes from configuration.
type ContentFilter struct {
	bannedWordRegexps []*regexp.Regexp
	urlPattern        *regexp.Regexp
	emailPattern      *regexp.Regexp
	phonePattern      *regexp.Regexp
}

// NewContentFilter builds a filter over bannedWords; blank entries are
// skipped and matching is whole-word and case-insensitive.
func NewContentFilter(bannedWords []string) *ContentFilter {
	f := &ContentFilter{
		bannedWordRegexps: make([]*regexp.Regexp, 0, len(bannedWords)),
		urlPattern:        regexp.MustCompile(`(?i)(https?://\S+|www\.\S+\.\S+|\b[a-z0-9-]+\.(com|net|org|io|co|me|shop|store)\b)`),
		emailPattern:      regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		phonePattern:      regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.\s]?\d{4}|\b\d{3}[-.]\d{3}[-.]\d{4}\b|\+\d{1,3}[\s-]?\d{6,}`),
	}
	for _, word := range bannedWords {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		f.bannedWordRegexps = append(f.bannedWordRegexps, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(word)+`\b`))
	}
	return f
}

// FilterContent reports whether text is acceptable and, if not, a reason
// code.
func (f *ContentFilter) FilterContent(text string) (bool, string) {
	if strings.TrimSpace(text) == "" {
		return true, ""
	}
	for _, re := range f.bannedWordRegexps {
		if re.MatchString(text) {
			return false, "inappropriate_language"
		}
	}
	if f.emailPattern.MatchString(text) || f.phonePattern.MatchString(text) {
		return false, "contact_info_not_allowed"
	}
	if f.urlPattern.MatchString(text) {
		return false, "url_not_allowed"
	}
	if longestRun(text) >= maxRepeatedRun {
		return false, "spam_detected"
	}
	if shouting(text) {
		return false, "excessive_caps"
	}
	return true, ""
}

// longestRun is the length of the longest run of one repeated non-space
// rune, case-folded.
func longestRun(text string) int {
	var (
		prev      rune
		run, best int
	)
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsSpace(r) || unicode.IsDigit(r):
			run = 0
		case r == prev:
			run++
		default:
			run = 1
		}
		prev = r
		if run > best {
			best = run
		}
	}
	return best
}

// shouting reports mostly-uppercase text long enough that it is not just
// a cheer or an acronym like AMRAP or EMOM.
func shouting(text string) bool {
	var letters, upper int
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return letters >= capsMinLetters && float64(upper)/float64(letters) > capsMaxRatio
}

// Check returns ErrContentRejected carrying a user-facing message when text
// fails the filter.
func (f *ContentFilter) Check(text string) error {
	if ok, reason := f.FilterContent(text); !ok {
		return fmt.Errorf("%w: %s", ErrContentRejected, GetRejectionMessage(reason))
	}
	return nil
}

func GetRejectionMessage(reason string) string {
	messages := map[string]string{
		"inappropriate_language":   "Your post contains inappropriate language.",
		"url_not_allowed":          "URLs and web links are not allowed.",
		"contact_info_not_allowed": "Contact information is not allowed.",
		"spam_detected":            "Your post looks like spam. Ease off the repeated characters.",
		"excessive_caps":           "Hype is welcome, but please don't post in all caps.",
	}
	if msg, ok := messages[reason]; ok {
		return msg
	}
	return "Your post does not meet our community guidelines."
}

// ModerationService applies administrative actions to community content.
type ModerationService struct {
	community *CommunityService
}

func NewModerationService(community *CommunityService) *ModerationService {
	return &ModerationService{community: community}
}

// BanUser removes every post, submission and comment authored by userID.
func (s *ModerationService) BanUser(userID string) (*dto.BanResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	result, err := s.community.PurgeUser(userID)
	if err != nil {
		return nil, err
	}
	slog.Info("user banned",
		"user_id", userID,
		"posts_removed", result.PostsRemoved,
		"submissions_removed", result.SubmissionsRemoved,
		"comments_removed", result.CommentsRemoved,
	)
	return result, nil
}
