package services

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestContentFilter(t *testing.T) {
	f := NewContentFilter(config.DefaultBannedWords)

	cases := []struct {
		text   string
		ok     bool
		reason string
	}{
		{"", true, ""},
		{"Hit a new squat PR today", true, ""},
		{"PR day LETS GOOOOO!!!", true, ""},
		{"Finished the AMRAP and the EMOM, HIIT tomorrow", true, ""},
		{"5x5 at 100kg, then 3x10 at 225 315", true, ""},
		{"classic bench session", true, ""},
		{"what a SHIT workout", false, "inappropriate_language"},
		{"steroids for sale, message me", false, "inappropriate_language"},
		{"see www.example.com/plan", false, "url_not_allowed"},
		{"grab the plan at liftshop.store", false, "url_not_allowed"},
		{"write to coach@gym.com", false, "contact_info_not_allowed"},
		{"text (555) 123-4567", false, "contact_info_not_allowed"},
		{"sooooooooo good", false, "spam_detected"},
		{"!!!!!!!!", false, "spam_detected"},
		{"BUY MY PROGRAM NOW BEST RESULTS GUARANTEED", false, "excessive_caps"},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			ok, reason := f.FilterContent(tc.text)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.reason, reason)
		})
	}
}

func TestContentFilter_ConfiguredWords(t *testing.T) {
	f := NewContentFilter([]string{" leg day skipper ", ""})

	ok, reason := f.FilterContent("you LEG DAY SKIPPER")
	assert.False(t, ok)
	assert.Equal(t, "inappropriate_language", reason)

	ok, _ = f.FilterContent("what a shit workout")
	assert.True(t, ok)
}

func TestContentFilter_Check(t *testing.T) {
	f := NewContentFilter(config.DefaultBannedWords)
	err := f.Check("go to https://lift.example")
	assert.ErrorIs(t, err, ErrContentRejected)
	assert.Contains(t, err.Error(), GetRejectionMessage("url_not_allowed"))
	assert.NoError(t, f.Check("leg day"))
}
