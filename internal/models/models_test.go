package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDailyLog_Recompute(t *testing.T) {
	l := NewDailyLog("2024-03-15")
	l.Meals = append(l.Meals,
		MealEntry{Macros: MacroBreakdown{Calories: 100, Protein: 5, Fiber: 2}},
		MealEntry{Macros: MacroBreakdown{Calories: 250, Carbs: 30, Fats: 7}},
	)
	l.TotalMacros = MacroBreakdown{Calories: 9999}
	l.Recompute()

	assert.Equal(t, MacroBreakdown{Calories: 350, Protein: 5, Carbs: 30, Fats: 7, Fiber: 2}, l.TotalMacros)
}

func TestAccountRecord(t *testing.T) {
	acc := &AccountRecord{ID: "1", CredentialProof: "$2a$hash", AuthProvider: ProviderPassword}
	pub := acc.Public()
	assert.Empty(t, pub.CredentialProof)
	assert.Equal(t, "$2a$hash", acc.CredentialProof)
	assert.False(t, acc.IsFederated())

	acc.AuthProvider = ProviderApple
	assert.True(t, acc.IsFederated())
}

func TestCommunityPost_Likes(t *testing.T) {
	assert.Equal(t, 0, CommunityPost{}.Likes())
	assert.Equal(t, 2, CommunityPost{LikedBy: []string{"a", "b"}}.Likes())
}
