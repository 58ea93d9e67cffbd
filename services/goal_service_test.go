package services

import (
	"math"
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeGoal(target float64, milestones ...float64) *models.Goal {
	g := &models.Goal{
		Title:       "Run 100 km",
		TargetValue: target,
		Status:      models.GoalStatusActive,
	}
	g.ID = 1
	for i, mv := range milestones {
		m := models.Milestone{GoalID: g.ID, Title: "milestone", TargetValue: mv}
		m.ID = uint(i + 1)
		g.Milestones = append(g.Milestones, m)
	}
	return g
}

func TestProgressPercentage(t *testing.T) {
	assert.Equal(t, 60.0, ProgressPercentage(60, 100))
	assert.Equal(t, 100.0, ProgressPercentage(150, 100)) // capped
	assert.Equal(t, 0.0, ProgressPercentage(5, 0))       // zero target, no division
	assert.Equal(t, 0.0, ProgressPercentage(5, -1))
}

func TestApplyProgress_MilestoneCrossing(t *testing.T) {
	g := activeGoal(100, 50)
	g.CurrentValue = 30
	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	res, err := ApplyProgress(g, 60, "long run", at)
	require.NoError(t, err)

	assert.Equal(t, 60.0, g.CurrentValue)
	require.Len(t, res.CompletedMilestones, 1)
	assert.True(t, g.Milestones[0].Achieved)
	require.NotNil(t, g.Milestones[0].AchievedDate)
	assert.Equal(t, at, *g.Milestones[0].AchievedDate)
	assert.Equal(t, 60.0, res.ProgressPercentage)
	assert.False(t, res.GoalCompleted)
	assert.Equal(t, models.GoalStatusActive, g.Status)
}

func TestApplyProgress_ExactThresholdFires(t *testing.T) {
	g := activeGoal(100, 50)
	g.CurrentValue = 30

	res, err := ApplyProgress(g, 50, "", time.Now())
	require.NoError(t, err)
	assert.Len(t, res.CompletedMilestones, 1)
}

func TestApplyProgress_JumpCrossesSeveralAndCompletes(t *testing.T) {
	g := activeGoal(100, 25, 50, 75)
	at := time.Now()

	res, err := ApplyProgress(g, 150, "", at)
	require.NoError(t, err)

	assert.Len(t, res.CompletedMilestones, 3)
	assert.True(t, res.GoalCompleted)
	assert.Equal(t, models.GoalStatusCompleted, g.Status)
	require.NotNil(t, g.CompletedAt)
	assert.Equal(t, 100.0, res.ProgressPercentage) // capped above target
}

func TestApplyProgress_MilestoneNeverRefires(t *testing.T) {
	g := activeGoal(100, 50)
	g.CurrentValue = 0

	_, err := ApplyProgress(g, 60, "", time.Now())
	require.NoError(t, err)
	firstDate := *g.Milestones[0].AchievedDate

	// regress below the threshold, then cross it again
	_, err = ApplyProgress(g, 40, "", time.Now())
	require.NoError(t, err)
	assert.True(t, g.Milestones[0].Achieved, "achieved flag is monotonic")

	res, err := ApplyProgress(g, 70, "", time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, res.CompletedMilestones)
	assert.Equal(t, firstDate, *g.Milestones[0].AchievedDate)
}

func TestApplyProgress_HistoryIsAppendOnly(t *testing.T) {
	g := activeGoal(100)
	g.CurrentValue = 10

	_, err := ApplyProgress(g, 20, "first", time.Now())
	require.NoError(t, err)
	_, err = ApplyProgress(g, 20, "same value again", time.Now())
	require.NoError(t, err)

	require.Len(t, g.History, 2)
	assert.Equal(t, 10.0, g.History[0].PreviousValue)
	assert.Equal(t, 20.0, g.History[0].Value)
	assert.Equal(t, 20.0, g.History[1].PreviousValue)
	assert.Equal(t, 20.0, g.History[1].Value)
}

func TestApplyProgress_NonActiveGoalRejected(t *testing.T) {
	for _, status := range []string{models.GoalStatusPaused, models.GoalStatusCompleted, models.GoalStatusCancelled} {
		g := activeGoal(100)
		g.Status = status

		res, err := ApplyProgress(g, 10, "", time.Now())
		assert.ErrorIs(t, err, ErrGoalNotActive, status)
		assert.Nil(t, res)
		assert.Empty(t, g.History, "rejected update must not touch history")
	}
}

func TestApplyProgress_InvalidValues(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		g := activeGoal(100)
		res, err := ApplyProgress(g, v, "", time.Now())
		assert.ErrorIs(t, err, ErrInvalidValue)
		assert.Nil(t, res)
	}
}

func TestApplyProgress_DecreaseStillOverwrites(t *testing.T) {
	g := activeGoal(100)
	g.CurrentValue = 80

	res, err := ApplyProgress(g, 40, "setback", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 40.0, g.CurrentValue)
	assert.Equal(t, 40.0, res.ProgressPercentage)
}
