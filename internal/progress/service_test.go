package progress

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santgross/BIOFIT-EXPERT/internal/content"
)

func newTestService(t *testing.T) (*Service, *MemoryStore) {
	t.Helper()
	st := NewMemoryStore()
	st.Create("u1")
	return NewService(st, content.Builtin(), nil), st
}

func tfResult(correctIDs ...int) Result {
	pack := content.Builtin()
	res := Result{
		SessionID: "s1",
		Module:    content.ModuleTrueFalse,
		Level:     1,
		PoolIDs:   pack.PoolIDs(content.ModuleTrueFalse, 1),
	}
	for _, id := range correctIDs {
		res.Awards = append(res.Awards, Award{ID: content.ModuleTrueFalse.ItemActivityID(id), Points: 25})
		res.Score += 25
	}
	return res
}

func TestCompleteMergesNewIDs(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	out, err := svc.Complete(ctx, "u1", tfResult(101, 102, 104))
	require.NoError(t, err)
	assert.Equal(t, 75, out.Score)
	assert.Equal(t, 75, out.PointsAdded)

	p, err := st.GetProgress(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 75, p.Points)
	assert.Equal(t, 1, p.Level)
	assert.ElementsMatch(t, []string{"tf-101", "tf-102", "tf-104"}, p.CompletedActivities)
	assert.False(t, IsAvailable(content.ModuleMatch, p.Completed()))
}

func TestCompleteIsIdempotent(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	res := tfResult(101, 102, 104)

	_, err := svc.Complete(ctx, "u1", res)
	require.NoError(t, err)
	first, _ := st.GetProgress(ctx, "u1")
	writes := st.Writes

	out, err := svc.Complete(ctx, "u1", res)
	require.NoError(t, err)
	second, _ := st.GetProgress(ctx, "u1")

	assert.Equal(t, first.Points, second.Points)
	assert.Equal(t, first.CompletedActivities, second.CompletedActivities)
	assert.Zero(t, out.PointsAdded)
	assert.Empty(t, out.NewIDs)
	assert.Equal(t, 75, out.Score, "raw score is still reported")
	assert.Equal(t, writes, st.Writes, "duplicate completion must not write")
}

func TestCompleteOnlyPaysNewIDs(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	_, err := svc.Complete(ctx, "u1", tfResult(101, 102))
	require.NoError(t, err)
	out, err := svc.Complete(ctx, "u1", tfResult(102, 103))
	require.NoError(t, err)

	assert.Equal(t, 25, out.PointsAdded)
	assert.Equal(t, []string{"tf-103"}, out.NewIDs)
	p, _ := st.GetProgress(ctx, "u1")
	assert.Equal(t, 75, p.Points)
}

func TestCompleteAddsMarkersWhenPoolDone(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	_, err := svc.Complete(ctx, "u1", tfResult(101, 102, 103, 104))
	require.NoError(t, err)
	p, _ := st.GetProgress(ctx, "u1")
	assert.False(t, IsAvailable(content.ModuleMatch, p.Completed()))

	out, err := svc.Complete(ctx, "u1", tfResult(105))
	require.NoError(t, err)
	assert.Contains(t, out.NewIDs, "true-false-level-1")
	assert.Contains(t, out.NewIDs, "true-false-complete")

	p, _ = st.GetProgress(ctx, "u1")
	assert.Equal(t, 125, p.Points, "markers carry no points")
	assert.True(t, IsAvailable(content.ModuleMatch, p.Completed()))
}

func TestCompleteMatchLevelAward(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	res := Result{
		Module: content.ModuleMatch,
		Level:  1,
		Score:  40,
		Awards: []Award{{ID: LevelMarker(content.ModuleMatch, 1), Points: 40}},
	}

	out, err := svc.Complete(ctx, "u1", res)
	require.NoError(t, err)
	assert.Equal(t, 40, out.PointsAdded)
	assert.Contains(t, out.NewIDs, "match-complete")

	// Replaying the level scores but pays nothing.
	res.Score = 100
	res.Awards[0].Points = 100
	out, err = svc.Complete(ctx, "u1", res)
	require.NoError(t, err)
	assert.Zero(t, out.PointsAdded)
	assert.Equal(t, 100, out.Score)
	p, _ := st.GetProgress(ctx, "u1")
	assert.Equal(t, 40, p.Points)
}

func TestCompleteRecomputesLevelAndBadges(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	res := Result{
		Module: content.ModuleScenario,
		Level:  2,
		Score:  450,
		Awards: []Award{{ID: "scenario-201", Points: 450}},
	}

	out, err := svc.Complete(ctx, "u1", res)
	require.NoError(t, err)
	assert.True(t, out.LeveledUp())
	assert.Equal(t, 2, out.LevelAfter)
	assert.Equal(t, []string{"mes1"}, out.NewBadges)

	p, _ := st.GetProgress(ctx, "u1")
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, []string{"mes1"}, p.Badges)
}

func TestCompleteGuestDoesNotPersist(t *testing.T) {
	svc, st := newTestService(t)
	out, err := svc.Complete(context.Background(), "", tfResult(101))
	require.NoError(t, err)
	assert.Equal(t, 25, out.Score)
	assert.Nil(t, out.Progress)
	assert.Zero(t, st.Writes)
}

func TestCompleteWriteFailureKeepsScore(t *testing.T) {
	svc, st := newTestService(t)
	st.FailWrites = errors.New("disk full")

	out, err := svc.Complete(context.Background(), "u1", tfResult(101, 102))
	require.Error(t, err)
	var we *WriteError
	assert.True(t, errors.As(err, &we))
	assert.Equal(t, 50, out.Score)
}

func TestCompleteMissingRecord(t *testing.T) {
	svc, _ := newTestService(t)
	out, err := svc.Complete(context.Background(), "nobody", tfResult(101))
	assert.True(t, IsNotFound(err))
	assert.Equal(t, 25, out.Score)
}

func TestLoadReconcilesStaleLevel(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	pts := 850
	require.NoError(t, st.UpdateProgress(ctx, "u1", Update{Points: &pts}))

	p, err := svc.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, []string{"mes1", "mes3"}, p.Badges)

	stored, _ := st.GetProgress(ctx, "u1")
	assert.Equal(t, 3, stored.Level)

	// A second load finds nothing to change.
	writes := st.Writes
	_, err = svc.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, writes, st.Writes)
}
