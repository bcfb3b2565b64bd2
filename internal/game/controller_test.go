package game

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/peekaboo/internal/audio"
	"github.com/abhisek/peekaboo/internal/catalog"
	"github.com/abhisek/peekaboo/internal/narration"
	"github.com/abhisek/peekaboo/internal/progress"
	"github.com/abhisek/peekaboo/internal/rng"
	"github.com/abhisek/peekaboo/internal/session"
	"github.com/abhisek/peekaboo/internal/stickers"
	"github.com/abhisek/peekaboo/internal/store"
)

var epoch = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

// mockHistory is an in-memory store.SessionRepo.
type mockHistory struct {
	records []store.SessionRecord
	err     error
}

func (m *mockHistory) Append(_ context.Context, rec store.SessionRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, rec)
	return nil
}

func (m *mockHistory) Recent(_ context.Context, limit int) ([]store.SessionRecord, error) {
	return m.records, nil
}

func (m *mockHistory) Clear(context.Context) error {
	m.records = nil
	return nil
}

type fixture struct {
	ctrl     *Controller
	clock    *session.ManualClock
	narrator *narration.Recorder
	audio    *audio.Recorder
	history  *mockHistory
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	quiet := slog.New(slog.DiscardHandler)
	cat := catalog.Default()
	kv := store.NewMemory()

	f := &fixture{
		clock:    session.NewManualClock(epoch),
		narrator: &narration.Recorder{},
		audio:    &audio.Recorder{},
		history:  &mockHistory{},
	}
	f.ctrl = New(Deps{
		Engine:   session.NewEngine(session.NewGenerator(cat, rng.New(7)), f.clock),
		Stickers: stickers.NewService(ctx, kv, rng.New(3), cat.Size(), quiet),
		Progress: progress.NewService(ctx, kv, cat, nil, quiet),
		History:  f.history,
		Narrator: f.narrator,
		Audio:    f.audio,
		Lines:    narration.NewLines(rng.New(5)),
		Logger:   quiet,
	})
	return f
}

func (f *fixture) playCorrect(t *testing.T) *Finish {
	t.Helper()
	ctx := context.Background()
	for {
		round, ok := f.ctrl.CurrentRound()
		require.True(t, ok)
		fb, err := f.ctrl.Select(ctx, round.Target.ID)
		require.NoError(t, err)
		require.True(t, fb.Answer.Correct)
		f.clock.Advance(2 * time.Second)
		fin, err := f.ctrl.Advance(ctx, true)
		require.NoError(t, err)
		if fin != nil {
			return fin
		}
	}
}

func wrongOption(r session.GameRound) string {
	for _, o := range r.Options {
		if o.ID != r.Target.ID {
			return o.ID
		}
	}
	return ""
}

func TestController_PerfectFreePlay(t *testing.T) {
	f := newFixture(t)
	s, err := f.ctrl.Start(context.Background(), session.Config{Mode: session.ModeFreePlay, Category: catalog.CategoryAnimals})
	require.NoError(t, err)
	require.Len(t, s.Rounds, 5)
	assert.Equal(t, narration.Prompt(s.Rounds[0].Target), f.narrator.Lines[0])
	assert.Equal(t, []string{s.Rounds[0].Target.ID}, f.audio.Items)

	fin := f.playCorrect(t)

	assert.Equal(t, 5, fin.Summary.Score)
	assert.True(t, fin.Summary.Finished)
	assert.True(t, fin.Summary.Perfect)
	assert.Len(t, fin.Rewards, 5)
	assert.Positive(t, fin.BonusPoints)
	assert.NotEmpty(t, fin.NewStickers())

	assert.Equal(t, 5, fin.Outcome.TotalStars)
	p := f.ctrl.Progress().Progress()
	assert.Equal(t, 1, p.TotalGamesPlayed)
	assert.Equal(t, 1, p.PerfectGames)
	assert.True(t, p.HasAchievement("first-game"))

	require.Len(t, f.history.records, 1)
	rec := f.history.records[0]
	assert.Equal(t, s.ID, rec.SessionID)
	assert.True(t, rec.Completed)
	assert.Equal(t, 5, rec.Stars)
	assert.Equal(t, 10*time.Second, rec.EndedAt.Sub(rec.StartedAt))

	assert.Equal(t, audio.EventCelebration, f.audio.Events[len(f.audio.Events)-1])
	assert.Equal(t, narration.Celebrate(5, 5), f.narrator.Lines[len(f.narrator.Lines)-1])
	assert.Equal(t, session.StatusComplete, f.ctrl.Status())
	assert.Zero(t, f.ctrl.SessionPoints())
}

func TestController_WrongPickKeepsRoundOpen(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.ctrl.Start(ctx, session.Config{Mode: session.ModeFreePlay, Category: catalog.CategoryColors})
	require.NoError(t, err)

	round, _ := f.ctrl.CurrentRound()
	fb, err := f.ctrl.Select(ctx, wrongOption(round))
	require.NoError(t, err)
	assert.False(t, fb.Answer.Correct)
	assert.Nil(t, fb.Reward)
	assert.NotEmpty(t, fb.Message)
	assert.True(t, f.ctrl.RoundOpen())
	assert.Equal(t, []audio.Event{audio.EventIncorrect}, f.audio.Events)
	assert.Zero(t, f.ctrl.Stickers().Collection().TotalCollected)

	fb, err = f.ctrl.Select(ctx, round.Target.ID)
	require.NoError(t, err)
	require.NotNil(t, fb.Reward)
	assert.True(t, fb.Reward.IsNewSticker)
	assert.False(t, f.ctrl.RoundOpen())
	assert.True(t, f.ctrl.Stickers().Has(round.Target.ID))

	_, err = f.ctrl.Select(ctx, round.Target.ID)
	assert.ErrorIs(t, err, session.ErrInvalidState)
}

func TestController_TimedRoundExpires(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.ctrl.Start(ctx, session.Config{Mode: session.ModeTimed, Category: catalog.CategoryNumbers})
	require.NoError(t, err)
	require.True(t, f.ctrl.Timed())
	assert.Equal(t, 15*time.Second, f.ctrl.TimeRemaining())

	f.clock.Advance(14 * time.Second)
	res, msg := f.ctrl.Tick(ctx, f.clock.Now())
	assert.False(t, res.Expired)
	assert.Empty(t, msg)
	assert.Equal(t, time.Second, res.Remaining)

	f.clock.Advance(time.Second)
	res, msg = f.ctrl.Tick(ctx, f.clock.Now())
	assert.True(t, res.Expired)
	assert.NotEmpty(t, msg)
	assert.Contains(t, f.audio.Events, audio.EventWhoosh)

	res, _ = f.ctrl.Tick(ctx, f.clock.Now())
	assert.False(t, res.Expired, "expiry is reported once")

	fin, err := f.ctrl.Advance(ctx, false)
	require.NoError(t, err)
	assert.Nil(t, fin)
	s := f.ctrl.Session()
	assert.Equal(t, 1, s.CurrentRoundIndex)
	assert.Zero(t, s.Score)
	assert.Equal(t, 1, s.Timeouts)
	assert.Equal(t, 15*time.Second, f.ctrl.TimeRemaining())
}

func TestController_UnlocksAfterTimedSession(t *testing.T) {
	f := newFixture(t)
	_, err := f.ctrl.Start(context.Background(), session.Config{Mode: session.ModeTimed, Category: catalog.CategoryAnimals})
	require.NoError(t, err)

	fin := f.playCorrect(t)
	assert.Equal(t, 10, fin.Outcome.TotalStars)
	require.NotEmpty(t, fin.Outcome.NewlyUnlocked)
	for _, it := range fin.Outcome.NewlyUnlocked {
		assert.Equal(t, "forest", it.Group)
	}
	assert.True(t, f.ctrl.Progress().Unlocked()["bear"])
}

func TestController_StartChapter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ctrl.StartChapter(ctx, "jungle")
	assert.ErrorIs(t, err, ErrChapterLocked)
	assert.Equal(t, session.StatusIdle, f.ctrl.Status())

	_, err = f.ctrl.StartChapter(ctx, "moon")
	assert.Error(t, err)

	s, err := f.ctrl.StartChapter(ctx, "farm")
	require.NoError(t, err)
	assert.Equal(t, session.ModeStory, s.Mode)
	assert.Equal(t, "farm", s.Group)
	assert.Len(t, s.Rounds, session.ModeStory.Rounds())
	for _, r := range s.Rounds {
		assert.Equal(t, catalog.DifficultyEasy, r.Target.Difficulty)
	}
}

func TestController_QuitKeepsStars(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.ctrl.Start(ctx, session.Config{Mode: session.ModeFreePlay, Category: catalog.CategoryFruits})
	require.NoError(t, err)

	round, _ := f.ctrl.CurrentRound()
	_, err = f.ctrl.Select(ctx, round.Target.ID)
	require.NoError(t, err)
	_, err = f.ctrl.Advance(ctx, true)
	require.NoError(t, err)

	fin, err := f.ctrl.Quit(ctx)
	require.NoError(t, err)
	assert.False(t, fin.Summary.Finished)
	assert.Equal(t, 1, fin.Summary.Stars)
	assert.Len(t, fin.Rewards, 1)

	p := f.ctrl.Progress().Progress()
	assert.Equal(t, 1, p.TotalStars)
	assert.Zero(t, p.TotalGamesPlayed)
	require.Len(t, f.history.records, 1)
	assert.False(t, f.history.records[0].Completed)
	assert.NotContains(t, f.audio.Events, audio.EventCelebration)

	_, err = f.ctrl.Quit(ctx)
	assert.ErrorIs(t, err, session.ErrInvalidState)
}

func TestController_QuitDuringFeedbackKeepsStar(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.ctrl.Start(ctx, session.Config{Mode: session.ModeFreePlay, Category: catalog.CategoryAnimals})
	require.NoError(t, err)

	round, _ := f.ctrl.CurrentRound()
	fb, err := f.ctrl.Select(ctx, round.Target.ID)
	require.NoError(t, err)
	require.NotNil(t, fb.Reward)

	fin, err := f.ctrl.Quit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, fin.Summary.Score)
	assert.Equal(t, 1, fin.Summary.Stars)
	assert.Equal(t, 1, fin.Summary.Played)
	assert.Len(t, fin.Rewards, 1)
	assert.Equal(t, 1, f.ctrl.Progress().Progress().TotalStars)
	require.Len(t, f.history.records, 1)
	assert.Equal(t, 1, f.history.records[0].Stars)
}

func TestController_HistoryFailureIsAbsorbed(t *testing.T) {
	f := newFixture(t)
	f.history.err = errors.New("disk full")
	_, err := f.ctrl.Start(context.Background(), session.Config{Mode: session.ModeFreePlay, Category: catalog.CategoryAlphabets})
	require.NoError(t, err)

	fin := f.playCorrect(t)
	assert.Equal(t, 5, fin.Outcome.TotalStars)
	assert.Empty(t, f.history.records)
}

func TestController_PauseResume(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	assert.False(t, f.ctrl.Pause())

	_, err := f.ctrl.Start(ctx, session.Config{Mode: session.ModeTimed, Category: catalog.CategoryAnimals})
	require.NoError(t, err)

	assert.True(t, f.ctrl.Pause())
	assert.False(t, f.ctrl.Pause())
	f.clock.Advance(30 * time.Second)
	res, _ := f.ctrl.Tick(ctx, f.clock.Now())
	assert.False(t, res.Expired)

	round, _ := f.ctrl.CurrentRound()
	_, err = f.ctrl.Select(ctx, round.Target.ID)
	assert.ErrorIs(t, err, session.ErrInvalidState)

	assert.True(t, f.ctrl.Resume())
	assert.False(t, f.ctrl.Resume())
	assert.Equal(t, 15*time.Second, f.ctrl.TimeRemaining())
	assert.Equal(t, []audio.Event{audio.EventClick, audio.EventClick}, f.audio.Events)
}

func TestController_RepeatPromptAndReset(t *testing.T) {
	f := newFixture(t)
	s, err := f.ctrl.Start(context.Background(), session.Config{Mode: session.ModeFreePlay, Category: catalog.CategoryAnimals})
	require.NoError(t, err)

	f.ctrl.RepeatPrompt()
	require.Len(t, f.narrator.Lines, 2)
	assert.True(t, strings.HasPrefix(f.narrator.Lines[1], "Can you find the "))
	assert.Equal(t, narration.Prompt(s.Rounds[0].Target), f.narrator.Lines[1])

	f.ctrl.Reset()
	assert.Equal(t, session.StatusIdle, f.ctrl.Status())
	assert.Nil(t, f.ctrl.Session())
	assert.Empty(t, f.history.records)

	f.ctrl.RepeatPrompt()
	assert.Len(t, f.narrator.Lines, 2)
}
