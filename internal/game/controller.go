// Package game ties a play session to its rewards. The Controller owns the
// session engine and forwards its events to the sticker, progress and
// history services and to the narration and audio collaborators.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/abhisek/peekaboo/internal/audio"
	"github.com/abhisek/peekaboo/internal/catalog"
	"github.com/abhisek/peekaboo/internal/narration"
	"github.com/abhisek/peekaboo/internal/progress"
	"github.com/abhisek/peekaboo/internal/rng"
	"github.com/abhisek/peekaboo/internal/session"
	"github.com/abhisek/peekaboo/internal/stickers"
	"github.com/abhisek/peekaboo/internal/store"
)

// ErrChapterLocked is returned when a story chapter needs more stars.
var ErrChapterLocked = errors.New("chapter is locked")

// Deps are the collaborators a Controller needs. History, Narrator, Audio,
// Lines and Logger are optional.
type Deps struct {
	Engine   *session.Engine
	Stickers *stickers.Service
	Progress *progress.Service
	History  store.SessionRepo
	Narrator narration.Narrator
	Audio    audio.Player
	Lines    *narration.Lines
	Logger   *slog.Logger
}

// Feedback is what the player sees after a pick.
type Feedback struct {
	Answer  session.Answer
	Reward  *stickers.RewardOutcome // set on a correct pick
	Message string
}

// Finish is the result of a session that has ended.
type Finish struct {
	Session     *session.GameSession
	Summary     session.Summary
	Outcome     progress.Outcome
	Rewards     []stickers.RewardOutcome
	BonusPoints int
}

// NewStickers returns the stickers first found this session.
func (f *Finish) NewStickers() []stickers.Sticker {
	var out []stickers.Sticker
	for _, r := range f.Rewards {
		if r.IsNewSticker {
			out = append(out, r.Sticker)
		}
	}
	return out
}

// Controller runs one session at a time. It is not safe for concurrent
// use; the UI event loop is its only caller.
type Controller struct {
	engine   *session.Engine
	stickers *stickers.Service
	progress *progress.Service
	history  store.SessionRepo
	narrator narration.Narrator
	audio    audio.Player
	lines    *narration.Lines
	logger   *slog.Logger

	rewards []stickers.RewardOutcome
	points  int
}

// New returns a controller. Missing optional collaborators are replaced
// with no-op versions.
func New(d Deps) *Controller {
	c := &Controller{
		engine:   d.Engine,
		stickers: d.Stickers,
		progress: d.Progress,
		history:  d.History,
		narrator: d.Narrator,
		audio:    d.Audio,
		lines:    d.Lines,
		logger:   d.Logger,
	}
	if c.narrator == nil {
		c.narrator = narration.Nop{}
	}
	if c.audio == nil {
		c.audio = audio.Nop{}
	}
	if c.lines == nil {
		c.lines = narration.NewLines(rng.New(0))
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Start begins a session with the player's current unlocks.
func (c *Controller) Start(ctx context.Context, cfg session.Config) (*session.GameSession, error) {
	s, err := c.engine.Start(cfg, c.progress.Unlocked())
	if err != nil {
		return nil, err
	}
	c.rewards = nil
	c.points = 0

	c.logger.InfoContext(ctx, "session started",
		"session", s.ID,
		"mode", s.Mode,
		"category", s.Category,
		"difficulty", s.Difficulty,
		"rounds", len(s.Rounds))
	c.announce()
	return s, nil
}

// StartChapter begins a story session for the chapter with the given ID.
func (c *Controller) StartChapter(ctx context.Context, id string) (*session.GameSession, error) {
	ch, err := progress.GetChapter(id)
	if err != nil {
		return nil, err
	}
	if stars := c.progress.Progress().TotalStars; !ch.Available(stars) {
		return nil, fmt.Errorf("%w: %s needs %d stars, have %d", ErrChapterLocked, ch.Name, ch.RequiredStars, stars)
	}
	return c.Start(ctx, session.Config{
		Mode:       session.ModeStory,
		Category:   catalog.CategoryAnimals,
		Difficulty: ch.Difficulty,
		Group:      ch.Group,
	})
}

// Select answers the current round. A correct pick earns a sticker and
// closes the round; call Advance once the feedback has been shown.
func (c *Controller) Select(ctx context.Context, itemID string) (Feedback, error) {
	ans, err := c.engine.Select(itemID)
	if err != nil {
		return Feedback{}, err
	}

	fb := Feedback{Answer: ans}
	if !ans.Correct {
		c.audio.Play(audio.EventIncorrect)
		fb.Message = c.lines.Incorrect(ans.Round.Target)
		c.narrator.Say(fb.Message)
		return fb, nil
	}

	reward := c.stickers.AwardForCorrectAnswer(ctx, ans.Item)
	c.rewards = append(c.rewards, reward)
	c.points += reward.BonusPoints
	fb.Reward = &reward

	c.audio.Play(audio.EventCorrect)
	fb.Message = c.lines.Correct(ans.Round.Target)
	c.narrator.Say(fb.Message)

	c.logger.DebugContext(ctx, "correct answer",
		"round", ans.Round.ID,
		"item", ans.Item.ID,
		"rarity", reward.Sticker.Rarity,
		"new_sticker", reward.IsNewSticker)
	return fb, nil
}

// Tick drives the round timer. When the round runs out of time the
// player is told so; call Advance(false) once the feedback has been shown.
func (c *Controller) Tick(ctx context.Context, now time.Time) (session.TickResult, string) {
	res := c.engine.Tick(now)
	if !res.Expired {
		return res, ""
	}
	round, _ := c.engine.CurrentRound()
	msg := c.lines.TimeUp(round.Target)
	c.audio.Play(audio.EventWhoosh)
	c.narrator.Say(msg)
	c.logger.DebugContext(ctx, "round timed out", "round", round.ID)
	return res, msg
}

// Advance scores the closed round and moves on. It returns a Finish when
// that was the last round.
func (c *Controller) Advance(ctx context.Context, wasCorrect bool) (*Finish, error) {
	final, err := c.engine.CompleteRound(wasCorrect)
	if err != nil {
		return nil, err
	}
	if final == nil {
		c.announce()
		return nil, nil
	}
	return c.finish(ctx, final), nil
}

// Quit ends the session early. Stars already earned are kept.
func (c *Controller) Quit(ctx context.Context) (*Finish, error) {
	final, err := c.engine.Quit()
	if err != nil {
		return nil, err
	}
	return c.finish(ctx, final), nil
}

// Pause suspends the round in play.
func (c *Controller) Pause() bool {
	if !c.engine.Pause() {
		return false
	}
	c.audio.Play(audio.EventClick)
	return true
}

// Resume continues a paused round.
func (c *Controller) Resume() bool {
	if !c.engine.Resume() {
		return false
	}
	c.audio.Play(audio.EventClick)
	return true
}

// RepeatPrompt says the current prompt again.
func (c *Controller) RepeatPrompt() {
	c.announce()
}

// Reset abandons any session without recording it.
func (c *Controller) Reset() {
	c.engine.Reset()
	c.rewards = nil
	c.points = 0
}

// Status returns the session lifecycle state.
func (c *Controller) Status() session.Status { return c.engine.Status() }

// Session returns a snapshot of the session, or nil when idle.
func (c *Controller) Session() *session.GameSession { return c.engine.Session() }

// CurrentRound returns the round in play.
func (c *Controller) CurrentRound() (session.GameRound, bool) { return c.engine.CurrentRound() }

// RoundOpen reports whether the current round accepts picks.
func (c *Controller) RoundOpen() bool { return c.engine.RoundOpen() }

// Timed reports whether rounds have a time limit.
func (c *Controller) Timed() bool { return c.engine.Timed() }

// TimeRemaining returns the time left in the current round.
func (c *Controller) TimeRemaining() time.Duration { return c.engine.TimeRemaining() }

// SessionPoints returns the bonus points earned so far this session.
func (c *Controller) SessionPoints() int { return c.points }

// Stickers returns the sticker service.
func (c *Controller) Stickers() *stickers.Service { return c.stickers }

// Progress returns the progress service.
func (c *Controller) Progress() *progress.Service { return c.progress }

// History returns the session history, which may be nil.
func (c *Controller) History() store.SessionRepo { return c.history }

func (c *Controller) announce() {
	round, ok := c.engine.CurrentRound()
	if !ok {
		return
	}
	c.narrator.Say(narration.Prompt(round.Target))
	c.audio.PlayItem(round.Target.ID)
}

func (c *Controller) finish(ctx context.Context, final *session.GameSession) *Finish {
	sum := session.BuildSummary(final)
	outcome := c.progress.RecordSession(ctx, sum)

	if c.history != nil {
		rec := store.SessionRecord{
			SessionID:  final.ID,
			Mode:       string(final.Mode),
			Category:   string(final.Category),
			Difficulty: string(final.Difficulty),
			Rounds:     len(final.Rounds),
			Score:      final.Score,
			Stars:      final.Stars,
			Completed:  sum.Finished,
			StartedAt:  final.StartTime,
		}
		if final.EndTime != nil {
			rec.EndedAt = *final.EndTime
		}
		if err := c.history.Append(ctx, rec); err != nil {
			c.logger.WarnContext(ctx, "failed to record session", "session", final.ID, "error", err)
		}
	}

	if sum.Finished {
		c.audio.Play(audio.EventCelebration)
		c.narrator.Say(narration.Celebrate(sum.Score, sum.Rounds))
	}

	c.logger.InfoContext(ctx, "session ended",
		"session", final.ID,
		"score", sum.Score,
		"rounds", sum.Rounds,
		"finished", sum.Finished,
		"total_stars", outcome.TotalStars,
		"unlocked", len(outcome.NewlyUnlocked))

	f := &Finish{
		Session:     final,
		Summary:     sum,
		Outcome:     outcome,
		Rewards:     c.rewards,
		BonusPoints: c.points,
	}
	c.rewards = nil
	c.points = 0
	return f
}
