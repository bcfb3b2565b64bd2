package session

import "time"

// Summary holds the data displayed on the summary screen and stored in
// session history.
type Summary struct {
	SessionID string
	Mode      Mode
	Rounds    int
	Played    int
	Score     int
	Stars     int
	Misses    int
	Timeouts  int
	Accuracy  float64
	Duration  time.Duration
	Perfect   bool
	Finished  bool
}

// BuildSummary creates a Summary from a completed session.
func BuildSummary(s *GameSession) Summary {
	played := s.CurrentRoundIndex + 1
	if s.Abandoned && !s.ScoredAtQuit {
		// The round in play when quitting does not count.
		played = s.CurrentRoundIndex
	}

	var accuracy float64
	if attempts := s.Score + s.Misses + s.Timeouts; attempts > 0 {
		accuracy = float64(s.Score) / float64(attempts)
	}

	var duration time.Duration
	if s.EndTime != nil {
		duration = s.EndTime.Sub(s.StartTime)
	}

	return Summary{
		SessionID: s.ID,
		Mode:      s.Mode,
		Rounds:    len(s.Rounds),
		Played:    played,
		Score:     s.Score,
		Stars:     s.Stars,
		Misses:    s.Misses,
		Timeouts:  s.Timeouts,
		Accuracy:  accuracy,
		Duration:  duration,
		Perfect:   s.Finished() && s.Score == len(s.Rounds) && s.Misses == 0,
		Finished:  s.Finished(),
	}
}
