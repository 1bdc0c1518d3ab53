package models

import "time"

// Position is a point in original-image pixel space.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Target is a named point of interest within a photo. Target names are
// unique within a photo.
type Target struct {
	Name     string   `json:"name"`
	Position Position `json:"position"`
}

// Photo represents one playable photo. Records are seeded out-of-band
// and never modified by the running service.
type Photo struct {
	Name             string   `json:"name"`
	UserFriendlyName string   `json:"userFriendlyName"`
	Width            int      `json:"width"`
	Height           int      `json:"height"`
	Targets          []Target `json:"targets"`
}

// Target returns the target with the given name, or nil if the photo
// has no such target.
func (p *Photo) Target(name string) *Target {
	for i := range p.Targets {
		if p.Targets[i].Name == name {
			return &p.Targets[i]
		}
	}
	return nil
}

// Session is a single player's attempt at one photo. It starts
// anonymous and is promoted to a named leaderboard entry at most once.
// TimeMillis stays unset until a completion is recorded.
type Session struct {
	ID          string    `json:"id"`
	IsAnonymous bool      `json:"isAnonymous"`
	Name        string    `json:"name,omitempty"`
	StartTime   time.Time `json:"startTime"`
	TimeMillis  *int64    `json:"time,omitempty"`
	PhotoName   string    `json:"photo"`
	CreatedAt   time.Time `json:"-"`
}

// LeaderboardEntry is one row of a photo's leaderboard: a named,
// completed session.
type LeaderboardEntry struct {
	Name       string `json:"name"`
	TimeMillis int64  `json:"time"`
}
