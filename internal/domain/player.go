package domain

import (
	"time"
)

// StatLine is a per-season statistical profile. All fields are per-game
// averages. PlusMinus is the only field allowed to be negative.
type StatLine struct {
	Points    float64
	Assists   float64
	Rebounds  float64
	Steals    float64
	Blocks    float64
	PlusMinus float64
}

// Sub returns the signed per-field difference s - other.
func (s StatLine) Sub(other StatLine) StatLine {
	return StatLine{
		Points:    s.Points - other.Points,
		Assists:   s.Assists - other.Assists,
		Rebounds:  s.Rebounds - other.Rebounds,
		Steals:    s.Steals - other.Steals,
		Blocks:    s.Blocks - other.Blocks,
		PlusMinus: s.PlusMinus - other.PlusMinus,
	}
}

type Player struct {
	ID           int64
	Name         string
	Team         string
	Position     string
	Season       string
	Stats        StatLine
	Hypothetical bool
	CreatedAt    time.Time
}

// PlayerPatch carries a partial update. Nil fields are left untouched.
// The identifier is immutable and therefore absent.
type PlayerPatch struct {
	Name         *string
	Team         *string
	Position     *string
	Season       *string
	Points       *float64
	Assists      *float64
	Rebounds     *float64
	Steals       *float64
	Blocks       *float64
	PlusMinus    *float64
	Hypothetical *bool
}

// Apply returns a copy of p with all non-nil patch fields replaced.
func (patch PlayerPatch) Apply(p Player) Player {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Team != nil {
		p.Team = *patch.Team
	}
	if patch.Position != nil {
		p.Position = *patch.Position
	}
	if patch.Season != nil {
		p.Season = *patch.Season
	}
	if patch.Points != nil {
		p.Stats.Points = *patch.Points
	}
	if patch.Assists != nil {
		p.Stats.Assists = *patch.Assists
	}
	if patch.Rebounds != nil {
		p.Stats.Rebounds = *patch.Rebounds
	}
	if patch.Steals != nil {
		p.Stats.Steals = *patch.Steals
	}
	if patch.Blocks != nil {
		p.Stats.Blocks = *patch.Blocks
	}
	if patch.PlusMinus != nil {
		p.Stats.PlusMinus = *patch.PlusMinus
	}
	if patch.Hypothetical != nil {
		p.Hypothetical = *patch.Hypothetical
	}
	return p
}

type Filter struct {
	Name         string
	Season       string
	Hypothetical *bool
	Limit        int
}

// Comparison is a side-by-side diff of two player records. Diff is
// A minus B field by field, so swapping the arguments flips every sign.
type Comparison struct {
	PlayerA Player
	PlayerB Player
	Diff    StatLine

	OverallTierA  string
	PositionTierA string
	OverallTierB  string
	PositionTierB string
}
