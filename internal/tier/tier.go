package tier

import "statserver/internal/domain"

type Tier string

const (
	Superstar  Tier = "Tier 1 - Superstar"
	AllStar    Tier = "Tier 2 - All-Star"
	Starter    Tier = "Tier 3 - Starter"
	RolePlayer Tier = "Tier 4 - Role Player"
	Bench      Tier = "Tier 5 - Bench"
)

type weights struct {
	points   float64
	assists  float64
	rebounds float64
	steals   float64
	blocks   float64
}

var overallWeights = weights{points: 0.4, assists: 0.25, rebounds: 0.15, steals: 0.1, blocks: 0.1}

var positionWeights = map[string]weights{
	"PG": {points: 0.3, assists: 0.45, rebounds: 0.05, steals: 0.15, blocks: 0.05},
	"SG": {points: 0.45, assists: 0.2, rebounds: 0.1, steals: 0.15, blocks: 0.1},
	"SF": {points: 0.4, assists: 0.2, rebounds: 0.2, steals: 0.1, blocks: 0.1},
	"PF": {points: 0.3, assists: 0.1, rebounds: 0.35, steals: 0.1, blocks: 0.15},
	"C":  {points: 0.25, assists: 0.05, rebounds: 0.4, steals: 0.05, blocks: 0.25},
}

// Calculate assigns an overall tier and a role-adjusted tier for a stat
// line. Unknown positions fall back to the overall weights.
func Calculate(stats domain.StatLine, position string) (overall Tier, positional Tier) {
	positionW, ok := positionWeights[position]
	if !ok {
		positionW = overallWeights
	}
	return assign(score(stats, overallWeights)), assign(score(stats, positionW))
}

func score(stats domain.StatLine, w weights) float64 {
	return stats.Points*w.points +
		stats.Assists*w.assists +
		stats.Rebounds*w.rebounds +
		stats.Steals*w.steals +
		stats.Blocks*w.blocks
}

func assign(score float64) Tier {
	switch {
	case score >= 12:
		return Superstar
	case score >= 10:
		return AllStar
	case score >= 5:
		return Starter
	case score >= 2:
		return RolePlayer
	default:
		return Bench
	}
}
