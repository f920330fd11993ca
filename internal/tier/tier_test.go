package tier

import (
	"testing"

	"statserver/internal/domain"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name           string
		stats          domain.StatLine
		position       string
		wantOverall    Tier
		wantPositional Tier
	}{
		{
			name:           "superstar overall but all-star at the point",
			stats:          domain.StatLine{Points: 25, Assists: 5, Rebounds: 5, Steals: 1, Blocks: 1},
			position:       "PG",
			wantOverall:    Superstar,
			wantPositional: AllStar,
		},
		{
			name:           "all-star overall but starter at center",
			stats:          domain.StatLine{Points: 20, Assists: 5, Rebounds: 6, Steals: 1, Blocks: 1},
			position:       "C",
			wantOverall:    AllStar,
			wantPositional: Starter,
		},
		{
			name:           "starter big man",
			stats:          domain.StatLine{Points: 15, Assists: 1, Rebounds: 12, Steals: 0.5, Blocks: 2.5},
			position:       "C",
			wantOverall:    Starter,
			wantPositional: Starter,
		},
		{
			name:           "role player",
			stats:          domain.StatLine{Points: 5, Assists: 1, Rebounds: 2, Steals: 0.5, Blocks: 0.2},
			position:       "SF",
			wantOverall:    RolePlayer,
			wantPositional: RolePlayer,
		},
		{
			name:           "bench",
			stats:          domain.StatLine{Points: 1, Assists: 0.5, Rebounds: 0.5, Steals: 0.1, Blocks: 0.1},
			position:       "SG",
			wantOverall:    Bench,
			wantPositional: Bench,
		},
		{
			// 20*0.4 + 16*0.25 lands exactly on the superstar cutoff.
			name:           "exactly on the superstar threshold",
			stats:          domain.StatLine{Points: 20, Assists: 16},
			position:       "C",
			wantOverall:    Superstar,
			wantPositional: Starter,
		},
		{
			name:           "unknown position falls back to overall weights",
			stats:          domain.StatLine{Points: 25, Assists: 5, Rebounds: 5, Steals: 1, Blocks: 1},
			position:       "G",
			wantOverall:    Superstar,
			wantPositional: Superstar,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			gotOverall, gotPositional := Calculate(tt.stats, tt.position)
			if gotOverall != tt.wantOverall {
				t.Errorf("Calculate() overall = %v, want %v", gotOverall, tt.wantOverall)
			}
			if gotPositional != tt.wantPositional {
				t.Errorf("Calculate() positional = %v, want %v", gotPositional, tt.wantPositional)
			}
		})
	}
}
