package web

import (
	"testing"
)

func ptr[T any](v T) *T {
	return &v
}

func fullCreatePlayer() createPlayer {
	return createPlayer{
		Name:      "Test Player",
		Team:      "BOS",
		Position:  "SG",
		Season:    "2020",
		Points:    ptr(25.0),
		Assists:   ptr(4.0),
		Rebounds:  ptr(5.0),
		Steals:    ptr(1.0),
		Blocks:    ptr(0.5),
		PlusMinus: ptr(-1.5),
	}
}

func Test_createPlayer_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *createPlayer)
		wantErr bool
	}{
		{
			name:    "complete request",
			mutate:  func(c *createPlayer) {},
			wantErr: false,
		},
		{
			name:    "plus minus is optional",
			mutate:  func(c *createPlayer) { c.PlusMinus = nil },
			wantErr: false,
		},
		{
			name:    "missing name",
			mutate:  func(c *createPlayer) { c.Name = "" },
			wantErr: true,
		},
		{
			name:    "missing team",
			mutate:  func(c *createPlayer) { c.Team = "" },
			wantErr: true,
		},
		{
			name:    "missing position",
			mutate:  func(c *createPlayer) { c.Position = "" },
			wantErr: true,
		},
		{
			name:    "missing season",
			mutate:  func(c *createPlayer) { c.Season = "" },
			wantErr: true,
		},
		{
			name:    "missing points",
			mutate:  func(c *createPlayer) { c.Points = nil },
			wantErr: true,
		},
		{
			name:    "missing blocks",
			mutate:  func(c *createPlayer) { c.Blocks = nil },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := fullCreatePlayer()
			tt.mutate(&req)
			if err := req.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_updatePlayer_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     updatePlayer
		wantErr bool
	}{
		{
			name:    "single field",
			req:     updatePlayer{Points: ptr(30.0)},
			wantErr: false,
		},
		{
			name:    "empty patch",
			req:     updatePlayer{},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.req.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_updatePlayer_convertToDomainPatch(t *testing.T) {
	req := updatePlayer{
		Name:   ptr("Renamed"),
		Points: ptr(12.5),
	}
	patch := req.convertToDomainPatch()
	if patch.Name == nil || *patch.Name != "Renamed" {
		t.Errorf("convertToDomainPatch() name = %v", patch.Name)
	}
	if patch.Points == nil || *patch.Points != 12.5 {
		t.Errorf("convertToDomainPatch() points = %v", patch.Points)
	}
	if patch.Team != nil || patch.Season != nil || patch.Hypothetical != nil {
		t.Error("convertToDomainPatch() must leave untouched fields nil")
	}
}
