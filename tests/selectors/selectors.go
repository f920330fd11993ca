package sel

const (
	Logo = ".brand-logo"

	SearchFormName   = "#search-form-name"
	SearchFormSeason = "#search-form-season"
	SearchFormSubmit = "#search-form-submit"

	NewPlayerFormName     = "#new-player-form-name"
	NewPlayerFormTeam     = "#new-player-form-team"
	NewPlayerFormPosition = "#new-player-form-position"
	NewPlayerFormSeason   = "#new-player-form-season"
	NewPlayerFormPoints   = "#new-player-form-points"
	NewPlayerFormSubmit   = "#new-player-form-submit"

	PlayerListRow     = "#player-list-row"
	PlayerListRowName = "#player-list-row-name"

	CompareFormA      = "#compare-form-a"
	CompareFormB      = "#compare-form-b"
	CompareFormSubmit = "#compare-form-submit"
	CompareResult     = "#compare-result"
)
