package webpath

const (
	Home = "/"

	Api           = "/api"
	ApiPlayers    = Api + "/players"
	ApiPlayerByID = ApiPlayers + "/:id"
	ApiCompare    = Api + "/compare"
	ApiSeasons    = Api + "/seasons"
	ApiHealth     = Api + "/health"
)

func Path() map[string]string {
	return map[string]string{
		"Home":       Home,
		"Api":        Api,
		"ApiPlayers": ApiPlayers,
		"ApiCompare": ApiCompare,
		"ApiSeasons": ApiSeasons,
		"ApiHealth":  ApiHealth,
	}
}
