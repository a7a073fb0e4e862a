package app

import (
	"github.com/vancomm/minesweeper-engine/internal/handlers"
)

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(
		a.logger, a.store, a.jwt, a.limits, a.ws,
	)

	base := a.basePath

	a.router.HandleFunc("GET "+base+"/health", handlers.Health)
	a.router.HandleFunc("POST "+base+"/game", game.NewGame)
	a.router.HandleFunc("GET "+base+"/game/{id}", game.Fetch)
	a.router.HandleFunc("DELETE "+base+"/game/{id}", game.Delete)
	a.router.HandleFunc("POST "+base+"/game/{id}/click", game.Click)
	a.router.HandleFunc("POST "+base+"/game/{id}/reset", game.Reset)
	a.router.HandleFunc("GET "+base+"/game/{id}/connect", game.ConnectWS)
}
