package app

import (
	"github.com/shady2k/sudoku-server/internal/handlers"
)

func (a *App) loadRoutes() {
	auth := handlers.NewAuth(a.logger, a.db, a.cookies, a.jwt)
	puzzle := handlers.NewPuzzleHandler(a.logger, a.db, a.cookies, a.ws)
	records := handlers.NewRecords(a.logger, a.db)

	a.router.HandleFunc("GET /status", auth.Status)
	a.router.HandleFunc("POST /register", auth.Register)
	a.router.HandleFunc("POST /login", auth.Login)
	a.router.HandleFunc("POST /logout", auth.Logout)

	a.router.HandleFunc("POST /puzzle", puzzle.New)
	a.router.HandleFunc("GET /puzzle/{id}", puzzle.Fetch)
	a.router.HandleFunc("POST /puzzle/{id}/move", puzzle.Move)
	a.router.HandleFunc("GET /puzzle/{id}/hint", puzzle.Hint)
	a.router.HandleFunc("POST /puzzle/{id}/forfeit", puzzle.Forfeit)
	a.router.HandleFunc("/puzzle/{id}/connect", puzzle.Connect)

	a.router.HandleFunc("GET /records", records.List)
}
