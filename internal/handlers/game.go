package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/middleware"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

type GameHandler struct {
	logger *slog.Logger
	store  *session.Store
	jwt    *config.JWT
	limits *config.Limits
	ws     *config.WebSocket
}

func NewGameHandler(
	logger *slog.Logger,
	store *session.Store,
	jwt *config.JWT,
	limits *config.Limits,
	ws *config.WebSocket,
) *GameHandler {
	handler := &GameHandler{
		logger: logger,
		store:  store,
		jwt:    jwt,
		limits: limits,
		ws:     ws,
	}

	return handler
}

// session resolves the {id} path value to a session the request token
// grants access to, writing the error response itself when it cannot.
func (g GameHandler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	claims, ok := r.Context().Value(middleware.CtxSessionClaims).(*config.SessionClaims)
	if !ok {
		sendErrorOrLog(w, g.logger, http.StatusUnauthorized, ErrUnauthorized)
		return nil, false
	}

	id := r.PathValue("id")
	if claims.GameSessionId != id {
		sendErrorOrLog(w, g.logger, http.StatusForbidden, ErrForbidden)
		return nil, false
	}

	s, err := g.store.Get(id)
	if errors.Is(err, session.ErrNotFound) {
		sendErrorOrLog(w, g.logger, http.StatusNotFound, err)
		return nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch game session", "error", err)
		return nil, false
	}

	return s, true
}

// parseNewGame decodes and validates board params, writing a 400 when
// they are rejected.
func (g GameHandler) parseNewGame(w http.ResponseWriter, r *http.Request) (CreateNewGameDTO, string, bool) {
	dto, err := ParseCreateNewGameDTO(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return dto, "", false
	}

	warning, err := g.limits.Check(dto.Params())
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return dto, "", false
	}

	return dto, warning, true
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, warning, ok := g.parseNewGame(w, r)
	if !ok {
		return
	}

	s, err := g.store.Create(dto.Params(), dto.SeedOption())
	if errors.Is(err, session.ErrTooManySessions) {
		sendErrorOrLog(w, g.logger, http.StatusServiceUnavailable, err)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to create game session", "error", err)
		return
	}

	token, err := g.jwt.Issue(s.ID)
	if err != nil {
		g.store.Delete(s.ID)
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to issue session token", "error", err)
		return
	}

	g.logger.Debug("created game session",
		slog.String("id", s.ID),
		slog.String("params", dto.Params().String()),
	)

	sendJSONOrLog(w, g.logger, http.StatusCreated, &NewGameResponseDTO{
		Token:   token,
		Warning: warning,
		Session: readSession(s),
	})
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	s, ok := g.session(w, r)
	if !ok {
		return
	}

	sendJSONOrLog(w, g.logger, http.StatusOK, readSession(s))
}

func (g GameHandler) Click(w http.ResponseWriter, r *http.Request) {
	pos, err := ParsePosition(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}

	s, ok := g.session(w, r)
	if !ok {
		return
	}

	hitBomb, changed := s.Click(pos.X, pos.Y)

	sendJSONOrLog(w, g.logger, http.StatusOK, &ClickResponseDTO{
		HitBomb: hitBomb,
		Changed: changed,
		Session: readSession(s),
	})
}

func (g GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	s, ok := g.session(w, r)
	if !ok {
		return
	}

	dto, warning, ok := g.parseNewGame(w, r)
	if !ok {
		return
	}

	s.Reset(dto.Params(), dto.SeedOption())

	sendJSONOrLog(w, g.logger, http.StatusOK, &NewGameResponseDTO{
		Warning: warning,
		Session: readSession(s),
	})
}

func (g GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	s, ok := g.session(w, r)
	if !ok {
		return
	}

	if err := g.store.Delete(s.ID); err != nil {
		sendErrorOrLog(w, g.logger, http.StatusNotFound, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
