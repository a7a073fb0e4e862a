package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

type wsCommand string

const (
	wsGet     wsCommand = "g"
	wsOpen    wsCommand = "o"
	wsNewGame wsCommand = "n"
)

var ErrBadCommand = errors.New(`command must be "g", "o x y" or "n width height bomb_count [seed]"`)

type WSReply struct {
	HitBomb *bool           `json:"hit_bomb,omitempty"`
	Changed *bool           `json:"changed,omitempty"`
	Warning string          `json:"warning,omitempty"`
	Session *GameSessionDTO `json:"session,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func parseInts(args []string) ([]int, error) {
	ns := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d must be an int", i+1)
		}
		ns[i] = n
	}
	return ns, nil
}

func (g GameHandler) execute(s *session.Session, line string) (*WSReply, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, ErrBadCommand
	}
	cmd, args := wsCommand(tokens[0]), tokens[1:]

	switch cmd {
	case wsGet:
		if len(args) != 0 {
			return nil, ErrBadCommand
		}
		return &WSReply{Session: readSession(s)}, nil

	case wsOpen:
		if len(args) != 2 {
			return nil, ErrBadCommand
		}
		xy, err := parseInts(args)
		if err != nil {
			return nil, err
		}
		hitBomb, changed := s.Click(xy[0], xy[1])
		return &WSReply{
			HitBomb: &hitBomb,
			Changed: &changed,
			Session: readSession(s),
		}, nil

	case wsNewGame:
		if len(args) != 3 && len(args) != 4 {
			return nil, ErrBadCommand
		}
		whb, err := parseInts(args[:3])
		if err != nil {
			return nil, err
		}
		params := mines.GameParams{Width: whb[0], Height: whb[1], BombCount: whb[2]}
		seed := mines.RandomSeed()
		if len(args) == 4 {
			v, err := strconv.ParseUint(args[3], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("seed must be an unsigned int")
			}
			seed = mines.FixedSeed(v)
		}
		warning, err := g.limits.Check(params)
		if err != nil {
			return nil, err
		}
		s.Reset(params, seed)
		return &WSReply{Warning: warning, Session: readSession(s)}, nil

	default:
		return nil, ErrBadCommand
	}
}

func (g GameHandler) writeReply(conn *websocket.Conn, reply *WSReply) error {
	conn.SetWriteDeadline(time.Now().Add(g.ws.WriteTimeout))
	if err := conn.WriteJSON(reply); err != nil {
		return fmt.Errorf("unable to write json: %w", err)
	}
	return nil
}

func (g GameHandler) wsRunGameLoop(conn *websocket.Conn, s *session.Session) error {
	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}

		for _, line := range strings.Split(strings.TrimSpace(string(buf)), "\n") {
			reply, err := g.execute(s, strings.TrimSpace(line))
			if err != nil {
				reply = &WSReply{Error: err.Error()}
			}
			if err := g.writeReply(conn, reply); err != nil {
				return err
			}
		}
	}
}

func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	s, ok := g.session(w, r)
	if !ok {
		return
	}

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		g.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(g.ws.MaxMessageSize)

	g.logger.Debug("established WS connection", slog.String("id", s.ID))

	if err := g.wsRunGameLoop(conn, s); err != nil {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			return
		}
		g.logger.Warn("error in ws loop", slog.Any("error", err))
	}
}
