package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/shady2k/sudoku-server/internal/session"
	"github.com/shady2k/sudoku-server/internal/sudoku"
)

var commandNargs = map[string]int{
	"g": 0, // resend current state
	"s": 3, // set row col digit
	"e": 2, // erase row col
	"r": 0, // forfeit
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d must be an int", i+1)
		}
		out[i] = n
	}
	return out, nil
}

func runCommand(st *session.State, c string) error {
	parts := strings.Split(c, " ")

	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command")
	}
	if nargs != len(parts)-1 {
		return fmt.Errorf("invalid number of arguments")
	}

	switch parts[0] {
	case "g":
		return nil
	case "s":
		args, err := parseInts(parts[1:])
		if err != nil {
			return err
		}
		if args[2] < 1 || args[2] > sudoku.Size {
			return session.ErrInvalidDigit
		}
		return st.SetCell(args[0], args[1], uint8(args[2]))
	case "e":
		args, err := parseInts(parts[1:])
		if err != nil {
			return err
		}
		return st.ClearCell(args[0], args[1])
	case "r":
		st.Forfeit()
		return nil
	}
	return fmt.Errorf("invalid command")
}

// Connect upgrades the request and serves play commands over the socket
// until the peer disconnects. Each text message may carry several
// newline-separated commands; the updated session is persisted and echoed
// back after every message.
func (h PuzzleHandler) Connect(w http.ResponseWriter, r *http.Request) {
	row, st := h.loadSession(w, r)
	if row == nil {
		return
	}

	c, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				h.logger.Warn("abnormal ws break", slog.Any("error", err))
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}

		text := strings.TrimSpace(string(message))
		for _, command := range strings.Split(text, "\n") {
			if err := runCommand(st, command); err != nil {
				if writeErr := c.WriteJSON(wrapError(err)); writeErr != nil {
					h.logger.Error("unable to write json", slog.Any("error", writeErr))
					return
				}
				continue
			}
			if st.Finished() {
				break
			}
		}

		updated, err := h.saveSession(r.Context(), row, st)
		if err != nil {
			h.logger.Error("unable to update session in db", slog.Any("error", err))
			return
		}
		row = updated

		if err := c.WriteJSON(NewPuzzleSessionDTO(row, st)); err != nil {
			h.logger.Error("unable to write json", slog.Any("error", err))
			break
		}
	}
}
