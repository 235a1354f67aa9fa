package web

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/knightsbridge/faqsite/internal/extension"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// statusMessage is the outgoing WebSocket message format.
type statusMessage struct {
	State       string `json:"state"`
	Downloading bool   `json:"downloading"`
}

func newStatusMessage(st extension.State) statusMessage {
	return statusMessage{State: st.String(), Downloading: st == extension.Downloading}
}

// handleStatus streams the visitor's download state: the current state on
// connect, then every transition.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("web: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	updates, cancel := sess.Download.Subscribe()
	defer cancel()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("web: websocket read: %v", err)
				}
				return
			}
		}
	}()

	if err := conn.WriteJSON(newStatusMessage(sess.Download.State())); err != nil {
		log.Printf("web: websocket write: %v", err)
		return
	}

	for {
		select {
		case st := <-updates:
			if err := conn.WriteJSON(newStatusMessage(st)); err != nil {
				log.Printf("web: websocket write: %v", err)
				return
			}
		case <-closed:
			return
		}
	}
}
