package shell

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/cryptobook/internal/header"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// scrollRequest is the incoming WebSocket message format.
type scrollRequest struct {
	Type   string  `json:"type"` // "mount", "scroll" or "toggle"
	Y      float64 `json:"y"`
	Height float64 `json:"height"`
}

type headerResponse struct {
	Type string `json:"type"`
	header.Snapshot
}

type sidebarResponse struct {
	Type string `json:"type"`
	Open bool   `json:"open"`
}

type errorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// scrollSession is the header and sidebar state of one browser tab. Messages
// are applied in arrival order by a single read loop, so it needs no locking.
type scrollSession struct {
	id          string
	feed        *header.Feed
	node        *header.MemNode
	ctrl        *header.Controller
	sidebarOpen bool
	onToggle    func(open bool)
}

// ToggleSidebar flips this tab's sidebar. It implements header.Toggler.
func (sess *scrollSession) ToggleSidebar() {
	sess.sidebarOpen = !sess.sidebarOpen
	if sess.onToggle != nil {
		sess.onToggle(sess.sidebarOpen)
	}
}

func (sess *scrollSession) mount(req scrollRequest) {
	sess.unmount()
	sess.feed = header.NewFeed(req.Y)
	sess.node = header.NewMemNode(req.Height)
	sess.ctrl = header.Mount(sess.feed, sess.node, sess)
}

func (sess *scrollSession) unmount() {
	if sess.ctrl != nil {
		sess.ctrl.Unmount()
	}
}

func (s *Shell) handleScroll(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("scroll stream upgrade", "error", err)
		return
	}
	defer conn.Close()

	sess := &scrollSession{
		id:          uuid.NewString(),
		sidebarOpen: SidebarOpen(r),
		onToggle:    s.sidebarToggled,
	}
	defer sess.unmount()

	closed := s.metrics.ScrollSessionOpened()
	defer closed()

	log := s.log.With("session", sess.id)
	log.Debug("scroll stream opened")
	defer log.Debug("scroll stream closed")

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("scroll stream read", "error", err)
			}
			return
		}

		var req scrollRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.sendScroll(conn, errorResponse{Type: "error", Message: "invalid message format"})
			continue
		}

		switch req.Type {
		case "mount":
			sess.mount(req)
			s.sendScroll(conn, headerResponse{Type: "header", Snapshot: sess.node.Snapshot()})
			s.sendScroll(conn, sidebarResponse{Type: "sidebar", Open: sess.sidebarOpen})
		case "scroll":
			if sess.ctrl == nil {
				s.sendScroll(conn, errorResponse{Type: "error", Message: "scroll before mount"})
				continue
			}
			if req.Height > 0 {
				sess.node.SetHeight(req.Height)
			}
			sess.feed.Emit(req.Y)
			s.sendScroll(conn, headerResponse{Type: "header", Snapshot: sess.node.Snapshot()})
		case "toggle":
			if sess.ctrl != nil {
				sess.ctrl.Toggle()
			} else {
				sess.ToggleSidebar()
			}
			s.sendScroll(conn, sidebarResponse{Type: "sidebar", Open: sess.sidebarOpen})
		default:
			s.sendScroll(conn, errorResponse{Type: "error", Message: "unknown message type: " + req.Type})
		}
	}
}

func (s *Shell) sendScroll(conn *websocket.Conn, resp any) {
	if err := conn.WriteJSON(resp); err != nil {
		s.log.Warn("scroll stream write", "error", err)
	}
}
