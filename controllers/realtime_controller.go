package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	RT *services.RealtimeHub
}

func NewRealtimeController(rt *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{RT: rt}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// AdvisoriesWS streams surplus/overspending/buffer advisories to the client
// as they are emitted.
func (rc *RealtimeController) AdvisoriesWS(c *gin.Context) {
	uid := c.GetUint("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := rc.RT.Subscribe(uid, conn)

	// ping to keep connections alive through some proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				rc.RT.Unsubscribe(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error → unsubscribe
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.RT.Unsubscribe(cl)
			return
		}
	}
}
