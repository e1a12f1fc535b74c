package realtime

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser origins are vetted by the CORS layer on the HTTP side;
	// the upgrade itself accepts any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS upgrades the request to a WebSocket connection and attaches
// the client to the hub. The optional tables query parameter narrows
// the subscription, e.g. ?tables=leads,kanban_statuses.
func ServeWS(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logrus.WithError(err).Warn("websocket upgrade failed")
			return
		}

		client := NewClient(hub, conn, parseTables(c.Query("tables")))
		hub.Register(client)

		go client.WritePump()
		go client.ReadPump()
	}
}

func parseTables(raw string) []string {
	if raw == "" {
		return nil
	}
	var tables []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tables = append(tables, t)
		}
	}
	return tables
}
