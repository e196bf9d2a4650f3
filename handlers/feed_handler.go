package handlers

import (
	"log"

	"github.com/anjiri1684/exam_portal/websocket"
	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type FeedHandler struct {
	hub *websocket.Hub
}

func NewFeedHandler(hub *websocket.Hub) *FeedHandler {
	return &FeedHandler{hub: hub}
}

// Stream pushes a summary of every new result for ?userId= until the client goes away.
func (h *FeedHandler) Stream(c *websocketcontrib.Conn) {
	userID := c.Query("userId")
	if userID == "" {
		_ = c.WriteJSON(fiber.Map{"error": "User ID is required"})
		c.Close()
		return
	}

	client := websocket.NewClient(userID, c)
	h.hub.Register(client)
	defer func() {
		h.hub.Unregister(client)
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			if !websocketcontrib.IsCloseError(err, websocketcontrib.CloseGoingAway, websocketcontrib.CloseNormalClosure) {
				log.Printf("Feed read error for user %s: %v", userID, err)
			}
			return
		}
	}
}
