package stream

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func RegisterRoutes(r fiber.Router, hub *Hub) {
	r.Get("/ws/:userID", websocket.New(func(c *websocket.Conn) {
		userID := c.Params("userID")
		client := hub.Register(userID)

		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				select {
				case msg := <-client.Send:
					if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
						return
					}
				case <-client.Done:
					return
				}
			}
		}()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}

		// unregister signals Done, which releases the writer
		hub.Unregister(client)
		<-done
	}))
}
