package handler

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"hotel_manager/database"

	"github.com/gofiber/contrib/websocket"
)

const roomStatusChannel = "rooms:status"

var (
	roomClients = make(map[*websocket.Conn]bool)
	roomMu      sync.Mutex
)

// RoomStatusMessage là payload realtime khi phòng đổi trạng thái
type RoomStatusMessage struct {
	RoomId    uint      `json:"roomId"`
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changedAt"`
}

// BroadcastRoomStatus đẩy trạng thái phòng lên Redis, các instance khác
// sub cùng kênh và fan-out xuống client của mình. Không có Redis thì bỏ qua.
func BroadcastRoomStatus(roomId uint, status string) {
	if database.RedisClient == nil {
		return
	}

	payload, err := json.Marshal(RoomStatusMessage{
		RoomId:    roomId,
		Status:    status,
		ChangedAt: time.Now(),
	})
	if err != nil {
		return
	}

	if err := database.RedisClient.Publish(context.Background(), roomStatusChannel, payload).Err(); err != nil {
		log.Println("Lỗi publish trạng thái phòng:", err)
	}
}

// RoomStatusSocket xử lý WS connection cho sơ đồ phòng realtime
func RoomStatusSocket(c *websocket.Conn) {
	// Khi WS disconnect → xoá client
	defer func() {
		roomMu.Lock()
		delete(roomClients, c)
		roomMu.Unlock()
		c.Close()
	}()

	roomMu.Lock()
	roomClients[c] = true
	roomMu.Unlock()

	if database.RedisClient == nil {
		c.WriteJSON(map[string]string{"error": "realtime không khả dụng"})
		return
	}

	pubsub := database.RedisClient.Subscribe(context.Background(), roomStatusChannel)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		roomMu.Lock()
		for conn := range roomClients {
			// Nếu client lỗi → xoá
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(roomClients, conn)
			}
		}
		roomMu.Unlock()
	}
}
