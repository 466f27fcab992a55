package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// ConnectRedis khởi tạo Redis cho rate limit và pub/sub trạng thái phòng.
// Kết nối thất bại thì RedisClient = nil, các tính năng dùng Redis tự tắt.
func ConnectRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Không kết nối được Redis (%s), tắt rate limit và realtime: %v", addr, err)
		RedisClient = nil
		return
	}

	RedisClient = client
	log.Println("Connection Opened to Redis")
}
