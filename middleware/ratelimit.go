package middleware

import (
	"context"
	"fmt"
	"log"
	"time"

	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// RateLimit giới hạn số request trên mỗi IP theo cửa sổ cố định bằng Redis
// INCR + EXPIRE. rdb nil thì bỏ qua (Redis không bắt buộc để chạy app).
func RateLimit(rdb *redis.Client, maxRequests int, window time.Duration) fiber.Handler {
	if rdb == nil {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	return func(c *fiber.Ctx) error {
		key := fmt.Sprintf("ratelimit:%s:%s", c.Path(), c.IP())
		ctx := context.Background()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			// Redis lỗi thì cho qua, không chặn nghiệp vụ
			log.Printf("Lỗi rate limit redis: %v", err)
			return c.Next()
		}
		if count == 1 {
			rdb.Expire(ctx, key, window)
		}

		if count > int64(maxRequests) {
			ttl, _ := rdb.TTL(ctx, key).Result()
			c.Set("Retry-After", fmt.Sprintf("%d", int(ttl.Seconds())))
			return utils.ErrorResponse(c, fiber.StatusTooManyRequests, "Quá nhiều yêu cầu, vui lòng thử lại sau", nil)
		}

		return c.Next()
	}
}
