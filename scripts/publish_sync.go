// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type AttractionSyncEvent struct {
	RequestID    uuid.UUID `json:"request_id"`
	AttractionID int64     `json:"attraction_id"`
	Force        bool      `json:"force,omitempty"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	attractionID := flag.Int64("attraction", 1, "Attraction ID to sync")
	force := flag.Bool("force", false, "Bypass the sync cache")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := AttractionSyncEvent{
		RequestID:    uuid.New(),
		AttractionID: *attractionID,
		Force:        *force,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:attraction:sync",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Published sync event %s for attraction %d (message %s)\n",
		event.RequestID, event.AttractionID, result)
	fmt.Println("Watch stream:attraction:synced for the result")
}
