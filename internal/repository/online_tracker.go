package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	onlineUsersKey = "portal:online_users"
	onlineWindow   = 5 * time.Minute
)

// OnlineTracker keeps a redis sorted set of recently active users, scored by
// their last request timestamp. It backs the dashboard's activeUsers figure.
type OnlineTracker struct {
	Redis *redis.Client
}

func NewOnlineTracker(rdb *redis.Client) *OnlineTracker {
	return &OnlineTracker{Redis: rdb}
}

func (t *OnlineTracker) MarkOnline(ctx context.Context, userID uint) error {
	now := time.Now()
	member := strconv.FormatUint(uint64(userID), 10)

	pipe := t.Redis.Pipeline()
	pipe.ZAdd(ctx, onlineUsersKey, &redis.Z{Score: float64(now.Unix()), Member: member})
	pipe.ZRemRangeByScore(ctx, onlineUsersKey, "0", strconv.FormatInt(now.Add(-onlineWindow).Unix(), 10))
	pipe.Expire(ctx, onlineUsersKey, onlineWindow)
	_, err := pipe.Exec(ctx)
	return err
}

func (t *OnlineTracker) CountOnline(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-onlineWindow).Unix()
	count, err := t.Redis.ZCount(ctx, onlineUsersKey, strconv.FormatInt(cutoff, 10), "+inf").Result()
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
