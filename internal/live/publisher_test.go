package live

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisPublisher_Publish(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	pub := NewRedisPublisher(rdb)

	ev := Event{Type: "menu.updated", ID: "m-1", At: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	payload, err := json.Marshal(ev)
	assert.NoError(t, err)

	mock.ExpectPublish("live:t1:menus", string(payload)).SetVal(1)

	assert.NoError(t, pub.Publish(context.Background(), "t1", ChannelMenus, ev))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisPublisher_PublishError(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	pub := NewRedisPublisher(rdb)

	ev := Event{Type: "table.updated", At: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	payload, _ := json.Marshal(ev)
	mock.ExpectPublish("live:t1:tables", string(payload)).SetErr(errors.New("redis down"))

	err := pub.Publish(context.Background(), "t1", ChannelTables, ev)
	assert.EqualError(t, err, "redis down")
}
