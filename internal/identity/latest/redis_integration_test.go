//go:build integration

package latest_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/identity/latest"
	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/identity/models"
	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/pkg/platform/sentinel"
	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/pkg/testutil/containers"
)

type RedisMirrorSuite struct {
	suite.Suite
	redis *containers.RedisContainer
}

func TestRedisMirrorSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisMirrorSuite))
}

func (s *RedisMirrorSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
}

func (s *RedisMirrorSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisMirrorSuite) TestLastWithoutPublish() {
	mirror := latest.NewRedisMirror(s.redis.Client)

	_, _, err := mirror.Last(context.Background())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *RedisMirrorSuite) TestPublishThenLast() {
	ctx := context.Background()
	mirror := latest.NewRedisMirror(s.redis.Client)

	record := &models.Record{
		UUID:      uuid.NewString(),
		EventType: models.EventTypeLogin,
		Comment:   "session opened",
		CreatedAt: time.Now().UTC(),
		CreatedBy: 7,
	}
	s.Require().NoError(mirror.Publish(ctx, record))

	got, eventType, err := mirror.Last(ctx)
	s.Require().NoError(err)
	s.Equal(record.UUID, got)
	s.Equal(models.EventTypeLogin, eventType)
}

func (s *RedisMirrorSuite) TestLastWriteWins() {
	ctx := context.Background()
	mirror := latest.NewRedisMirror(s.redis.Client)

	first := &models.Record{UUID: uuid.NewString(), EventType: models.EventTypeCreated, CreatedAt: time.Now().UTC()}
	second := &models.Record{UUID: uuid.NewString(), EventType: models.EventTypeDeleted, CreatedAt: time.Now().UTC()}
	s.Require().NoError(mirror.Publish(ctx, first))
	s.Require().NoError(mirror.Publish(ctx, second))

	got, eventType, err := mirror.Last(ctx)
	s.Require().NoError(err)
	s.Equal(second.UUID, got)
	s.Equal(models.EventTypeDeleted, eventType)
}

func (s *RedisMirrorSuite) TestCustomKeyAndTTL() {
	ctx := context.Background()
	mirror := latest.NewRedisMirror(s.redis.Client, latest.WithKey("identity:latest:test"), latest.WithTTL(time.Minute))

	record := &models.Record{UUID: uuid.NewString(), EventType: models.EventTypeCustom, CreatedAt: time.Now().UTC()}
	s.Require().NoError(mirror.Publish(ctx, record))

	ttl, err := s.redis.Client.TTL(ctx, "identity:latest:test").Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
	s.LessOrEqual(ttl, time.Minute)
}
