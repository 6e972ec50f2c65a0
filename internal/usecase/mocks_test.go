package usecase

import (
	"time"

	"clipstream/internal/entity"
	"clipstream/internal/repo/persistent"
	"clipstream/pkg/logger"
	"clipstream/pkg/pagination"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

func newTestLogger() *logger.Logger {
	return logger.New()
}

// newTestRedisClient points at a closed port; cache calls fail and the
// use cases fall back to the store.
func newTestRedisClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 10 * time.Millisecond,
		MaxRetries:  -1,
	})
}

type MockUserRepository struct {
	mock.Mock
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(userID, refreshToken string) error {
	args := m.Called(userID, refreshToken)
	return args.Error(0)
}

func (m *MockUserRepository) Exists(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

type MockVideoRepository struct {
	mock.Mock
}

var _ persistent.VideoRepository = (*MockVideoRepository)(nil)

func (m *MockVideoRepository) Create(video *entity.Video) error {
	args := m.Called(video)
	return args.Error(0)
}

func (m *MockVideoRepository) GetByID(id string) (*entity.Video, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) List(filter persistent.VideoFilter, p pagination.Params) ([]*entity.Video, int64, error) {
	args := m.Called(filter, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Video), args.Get(1).(int64), args.Error(2)
}

func (m *MockVideoRepository) Update(video *entity.Video) error {
	args := m.Called(video)
	return args.Error(0)
}

func (m *MockVideoRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockVideoRepository) Exists(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockVideoRepository) IncrementViews(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockVideoRepository) SetPublished(id string, published bool) error {
	args := m.Called(id, published)
	return args.Error(0)
}

func (m *MockVideoRepository) CountByOwner(ownerID string) (int64, error) {
	args := m.Called(ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepository) SumViewsByOwner(ownerID string) (int64, error) {
	args := m.Called(ownerID)
	return args.Get(0).(int64), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

var _ persistent.CommentRepository = (*MockCommentRepository)(nil)

func (m *MockCommentRepository) Create(comment *entity.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(id string) (*entity.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByVideo(videoID string, p pagination.Params) ([]*entity.Comment, int64, error) {
	args := m.Called(videoID, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepository) Update(comment *entity.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCommentRepository) Exists(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

type MockTweetRepository struct {
	mock.Mock
}

var _ persistent.TweetRepository = (*MockTweetRepository)(nil)

func (m *MockTweetRepository) Create(tweet *entity.Tweet) error {
	args := m.Called(tweet)
	return args.Error(0)
}

func (m *MockTweetRepository) GetByID(id string) (*entity.Tweet, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tweet), args.Error(1)
}

func (m *MockTweetRepository) List(query, ownerID string, p pagination.Params) ([]*entity.Tweet, int64, error) {
	args := m.Called(query, ownerID, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Tweet), args.Get(1).(int64), args.Error(2)
}

func (m *MockTweetRepository) Update(tweet *entity.Tweet) error {
	args := m.Called(tweet)
	return args.Error(0)
}

func (m *MockTweetRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTweetRepository) Exists(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

type MockLikeRepository struct {
	mock.Mock
}

var _ persistent.LikeRepository = (*MockLikeRepository)(nil)

func (m *MockLikeRepository) Toggle(userID string, target entity.LikeTarget) (bool, *entity.Like, error) {
	args := m.Called(userID, target)
	if args.Get(1) == nil {
		return args.Bool(0), nil, args.Error(2)
	}
	return args.Bool(0), args.Get(1).(*entity.Like), args.Error(2)
}

func (m *MockLikeRepository) IsLiked(userID string, target entity.LikeTarget) (bool, error) {
	args := m.Called(userID, target)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) Count(target entity.LikeTarget) (int64, error) {
	args := m.Called(target)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) ListLikedVideos(userID string, p pagination.Params) ([]*entity.Video, int64, error) {
	args := m.Called(userID, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Video), args.Get(1).(int64), args.Error(2)
}

func (m *MockLikeRepository) CountForOwnerVideos(ownerID string) (int64, error) {
	args := m.Called(ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) DeleteForTarget(target entity.LikeTarget) error {
	args := m.Called(target)
	return args.Error(0)
}

type MockSubscriptionRepository struct {
	mock.Mock
}

var _ persistent.SubscriptionRepository = (*MockSubscriptionRepository)(nil)

func (m *MockSubscriptionRepository) Toggle(subscriberID, channelID string) (bool, *entity.Subscription, error) {
	args := m.Called(subscriberID, channelID)
	if args.Get(1) == nil {
		return args.Bool(0), nil, args.Error(2)
	}
	return args.Bool(0), args.Get(1).(*entity.Subscription), args.Error(2)
}

func (m *MockSubscriptionRepository) IsSubscribed(subscriberID, channelID string) (bool, error) {
	args := m.Called(subscriberID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) CountSubscribers(channelID string) (int64, error) {
	args := m.Called(channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) ListChannels(subscriberID string, p pagination.Params) ([]*entity.Subscription, int64, error) {
	args := m.Called(subscriberID, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Subscription), args.Get(1).(int64), args.Error(2)
}

func (m *MockSubscriptionRepository) ListSubscribers(channelID string, p pagination.Params) ([]*entity.Subscription, int64, error) {
	args := m.Called(channelID, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Subscription), args.Get(1).(int64), args.Error(2)
}

type MockPlaylistRepository struct {
	mock.Mock
}

var _ persistent.PlaylistRepository = (*MockPlaylistRepository)(nil)

func (m *MockPlaylistRepository) Create(playlist *entity.Playlist) error {
	args := m.Called(playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) GetByID(id string) (*entity.Playlist, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) ListByOwner(ownerID string, p pagination.Params) ([]*entity.Playlist, int64, error) {
	args := m.Called(ownerID, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Playlist), args.Get(1).(int64), args.Error(2)
}

func (m *MockPlaylistRepository) Update(playlist *entity.Playlist) error {
	args := m.Called(playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPlaylistRepository) Exists(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlaylistRepository) AddVideo(playlistID, videoID string) (bool, error) {
	args := m.Called(playlistID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlaylistRepository) RemoveVideo(playlistID, videoID string) (bool, error) {
	args := m.Called(playlistID, videoID)
	return args.Bool(0), args.Error(1)
}
