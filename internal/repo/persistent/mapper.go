package persistent

import (
	"clipstream/internal/entity"
	"clipstream/pkg/models"
)

func toProfile(m *models.User) *entity.Profile {
	if m == nil || m.ID == "" {
		return nil
	}
	return &entity.Profile{
		ID:        m.ID,
		Username:  m.Username,
		FullName:  m.FullName,
		AvatarURL: m.AvatarURL,
	}
}

func ToUserEntity(m *models.User) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		Username:     m.Username,
		Password:     m.Password,
		FullName:     m.FullName,
		AvatarURL:    m.AvatarURL,
		CoverURL:     m.CoverURL,
		Role:         entity.UserRole(m.Role),
		RefreshToken: m.RefreshToken,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *models.User {
	if e == nil {
		return nil
	}

	return &models.User{
		ID:           e.ID,
		Email:        e.Email,
		Username:     e.Username,
		Password:     e.Password,
		FullName:     e.FullName,
		AvatarURL:    e.AvatarURL,
		CoverURL:     e.CoverURL,
		Role:         models.UserRole(e.Role),
		RefreshToken: e.RefreshToken,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToVideoEntity(m *models.Video) *entity.Video {
	if m == nil {
		return nil
	}

	return &entity.Video{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		Title:        m.Title,
		Description:  m.Description,
		VideoURL:     m.VideoURL,
		ThumbnailURL: m.ThumbnailURL,
		Duration:     m.Duration,
		Views:        m.Views,
		Published:    m.Published,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		Owner:        toProfile(&m.Owner),
	}
}

func ToVideoModel(e *entity.Video) *models.Video {
	if e == nil {
		return nil
	}

	return &models.Video{
		ID:           e.ID,
		OwnerID:      e.OwnerID,
		Title:        e.Title,
		Description:  e.Description,
		VideoURL:     e.VideoURL,
		ThumbnailURL: e.ThumbnailURL,
		Duration:     e.Duration,
		Views:        e.Views,
		Published:    e.Published,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToCommentEntity(m *models.Comment) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		VideoID:   m.VideoID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Owner:     toProfile(&m.Owner),
	}
}

func ToCommentModel(e *entity.Comment) *models.Comment {
	if e == nil {
		return nil
	}

	return &models.Comment{
		ID:      e.ID,
		OwnerID: e.OwnerID,
		VideoID: e.VideoID,
		Content: e.Content,
	}
}

func ToTweetEntity(m *models.Tweet) *entity.Tweet {
	if m == nil {
		return nil
	}

	return &entity.Tweet{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Owner:     toProfile(&m.Owner),
	}
}

func ToTweetModel(e *entity.Tweet) *models.Tweet {
	if e == nil {
		return nil
	}

	return &models.Tweet{
		ID:      e.ID,
		OwnerID: e.OwnerID,
		Content: e.Content,
	}
}

func ToPlaylistEntity(m *models.Playlist) *entity.Playlist {
	if m == nil {
		return nil
	}

	playlist := &entity.Playlist{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Owner:       toProfile(&m.Owner),
	}
	for i := range m.Videos {
		if video := ToVideoEntity(&m.Videos[i].Video); video != nil {
			playlist.Videos = append(playlist.Videos, *video)
		}
	}
	return playlist
}

func ToPlaylistModel(e *entity.Playlist) *models.Playlist {
	if e == nil {
		return nil
	}

	return &models.Playlist{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		Name:        e.Name,
		Description: e.Description,
	}
}

func ToLikeEntity(m *models.Like) *entity.Like {
	if m == nil {
		return nil
	}

	return &entity.Like{
		ID:     m.ID,
		UserID: m.UserID,
		Target: entity.LikeTarget{
			Kind: entity.TargetKind(m.TargetKind),
			ID:   m.TargetID,
		},
		CreatedAt: m.CreatedAt,
	}
}

func ToSubscriptionEntity(m *models.Subscription) *entity.Subscription {
	if m == nil {
		return nil
	}

	return &entity.Subscription{
		ID:           m.ID,
		SubscriberID: m.SubscriberID,
		ChannelID:    m.ChannelID,
		CreatedAt:    m.CreatedAt,
		Channel:      toProfile(&m.Channel),
		Subscriber:   toProfile(&m.Subscriber),
	}
}
