package main

import (
	"fmt"

	"clipstream/pkg/config"
	"clipstream/pkg/database"
	"clipstream/pkg/logger"
	"clipstream/pkg/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		email    string
		username string
		password string
		fullName string
	}{
		{"alice@test.com", "alice_clips", "password123", "Alice"},
		{"bob@test.com", "bob_clips", "password123", "Bob"},
		{"charlie@test.com", "charlie_clips", "password123", "Charlie"},
		{"diana@test.com", "diana_clips", "password123", "Diana"},
		{"eve@test.com", "eve_clips", "password123", "Eve"},
	}

	userIDs := make([]string, 0, len(testUsers))

	for _, userData := range testUsers {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)

		user := &models.User{
			Email:    userData.email,
			Username: userData.username,
			Password: string(hashedPassword),
			FullName: userData.fullName,
			Role:     models.RoleUser,
		}

		if err := user.BeforeCreate(nil); err != nil {
			return fmt.Errorf("failed to generate user ID: %w", err)
		}

		var existingUser models.User
		result := db.Where("email = ? OR username = ?", user.Email, user.Username).First(&existingUser)
		if result.Error == nil {
			log.Info("User %s already exists, skipping", user.Username)
			userIDs = append(userIDs, existingUser.ID)
			continue
		}

		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", user.Username, err)
			continue
		}

		log.Info("Created user: %s (%s)", user.Username, user.Email)
		userIDs = append(userIDs, user.ID)
	}

	if len(userIDs) < 2 {
		return fmt.Errorf("not enough users to seed content")
	}

	videoTitles := []string{
		"Getting started with Go",
		"My first vlog",
		"Speedrun highlights",
		"Cooking pasta from scratch",
		"City cycling POV",
	}

	videoIDs := make([]string, 0, len(videoTitles))
	for i, title := range videoTitles {
		owner := userIDs[i%len(userIDs)]
		video := &models.Video{
			OwnerID:      owner,
			Title:        title,
			Description:  "Seeded demo video",
			VideoURL:     fmt.Sprintf("https://cdn.example.com/videos/demo-%d.mp4", i+1),
			ThumbnailURL: fmt.Sprintf("https://cdn.example.com/thumbnails/demo-%d.jpg", i+1),
			Duration:     60 * (i + 2),
			Published:    true,
		}
		if err := video.BeforeCreate(nil); err != nil {
			return fmt.Errorf("failed to generate video ID: %w", err)
		}

		var existing models.Video
		if db.Where("owner_id = ? AND title = ?", owner, title).First(&existing).Error == nil {
			log.Info("Video %q already exists, skipping", title)
			videoIDs = append(videoIDs, existing.ID)
			continue
		}

		if err := db.Create(video).Error; err != nil {
			log.Error("Failed to create video %q: %v", title, err)
			continue
		}
		log.Info("Created video: %s", title)
		videoIDs = append(videoIDs, video.ID)
	}

	// Everyone subscribes to the first user's channel.
	for _, subscriberID := range userIDs[1:] {
		sub := &models.Subscription{
			SubscriberID: subscriberID,
			ChannelID:    userIDs[0],
		}
		if err := sub.BeforeCreate(nil); err != nil {
			return fmt.Errorf("failed to generate subscription ID: %w", err)
		}

		var existing models.Subscription
		if db.Where("subscriber_id = ? AND channel_id = ?", subscriberID, userIDs[0]).First(&existing).Error == nil {
			continue
		}
		if err := db.Create(sub).Error; err != nil {
			log.Error("Failed to create subscription: %v", err)
		}
	}

	// A few likes and comments on the first video.
	if len(videoIDs) > 0 {
		for _, userID := range userIDs[1:3] {
			like := &models.Like{
				UserID:     userID,
				TargetKind: "video",
				TargetID:   videoIDs[0],
			}
			if err := like.BeforeCreate(nil); err != nil {
				return fmt.Errorf("failed to generate like ID: %w", err)
			}

			var existing models.Like
			if db.Where("user_id = ? AND target_kind = ? AND target_id = ?", userID, "video", videoIDs[0]).First(&existing).Error == nil {
				continue
			}
			if err := db.Create(like).Error; err != nil {
				log.Error("Failed to create like: %v", err)
			}
		}

		comment := &models.Comment{
			OwnerID: userIDs[1],
			VideoID: videoIDs[0],
			Content: "Great video!",
		}
		if err := comment.BeforeCreate(nil); err != nil {
			return fmt.Errorf("failed to generate comment ID: %w", err)
		}
		if err := db.Create(comment).Error; err != nil {
			log.Error("Failed to create comment: %v", err)
		}
	}

	tweet := &models.Tweet{
		OwnerID: userIDs[0],
		Content: "Just uploaded a new video, check it out!",
	}
	if err := tweet.BeforeCreate(nil); err != nil {
		return fmt.Errorf("failed to generate tweet ID: %w", err)
	}
	if err := db.Create(tweet).Error; err != nil {
		log.Error("Failed to create tweet: %v", err)
	}

	return nil
}
