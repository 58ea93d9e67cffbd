package services

import (
	"errors"
	"strings"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

type ForumService struct {
	db *gorm.DB
}

func NewForumService(db *gorm.DB) *ForumService {
	return &ForumService{db: db}
}

type PostInput struct {
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body" binding:"required"`
	Category string `json:"category" binding:"omitempty,oneof=general nutrition training motivation"`
}

func authorName(userID uint) string {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return "member"
	}
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if name == "" {
		return "member"
	}
	return name
}

func (s *ForumService) CreatePost(userID uint, in PostInput) (*models.ForumPost, error) {
	post := models.ForumPost{
		UserID:     userID,
		AuthorName: authorName(userID),
		Title:      in.Title,
		Body:       in.Body,
		Category:   in.Category,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Posts are publicly readable by any authenticated user.
func (s *ForumService) GetPost(id uint) (*models.ForumPost, error) {
	var post models.ForumPost
	err := s.db.
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (s *ForumService) ListPosts(category string) ([]models.ForumPost, error) {
	q := s.db.Order("created_at DESC").Limit(100)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var posts []models.ForumPost
	err := q.Find(&posts).Error
	return posts, err
}

// Only the author may edit or delete a post.
func (s *ForumService) UpdatePost(userID, id uint, in PostInput) (*models.ForumPost, error) {
	var post models.ForumPost
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	post.Title = in.Title
	post.Body = in.Body
	post.Category = in.Category
	if err := s.db.Save(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *ForumService) DeletePost(userID, id uint) error {
	var post models.ForumPost
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("forum_post_id = ?", post.ID).Delete(&models.ForumComment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}

func (s *ForumService) LikePost(id uint) error {
	res := s.db.Model(&models.ForumPost{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ForumService) AddComment(userID, postID uint, body string) (*models.ForumComment, error) {
	if _, err := s.GetPost(postID); err != nil {
		return nil, err
	}
	comment := models.ForumComment{
		ForumPostID: postID,
		UserID:      userID,
		AuthorName:  authorName(userID),
		Body:        body,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *ForumService) ListComments(postID uint) ([]models.ForumComment, error) {
	var comments []models.ForumComment
	err := s.db.
		Where("forum_post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}
