package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"miniblog/internal/model"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create persists the post and its tags in one transaction, so a tag failure
// never leaves a half-tagged post behind. Tags are get-or-created by name.
func (r *PostRepository) Create(post *model.Post, tagNames []string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		if len(tagNames) == 0 {
			return nil
		}

		tags := make([]model.Tag, 0, len(tagNames))
		for _, name := range tagNames {
			var tag model.Tag
			if err := tx.Where(model.Tag{Name: name}).FirstOrCreate(&tag).Error; err != nil {
				return err
			}
			tags = append(tags, tag)
		}
		if err := tx.Model(post).Association("Tags").Replace(tags); err != nil {
			return err
		}
		post.Tags = tags
		return nil
	})
	if err != nil {
		return fmt.Errorf("create post failed: %w", err)
	}
	return nil
}

// ListAll returns every post with its author and tags, primary key ascending.
func (r *PostRepository) ListAll() ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.Preload("Author").Preload("Tags").Order("id ASC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts failed: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) GetByID(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.Preload("Author").Preload("Tags").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query post by id failed: %w", err)
	}
	return &post, nil
}

// UpdateContent overwrites title and body only; owner and timestamp stay put.
func (r *PostRepository) UpdateContent(id uint, title, body string) error {
	err := r.db.Model(&model.Post{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title": title,
		"body":  body,
	}).Error
	if err != nil {
		return fmt.Errorf("update post failed: %w", err)
	}
	return nil
}

func (r *PostRepository) Delete(id uint) error {
	if err := r.db.Select("Tags").Delete(&model.Post{ID: id}).Error; err != nil {
		return fmt.Errorf("delete post failed: %w", err)
	}
	return nil
}
