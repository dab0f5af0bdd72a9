package app

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"miniblog/internal/model"
	"miniblog/internal/repository"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotOwner     = errors.New("not the owner of this post")
)

// Bounds count characters, not bytes, matching the column sizes.
const (
	maxTitleLen = 50
	maxBodyLen  = 300
)

type PostService struct {
	postRepo *repository.PostRepository
	location *time.Location
}

type CreatePostInput struct {
	UserID uint
	Title  string
	Body   string
	// Tags is an optional comma-separated list from the create form.
	Tags string
}

type UpdatePostInput struct {
	UserID uint
	PostID uint
	Title  string
	Body   string
}

func NewPostService(postRepo *repository.PostRepository, location *time.Location) *PostService {
	if location == nil {
		location = time.UTC
	}
	return &PostService{
		postRepo: postRepo,
		location: location,
	}
}

func (s *PostService) Create(input CreatePostInput) (*model.Post, error) {
	title := strings.TrimSpace(input.Title)
	body := strings.TrimSpace(input.Body)
	if input.UserID == 0 || title == "" || body == "" ||
		utf8.RuneCountInString(title) > maxTitleLen || utf8.RuneCountInString(body) > maxBodyLen {
		return nil, ErrInvalidInput
	}

	post := &model.Post{
		UserID:    input.UserID,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().In(s.location),
	}
	if err := s.postRepo.Create(post, parseTagNames(input.Tags)); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) List() ([]model.Post, error) {
	return s.postRepo.ListAll()
}

// GetForEdit returns the post for the edit form, enforcing ownership.
func (s *PostService) GetForEdit(userID, postID uint) (*model.Post, error) {
	if userID == 0 || postID == 0 {
		return nil, ErrInvalidInput
	}
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.UserID != userID {
		return nil, ErrNotOwner
	}
	return post, nil
}

func (s *PostService) Update(input UpdatePostInput) error {
	// Ownership first: a non-owner gets the access-denied path no matter
	// what the form contains.
	post, err := s.GetForEdit(input.UserID, input.PostID)
	if err != nil {
		return err
	}

	title := strings.TrimSpace(input.Title)
	body := strings.TrimSpace(input.Body)
	if title == "" || body == "" ||
		utf8.RuneCountInString(title) > maxTitleLen || utf8.RuneCountInString(body) > maxBodyLen {
		return ErrInvalidInput
	}

	return s.postRepo.UpdateContent(post.ID, title, body)
}

func (s *PostService) Delete(userID, postID uint) error {
	post, err := s.GetForEdit(userID, postID)
	if err != nil {
		return err
	}
	return s.postRepo.Delete(post.ID)
}

func parseTagNames(raw string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
