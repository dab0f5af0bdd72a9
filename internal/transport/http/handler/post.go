package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"miniblog/internal/app"
	"miniblog/internal/transport/http/middleware"
)

type PostHandler struct {
	postService *app.PostService
}

type PostForm struct {
	Title string `form:"title" binding:"required,max=50"`
	Body  string `form:"body" binding:"required,max=300"`
	Tags  string `form:"tags" binding:"max=200"`
}

func NewPostHandler(postService *app.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) Index(c *gin.Context) {
	posts, err := h.postService.List()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "index.html", gin.H{
			"Error": "could not load posts",
		})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Posts":    posts,
		"Username": middleware.CurrentUsername(c),
		"Error":    c.Query("error"),
	})
}

func (h *PostHandler) CreatePage(c *gin.Context) {
	c.HTML(http.StatusOK, "create.html", gin.H{
		"Username": middleware.CurrentUsername(c),
		"Title":    "",
		"Body":     "",
		"Tags":     "",
	})
}

func (h *PostHandler) Create(c *gin.Context) {
	var form PostForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "create.html", gin.H{
			"Error":    "title and body are required",
			"Title":    form.Title,
			"Body":     form.Body,
			"Tags":     form.Tags,
			"Username": middleware.CurrentUsername(c),
		})
		return
	}

	_, err := h.postService.Create(app.CreatePostInput{
		UserID: middleware.CurrentUserID(c),
		Title:  form.Title,
		Body:   form.Body,
		Tags:   form.Tags,
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidInput) {
			c.HTML(http.StatusBadRequest, "create.html", gin.H{
				"Error":    "title and body are required",
				"Title":    form.Title,
				"Body":     form.Body,
				"Tags":     form.Tags,
				"Username": middleware.CurrentUsername(c),
			})
			return
		}
		c.HTML(http.StatusInternalServerError, "create.html", gin.H{
			"Error":    "could not create post",
			"Title":    form.Title,
			"Body":     form.Body,
			"Tags":     form.Tags,
			"Username": middleware.CurrentUsername(c),
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *PostHandler) UpdatePage(c *gin.Context) {
	postID, ok := h.postID(c)
	if !ok {
		return
	}

	post, err := h.postService.GetForEdit(middleware.CurrentUserID(c), postID)
	if err != nil {
		h.handleEditError(c, err)
		return
	}

	c.HTML(http.StatusOK, "update.html", gin.H{
		"Post":     post,
		"Username": middleware.CurrentUsername(c),
	})
}

func (h *PostHandler) Update(c *gin.Context) {
	postID, ok := h.postID(c)
	if !ok {
		return
	}

	// No binding here: the service checks ownership before validating, so a
	// non-owner is redirected away whatever the form contains.
	err := h.postService.Update(app.UpdatePostInput{
		UserID: middleware.CurrentUserID(c),
		PostID: postID,
		Title:  c.PostForm("title"),
		Body:   c.PostForm("body"),
	})
	if err != nil {
		h.handleEditError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *PostHandler) Delete(c *gin.Context) {
	postID, ok := h.postID(c)
	if !ok {
		return
	}

	if err := h.postService.Delete(middleware.CurrentUserID(c), postID); err != nil {
		h.handleEditError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *PostHandler) postID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"Message": "post not found",
		})
		return 0, false
	}
	return uint(id), true
}

func (h *PostHandler) handleEditError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app.ErrNotOwner):
		q := url.Values{"error": {"access denied"}}
		c.Redirect(http.StatusSeeOther, "/?"+q.Encode())
	case errors.Is(err, app.ErrPostNotFound):
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"Message": "post not found",
		})
	case errors.Is(err, app.ErrInvalidInput):
		c.HTML(http.StatusBadRequest, "error.html", gin.H{
			"Message": "title and body are required",
		})
	default:
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"Message": "something went wrong",
		})
	}
}
