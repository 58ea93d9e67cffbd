package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ForumController struct {
	Forum *services.ForumService
}

func NewForumController(f *services.ForumService) *ForumController {
	return &ForumController{Forum: f}
}

func (fc *ForumController) CreatePost(c *gin.Context) {
	uid := c.GetUint("userID")
	var in services.PostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post, err := fc.Forum.CreatePost(uid, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// GET /forum/posts?category=motivation — posts are readable by everyone.
func (fc *ForumController) ListPosts(c *gin.Context) {
	posts, err := fc.Forum.ListPosts(c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (fc *ForumController) GetPost(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	post, err := fc.Forum.GetPost(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (fc *ForumController) UpdatePost(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in services.PostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post, err := fc.Forum.UpdatePost(uid, id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (fc *ForumController) DeletePost(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := fc.Forum.DeletePost(uid, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (fc *ForumController) LikePost(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := fc.Forum.LikePost(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "liked"})
}

func (fc *ForumController) AddComment(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var body struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	comment, err := fc.Forum.AddComment(uid, id, body.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (fc *ForumController) ListComments(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	comments, err := fc.Forum.ListComments(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}
