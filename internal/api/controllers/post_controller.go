package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"newlife/internal/models/request_models"
	"newlife/internal/services"
	"newlife/pkg/utils"
)

type PostController struct {
	postService services.PostServiceInterface
}

func NewPostController(postService services.PostServiceInterface) *PostController {
	return &PostController{postService: postService}
}

// CreatePost godoc
// @Summary Share a post
// @Description Text, images or both; optionally linked to one of your trips
// @Tags Posts
// @Accept json
// @Produce json
// @Param request body request_models.CreatePostRequest true "Post payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts [post]
func (p *PostController) CreatePost(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req request_models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	post, err := p.postService.CreatePost(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, post, "Post created successfully")
}

// UpdatePost godoc
// @Summary Edit a post
// @Tags Posts
// @Accept json
// @Produce json
// @Param postId path string true "Post ID"
// @Param request body request_models.UpdatePostRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts/{postId} [put]
func (p *PostController) UpdatePost(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	postID, ok := pathUUID(c, "postId")
	if !ok {
		return
	}

	var req request_models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	post, err := p.postService.UpdatePost(c.Request.Context(), userID, postID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post updated successfully")
}

// GetPost godoc
// @Summary Get a post
// @Tags Posts
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts/{postId} [get]
func (p *PostController) GetPost(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	postID, ok := pathUUID(c, "postId")
	if !ok {
		return
	}

	post, err := p.postService.GetPost(c.Request.Context(), userID, postID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post fetched successfully")
}

// GetFeed godoc
// @Summary Community feed, newest first
// @Tags Posts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts/feed [get]
func (p *PostController) GetFeed(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	page, pageSize, ok := pagination(c, "20")
	if !ok {
		return
	}

	feed, err := p.postService.GetFeed(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feed, "Feed fetched successfully")
}

// ListSaved godoc
// @Summary Posts I saved
// @Tags Posts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts/saved [get]
func (p *PostController) ListSaved(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	page, pageSize, ok := pagination(c, "20")
	if !ok {
		return
	}

	saved, err := p.postService.ListSaved(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, saved, "Saved posts fetched successfully")
}

// ListUserPosts godoc
// @Summary Posts by one author
// @Tags Posts
// @Produce json
// @Param userId path string true "Author ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/{userId}/posts [get]
func (p *PostController) ListUserPosts(c *gin.Context) {
	viewerID, ok := currentUser(c)
	if !ok {
		return
	}
	authorID, ok := pathUUID(c, "userId")
	if !ok {
		return
	}
	page, pageSize, ok := pagination(c, "20")
	if !ok {
		return
	}

	posts, err := p.postService.ListUserPosts(c.Request.Context(), viewerID, authorID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, posts, "Posts fetched successfully")
}

// ToggleLike godoc
// @Summary Like or unlike a post
// @Tags Posts
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts/{postId}/like [post]
func (p *PostController) ToggleLike(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	postID, ok := pathUUID(c, "postId")
	if !ok {
		return
	}

	state, err := p.postService.ToggleLike(c.Request.Context(), userID, postID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Like toggled")
}

// ToggleSave godoc
// @Summary Save or unsave a post
// @Tags Posts
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts/{postId}/save [post]
func (p *PostController) ToggleSave(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	postID, ok := pathUUID(c, "postId")
	if !ok {
		return
	}

	state, err := p.postService.ToggleSave(c.Request.Context(), userID, postID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Save toggled")
}

// DeletePost godoc
// @Summary Delete a post
// @Tags Posts
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts/{postId} [delete]
func (p *PostController) DeletePost(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	postID, ok := pathUUID(c, "postId")
	if !ok {
		return
	}

	if err := p.postService.DeletePost(c.Request.Context(), userID, postID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Post deleted successfully")
}

// AddComment godoc
// @Summary Comment on a post
// @Tags Comments
// @Accept json
// @Produce json
// @Param postId path string true "Post ID"
// @Param request body request_models.CreateCommentRequest true "Comment payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts/{postId}/comments [post]
func (p *PostController) AddComment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	postID, ok := pathUUID(c, "postId")
	if !ok {
		return
	}

	var req request_models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	comment, err := p.postService.AddComment(c.Request.Context(), userID, postID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, comment, "Comment added successfully")
}

// ListComments godoc
// @Summary Comments on a post, oldest first
// @Tags Comments
// @Produce json
// @Param postId path string true "Post ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(50) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts/{postId}/comments [get]
func (p *PostController) ListComments(c *gin.Context) {
	postID, ok := pathUUID(c, "postId")
	if !ok {
		return
	}
	page, pageSize, ok := pagination(c, "50")
	if !ok {
		return
	}

	comments, err := p.postService.ListComments(c.Request.Context(), postID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comments, "Comments fetched successfully")
}

// DeleteComment godoc
// @Summary Delete a comment
// @Tags Comments
// @Produce json
// @Param postId path string true "Post ID"
// @Param commentId path string true "Comment ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts/{postId}/comments/{commentId} [delete]
func (p *PostController) DeleteComment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	postID, ok := pathUUID(c, "postId")
	if !ok {
		return
	}
	commentID, ok := pathUUID(c, "commentId")
	if !ok {
		return
	}

	if err := p.postService.DeleteComment(c.Request.Context(), userID, postID, commentID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Comment deleted successfully")
}
