package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"newlife/internal/models/db_models"
	"newlife/internal/models/request_models"
	resp "newlife/internal/models/response_models"
	"newlife/internal/repositories"
	"newlife/pkg/utils"
)

const maxPostImages = 10

type PostServiceInterface interface {
	CreatePost(ctx context.Context, userID uuid.UUID, request request_models.CreatePostRequest) (*resp.PostResponse, error)
	UpdatePost(ctx context.Context, userID, postID uuid.UUID, request request_models.UpdatePostRequest) (*resp.PostResponse, error)
	GetPost(ctx context.Context, viewerID, postID uuid.UUID) (*resp.PostResponse, error)
	GetFeed(ctx context.Context, viewerID uuid.UUID, page, pageSize int) (*resp.PaginatedPosts, error)
	ListUserPosts(ctx context.Context, viewerID, authorID uuid.UUID, page, pageSize int) (*resp.PaginatedPosts, error)
	ListSaved(ctx context.Context, viewerID uuid.UUID, page, pageSize int) (*resp.PaginatedPosts, error)
	ToggleLike(ctx context.Context, userID, postID uuid.UUID) (*resp.ToggleResponse, error)
	ToggleSave(ctx context.Context, userID, postID uuid.UUID) (*resp.ToggleResponse, error)
	DeletePost(ctx context.Context, userID, postID uuid.UUID) error
	AddComment(ctx context.Context, userID, postID uuid.UUID, request request_models.CreateCommentRequest) (*resp.CommentResponse, error)
	ListComments(ctx context.Context, postID uuid.UUID, page, pageSize int) ([]resp.CommentResponse, error)
	DeleteComment(ctx context.Context, userID, postID, commentID uuid.UUID) error
}

type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepositoryInterface
	accountRepo repositories.AccountRepository
	trips       TripServiceInterface
	logger      *zap.Logger
}

func NewPostService(
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepositoryInterface,
	accountRepo repositories.AccountRepository,
	trips TripServiceInterface,
	logger *zap.Logger,
) PostServiceInterface {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		accountRepo: accountRepo,
		trips:       trips,
		logger:      logger,
	}
}

func validatePage(page, pageSize int) error {
	if page < 1 {
		return utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return utils.ErrInvalidPageSize
	}
	return nil
}

func validatePostBody(content string, images []string) error {
	if content == "" && len(images) == 0 {
		return utils.ErrInvalidInput
	}
	if len(images) > maxPostImages {
		return utils.ErrInvalidInput
	}
	return nil
}

func (s *PostService) CreatePost(ctx context.Context, userID uuid.UUID, request request_models.CreatePostRequest) (*resp.PostResponse, error) {
	content := strings.TrimSpace(request.Content)
	images := cleanList(request.Images)
	if err := validatePostBody(content, images); err != nil {
		return nil, err
	}

	post := &db_models.Post{
		UserID:   userID,
		Content:  content,
		Images:   images,
		Location: strings.TrimSpace(request.Location),
	}

	if request.TripID != "" {
		tripID, err := uuid.Parse(request.TripID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		// only your own trips can be attached
		if _, err := s.trips.OwnedTrip(ctx, userID, tripID); err != nil {
			return nil, err
		}
		post.TripID = &tripID
	}

	author, err := s.accountRepo.FindById(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if author == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	post.Author = *author
	return toPostResponse(post, false, false), nil
}

func (s *PostService) ownedPost(ctx context.Context, userID, postID uuid.UUID) (*db_models.Post, error) {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !db_models.IsOwnedBy(post.UserID, userID) {
		return nil, utils.ErrForbidden
	}
	return post, nil
}

func (s *PostService) findPost(ctx context.Context, postID uuid.UUID) (*db_models.Post, error) {
	post, err := s.postRepo.FindById(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}
	return post, nil
}

func (s *PostService) UpdatePost(ctx context.Context, userID, postID uuid.UUID, request request_models.UpdatePostRequest) (*resp.PostResponse, error) {
	post, err := s.ownedPost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	if request.Content != nil {
		post.Content = strings.TrimSpace(*request.Content)
	}
	if request.Images != nil {
		post.Images = cleanList(*request.Images)
	}
	if request.Location != nil {
		post.Location = strings.TrimSpace(*request.Location)
	}
	if err := validatePostBody(post.Content, post.Images); err != nil {
		return nil, err
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return s.decorateOne(ctx, userID, post)
}

func (s *PostService) GetPost(ctx context.Context, viewerID, postID uuid.UUID) (*resp.PostResponse, error) {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return s.decorateOne(ctx, viewerID, post)
}

func (s *PostService) decorateOne(ctx context.Context, viewerID uuid.UUID, post *db_models.Post) (*resp.PostResponse, error) {
	items, err := s.decorate(ctx, viewerID, []db_models.Post{*post})
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

func (s *PostService) GetFeed(ctx context.Context, viewerID uuid.UUID, page, pageSize int) (*resp.PaginatedPosts, error) {
	if err := validatePage(page, pageSize); err != nil {
		return nil, err
	}
	posts, total, err := s.postRepo.ListFeed(ctx, page, pageSize)
	return s.paginated(ctx, viewerID, posts, total, err, page, pageSize)
}

func (s *PostService) ListUserPosts(ctx context.Context, viewerID, authorID uuid.UUID, page, pageSize int) (*resp.PaginatedPosts, error) {
	if err := validatePage(page, pageSize); err != nil {
		return nil, err
	}
	posts, total, err := s.postRepo.ListByUser(ctx, authorID, page, pageSize)
	return s.paginated(ctx, viewerID, posts, total, err, page, pageSize)
}

func (s *PostService) ListSaved(ctx context.Context, viewerID uuid.UUID, page, pageSize int) (*resp.PaginatedPosts, error) {
	if err := validatePage(page, pageSize); err != nil {
		return nil, err
	}
	posts, total, err := s.postRepo.ListSavedBy(ctx, viewerID, page, pageSize)
	return s.paginated(ctx, viewerID, posts, total, err, page, pageSize)
}

func (s *PostService) paginated(ctx context.Context, viewerID uuid.UUID, posts []db_models.Post, total int64, listErr error, page, pageSize int) (*resp.PaginatedPosts, error) {
	if listErr != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, listErr)
	}
	items, err := s.decorate(ctx, viewerID, posts)
	if err != nil {
		return nil, err
	}
	return &resp.PaginatedPosts{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

// decorate marks which posts the viewer liked or saved.
func (s *PostService) decorate(ctx context.Context, viewerID uuid.UUID, posts []db_models.Post) ([]resp.PostResponse, error) {
	ids := make([]uuid.UUID, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}

	liked, err := s.postRepo.LikedPostIDs(ctx, viewerID, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	saved, err := s.postRepo.SavedPostIDs(ctx, viewerID, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]resp.PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, *toPostResponse(&posts[i], liked[posts[i].ID], saved[posts[i].ID]))
	}
	return out, nil
}

func (s *PostService) ToggleLike(ctx context.Context, userID, postID uuid.UUID) (*resp.ToggleResponse, error) {
	if _, err := s.findPost(ctx, postID); err != nil {
		return nil, err
	}
	liked, count, err := s.postRepo.ToggleLike(ctx, userID, postID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return &resp.ToggleResponse{PostID: postID, Active: liked, Count: count}, nil
}

func (s *PostService) ToggleSave(ctx context.Context, userID, postID uuid.UUID) (*resp.ToggleResponse, error) {
	if _, err := s.findPost(ctx, postID); err != nil {
		return nil, err
	}
	saved, err := s.postRepo.ToggleSave(ctx, userID, postID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return &resp.ToggleResponse{PostID: postID, Active: saved}, nil
}

func (s *PostService) DeletePost(ctx context.Context, userID, postID uuid.UUID) error {
	if _, err := s.ownedPost(ctx, userID, postID); err != nil {
		return err
	}
	if err := s.postRepo.DeleteCascade(ctx, postID); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *PostService) AddComment(ctx context.Context, userID, postID uuid.UUID, request request_models.CreateCommentRequest) (*resp.CommentResponse, error) {
	content := strings.TrimSpace(request.Content)
	if content == "" {
		return nil, utils.ErrInvalidInput
	}
	if _, err := s.findPost(ctx, postID); err != nil {
		return nil, err
	}

	author, err := s.accountRepo.FindById(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if author == nil {
		return nil, utils.ErrAccountNotFound
	}

	comment := &db_models.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}
	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	comment.Author = *author
	return toCommentResponse(comment), nil
}

func (s *PostService) ListComments(ctx context.Context, postID uuid.UUID, page, pageSize int) ([]resp.CommentResponse, error) {
	if err := validatePage(page, pageSize); err != nil {
		return nil, err
	}
	if _, err := s.findPost(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListComments(ctx, postID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	out := make([]resp.CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, *toCommentResponse(&comments[i]))
	}
	return out, nil
}

func (s *PostService) DeleteComment(ctx context.Context, userID, postID, commentID uuid.UUID) error {
	comment, err := s.commentRepo.FindById(ctx, commentID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if comment == nil || comment.PostID != postID {
		return utils.ErrCommentNotFound
	}
	if !db_models.IsOwnedBy(comment.UserID, userID) {
		return utils.ErrForbidden
	}
	if err := s.commentRepo.DeleteComment(ctx, comment); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func toAuthorSummary(a db_models.Account, fallbackID uuid.UUID) resp.AuthorSummary {
	id := a.ID
	if id == uuid.Nil {
		id = fallbackID
	}
	return resp.AuthorSummary{ID: id, Name: a.Name, AvatarURL: a.AvatarURL}
}

func toPostResponse(p *db_models.Post, liked, saved bool) *resp.PostResponse {
	images := []string(p.Images)
	if images == nil {
		images = []string{}
	}
	return &resp.PostResponse{
		ID:           p.ID,
		Author:       toAuthorSummary(p.Author, p.UserID),
		Content:      p.Content,
		Images:       images,
		Location:     p.Location,
		TripID:       p.TripID,
		LikeCount:    p.LikeCount,
		CommentCount: p.CommentCount,
		LikedByMe:    liked,
		SavedByMe:    saved,
		CreatedAt:    p.CreatedAt,
	}
}

func toCommentResponse(c *db_models.Comment) *resp.CommentResponse {
	return &resp.CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		Author:    toAuthorSummary(c.Author, c.UserID),
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}
