package advisory

import (
	"context"
	"time"

	"github.com/Elliot-87/YOUTHCENTRE/internal/logging"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/utils"
)

const (
	homeArticleLimit    = 6
	relatedArticleLimit = 3
)

// Store is the persistence surface for advisory content. Lookups return
// (nil, nil) when no row matches. Published listings come back newest first
// by published date.
type Store interface {
	ListCategories(ctx context.Context) ([]models.AdvisoryCategory, error)
	GetCategory(ctx context.Context, id uint) (*models.AdvisoryCategory, error)
	CreateCategory(ctx context.Context, cat *models.AdvisoryCategory) error
	UpdateCategory(ctx context.Context, cat *models.AdvisoryCategory) error
	DeleteCategory(ctx context.Context, id uint) error

	GetArticle(ctx context.Context, id uint) (*models.AdvisoryArticle, error)
	CreateArticle(ctx context.Context, art *models.AdvisoryArticle) error
	UpdateArticle(ctx context.Context, art *models.AdvisoryArticle) error
	DeleteArticle(ctx context.Context, id uint) error
	ListPublished(ctx context.Context, limit int) ([]models.AdvisoryArticle, error)
	ListPublishedByCategory(ctx context.Context, categoryID uint, limit int) ([]models.AdvisoryArticle, error)
}

// Service serves advisory content to readers and edits it for admins.
type Service struct {
	store  Store
	logger logging.Logger
}

func NewService(store Store) *Service {
	return &Service{store: store, logger: logging.GetGlobalLogger()}
}

// Home returns the advisory landing page: all categories plus the latest
// published articles.
func (s *Service) Home(ctx context.Context) (*models.AdvisoryHomeResponse, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to list advisory categories")
	}
	featured, err := s.store.ListPublished(ctx, homeArticleLimit)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to list advisory articles")
	}
	return &models.AdvisoryHomeResponse{
		Categories:       categories,
		FeaturedArticles: featured,
	}, nil
}

// CategoryArticles returns a category and its published articles.
func (s *Service) CategoryArticles(ctx context.Context, categoryID uint) (*models.AdvisoryCategory, []models.AdvisoryArticle, error) {
	category, err := s.store.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, nil, utils.NewInternalServerError("failed to load advisory category")
	}
	if category == nil {
		return nil, nil, utils.NewNotFoundError("advisory category does not exist")
	}

	articles, err := s.store.ListPublishedByCategory(ctx, categoryID, 0)
	if err != nil {
		return nil, nil, utils.NewInternalServerError("failed to list category articles")
	}
	return category, articles, nil
}

// Article returns a published article and up to three related articles from
// the same category. Unpublished articles are invisible to readers.
func (s *Service) Article(ctx context.Context, articleID uint) (*models.AdvisoryArticleResponse, error) {
	article, err := s.store.GetArticle(ctx, articleID)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to load advisory article")
	}
	if article == nil || !article.IsPublished {
		return nil, utils.NewNotFoundError("advisory article does not exist")
	}

	siblings, err := s.store.ListPublishedByCategory(ctx, article.CategoryID, 0)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to list related articles")
	}
	related := make([]models.AdvisoryArticle, 0, relatedArticleLimit)
	for _, sib := range siblings {
		if sib.ID == article.ID {
			continue
		}
		related = append(related, sib)
		if len(related) == relatedArticleLimit {
			break
		}
	}

	return &models.AdvisoryArticleResponse{
		Article:         *article,
		RelatedArticles: related,
	}, nil
}

// CreateCategory adds an advisory category. Admin only.
func (s *Service) CreateCategory(ctx context.Context, req models.AdvisoryCategoryRequest) (*models.AdvisoryCategory, error) {
	category := &models.AdvisoryCategory{
		Name:        req.Name,
		Description: req.Description,
		Icon:        utils.GetStringOrDefault(req.Icon, "book"),
	}
	if err := s.store.CreateCategory(ctx, category); err != nil {
		return nil, utils.NewInternalServerError("failed to create advisory category")
	}
	return category, nil
}

// UpdateCategory edits an advisory category. Admin only.
func (s *Service) UpdateCategory(ctx context.Context, categoryID uint, req models.AdvisoryCategoryRequest) (*models.AdvisoryCategory, error) {
	category, err := s.store.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to load advisory category")
	}
	if category == nil {
		return nil, utils.NewNotFoundError("advisory category does not exist")
	}

	category.Name = req.Name
	category.Description = req.Description
	if req.Icon != "" {
		category.Icon = req.Icon
	}
	if err := s.store.UpdateCategory(ctx, category); err != nil {
		return nil, utils.NewInternalServerError("failed to update advisory category")
	}
	return category, nil
}

// DeleteCategory removes a category and, through the schema, its articles.
// Admin only.
func (s *Service) DeleteCategory(ctx context.Context, categoryID uint) error {
	category, err := s.store.GetCategory(ctx, categoryID)
	if err != nil {
		return utils.NewInternalServerError("failed to load advisory category")
	}
	if category == nil {
		return utils.NewNotFoundError("advisory category does not exist")
	}
	if err := s.store.DeleteCategory(ctx, categoryID); err != nil {
		return utils.NewInternalServerError("failed to delete advisory category")
	}
	s.logger.Info("Advisory category deleted", map[string]interface{}{"category_id": categoryID})
	return nil
}

// CreateArticle adds an article. Admin only. Articles publish immediately
// unless the request says otherwise.
func (s *Service) CreateArticle(ctx context.Context, req models.AdvisoryArticleRequest) (*models.AdvisoryArticle, error) {
	category, err := s.store.GetCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to load advisory category")
	}
	if category == nil {
		return nil, utils.NewNotFoundError("advisory category does not exist")
	}

	article := &models.AdvisoryArticle{
		CategoryID:    req.CategoryID,
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		Author:        utils.GetStringOrDefault(req.Author, "Career Advisor"),
		PublishedDate: time.Now(),
		IsPublished:   true,
		FeaturedImage: req.FeaturedImage,
	}
	if req.IsPublished != nil {
		article.IsPublished = *req.IsPublished
	}
	if err := s.store.CreateArticle(ctx, article); err != nil {
		return nil, utils.NewInternalServerError("failed to create advisory article")
	}
	return article, nil
}

// UpdateArticle edits an article. Admin only. The published date survives
// edits; only SetPublished changes visibility.
func (s *Service) UpdateArticle(ctx context.Context, articleID uint, req models.AdvisoryArticleRequest) (*models.AdvisoryArticle, error) {
	article, err := s.store.GetArticle(ctx, articleID)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to load advisory article")
	}
	if article == nil {
		return nil, utils.NewNotFoundError("advisory article does not exist")
	}

	article.CategoryID = req.CategoryID
	article.Title = req.Title
	article.Content = req.Content
	article.Excerpt = req.Excerpt
	if req.Author != "" {
		article.Author = req.Author
	}
	article.FeaturedImage = req.FeaturedImage
	if req.IsPublished != nil {
		article.IsPublished = *req.IsPublished
	}
	if err := s.store.UpdateArticle(ctx, article); err != nil {
		return nil, utils.NewInternalServerError("failed to update advisory article")
	}
	return article, nil
}

// SetPublished flips an article's visibility. Admin only.
func (s *Service) SetPublished(ctx context.Context, articleID uint, published bool) (*models.AdvisoryArticle, error) {
	article, err := s.store.GetArticle(ctx, articleID)
	if err != nil {
		return nil, utils.NewInternalServerError("failed to load advisory article")
	}
	if article == nil {
		return nil, utils.NewNotFoundError("advisory article does not exist")
	}

	article.IsPublished = published
	if err := s.store.UpdateArticle(ctx, article); err != nil {
		return nil, utils.NewInternalServerError("failed to update advisory article")
	}
	return article, nil
}

// DeleteArticle removes an article. Admin only.
func (s *Service) DeleteArticle(ctx context.Context, articleID uint) error {
	article, err := s.store.GetArticle(ctx, articleID)
	if err != nil {
		return utils.NewInternalServerError("failed to load advisory article")
	}
	if article == nil {
		return utils.NewNotFoundError("advisory article does not exist")
	}
	if err := s.store.DeleteArticle(ctx, articleID); err != nil {
		return utils.NewInternalServerError("failed to delete advisory article")
	}
	return nil
}
