package api

import (
	"net/http"

	"github.com/rpupo63/personal-blog/database"
	"github.com/rpupo63/personal-blog/errs"
	"github.com/rpupo63/personal-blog/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const postRequiredMessage = "Title, Description, and Content are required"

type blogPostHandler struct {
	responder    Responder
	logger       zerolog.Logger
	blogPostRepo *database.BlogPostRepo
}

func newBlogPostHandler(blogPostRepo *database.BlogPostRepo) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		blogPostRepo: blogPostRepo,
	}
}

// getAllBlogPosts retrieves all blog posts
// @Summary Get all blog posts
// @Tags Blog Posts
// @Produce json
// @Success 200 {object} envelope "success.posts"
// @Failure 500 {object} envelope "Internal Server Error"
// @Router /api/posts [get]
func (h blogPostHandler) getAllBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPosts, err := h.blogPostRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog posts", err))
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, "posts", blogPosts)
	}
}

// getBlogPost retrieves a specific blog post by ID
// @Summary Get blog post
// @Tags Blog Posts
// @Produce json
// @Param postID path int true "Post ID"
// @Success 200 {object} envelope "success.post"
// @Failure 400 {object} envelope "Invalid post id"
// @Failure 404 {object} envelope "Post not found"
// @Failure 500 {object} envelope "Internal Server Error"
// @Router /api/posts/{postID} [get]
func (h blogPostHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := idParam(r, "postID", "post id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blogPost, err := h.blogPostRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", fmtEntity("blog post", postID), err))
			return
		}

		if blogPost == nil {
			h.responder.WriteError(w, errs.NewNotFound("Post"))
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, "post", blogPost)
	}
}

// createBlogPost creates a new blog post
// @Summary Create blog post
// @Description Requires a bearer token. Returns the stored row, including its id and timestamps.
// @Tags Blog Posts
// @Accept json
// @Produce json
// @Param blogPost body models.CreateBlogPostRequest true "Blog post data"
// @Success 201 {object} envelope "success.post"
// @Failure 400 {object} envelope "Title, Description, and Content are required"
// @Failure 401 {object} envelope "Missing Authorization header / Token missing"
// @Failure 403 {object} envelope "Invalid token"
// @Failure 500 {object} envelope "Internal Server Error"
// @Router /api/posts [post]
func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		var req models.CreateBlogPostRequest
		if err := decodeAndValidate(w, r, &req, "blog post", postRequiredMessage); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		createdBlogPost, err := h.blogPostRepo.Create(req.ToBlogPost())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "blog post", err))
			return
		}

		logEvent := h.logger.Info().Int64("postID", createdBlogPost.PostID)
		if claims := ctxGetClaims(r.Context()); claims != nil {
			logEvent = logEvent.Str("author", claims.Subject)
		}
		logEvent.Msg("Created blog post")
		contentCreated.WithLabelValues("post").Inc()

		h.responder.WriteSuccess(w, http.StatusCreated, "post", createdBlogPost)
	}
}
