package api

import (
	"net/http"

	"github.com/rpupo63/personal-blog/database"
	"github.com/rpupo63/personal-blog/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const commentRequiredMessage = "UserID and Content are required"

type commentHandler struct {
	responder   Responder
	logger      zerolog.Logger
	commentRepo *database.CommentRepo
}

func newCommentHandler(commentRepo *database.CommentRepo) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	return commentHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		commentRepo: commentRepo,
	}
}

// getCommentsForPost lists the comments of a post. The post itself is not looked up; an unknown
// post yields an empty list.
// @Summary Get comments for a post
// @Tags Comments
// @Produce json
// @Param postID path int true "Post ID"
// @Success 200 {object} envelope "success.comments"
// @Failure 400 {object} envelope "Invalid post id"
// @Failure 500 {object} envelope "Internal Server Error"
// @Router /api/posts/{postID}/comments [get]
func (h commentHandler) getCommentsForPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := idParam(r, "postID", "post id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comments, err := h.commentRepo.FindByPostID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", fmtEntity("comments of post", postID), err))
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, "comments", comments)
	}
}

// createComment adds a comment to a post. Unknown posts or users are rejected by the store's
// foreign keys and reported as a store failure.
// @Summary Create comment
// @Tags Comments
// @Accept json
// @Produce json
// @Param postID path int true "Post ID"
// @Param comment body models.CreateCommentRequest true "Comment data"
// @Success 201 {object} envelope "success.comment"
// @Failure 400 {object} envelope "UserID and Content are required"
// @Failure 500 {object} envelope "Internal Server Error"
// @Router /api/posts/{postID}/comments [post]
func (h commentHandler) createComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := idParam(r, "postID", "post id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req models.CreateCommentRequest
		if err := decodeAndValidate(w, r, &req, "comment", commentRequiredMessage); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comment, err := h.commentRepo.Create(&models.Comment{
			PostID:  postID,
			UserID:  req.UserID,
			Content: req.Content,
		})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", fmtEntity("comment on post", postID), err))
			return
		}

		h.logger.Info().
			Int64("commentID", comment.CommentID).
			Int64("postID", postID).
			Int64("userID", req.UserID).
			Msg("Created comment")
		contentCreated.WithLabelValues("comment").Inc()

		h.responder.WriteSuccess(w, http.StatusCreated, "comment", comment)
	}
}
