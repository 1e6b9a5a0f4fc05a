package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/internal/platform/store"
	"github.com/prajasetu/prajasetu/pkg/idx"
	"github.com/prajasetu/prajasetu/pkg/slogx"
)

var (
	ErrCommentInvalid = errors.New("invalid comment")
	ErrParentNotFound = errors.New("comment parent not found")
)

// MaxCommentLength caps comment bodies.
const MaxCommentLength = 1000

type CommentService struct {
	Store store.Store
}

// CommentInput targets exactly one parent: an event or a media byte.
type CommentInput struct {
	EventID     string
	MediaByteID string
	Content     string
}

// CreateComment attaches a comment to an approved event or a media byte.
func (s *CommentService) CreateComment(ctx context.Context, userID string, in CommentInput) (domain.Comment, error) {
	log := slogx.FromContext(ctx)

	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" || len(in.Content) > MaxCommentLength {
		return domain.Comment{}, ErrCommentInvalid
	}
	// Exactly one parent.
	if (in.EventID == "") == (in.MediaByteID == "") {
		return domain.Comment{}, ErrCommentInvalid
	}

	user, err := s.Store.Users().GetByID(ctx, userID)
	if err != nil {
		return domain.Comment{}, err
	}
	if !user.IsActive {
		return domain.Comment{}, ErrPostingDisabled
	}

	switch {
	case in.EventID != "":
		event, err := s.Store.Events().GetByID(ctx, in.EventID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Comment{}, ErrParentNotFound
			}
			return domain.Comment{}, err
		}
		if event.Status != domain.StatusApproved {
			return domain.Comment{}, ErrParentNotFound
		}
	case in.MediaByteID != "":
		if _, err := s.Store.MediaBytes().GetByID(ctx, in.MediaByteID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Comment{}, ErrParentNotFound
			}
			return domain.Comment{}, err
		}
	}

	comment := domain.Comment{
		ID:          idx.New().String(),
		UserID:      userID,
		AuthorName:  user.Name,
		EventID:     in.EventID,
		MediaByteID: in.MediaByteID,
		Content:     in.Content,
	}

	if err := s.Store.Comments().Create(ctx, comment); err != nil {
		log.Error("failed to create comment", slog.Any("error", err))
		return domain.Comment{}, err
	}

	log.Info("comment created", slog.String("comment_id", comment.ID))
	return comment, nil
}

// ListComments returns comments for one parent, newest first.
func (s *CommentService) ListComments(ctx context.Context, f store.CommentFilter, page store.Page) ([]domain.Comment, int64, error) {
	if (f.EventID == "") == (f.MediaByteID == "") {
		return nil, 0, ErrCommentInvalid
	}
	return s.Store.Comments().List(ctx, f, page.Normalize(DefaultPageSize))
}
