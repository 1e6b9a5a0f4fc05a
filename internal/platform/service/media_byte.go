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
	ErrMediaByteInvalid  = errors.New("invalid media byte submission")
	ErrMediaByteNotFound = errors.New("media byte not found")
	ErrNotALeader        = errors.New("only leaders can post media bytes")
)

type MediaByteService struct {
	Store store.Store
}

// MediaByteInput is a leader's short video message.
type MediaByteInput struct {
	VideoURL  string
	VideoType domain.VideoType
	Message   string
	Language  string
}

// CreateMediaByte records a media byte. Only LEADER accounts (and
// admins posting on their behalf is out of scope) can publish them.
func (s *MediaByteService) CreateMediaByte(ctx context.Context, userID string, in MediaByteInput) (domain.MediaByte, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetByID(ctx, userID)
	if err != nil {
		return domain.MediaByte{}, err
	}
	if user.Role != domain.RoleLeader {
		return domain.MediaByte{}, ErrNotALeader
	}
	if !user.IsActive || !user.CanPost {
		return domain.MediaByte{}, ErrPostingDisabled
	}

	if in.VideoURL == "" {
		return domain.MediaByte{}, ErrMediaByteInvalid
	}
	switch in.VideoType {
	case domain.VideoYouTube:
		if !isYouTubeURL(in.VideoURL) {
			return domain.MediaByte{}, ErrMediaByteInvalid
		}
	case domain.VideoUpload:
		// Any stored-object URL is accepted.
	default:
		return domain.MediaByte{}, ErrMediaByteInvalid
	}

	language := in.Language
	if language == "" {
		language = "te"
	}

	mb := domain.MediaByte{
		ID:        idx.New().String(),
		UserID:    userID,
		VideoURL:  in.VideoURL,
		VideoType: in.VideoType,
		Message:   in.Message,
		Language:  language,
	}

	if err := s.Store.MediaBytes().Create(ctx, mb); err != nil {
		log.Error("failed to create media byte", slog.Any("error", err))
		return domain.MediaByte{}, err
	}

	log.Info("media byte created", slog.String("media_byte_id", mb.ID))
	mb.AuthorName = user.Name
	return mb, nil
}

// List returns media bytes newest first; userID narrows to one leader.
func (s *MediaByteService) List(ctx context.Context, userID string, page store.Page) ([]domain.MediaByte, int64, error) {
	return s.Store.MediaBytes().List(ctx, userID, page.Normalize(DefaultPageSize))
}

// View returns one media byte and bumps its view counter.
func (s *MediaByteService) View(ctx context.Context, id string) (domain.MediaByte, error) {
	mb, err := s.Store.MediaBytes().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.MediaByte{}, ErrMediaByteNotFound
		}
		return domain.MediaByte{}, err
	}

	if err := s.Store.MediaBytes().IncrementViews(ctx, id); err != nil {
		// The read succeeded; a lost view increment is not worth a 500.
		slogx.FromContext(ctx).Warn("failed to increment views",
			slog.String("media_byte_id", id), slog.Any("error", err))
	} else {
		mb.ViewCount++
	}
	return mb, nil
}

// Delete removes a media byte. Owners may delete their own; admins any.
func (s *MediaByteService) Delete(ctx context.Context, id, callerID string, callerRole domain.Role) error {
	mb, err := s.Store.MediaBytes().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMediaByteNotFound
		}
		return err
	}

	if mb.UserID != callerID && !callerRole.IsAdmin() {
		return ErrNotAuthorized
	}

	if err := s.Store.MediaBytes().Delete(ctx, id); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("media byte deleted", slog.String("media_byte_id", id))
	return nil
}

func isYouTubeURL(url string) bool {
	return strings.Contains(url, "youtube.com/") || strings.Contains(url, "youtu.be/")
}
