package http

import (
	"net/http"
	"strconv"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/internal/platform/store"
	"github.com/prajasetu/prajasetu/pkg/apiclient"
)

// parsePage reads the page/pageSize query parameters. Out-of-range
// values fall through to the service defaults via Page.Normalize.
func parsePage(r *http.Request) store.Page {
	var p store.Page
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		p.Number = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("pageSize")); err == nil {
		p.Size = v
	}
	return p
}

func toUser(u domain.PublicUser) apiclient.User {
	return apiclient.User{
		ID:     u.ID,
		Name:   u.Name,
		Mobile: u.Mobile,
		Role:   string(u.Role),
	}
}

func toEvent(e domain.Event) apiclient.Event {
	out := apiclient.Event{
		ID:           e.ID,
		AuthorName:   e.AuthorName,
		Title:        e.Title,
		Category:     string(e.Category),
		Description:  e.Description,
		State:        e.State,
		District:     e.District,
		Constituency: e.Constituency,
		Language:     e.Language,
		Status:       string(e.Status),
		CommentCount: e.CommentCount,
		CreatedAt:    e.CreatedAt,
	}
	for _, img := range e.Images {
		out.ImageURLs = append(out.ImageURLs, img.URL)
	}
	for _, link := range e.SocialLinks {
		out.SocialLinks = append(out.SocialLinks, apiclient.SocialLink{
			Platform:     string(link.Platform),
			URL:          link.URL,
			ThumbnailURL: link.ThumbnailURL,
		})
	}
	return out
}

func toEventList(events []domain.Event, total int64, p store.Page) apiclient.EventListResponse {
	out := apiclient.EventListResponse{
		Events:   make([]apiclient.Event, 0, len(events)),
		Total:    total,
		Page:     p.Number,
		PageSize: p.Size,
	}
	for _, e := range events {
		out.Events = append(out.Events, toEvent(e))
	}
	return out
}

func toMediaByte(mb domain.MediaByte) apiclient.MediaByte {
	return apiclient.MediaByte{
		ID:         mb.ID,
		AuthorName: mb.AuthorName,
		LeaderSlug: mb.LeaderSlug,
		VideoURL:   mb.VideoURL,
		VideoType:  string(mb.VideoType),
		Message:    mb.Message,
		Language:   mb.Language,
		ViewCount:  mb.ViewCount,
		CreatedAt:  mb.CreatedAt,
	}
}

func toMediaByteList(bytes []domain.MediaByte, total int64, p store.Page) apiclient.MediaByteListResponse {
	out := apiclient.MediaByteListResponse{
		MediaBytes: make([]apiclient.MediaByte, 0, len(bytes)),
		Total:      total,
		Page:       p.Number,
		PageSize:   p.Size,
	}
	for _, mb := range bytes {
		out.MediaBytes = append(out.MediaBytes, toMediaByte(mb))
	}
	return out
}

func toComment(c domain.Comment) apiclient.Comment {
	return apiclient.Comment{
		ID:         c.ID,
		AuthorName: c.AuthorName,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt,
	}
}

func toLeader(profile domain.LeaderProfile, name, state string) apiclient.Leader {
	return apiclient.Leader{
		Slug:         profile.Slug,
		Name:         name,
		Designation:  profile.Designation,
		Constituency: profile.Constituency,
		State:        state,
		Bio:          profile.Bio,
		PhotoURL:     profile.PhotoURL,
		SocialLinks:  profile.SocialLinks,
		Verified:     profile.Verified,
	}
}

func toBanner(b domain.Banner) apiclient.Banner {
	return apiclient.Banner{
		ID:        b.ID,
		ImageURL:  b.ImageURL,
		Title:     b.Title,
		Link:      b.Link,
		Position:  b.Position,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
	}
}

func toInvite(inv store.InviteListing) apiclient.Invite {
	return apiclient.Invite{
		ID:            inv.ID,
		Code:          inv.Code,
		Role:          string(inv.Role),
		Used:          inv.Used,
		CreatedByName: inv.CreatedByName,
		UsedByName:    inv.UsedByName,
		ExpiresAt:     inv.ExpiresAt,
		CreatedAt:     inv.CreatedAt,
	}
}

func toAdminUser(u store.UserWithCounts) apiclient.AdminUser {
	return apiclient.AdminUser{
		ID:             u.ID,
		Name:           u.Name,
		Mobile:         u.Mobile,
		Role:           string(u.Role),
		State:          u.State,
		District:       u.District,
		Constituency:   u.Constituency,
		IsActive:       u.IsActive,
		CanPost:        u.CanPost,
		EventCount:     u.EventCount,
		MediaByteCount: u.MediaByteCount,
		CommentCount:   u.CommentCount,
		CreatedAt:      u.CreatedAt,
	}
}
