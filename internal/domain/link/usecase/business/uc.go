package business

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hm-yang2/board-share/internal/domain/link/deps"
	"github.com/hm-yang2/board-share/internal/domain/link/dto"
	"github.com/hm-yang2/board-share/internal/domain/link/entities"
	linkerrors "github.com/hm-yang2/board-share/internal/domain/link/errors"
	userentities "github.com/hm-yang2/board-share/internal/domain/user/entities"
)

// UseCase manages the caller's personal links
type UseCase struct {
	repo   deps.LinkRepository
	logger zerolog.Logger
}

// NewUseCase creates a new link use case
func NewUseCase(repo deps.LinkRepository, logger zerolog.Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		logger: logger.With().Str("usecase", "link").Logger(),
	}
}

// ListLinks returns the caller's links matching search
func (u *UseCase) ListLinks(ctx context.Context, actor *userentities.User, search string) ([]entities.Link, error) {
	return u.repo.List(ctx, actor.ID, strings.TrimSpace(search))
}

// GetLink returns one of the caller's links
func (u *UseCase) GetLink(ctx context.Context, actor *userentities.User, id uint) (*entities.Link, error) {
	return u.repo.GetOwned(ctx, id, actor.ID)
}

// CreateLink stores a new link for the caller
func (u *UseCase) CreateLink(ctx context.Context, actor *userentities.User, req dto.LinkRequest) (*entities.Link, error) {
	link := &entities.Link{UserID: actor.ID}
	if err := applyLinkRequest(link, req); err != nil {
		return nil, err
	}

	if err := u.repo.Create(ctx, link); err != nil {
		return nil, err
	}
	link.User = actor

	u.logger.Debug().Uint("link_id", link.ID).Uint("user_id", actor.ID).Msg("link created")
	return link, nil
}

// UpdateLink changes one of the caller's links
func (u *UseCase) UpdateLink(ctx context.Context, actor *userentities.User, req dto.LinkRequest) (*entities.Link, error) {
	if req.ID == nil || *req.ID == 0 {
		return nil, linkerrors.ErrLinkIDRequired
	}

	link, err := u.repo.GetOwned(ctx, *req.ID, actor.ID)
	if err != nil {
		return nil, err
	}
	if err := applyLinkRequest(link, req); err != nil {
		return nil, err
	}

	if err := u.repo.Update(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// DeleteLink removes one of the caller's links
func (u *UseCase) DeleteLink(ctx context.Context, actor *userentities.User, id uint) error {
	link, err := u.repo.GetOwned(ctx, id, actor.ID)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, link.ID); err != nil {
		return err
	}

	u.logger.Debug().Uint("link_id", link.ID).Uint("user_id", actor.ID).Msg("link deleted")
	return nil
}

func applyLinkRequest(link *entities.Link, req dto.LinkRequest) error {
	title, err := validTitle(req.Title)
	if err != nil {
		return err
	}
	description, err := validDescription(req.Description)
	if err != nil {
		return err
	}
	rawURL, err := validURL(req.Link)
	if err != nil {
		return err
	}

	link.Title = title
	link.Description = description
	link.URL = rawURL
	return nil
}
