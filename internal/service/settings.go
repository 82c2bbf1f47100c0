package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ticketwise/api/internal/domain"
	"github.com/ticketwise/api/internal/render"
	"github.com/ticketwise/api/internal/repository"
)

var ErrInvalidImageData = errors.New("logo must be an image data URI")

type AssetRepository interface {
	Save(ctx context.Context, asset domain.Asset) (domain.Asset, error)
	FindByKey(ctx context.Context, key string) (domain.Asset, error)
}

type SettingsService struct {
	repo AssetRepository
}

func NewSettingsService(repo AssetRepository) *SettingsService {
	return &SettingsService{
		repo: repo,
	}
}

// GetLogo returns the uploaded logo, or the renderer's placeholder if
// none has been uploaded yet.
func (s *SettingsService) GetLogo(ctx context.Context) (domain.Asset, error) {
	asset, err := s.repo.FindByKey(ctx, domain.AssetKeyLogo)
	if err != nil {
		if errors.Is(err, repository.ErrAssetNotFound) {
			return domain.Asset{Key: domain.AssetKeyLogo, Data: render.DefaultLogoDataURI}, nil
		}

		return domain.Asset{}, fmt.Errorf("s.repo.FindByKey -> %w", err)
	}

	return asset, nil
}

func (s *SettingsService) SetLogo(ctx context.Context, data string) (domain.Asset, error) {
	if !strings.HasPrefix(data, "data:image/") {
		return domain.Asset{}, ErrInvalidImageData
	}

	saved, err := s.repo.Save(ctx, domain.Asset{Key: domain.AssetKeyLogo, Data: data})
	if err != nil {
		return domain.Asset{}, fmt.Errorf("s.repo.Save -> %w", err)
	}

	return saved, nil
}
