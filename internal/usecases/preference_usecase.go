package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"
	domainerrors "startup-nexus.backend/internal/domain/errors"
	"startup-nexus.backend/internal/domain/repositories"
)

// PreferenceUsecase stores the UI language of each user.
type PreferenceUsecase struct {
	repo      repositories.PreferenceRepository
	supported []string
	fallback  string
}

func NewPreferenceUsecase(repo repositories.PreferenceRepository, supported []string, fallback string) *PreferenceUsecase {
	fallback = strings.ToLower(strings.TrimSpace(fallback))
	if fallback == "" {
		fallback = DefaultLanguage
	}
	langs := make([]string, 0, len(supported)+1)
	for _, l := range supported {
		if l = strings.ToLower(strings.TrimSpace(l)); l != "" {
			langs = append(langs, l)
		}
	}
	u := &PreferenceUsecase{repo: repo, supported: langs, fallback: fallback}
	if !u.isSupported(fallback) {
		u.supported = append(u.supported, fallback)
	}
	return u
}

// GetLanguage returns the stored language or the default.
func (u *PreferenceUsecase) GetLanguage(ctx context.Context, userID uuid.UUID) (string, error) {
	lang, err := u.repo.GetLanguage(ctx, userID)
	if err != nil {
		return "", err
	}
	if lang == "" || !u.isSupported(lang) {
		return u.fallback, nil
	}
	return lang, nil
}

func (u *PreferenceUsecase) SetLanguage(ctx context.Context, userID uuid.UUID, lang string) (string, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if !u.isSupported(lang) {
		return "", domainerrors.BadRequest("unsupported language")
	}
	if err := u.repo.SetLanguage(ctx, userID, lang); err != nil {
		return "", err
	}
	return lang, nil
}

// Supported lists the accepted language codes.
func (u *PreferenceUsecase) Supported() []string {
	return append([]string(nil), u.supported...)
}

func (u *PreferenceUsecase) isSupported(lang string) bool {
	for _, l := range u.supported {
		if l == lang {
			return true
		}
	}
	return false
}
