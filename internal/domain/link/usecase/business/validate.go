package business

import (
	"net/url"
	"strings"
	"unicode/utf8"

	linkerrors "github.com/hm-yang2/board-share/internal/domain/link/errors"
)

const (
	minTitleLength       = 3
	maxTitleLength       = 100
	maxDescriptionLength = 255
)

func validTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if n := utf8.RuneCountInString(title); n < minTitleLength || n > maxTitleLength {
		return "", linkerrors.ErrInvalidTitle
	}
	return title, nil
}

func validDescription(description string) (string, error) {
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return "", linkerrors.ErrDescriptionTooLong
	}
	return description, nil
}

// validURL accepts absolute http and https URLs with a host
func validURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.ParseRequestURI(raw)
	if err != nil || u.Host == "" {
		return "", linkerrors.ErrInvalidURL
	}
	if scheme := strings.ToLower(u.Scheme); scheme != "http" && scheme != "https" {
		return "", linkerrors.ErrInvalidURL
	}
	return raw, nil
}
