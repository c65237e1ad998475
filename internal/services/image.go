package services

import (
	"net/url"
	"regexp"
	"strings"
)

// ImageKind вид ссылки на картинку в ответе сервиса расчёта
type ImageKind int

const (
	ImageInvalid ImageKind = iota
	ImageDataURL
	ImageBase64
	ImagePath
)

func (k ImageKind) String() string {
	switch k {
	case ImageDataURL:
		return "data_url"
	case ImageBase64:
		return "base64"
	case ImagePath:
		return "path"
	}
	return "invalid"
}

// ImageSource готовый src для <img>
type ImageSource struct {
	Kind ImageKind
	Src  string
}

const pngDataURLPrefix = "data:image/png;base64,"

var base64Re = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)

// ResolveImage перебирает варианты по порядку: data URL, голый base64,
// путь или URL относительно адреса API.
func ResolveImage(raw, apiURL string) (ImageSource, bool) {
	switch {
	case raw == "":
		return ImageSource{}, false
	case strings.HasPrefix(raw, "data:image/"):
		return ImageSource{Kind: ImageDataURL, Src: raw}, true
	case base64Re.MatchString(raw):
		return ImageSource{Kind: ImageBase64, Src: pngDataURLPrefix + raw}, true
	case strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "http"):
		base, err := url.Parse(apiURL)
		if err != nil {
			return ImageSource{}, false
		}
		ref, err := url.Parse(raw)
		if err != nil {
			return ImageSource{}, false
		}
		return ImageSource{Kind: ImagePath, Src: base.ResolveReference(ref).String()}, true
	}
	return ImageSource{}, false
}
