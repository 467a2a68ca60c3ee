package storage

import (
	"encoding/base64"
	"errors"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var ErrInvalidImage = errors.New("invalid base64 image")

type Image struct {
	Data        []byte
	ContentType string
	Extension   string
}

// DecodeBase64Image accepts either a data URI ("data:image/png;base64,...") or a bare
// base64 payload. The declared type in the URI is ignored; the content is sniffed.
func DecodeBase64Image(value string, allowTypes ...string) (Image, error) {
	payload := strings.TrimSpace(value)
	if strings.HasPrefix(payload, "data:") {
		_, after, ok := strings.Cut(payload, ";base64,")
		if !ok {
			return Image{}, ErrInvalidImage
		}
		payload = after
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(data) == 0 {
		return Image{}, ErrInvalidImage
	}

	mtype := mimetype.Detect(data)
	contentType := strings.SplitN(mtype.String(), ";", 2)[0]
	if len(allowTypes) > 0 && !slices.Contains(allowTypes, contentType) {
		return Image{}, ErrInvalidImage
	}

	return Image{Data: data, ContentType: contentType, Extension: mtype.Extension()}, nil
}
