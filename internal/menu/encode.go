package menu

import "encoding/base64"

// EncodedImage is an image in transport-safe form paired with its media type.
type EncodedImage struct {
	MimeType string
	Data     string
}

// EncodeImages base64-encodes each image independently, keeping order.
func EncodeImages(images []Image) []EncodedImage {
	out := make([]EncodedImage, len(images))
	for i, img := range images {
		out[i] = EncodedImage{
			MimeType: NormaliseMIME(img.MimeType),
			Data:     base64.StdEncoding.EncodeToString(img.Data),
		}
	}
	return out
}

// NormaliseMIME maps browser MIME types to the set every backend accepts:
// jpeg, png, gif and webp. Unknown types are coerced to jpeg as the most
// universally supported lossy fallback. Callers should validate MIME types
// before reaching this layer.
func NormaliseMIME(mimeType string) string {
	switch mimeType {
	case "image/png", "image/gif", "image/webp":
		return mimeType
	default:
		return "image/jpeg"
	}
}
