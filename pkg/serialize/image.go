package serialize

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/png"
	"strings"

	// Decoders for the formats browsers commonly upload.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/go-vitrine/vitrine/pkg/errors"
)

const dataURIPrefix = "data:image/"

// Image serializes images as base64 data URIs, the form the browser exchanges
// them in. Decoding accepts png, jpeg, gif, bmp, and webp; encoding always
// produces png.
type Image struct{}

// Encode renders img as a "data:image/png;base64,..." JSON string.
func (Image) Encode(img image.Image) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.E("serialize.Image", errors.KindSerialize, err)
	}
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	return json.Marshal(uri)
}

// Decode parses a data URI JSON string into an image.
func (Image) Decode(raw json.RawMessage) (image.Image, error) {
	var uri string
	if err := json.Unmarshal(raw, &uri); err != nil {
		return nil, errors.Ef("serialize.Image", errors.KindSerialize, "expected a JSON string, got %s", compact(raw))
	}
	if !strings.HasPrefix(uri, dataURIPrefix) {
		return nil, errors.Ef("serialize.Image", errors.KindSerialize, "expected a data:image/ URI")
	}
	idx := strings.Index(uri, "base64,")
	if idx < 0 {
		return nil, errors.Ef("serialize.Image", errors.KindSerialize, "data URI is not base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(uri[idx+len("base64,"):])
	if err != nil {
		return nil, errors.E("serialize.Image", errors.KindSerialize, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.E("serialize.Image", errors.KindSerialize, err)
	}
	return img, nil
}
