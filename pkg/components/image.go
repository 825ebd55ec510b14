package components

import (
	"encoding/json"
	"image"
	"sync"

	"github.com/go-vitrine/vitrine/pkg/errors"
	"github.com/go-vitrine/vitrine/pkg/events"
	"github.com/go-vitrine/vitrine/pkg/serialize"
)

// ImageConfig configures an [Image].
type ImageConfig struct {
	Config

	// Value is the initial image, if any.
	Value image.Image
}

// Image exchanges pictures with the browser as base64 data URIs. Uploads in
// png, jpeg, gif, bmp, or webp are accepted; outputs are always png.
type Image struct {
	IOComponent
	codec serialize.Image

	// mu guards value against concurrent writes and config reads.
	mu    sync.RWMutex
	value image.Image
}

// NewImage constructs an Image with every parameter resolved.
func NewImage(cfg ImageConfig) *Image {
	return &Image{
		IOComponent: newIOComponent("image", cfg.Config),
		value:       cfg.Value,
	}
}

// Value returns the current image, which may be nil.
func (i *Image) Value() image.Image {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.value
}

// SetValue stores a new image and emits a change event.
func (i *Image) SetValue(v image.Image) {
	i.mu.Lock()
	i.value = v
	i.mu.Unlock()
	i.listeners.Emit(events.Change, events.ChangeData{Value: v})
}

// Preprocess decodes the uploaded data URI into an image.Image.
func (i *Image) Preprocess(raw json.RawMessage) (any, error) {
	img, err := i.codec.Decode(raw)
	if err != nil {
		return nil, componentErr(err, i.label)
	}
	return img, nil
}

// Postprocess encodes an image.Image result as a png data URI.
func (i *Image) Postprocess(v any) (json.RawMessage, error) {
	if v == nil {
		return json.RawMessage("null"), nil
	}
	img, ok := v.(image.Image)
	if !ok {
		return nil, errors.Ef("components.Image", errors.KindProcess, "postprocess expected image.Image, got %T", v)
	}
	return i.codec.Encode(img)
}

func (i *Image) ConfigMap() map[string]any {
	m := i.baseConfigMap()
	if v := i.Value(); v != nil {
		if raw, err := i.codec.Encode(v); err == nil {
			m["value"] = raw
		}
	}
	return m
}
