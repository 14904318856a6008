package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"

	// Регистрируем декодеры поддерживаемых форматов
	_ "image/gif"
	_ "image/png"
)

// JPEGQuality качество итогового JPEG
const JPEGQuality = 85

// Normalize приводит загруженное изображение к единой форме хранения:
// декодирует (jpeg/png/gif), убирает альфа-канал поверх белого фона
// и перекодирует в JPEG.
// Возвращает ошибку, если данные не являются изображением.
func Normalize(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("image data is empty")
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	// Рисуем поверх белого фона: у JPEG нет альфа-канала
	bounds := img.Bounds()
	flat := image.NewRGBA(bounds)
	draw.Draw(flat, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(flat, bounds, img, bounds.Min, draw.Over)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg (source format %s): %w", format, err)
	}

	return buf.Bytes(), nil
}
