// Package render draws tooltip-style item cards as PNG images for
// attachment to published orders.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/guildboard/blackboard/internal/models"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	cardWidth   = 280
	padding     = 12
	lineHeight  = 16
	maxLineRune = 40
)

var (
	backgroundColor = color.RGBA{R: 10, G: 14, B: 24, A: 255}
	borderColor     = color.RGBA{R: 94, G: 94, B: 110, A: 255}
	bodyColor       = color.RGBA{R: 228, G: 228, B: 228, A: 255}
	goldColor       = color.RGBA{R: 255, G: 209, B: 0, A: 255}
	greenColor      = color.RGBA{R: 30, G: 255, B: 0, A: 255}
	grayColor       = color.RGBA{R: 157, G: 157, B: 157, A: 255}
)

// qualityColors indexes the tooltip name color by item quality tier
var qualityColors = []color.RGBA{
	{R: 157, G: 157, B: 157, A: 255}, // poor
	{R: 255, G: 255, B: 255, A: 255}, // common
	{R: 30, G: 255, B: 0, A: 255},    // uncommon
	{R: 0, G: 112, B: 221, A: 255},   // rare
	{R: 163, G: 53, B: 238, A: 255},  // epic
	{R: 255, G: 128, B: 0, A: 255},   // legendary
	{R: 230, G: 204, B: 128, A: 255}, // artifact
	{R: 0, G: 204, B: 255, A: 255},   // heirloom
}

type cardLine struct {
	text  string
	color color.RGBA
}

// qualityColor returns the name color for a quality tier; unknown
// tiers render like common items
func qualityColor(quality int) color.RGBA {
	if quality < 0 || quality >= len(qualityColors) {
		return qualityColors[1]
	}
	return qualityColors[quality]
}

// ItemCard renders a tooltip card for an item as a PNG
func ItemCard(info *models.ItemInfo) ([]byte, error) {
	if info == nil {
		return nil, errors.New("item info cannot be nil")
	}

	lines := buildLines(info)

	height := padding*2 + len(lines)*lineHeight
	img := image.NewRGBA(image.Rect(0, 0, cardWidth, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)
	drawBorder(img)

	drawer := &font.Drawer{
		Dst:  img,
		Face: basicfont.Face7x13,
	}
	y := padding + lineHeight - 4
	for _, line := range lines {
		drawer.Src = image.NewUniform(line.color)
		drawer.Dot = fixed.P(padding, y)
		drawer.DrawString(line.text)
		y += lineHeight
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode item card: %w", err)
	}
	return buf.Bytes(), nil
}

// buildLines lays out the tooltip body in the usual order: name,
// binding, weapon numbers, stats, requirements, effects, vendor price
func buildLines(info *models.ItemInfo) []cardLine {
	var lines []cardLine
	add := func(text string, c color.RGBA) {
		for _, wrapped := range wrapLine(text, maxLineRune) {
			lines = append(lines, cardLine{text: wrapped, color: c})
		}
	}

	add(info.Name, qualityColor(info.Quality))
	if info.ItemLevel > 0 {
		add(fmt.Sprintf("Item Level %d", info.ItemLevel), goldColor)
	}
	if info.Binding != "" {
		add(info.Binding, bodyColor)
	}
	if info.InventoryType != "" || info.Subclass != "" {
		add(joinNonEmpty(info.InventoryType, info.Subclass), bodyColor)
	}
	if info.DamageText != "" {
		add(info.DamageText, bodyColor)
	}
	if info.SpeedText != "" {
		add(info.SpeedText, bodyColor)
	}
	if info.ArmorText != "" {
		add(info.ArmorText, bodyColor)
	}
	for _, stat := range info.Stats {
		add(stat, bodyColor)
	}
	if info.DurabilityText != "" {
		add(info.DurabilityText, bodyColor)
	}
	if info.ReqLevel > 0 {
		add(fmt.Sprintf("Requires Level %d", info.ReqLevel), bodyColor)
	}
	if info.EquipText != "" {
		add(info.EquipText, greenColor)
	}
	if info.UseText != "" {
		add(info.UseText, greenColor)
	}
	if info.MaxStack > 1 {
		add(fmt.Sprintf("Max Stack: %d", info.MaxStack), grayColor)
	}
	if info.VendorSellPrice > 0 {
		add(fmt.Sprintf("Sell Price: %s", FormatMoney(info.VendorSellPrice)), grayColor)
	}

	return lines
}

// FormatMoney renders a copper amount as gold/silver/copper
func FormatMoney(copper int64) string {
	gold := copper / 10000
	silver := (copper % 10000) / 100
	rest := copper % 100

	switch {
	case gold > 0:
		return fmt.Sprintf("%dg %ds %dc", gold, silver, rest)
	case silver > 0:
		return fmt.Sprintf("%ds %dc", silver, rest)
	default:
		return fmt.Sprintf("%dc", rest)
	}
}

func joinNonEmpty(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return a + " " + b
}

// wrapLine breaks text on spaces so no line exceeds the limit; a
// single overlong word stays on its own line
func wrapLine(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	var out []string
	line := ""
	for _, word := range splitWords(text) {
		if line == "" {
			line = word
			continue
		}
		if len([]rune(line))+1+len([]rune(word)) > limit {
			out = append(out, line)
			line = word
			continue
		}
		line += " " + word
	}
	if line != "" {
		out = append(out, line)
	}
	return out
}

func splitWords(text string) []string {
	var words []string
	word := ""
	for _, r := range text {
		if r == ' ' {
			if word != "" {
				words = append(words, word)
				word = ""
			}
			continue
		}
		word += string(r)
	}
	if word != "" {
		words = append(words, word)
	}
	return words
}

func drawBorder(img *image.RGBA) {
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		img.Set(x, b.Min.Y, borderColor)
		img.Set(x, b.Max.Y-1, borderColor)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		img.Set(b.Min.X, y, borderColor)
		img.Set(b.Max.X-1, y, borderColor)
	}
}
