package common

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"

	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/reservation_bot/internal/selector"
	"github.com/Freeeeeet/reservation_bot/internal/service"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontStyle определяет стиль шрифта
type FontStyle string

const (
	FontStyleDefault FontStyle = ""
	FontStyleBold    FontStyle = "bold"
)

// Константы размеров и отступов
const (
	imageWidth       = 1200
	headerHeight     = 120
	legendHeight     = 80
	paddingX         = 40
	cellsPerRow      = 6
	cellHeight       = 70.0
	cellGap          = 14.0
	slotBorderRadius = 10.0
	shadowOffset     = 3.0
)

// Константы шрифтов
const (
	titleFontSize      = 34.0
	subtitleFontSize   = 22.0
	slotTimeFontSize   = 26.0
	legendItemFontSize = 18.0
)

// Цветовая схема
var (
	bgColor         = color.RGBA{245, 246, 248, 255}
	textColor       = color.RGBA{80, 85, 90, 220}
	subtitleColor   = color.RGBA{110, 115, 120, 200}
	slotShadowColor = color.RGBA{0, 0, 0, 20}

	slotFreeColor       = color.RGBA{133, 193, 85, 220}
	slotBookedColor     = color.RGBA{255, 182, 193, 255}
	slotOutOfReachColor = color.RGBA{220, 220, 220, 200}
	slotSelectedColor   = color.RGBA{90, 150, 230, 235}
	slotTextColor       = color.RGBA{20, 24, 28, 230}
	slotBookedTextColor = color.RGBA{120, 40, 50, 255}

	legendItemColor = color.RGBA{70, 74, 78, 220}
)

var (
	fontsMu     sync.Mutex
	cachedFonts = make(map[FontStyle]*opentype.Font)
)

// loadFont ставит шрифт Go нужного стиля, basicfont как fallback
func loadFont(dc *gg.Context, size float64, style FontStyle) {
	fontData := goregular.TTF
	if style == FontStyleBold {
		fontData = gobold.TTF
	}

	fontsMu.Lock()
	parsed, ok := cachedFonts[style]
	if !ok {
		var err error
		parsed, err = opentype.Parse(fontData)
		if err != nil {
			fontsMu.Unlock()
			dc.SetFontFace(basicfont.Face7x13)
			return
		}
		cachedFonts[style] = parsed
	}
	fontsMu.Unlock()

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		dc.SetFontFace(basicfont.Face7x13)
		return
	}
	dc.SetFontFace(face)
}

// GenerateAvailabilityImage рисует слоты дня с текущим выбором
func GenerateAvailabilityImage(snap service.Snapshot) ([]byte, error) {
	slots := snap.View.Slots
	rows := (len(slots) + cellsPerRow - 1) / cellsPerRow
	if rows == 0 {
		rows = 1
	}
	height := headerHeight + int(float64(rows)*(cellHeight+cellGap)) + legendHeight

	dc := gg.NewContext(imageWidth, height)
	dc.SetColor(bgColor)
	dc.Clear()

	drawHeader(dc, snap)
	if len(slots) == 0 {
		loadFont(dc, subtitleFontSize, FontStyleDefault)
		dc.SetColor(subtitleColor)
		dc.DrawStringAnchored(selector.MsgNoSlots, imageWidth/2, headerHeight+cellHeight/2, 0.5, 0.5)
	}
	for i, sv := range slots {
		drawSlot(dc, i, sv)
	}
	drawLegend(dc, float64(height-legendHeight))

	return encodeImage(dc)
}

// drawHeader рисует дату и размер компании
func drawHeader(dc *gg.Context, snap service.Snapshot) {
	loadFont(dc, titleFontSize, FontStyleBold)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(formatting.FormatBookingDate(snap.Date), paddingX, headerHeight/2-10, 0, 0)

	subtitle := fmt.Sprintf("Table for %s · closes at %s", formatting.Guests(snap.PartySize), snap.View.ClosingTime)
	if snap.View.Summary != "" {
		subtitle = snap.View.Summary
	}
	loadFont(dc, subtitleFontSize, FontStyleDefault)
	dc.SetColor(subtitleColor)
	dc.DrawStringAnchored(subtitle, paddingX, headerHeight/2+26, 0, 0)
}

// drawSlot рисует один слот в сетке
func drawSlot(dc *gg.Context, index int, sv selector.SlotView) {
	cellWidth := (float64(imageWidth-2*paddingX) - cellGap*(cellsPerRow-1)) / cellsPerRow
	x := float64(paddingX) + float64(index%cellsPerRow)*(cellWidth+cellGap)
	y := float64(headerHeight) + float64(index/cellsPerRow)*(cellHeight+cellGap)

	fillColor := slotColor(sv)

	dc.SetColor(slotShadowColor)
	dc.DrawRoundedRectangle(x+shadowOffset, y+shadowOffset, cellWidth, cellHeight, slotBorderRadius)
	dc.Fill()

	dc.SetColor(fillColor)
	dc.DrawRoundedRectangle(x, y, cellWidth, cellHeight, slotBorderRadius)
	dc.Fill()

	dc.SetColor(darkenColor(fillColor, 0.8))
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(x, y, cellWidth, cellHeight, slotBorderRadius)
	dc.Stroke()

	txtColor := slotTextColor
	if !sv.VisuallyAvailable {
		txtColor = slotBookedTextColor
	}
	style := FontStyleDefault
	if sv.Active {
		style = FontStyleBold
	}
	loadFont(dc, slotTimeFontSize, style)
	dc.SetColor(txtColor)
	dc.DrawStringAnchored(sv.Time.String(), x+cellWidth/2, y+cellHeight/2, 0.5, 0.35)
}

// slotColor цвет слота по состоянию отрисовки
func slotColor(sv selector.SlotView) color.RGBA {
	switch {
	case sv.Active || sv.InRange:
		return slotSelectedColor
	case !sv.VisuallyAvailable:
		return slotBookedColor
	case !sv.Clickable:
		return slotOutOfReachColor
	default:
		return slotFreeColor
	}
}

// darkenColor затемняет цвет на указанный множитель
func darkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// drawLegend рисует легенду снизу
func drawLegend(dc *gg.Context, top float64) {
	legendItems := []struct {
		Label string
		Clr   color.Color
	}{
		{"Free", slotFreeColor},
		{"Booked", slotBookedColor},
		{"Out of reach", slotOutOfReachColor},
		{"Selected", slotSelectedColor},
	}

	boxW := 26.0
	boxH := 18.0
	x := float64(paddingX)
	y := top + legendHeight/2 - boxH/2

	loadFont(dc, legendItemFontSize, FontStyleDefault)
	for _, item := range legendItems {
		dc.SetColor(item.Clr)
		dc.DrawRoundedRectangle(x, y, boxW, boxH, 4)
		dc.Fill()

		dc.SetColor(legendItemColor)
		dc.DrawStringAnchored(item.Label, x+boxW+8, y+boxH/2, 0, 0.35)
		w, _ := dc.MeasureString(item.Label)
		x += boxW + 8 + w + 30
	}
}

// encodeImage кодирует изображение в PNG
func encodeImage(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
