package poster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/budgettech/streamsaver/internal/cli"
)

// Poster dimensions, 9:16 for stories/reels.
const (
	Width  = 1080
	Height = 1920
)

var (
	bgColor     = color.NRGBA{R: 11, G: 18, B: 32, A: 255}
	panelColor  = color.NRGBA{R: 15, G: 27, B: 46, A: 255}
	panelColor2 = color.NRGBA{R: 10, G: 20, B: 36, A: 255}
	textColor   = color.NRGBA{R: 229, G: 231, B: 235, A: 255}
	mutedColor  = color.NRGBA{R: 156, G: 163, B: 175, A: 255}
	greenColor  = color.NRGBA{R: 34, G: 197, B: 94, A: 255}
)

type faces struct {
	title font.Face
	big   font.Face
	mid   font.Face
	small font.Face
}

func loadFaces() (*faces, error) {
	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("poster: parsing font: %w", err)
	}

	mk := func(size float64) (font.Face, error) {
		return opentype.NewFace(ft, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	}

	var f faces
	if f.title, err = mk(64); err != nil {
		return nil, err
	}
	if f.big, err = mk(54); err != nil {
		return nil, err
	}
	if f.mid, err = mk(36); err != nil {
		return nil, err
	}
	if f.small, err = mk(28); err != nil {
		return nil, err
	}
	return &f, nil
}

// Render draws the summary card and writes it as a PNG.
func Render(w io.Writer, s Summary) error {
	f, err := loadFaces()
	if err != nil {
		return err
	}

	img := imaging.New(Width, Height, bgColor)

	// Header panel
	fillRect(img, 60, 60, Width-60, 220, panelColor)
	drawText(img, f.title, textColor, 90, 150, s.Title)
	if lines := wrap(f.mid, s.Subtitle, Width-180); len(lines) > 0 {
		drawText(img, f.mid, mutedColor, 90, 200, lines[0])
	}

	// Metrics panel
	fillRect(img, 60, 260, Width-60, 1180, panelColor2)
	y := 340
	metric := func(label, value string) {
		drawText(img, f.mid, mutedColor, 90, y, label)
		y += 64
		drawText(img, f.big, textColor, 90, y, value)
		y += 86
	}

	metric("Monthly spend", cli.FormatMoney(s.MonthlyTotal))
	metric("Monthly budget", cli.FormatMoney(s.Budget))
	if s.HasRemaining {
		metric("Remaining", cli.FormatMoney(s.Remaining))
	}
	if s.BestPerUse != "" {
		metric("Best deal (per use)", s.BestPerUse)
	}
	if s.WorstPerUse != "" {
		metric("Biggest waste (per use)", s.WorstPerUse)
	}

	// Challenge panel
	fillRect(img, 60, 1230, Width-60, 1520, panelColor)
	drawText(img, f.mid, mutedColor, 90, 1300, "Challenge")
	drawText(img, f.big, textColor, 90, 1380, s.ChallengeTitle)
	drawText(img, f.mid, greenColor, 90, 1450, "Streak: "+cli.FormatStreak(s.StreakDays))

	// Footer panel
	fillRect(img, 60, 1580, Width-60, 1860, panelColor2)
	fy := 1650
	for i, line := range wrap(f.mid, s.Footer, Width-180) {
		if i >= 3 {
			break
		}
		drawText(img, f.mid, textColor, 90, fy, line)
		fy += 48
	}
	stamp := s.Title + " • " + s.Date.Format("02/01/2006")
	drawText(img, f.small, mutedColor, 90, 1830, stamp)

	return imaging.Encode(w, img, imaging.PNG)
}

func fillRect(img draw.Image, x0, y0, x1, y1 int, c color.Color) {
	draw.Draw(img, image.Rect(x0, y0, x1, y1), image.NewUniform(c), image.Point{}, draw.Src)
}

func drawText(img draw.Image, face font.Face, c color.Color, x, y int, text string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// wrap splits text into lines that fit maxWidth when drawn with face.
func wrap(face font.Face, text string, maxWidth int) []string {
	var lines []string
	cur := ""
	for _, word := range strings.Fields(text) {
		test := strings.TrimSpace(cur + " " + word)
		if font.MeasureString(face, test).Ceil() <= maxWidth {
			cur = test
			continue
		}
		if cur != "" {
			lines = append(lines, cur)
		}
		cur = word
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
