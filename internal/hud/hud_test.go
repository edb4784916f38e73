package hud

import (
	"testing"

	"github.com/tomz197/asteroids-arcade/internal/physics"
)

var field = physics.Bounds{Width: 900, Height: 700}

func TestDrawAndClearHUD(t *testing.T) {
	b := NewBoard()
	p := NewPresenter(b, field)

	p.DrawHUD(120, 2, 3)
	if got := b.Text(90, 20); got != "Score: 120" {
		t.Errorf("score line = %q", got)
	}
	if got := b.Text(90, 40); got != "Lives: 2" {
		t.Errorf("lives line = %q", got)
	}
	if got := b.Text(90, 60); got != "Wave: 3" {
		t.Errorf("wave line = %q", got)
	}

	p.ClearHUD()
	if b.Len() != 0 {
		t.Fatalf("board has %d texts after ClearHUD", b.Len())
	}
}

func TestShowCenteredLayout(t *testing.T) {
	b := NewBoard()
	p := NewPresenter(b, field)

	p.ShowCentered("ASTEROIDS\nPress ENTER to start", 42)
	// lineHeight 48, startY = 350 - 48 = 302
	want := map[Anchor]string{
		{450, 302}: "ASTEROIDS",
		{451, 303}: "ASTEROIDS",
		{450, 350}: "Press ENTER to start",
		{451, 351}: "Press ENTER to start",
	}
	if b.Len() != len(want) {
		t.Fatalf("board has %d texts, want %d", b.Len(), len(want))
	}
	for a, text := range want {
		if got := b.Text(a.X, a.Y); got != text {
			t.Errorf("text at %v = %q, want %q", a, got, text)
		}
	}
	if p.Banner() != "ASTEROIDS\nPress ENTER to start" {
		t.Errorf("Banner() = %q", p.Banner())
	}
}

func TestShowCenteredReplacesPreviousBanner(t *testing.T) {
	b := NewBoard()
	p := NewPresenter(b, field)
	p.DrawHUD(0, 3, 1)

	p.ShowCentered(TitleBanner, 42)
	p.ShowCentered(RespawnBanner, 36)
	// Single line: startY = 350 - 21 = 329
	if got := b.Text(450, 329); got != RespawnBanner {
		t.Fatalf("respawn banner = %q", got)
	}
	if b.Len() != 3+2 {
		t.Fatalf("board has %d texts, want HUD plus one shadowed line", b.Len())
	}

	p.ClearCentered()
	if b.Len() != 3 {
		t.Fatalf("ClearCentered left %d texts, want only the HUD", b.Len())
	}
	if p.Banner() != "" {
		t.Fatalf("Banner() = %q after clear", p.Banner())
	}
}

func TestShowCenteredSameBannerIsStable(t *testing.T) {
	b := NewBoard()
	p := NewPresenter(b, field)
	p.ShowCentered(GameOverBanner, 36)
	before := b.Len()
	for i := 0; i < 5; i++ {
		p.ShowCentered(GameOverBanner, 36)
	}
	if b.Len() != before || len(p.banner) != before {
		t.Fatalf("repeated banner grew the board: %d -> %d", before, b.Len())
	}
}

func TestBoardEachOrder(t *testing.T) {
	b := NewBoard()
	b.ShowText("c", 5, 30)
	b.ShowText("a", 9, 10)
	b.ShowText("b", 1, 30)
	b.ShowText("gone", 2, 2)
	b.ShowText("", 2, 2)

	var got string
	b.Each(func(_ Anchor, text string) { got += text })
	if got != "abc" {
		t.Fatalf("Each order = %q, want %q", got, "abc")
	}
}
