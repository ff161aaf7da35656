package components

import (
	"fmt"

	"agenz_site/content"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	defaultTickerSpeed      = 22
	defaultTickerLogoHeight = 56
	defaultTickerCardHeight = 96
)

// LogoTicker renders the logo sequence twice so the strip can loop without a seam.
// app.js measures the first sequence and writes --ticker-distance; until then the
// strip stays still, as it does for reduced-motion visitors.
func LogoTicker(t content.Ticker) g.Node {
	if len(t.Logos) == 0 {
		return nil
	}
	if t.Speed <= 0 {
		t.Speed = defaultTickerSpeed
	}
	if t.LogoHeight <= 0 {
		t.LogoHeight = defaultTickerLogoHeight
	}
	if t.CardHeight <= 0 {
		t.CardHeight = defaultTickerCardHeight
	}

	return h.Section(
		h.Class("logo-ticker"),
		g.Attr("data-ticker", ""),
		h.Style(fmt.Sprintf("--ticker-duration: %ds; --ticker-logo-height: %s; --ticker-card-height: %s",
			t.Speed, px(t.LogoHeight), px(t.CardHeight))),
		h.Div(
			h.Class("container"),
			g.If(t.Label != "", h.Div(h.Class("ticker-label"), h.Span(g.Text(t.Label)))),
			h.Div(
				h.Class("ticker-window"),
				h.Div(
					h.Class("ticker-track"),
					tickerSequence(t.Logos, false),
					tickerSequence(t.Logos, true),
				),
			),
		),
	)
}

func tickerSequence(logos []content.Logo, duplicate bool) g.Node {
	return h.Div(
		h.Class("ticker-sequence"),
		g.If(!duplicate, g.Attr("data-ticker-segment", "")),
		g.If(duplicate, g.Attr("aria-hidden", "true")),
		g.Group(g.Map(logos, func(logo content.Logo) g.Node {
			return logoCard(logo, duplicate)
		})),
	)
}

func logoCard(logo content.Logo, duplicate bool) g.Node {
	card := h.Div(
		h.Class("logo-card"),
		h.Img(
			h.Src(logo.Src),
			h.Alt(logo.Alt),
			h.Loading("lazy"),
			g.Attr("draggable", "false"),
			g.Attr("data-dim-on-error", ""),
		),
	)
	if logo.Href == "" {
		return card
	}
	return h.A(
		h.Href(logo.Href),
		g.Attr("aria-label", logo.Alt),
		h.Target("_blank"),
		h.Rel("noreferrer"),
		g.If(duplicate, h.TabIndex("-1")),
		card,
	)
}
