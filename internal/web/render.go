package web

import (
	"net/url"
	"strings"
	"time"

	"arbiter/internal/pairing"
	"arbiter/internal/schedule"
)

const resultTimeLayout = "Mon 2 Jan 2006, 15:04 MST"

type VariantOption struct {
	Key      string
	Label    string
	Selected bool
}

type RuleOption struct {
	ID      string
	Label   string
	Checked bool
}

type GameRow struct {
	ID       string
	URL      string
	White    string
	WhiteURL string
	Black    string
	BlackURL string
}

type ResultView struct {
	ID            string
	PairAt        string
	StartClocksAt string
	Games         []GameRow
	Board         [][]SquareView
}

// ScheduleView is everything schedule_games.html draws.
type ScheduleView struct {
	Page     string
	Username string
	Form     schedule.Form
	Variants []VariantOption
	Rules    []RuleOption

	Error  string
	Result *ResultView
}

// buildScheduleView projects a page onto its view. It reads the page and
// nothing else.
func buildScheduleView(page *schedule.Page, remoteURL string, loc *time.Location) ScheduleView {
	view := ScheduleView{
		Page:     "schedule",
		Form:     page.Form,
		Variants: variantOptions(page.Form.Variant),
		Rules:    ruleOptions(page.Form.Rules),
	}
	switch page.Feedback.Kind() {
	case schedule.FeedbackFailure:
		view.Error, _ = page.Feedback.Message()
	case schedule.FeedbackSuccess:
		result, _ := page.Feedback.Result()
		view.Result = buildResultView(result, page.Form.FEN, remoteURL, loc)
	}
	return view
}

func buildResultView(result pairing.BulkPairing, fen, remoteURL string, loc *time.Location) *ResultView {
	host := strings.TrimRight(remoteURL, "/")
	rv := &ResultView{
		ID:            result.ID,
		PairAt:        formatMillis(result.PairAt, loc, "Now"),
		StartClocksAt: formatMillis(result.StartClocksAt, loc, "Player first moves"),
		Games:         make([]GameRow, 0, len(result.Games)),
	}
	for _, g := range result.Games {
		rv.Games = append(rv.Games, GameRow{
			ID:       g.ID,
			URL:      host + "/" + url.PathEscape(g.ID),
			White:    g.White,
			WhiteURL: profileURL(host, g.White),
			Black:    g.Black,
			BlackURL: profileURL(host, g.Black),
		})
	}
	if fen != "" {
		if pos, err := pairing.ValidateFEN(fen); err == nil {
			rv.Board = boardFromPosition(pos)
		}
	}
	return rv
}

func profileURL(host, username string) string {
	return host + "/@/" + url.PathEscape(username)
}

func formatMillis(ms int64, loc *time.Location, fallback string) string {
	if ms <= 0 {
		return fallback
	}
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(ms).In(loc).Format(resultTimeLayout)
}

func variantOptions(selected string) []VariantOption {
	selected = pairing.NormalizeVariant(selected)
	out := make([]VariantOption, 0, len(pairing.Variants))
	for _, v := range pairing.Variants {
		out = append(out, VariantOption{Key: v.Key, Label: v.Label, Selected: v.Key == selected})
	}
	return out
}

func ruleOptions(enabled []string) []RuleOption {
	on := make(map[string]bool, len(enabled))
	for _, id := range enabled {
		on[id] = true
	}
	out := make([]RuleOption, 0, len(pairing.Rules))
	for _, r := range pairing.Rules {
		out = append(out, RuleOption{ID: r.ID, Label: r.Label, Checked: on[r.ID]})
	}
	return out
}
