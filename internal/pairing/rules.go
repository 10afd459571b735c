package pairing

import "strings"

type Rule struct {
	ID    string
	Label string
}

// Rules is the fixed set of special rules the bulk pairing endpoint understands,
// in the order they are sent.
var Rules = []Rule{
	{ID: "noAbort", Label: "Players cannot abort the game"},
	{ID: "noRematch", Label: "Players cannot offer a rematch"},
	{ID: "noGiveTime", Label: "Players cannot give extra time"},
	{ID: "noClaimWin", Label: "Players cannot claim the win if the opponent leaves"},
	{ID: "noEarlyDraw", Label: "Players cannot offer a draw before move 30"},
}

func IsRule(id string) bool {
	for _, r := range Rules {
		if r.ID == id {
			return true
		}
	}
	return false
}

// RuleList joins the recognized ids among enabled. Unknown ids are dropped.
func RuleList(enabled []string) string {
	on := make(map[string]bool, len(enabled))
	for _, id := range enabled {
		on[strings.TrimSpace(id)] = true
	}
	ids := make([]string, 0, len(Rules))
	for _, r := range Rules {
		if on[r.ID] {
			ids = append(ids, r.ID)
		}
	}
	return strings.Join(ids, ",")
}

type Variant struct {
	Key   string
	Label string
}

var Variants = []Variant{
	{Key: "standard", Label: "Standard"},
	{Key: "chess960", Label: "Chess960"},
	{Key: "crazyhouse", Label: "Crazyhouse"},
	{Key: "kingOfTheHill", Label: "King of the Hill"},
	{Key: "threeCheck", Label: "Three-check"},
	{Key: "antichess", Label: "Antichess"},
	{Key: "atomic", Label: "Atomic"},
	{Key: "horde", Label: "Horde"},
	{Key: "racingKings", Label: "Racing Kings"},
	{Key: "fromPosition", Label: "From position"},
}

// NormalizeVariant returns key if it is a known variant, "standard" otherwise.
func NormalizeVariant(key string) string {
	key = strings.TrimSpace(key)
	for _, v := range Variants {
		if v.Key == key {
			return key
		}
	}
	return "standard"
}
