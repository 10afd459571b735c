package pairing

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// layouts produced by <input type="datetime-local">
var localLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

var naturalParser = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

// ParseMillis converts a datetime typed in the form into epoch milliseconds.
// An empty value yields 0, meaning the field is left out of the request.
func ParseMillis(value string, loc *time.Location, now time.Time) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.UnixMilli(), nil
		}
	}
	if t, err := dateparse.ParseIn(value, loc); err == nil {
		return t.UnixMilli(), nil
	}
	r, err := naturalParser.Parse(value, now.In(loc))
	if err != nil {
		return 0, fmt.Errorf("Invalid date %q: %w", value, err)
	}
	// the phrase has to be the whole value, not a date found inside other text
	if r == nil || r.Index != 0 || len(r.Text) != len(value) {
		return 0, fmt.Errorf("Invalid date %q", value)
	}
	return r.Time.In(loc).UnixMilli(), nil
}
