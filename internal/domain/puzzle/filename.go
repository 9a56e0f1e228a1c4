package puzzle

import (
	"path/filepath"
	"strings"

	"github.com/corey/adco/internal/domain/option"
	"github.com/corey/adco/internal/domain/parsec"
)

// dayPrefix matches "day7", "day07", "day-7" or "day_07" at the start of a
// file name; whatever follows is ignored.
var dayPrefix = parsec.Map(
	parsec.Series3(parsec.String("day"), parsec.Optional(parsec.OneOf('-', '_')), parsec.Int()),
	func(v parsec.Tuple3[string, option.Option[rune], int]) int { return v.V3 },
)

// DayFromFileName reports which day an input file belongs to, judging by
// its base name ("inputs/day07.txt", "Day7-sample.txt").
func DayFromFileName(path string) (int, bool) {
	name := strings.ToLower(filepath.Base(path))
	res, err := parsec.ParsePartial(dayPrefix, name, 0)
	if err != nil || res.Value < 1 {
		return 0, false
	}
	return res.Value, true
}
