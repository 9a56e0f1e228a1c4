package cmd

import (
	"fmt"
	"time"

	"github.com/corey/adco/internal/app"
	"github.com/corey/adco/internal/domain/parsec"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// paint wraps s in an ANSI color when color is on.
func paint(s, code string, color bool) string {
	if !color {
		return s
	}
	return code + s + colorReset
}

// formatResult renders a solved part. Without color it is just the answer,
// so output can be piped.
//
//	★ day 7 part a: 4  (12ms)
//	★ day 7 part b: 32  (cached)
func formatResult(res app.Result, color bool) string {
	if !color {
		return res.Answer
	}
	note := res.Elapsed.Round(time.Microsecond).String()
	if res.Cached {
		note = "cached"
	}
	return fmt.Sprintf("%s day %d part %s: %s  %s",
		paint("★", colorYellow, true), res.Day, res.Part,
		paint(res.Answer, colorBold, true), paint("("+note+")", colorGray, true))
}

// formatParseError renders a parse failure as name:line:col plus the windowed
// message.
//
//	day08.txt:2:1: Error parsing <0007>: ...
func formatParseError(name string, err *parsec.Error, color bool) string {
	loc := fmt.Sprintf("%s:%s:", name, err.Position())
	return paint(loc, colorCyan, color) + " " + err.Error()
}
