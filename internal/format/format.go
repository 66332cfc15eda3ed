// Package format turns axis and series values into label text.
package format

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Func rewrites the label text of value. Funcs are applied in order, each one
// receiving the text produced by the previous.
type Func func(value float64, text string) string

var printer = message.NewPrinter(language.English)

// FromPattern builds format functions from a sample number such as "0.00",
// "1,000" or "1,000.00". An empty pattern yields no functions.
func FromPattern(pattern string) []Func {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil
	}

	var funcs []Func
	decimals := -1
	if dot := strings.LastIndex(pattern, "."); dot >= 0 {
		decimals = len(pattern) - dot - 1
		funcs = append(funcs, Decimals(decimals))
	}
	if strings.Contains(pattern, ",") {
		funcs = append(funcs, Thousands(decimals))
	}
	return funcs
}

// Decimals fixes the number of fraction digits
func Decimals(n int) Func {
	return func(value float64, _ string) string {
		return strconv.FormatFloat(value, 'f', n, 64)
	}
}

// Thousands inserts grouping separators. A negative decimals value keeps the
// fraction digits already present in the text.
func Thousands(decimals int) Func {
	return func(value float64, text string) string {
		n := decimals
		if n < 0 {
			n = fractionDigits(text)
		}
		return printer.Sprint(number.Decimal(value, number.Scale(n)))
	}
}

// Affix wraps the text with a prefix and a suffix
func Affix(prefix, suffix string) Func {
	return func(_ float64, text string) string {
		return prefix + text + suffix
	}
}

// Value formats a single value through funcs
func Value(value float64, funcs []Func) string {
	text := Plain(value)
	for _, fn := range funcs {
		text = fn(value, text)
	}
	return text
}

// Values formats values through funcs
func Values(values []float64, funcs []Func) []string {
	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = Value(v, funcs)
	}
	return labels
}

// Plain renders a value without trailing zeros
func Plain(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func fractionDigits(text string) int {
	dot := strings.LastIndex(text, ".")
	if dot < 0 {
		return 0
	}
	return len(text) - dot - 1
}
