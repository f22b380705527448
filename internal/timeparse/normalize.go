package timeparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// clockExpr matches a Chinese clock-time phrase: an optional period-of-day
// word, an hour in digits or Chinese numerals, and an optional minute part
// ("下午3点20分", "中午12点半", "昨天下午三点").
var clockExpr = regexp.MustCompile(`(凌晨|清晨|早上|早晨|上午|中午|正午|下午|傍晚|晚上|今晚)?([0-9一二两三四五六七八九十]{1,3})点(半|[0-9一二三四五六七八九十]{1,3})?[分钟]*`)

// datedExpr matches expressions that carry an explicit day or a relative
// offset, so a resolved future instant is intentional rather than an
// ambiguous bare clock time.
var datedExpr = regexp.MustCompile(`\d{4}|\d{1,2}\s*月|\d{1,2}\s*[号日]|今天|明天|昨天|前天|后天|小时后|分钟后|天后|周[一二三四五六日天]|星期|礼拜|(?i:today|tomorrow|yesterday|monday|tuesday|wednesday|thursday|friday|saturday|sunday|next|later|\bin\b)`)

// normalizeClock rewrites Chinese clock-time phrases inside expr into 24h
// HH:MM tokens, leaving the surrounding date words for the date parser:
// "昨天下午3点" becomes "昨天 15:00". Phrases it cannot read are left alone.
func normalizeClock(expr string) string {
	out := clockExpr.ReplaceAllStringFunc(expr, func(m string) string {
		parts := clockExpr.FindStringSubmatch(m)
		hour, ok := zhNumber(parts[2])
		if !ok || hour > 24 {
			return m
		}
		hour = foldPeriod(parts[1], hour)

		minute := 0
		switch {
		case parts[3] == "半":
			minute = 30
		case parts[3] != "":
			v, ok := zhNumber(parts[3])
			if !ok || v > 59 {
				return m
			}
			minute = v
		}
		return fmt.Sprintf(" %02d:%02d ", hour%24, minute)
	})
	return strings.Join(strings.Fields(out), " ")
}

// foldPeriod maps a period-of-day word plus a 12h hour onto the 24h clock.
func foldPeriod(period string, hour int) int {
	switch period {
	case "凌晨", "清晨":
		if hour == 12 {
			return 0
		}
		return hour
	case "中午", "正午":
		if hour <= 2 {
			return hour + 12
		}
		return hour
	case "下午", "傍晚", "晚上", "今晚":
		if hour < 12 {
			return hour + 12
		}
		return hour
	default:
		return hour
	}
}

var zhDigits = map[rune]int{
	'零': 0, '一': 1, '二': 2, '两': 2, '三': 3, '四': 4,
	'五': 5, '六': 6, '七': 7, '八': 8, '九': 9,
}

// zhNumber reads an integer written in ASCII digits or Chinese numerals up
// to 99 ("十二", "二十三", "两").
func zhNumber(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v, true
	}
	n := 0
	afterTens := false
	for _, r := range s {
		if r == '十' {
			if afterTens || n > 9 {
				return 0, false
			}
			if n == 0 {
				n = 1
			}
			n *= 10
			afterTens = true
			continue
		}
		d, ok := zhDigits[r]
		if !ok {
			return 0, false
		}
		if afterTens {
			n += d
			afterTens = false
		} else if n != 0 {
			return 0, false
		} else {
			n = d
		}
	}
	return n, true
}
