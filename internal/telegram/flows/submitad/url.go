package submitad

import "regexp"

// Ссылка принимается только со схемой http/https и точкой после начала хоста:
// "https://example.com/x" проходит, "example.com" и "http://a" — нет.
var adURLPattern = regexp.MustCompile(`(?i)^https?://\S+\.\S+`)

func IsValidAdURL(s string) bool {
	return adURLPattern.MatchString(s)
}
