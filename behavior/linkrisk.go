package behavior

import (
	"net"
	"net/url"
	"strings"
)

// defaultSuspiciousDomains is the built-in shortener/redirector block list
// (design doc §4.6). A caller extends, never replaces, this list via
// model.Settings.SuspiciousDomains.
var defaultSuspiciousDomains = []string{
	"bit.ly", "tinyurl.com", "t.co", "goo.gl", "ow.ly", "is.gd",
	"buff.ly", "rebrand.ly", "cutt.ly", "shorturl.at", "rb.gy",
}

// defaultTyposquatBrands is the built-in brand list typosquat detection
// compares hosts against (design doc §4.6). Extended, not replaced, via
// model.Settings.TyposquatBrands.
var defaultTyposquatBrands = []string{
	"google", "paypal", "coinbase", "binance", "metamask", "apple",
	"microsoft", "twitter", "discord", "telegram", "opensea",
}

// scamKeywordConjunctions are pairs of substrings whose joint presence in a
// URL (host, path, or query) is a strong phishing/mini-app-scam tell.
var scamKeywordConjunctions = [][2]string{
	{"airdrop", "claim"}, {"wallet", "connect"}, {"free", "mint"},
	{"verify", "wallet"}, {"bonus", "claim"},
}

// isSuspiciousDomain reports whether raw's host is a known shortener
// (exact or subdomain match), a punycode (IDNA, "xn--") host, or an IPv4
// literal host (design doc §4.6).
func isSuspiciousDomain(raw string, extraDomains []string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())

	if isPunycodeOrIPLiteral(host) && !strings.Contains(host, ":") {
		return true
	}
	for _, blocked := range append(append([]string{}, defaultSuspiciousDomains...), extraDomains...) {
		if host == blocked || strings.HasSuffix(host, "."+blocked) {
			return true
		}
	}
	return false
}

func isPunycodeOrIPLiteral(host string) bool {
	if strings.HasPrefix(host, "xn--") || strings.Contains(host, ".xn--") {
		return true
	}
	return net.ParseIP(host) != nil
}

// isLikelyPhishingUrl reports whether raw matches any of the phishing
// tells in design doc §4.6: punycode/IP-literal host, >=5 labels, userinfo in
// the URL, a typosquat of a known brand, or a scam keyword conjunction.
func isLikelyPhishingUrl(raw string, extraBrands []string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())

	if isPunycodeOrIPLiteral(host) {
		return true
	}
	if labels := strings.Split(host, "."); len(labels) >= 5 {
		return true
	}
	if u.User != nil {
		return true
	}
	if isTyposquat(host, extraBrands) {
		return true
	}
	return hasScamKeywordConjunction(strings.ToLower(u.Host + u.Path + "?" + u.RawQuery))
}

// isTyposquat reports whether host's second-level label is a near-miss of
// a known brand: Levenshtein distance 1 in general, or 2 for labels of
// length >= 6, or a digit-for-letter substitution of the brand.
func isTyposquat(host string, extraBrands []string) bool {
	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}
	secondLevel := labels[len(labels)-2]
	if secondLevel == "" {
		return false
	}

	brands := append(append([]string{}, defaultTyposquatBrands...), extraBrands...)
	for _, brand := range brands {
		if secondLevel == brand {
			continue // exact match is not a typosquat
		}
		maxDist := 1
		if len(secondLevel) >= 6 {
			maxDist = 2
		}
		if levenshtein(secondLevel, brand) <= maxDist {
			return true
		}
		if levenshtein(digitToLetter(secondLevel), brand) <= maxDist {
			return true
		}
	}
	return false
}

// digitToLetter substitutes common leetspeak digit/letter look-alikes
// (0->o, 1->l, 3->e, 4->a, 5->s, 7->t) so a typosquat like "g00gle" is
// compared against "google" on equal footing.
func digitToLetter(s string) string {
	replacer := strings.NewReplacer("0", "o", "1", "l", "3", "e", "4", "a", "5", "s", "7", "t")
	return replacer.Replace(s)
}

func hasScamKeywordConjunction(haystack string) bool {
	for _, pair := range scamKeywordConjunctions {
		if strings.Contains(haystack, pair[0]) && strings.Contains(haystack, pair[1]) {
			return true
		}
	}
	return false
}

// levenshtein computes the edit distance between a and b.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			min := del
			if ins < min {
				min = ins
			}
			if sub < min {
				min = sub
			}
			curr[j] = min
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// linkDiversity is uniqueHosts / len(links); an actor with no links scores
// 1 (design doc §4.6).
func linkDiversity(links []string) float64 {
	if len(links) == 0 {
		return 1
	}
	hosts := make(map[string]struct{}, len(links))
	for _, l := range links {
		if u, err := url.Parse(l); err == nil {
			hosts[strings.ToLower(u.Hostname())] = struct{}{}
		}
	}
	return float64(len(hosts)) / float64(len(links))
}

// profileAnomalyScore implements the weighted composite:
// min(1, 0.5·ratioFlag + 0.3·anySuspicious + 0.2·lowDiversity).
//
// lowDiversity flags not just a low uniqueHosts/links ratio but also the
// degenerate case of a single link: one link is trivially "all unique
// hosts" under the ratio formula (diversity == 1), but an account with
// exactly one link has no real host variety to speak of and is itself a
// low-diversity signal.
func profileAnomalyScoreFor(followerCount, followingCount int64, hasFollowing bool, anySuspicious bool, diversity float64, linkCount int) float64 {
	var ratioFlag float64
	if hasFollowing && followingCount > 0 && float64(followerCount)/float64(followingCount) < 0.1 {
		ratioFlag = 1
	}
	var suspiciousFlag float64
	if anySuspicious {
		suspiciousFlag = 1
	}
	var lowDiversityFlag float64
	if linkCount <= 1 || diversity < 0.5 {
		lowDiversityFlag = 1
	}
	score := 0.5*ratioFlag + 0.3*suspiciousFlag + 0.2*lowDiversityFlag
	return clamp(score, 0, 1)
}
