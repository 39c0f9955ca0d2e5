package linescan

import (
	"regexp"
	"strings"
)

// Token tables. These are read-only after package initialization.
var (
	requestInputTokens = []string{"$_POST", "$_GET", "$_REQUEST", "$_COOKIE", "$_FILES"}

	databaseCallTokens = []string{
		"$wpdb->query(",
		"$wpdb->get_results(",
		"$wpdb->get_row(",
		"$wpdb->get_var(",
		"$wpdb->get_col(",
	}

	outputEscapeTokens = []string{
		"esc_html(",
		"esc_attr(",
		"esc_url(",
		"esc_textarea(",
		"wp_kses(",
		"wp_kses_post(",
		"wp_json_encode(",
	}

	htmlEscapeTokens = []string{"esc_html(", "esc_attr("}
	urlEscapeTokens  = []string{"esc_url("}

	nonceCheckTokens      = []string{"check_admin_referer(", "check_ajax_referer(", "wp_verify_nonce("}
	capabilityCheckTokens = []string{"current_user_can(", "user_can("}
	preparedQueryTokens   = []string{"$wpdb->prepare("}
)

var (
	outputCallPattern    = regexp.MustCompile(`(\becho\b|\bprint\b|\bprintf\b|\bwp_die\b)\s*\(`)
	echoStatementPattern = regexp.MustCompile(`\becho\b\s+`)
	urlAttributePattern  = regexp.MustCompile(`(?i)(href\s*=|src\s*=|action\s*=)`)
)

// interpolationMarker is what marks a variable on an output line.
const interpolationMarker = "$"

func containsAny(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// isRequestInput reports whether the line reads a request superglobal.
func isRequestInput(line string) bool {
	return containsAny(line, requestInputTokens)
}

// isDatabaseCall reports whether the line runs a direct query on $wpdb.
func isDatabaseCall(line string) bool {
	return containsAny(line, databaseCallTokens)
}

// isUnescapedOutput requires an output construct, a variable and no escaping
// call anywhere on the same physical line.
func isUnescapedOutput(line string) bool {
	looksLikeOutput := outputCallPattern.MatchString(line) || echoStatementPattern.MatchString(line)
	return looksLikeOutput &&
		strings.Contains(line, interpolationMarker) &&
		!containsAny(line, outputEscapeTokens)
}

// isURLAttrNotURLEscaped flags href/src/action values escaped for HTML or
// attribute context but not as a URL.
func isURLAttrNotURLEscaped(line string) bool {
	return urlAttributePattern.MatchString(line) &&
		containsAny(line, htmlEscapeTokens) &&
		!containsAny(line, urlEscapeTokens)
}
