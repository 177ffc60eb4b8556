// Package locale resolves locale identifiers into the number-formatting
// conventions used by the currency formatter. It is deliberately separate
// from the currency registry so alias handling and fraction-digit data can
// be tested independently.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultTag is the locale used when an identifier cannot be resolved.
var DefaultTag = language.AmericanEnglish

// aliases maps legacy locale identifiers to their canonical BCP 47 tags.
// These are identifiers language.Parse either rejects or resolves to a
// different script than the one historically meant.
var aliases = map[string]string{
	"in":    "id",
	"iw":    "he",
	"ji":    "yi",
	"no":    "nb",
	"tl":    "fil",
	"mo":    "ro-MD",
	"zh_CN": "zh-Hans-CN",
	"zh_SG": "zh-Hans-SG",
	"zh_TW": "zh-Hant-TW",
	"zh_HK": "zh-Hant-HK",
}

// Canonicalize resolves a locale identifier to a canonical tag. Legacy
// aliases and "language_COUNTRY" spellings are rewritten; genuinely
// unrecognized identifiers fall back to DefaultTag rather than erroring.
func Canonicalize(id string) language.Tag {
	if id == "" {
		return DefaultTag
	}
	if canonical, ok := aliases[id]; ok {
		id = canonical
	}
	id = strings.ReplaceAll(id, "_", "-")
	tag, err := language.Parse(id)
	if err != nil {
		return DefaultTag
	}
	return tag
}

// Conventions describes how a locale writes a currency amount: separator
// characters, whether the currency symbol precedes the number, and the
// spacing between symbol and number.
type Conventions struct {
	DecimalSep   string
	GroupSep     string
	SymbolBefore bool
	SymbolGap    string

	// symbolOverrides replaces a currency's default symbol under this
	// locale, e.g. USD written as "US$" in Simplified Chinese.
	symbolOverrides map[string]string
}

// SymbolOverride returns the locale-specific symbol for a currency code,
// if this locale has one.
func (c Conventions) SymbolOverride(code string) (string, bool) {
	s, ok := c.symbolOverrides[code]
	return s, ok
}

var supported = []language.Tag{
	language.AmericanEnglish, // first entry is the matcher fallback
	language.BritishEnglish,
	language.German,
	language.French,
	language.Polish,
	language.Russian,
	language.Japanese,
	language.SimplifiedChinese,
}

var conventions = []Conventions{
	{DecimalSep: ".", GroupSep: ",", SymbolBefore: true},
	{DecimalSep: ".", GroupSep: ",", SymbolBefore: true},
	{DecimalSep: ",", GroupSep: ".", SymbolBefore: false, SymbolGap: " "},
	{DecimalSep: ",", GroupSep: " ", SymbolBefore: false, SymbolGap: " "},
	{DecimalSep: ",", GroupSep: " ", SymbolBefore: false, SymbolGap: " "},
	{DecimalSep: ",", GroupSep: " ", SymbolBefore: false, SymbolGap: " "},
	{DecimalSep: ".", GroupSep: ",", SymbolBefore: true},
	{DecimalSep: ".", GroupSep: ",", SymbolBefore: true, symbolOverrides: map[string]string{
		"USD": "US$",
		"CAD": "CA$",
		"AUD": "AU$",
	}},
}

var matcher = language.NewMatcher(supported)

// ConventionsFor returns the formatting conventions closest to the given
// tag. Unmatched tags resolve to the DefaultTag conventions.
func ConventionsFor(tag language.Tag) Conventions {
	_, idx, _ := matcher.Match(tag)
	return conventions[idx]
}
