package core

import "slices"

// SupportedLanguages lists the languages offered by the language selector, in
// display order. The reviewer service treats anything else as "other".
var SupportedLanguages = []string{
	"java",
	"javascript",
	"python",
	"go",
	"typescript",
	"other",
}

// IsSupportedLanguage reports whether lang is one of SupportedLanguages.
func IsSupportedLanguage(lang string) bool {
	return slices.Contains(SupportedLanguages, lang)
}

// NextLanguage returns the language following lang in SupportedLanguages,
// wrapping around. Unknown values restart at the first entry.
func NextLanguage(lang string) string {
	i := slices.Index(SupportedLanguages, lang)
	return SupportedLanguages[(i+1)%len(SupportedLanguages)]
}
