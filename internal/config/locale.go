package config

import (
	"os"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// FallbackCurrency is used when the locale names no known region.
const FallbackCurrency = "₹"

var symbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// LocaleCurrency derives a currency symbol from LC_ALL, LC_MONETARY or LANG.
func LocaleCurrency() string {
	for _, env := range []string{"LC_ALL", "LC_MONETARY", "LANG"} {
		if v := os.Getenv(env); v != "" {
			return CurrencyForLocale(v)
		}
	}
	return FallbackCurrency
}

// CurrencyForLocale maps a POSIX locale such as "en_US.UTF-8" to a currency
// symbol. ISO codes without a known symbol are returned as is.
func CurrencyForLocale(locale string) string {
	tag, err := language.Parse(posixToBCP47(locale))
	if err != nil {
		return FallbackCurrency
	}
	if _, conf := tag.Region(); conf == language.No {
		return FallbackCurrency
	}
	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		return FallbackCurrency
	}
	code := unit.String()
	if sym, ok := symbols[code]; ok {
		return sym
	}
	return code
}

// posixToBCP47 strips the codeset and modifier and swaps '_' for '-'.
func posixToBCP47(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "C" || locale == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(locale, "_", "-")
}
