package internal

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency formats monetary amounts for display, always with exactly two
// fraction digits. The zero value formats plain numbers without a symbol,
// which is also what report files use.
type Currency struct {
	Code    string // "SEK", "USD", "EUR", or "" for plain formatting
	unit    currency.Unit
	tag     language.Tag
	printer *message.Printer
}

// symbolOverrides provides custom symbols where x/text defaults aren't ideal
var symbolOverrides = map[string]string{
	"SEK": "kr",
	"NOK": "kr",
	"DKK": "kr",
	"ISK": "kr",
}

// defaultLocaleForCurrency provides fallback locales when a currency is
// configured without a matching system locale. Uses a "home" locale for each.
var defaultLocaleForCurrency = map[string]language.Tag{
	"SEK": language.Swedish,
	"USD": language.AmericanEnglish,
	"EUR": language.German,
	"GBP": language.BritishEnglish,
	"NOK": language.Norwegian,
	"DKK": language.Danish,
	"CHF": language.German,
	"JPY": language.Japanese,
	"CAD": language.CanadianFrench,
	"PLN": language.Polish,
	"CZK": language.Czech,
	"INR": language.MustParse("en-IN"),
	"AUD": language.MustParse("en-AU"),
	"NZD": language.MustParse("en-NZ"),
	"BRL": language.BrazilianPortuguese,
}

// detectedLocale stores the system locale when auto-detected, so formatting
// follows the user's conventions
var detectedLocale language.Tag

// GetCurrency returns the Currency for a given code. An empty code yields
// the plain zero-value formatter.
func GetCurrency(code string) Currency {
	if code == "" {
		return Currency{}
	}
	code = strings.ToUpper(code)

	// ParseISO validates the code; unknown codes fall back to USD rules
	// for number formatting and use the code itself as symbol
	unit, err := currency.ParseISO(code)
	isUnknown := err != nil
	if isUnknown {
		unit = currency.USD
	}

	// Locale priority: detected system locale > home locale for the
	// currency > English
	var tag language.Tag
	if detectedLocale != language.Und {
		tag = detectedLocale
	} else if t, ok := defaultLocaleForCurrency[code]; ok {
		tag = t
	} else {
		tag = language.English
	}

	c := Currency{
		Code:    code,
		unit:    unit,
		tag:     tag,
		printer: message.NewPrinter(tag),
	}

	if isUnknown {
		symbolOverrides[code] = code
	}

	return c
}

// DetectSystemCurrency attempts to detect the system currency from locale
// environment variables (LC_ALL, LC_MONETARY, LC_MESSAGES, LANG).
// Returns empty string if detection fails. Also sets detectedLocale so
// formatting follows the detected locale.
func DetectSystemCurrency() string {
	for _, key := range []string{"LC_ALL", "LC_MONETARY", "LC_MESSAGES", "LANG"} {
		locale := os.Getenv(key)
		if locale == "" || locale == "C" || locale == "POSIX" {
			continue
		}
		if code, tag := parseCurrencyFromLocale(locale); code != "" {
			detectedLocale = tag
			return code
		}
	}
	return ""
}

// parseCurrencyFromLocale extracts currency code and language tag from a
// locale string. Example: "sv_SE.UTF-8" -> ("SEK", sv-SE)
func parseCurrencyFromLocale(locale string) (string, language.Tag) {
	base := locale
	if idx := strings.Index(base, "."); idx != -1 {
		base = base[:idx]
	}
	if idx := strings.Index(base, "@"); idx != -1 {
		base = base[:idx]
	}

	// "sv_SE" -> BCP 47 "sv-SE"
	tag, err := language.Parse(strings.Replace(base, "_", "-", 1))
	if err != nil {
		return "", language.Und
	}

	_, _, region := tag.Raw()
	if region.String() == "" || region.String() == "ZZ" {
		return "", language.Und
	}

	unit, ok := currency.FromRegion(region)
	if !ok {
		return "", language.Und
	}
	return unit.String(), tag
}

// getSymbol returns the currency symbol, using overrides where needed
func (c Currency) getSymbol() string {
	if sym, ok := symbolOverrides[c.Code]; ok {
		return sym
	}
	return c.printer.Sprint(currency.NarrowSymbol(c.unit))
}

// isPrefix returns true if this currency symbol is placed before the
// amount. x/text doesn't expose CLDR symbol positioning, so the list is
// maintained manually.
func (c Currency) isPrefix() bool {
	switch c.Code {
	case "USD", "GBP", "JPY", "CAD", "AUD", "MXN", "HKD", "SGD", "NZD", "ZAR":
		return true
	default:
		return false
	}
}

// Format formats an amount with exactly two fraction digits, adding the
// currency symbol when a currency is set.
func (c Currency) Format(amount float64) string {
	if c.printer == nil {
		return fmt.Sprintf("%.2f", amount)
	}

	formatted := c.printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	symbol := c.getSymbol()

	if c.isPrefix() {
		return symbol + formatted
	}
	return formatted + " " + symbol
}
