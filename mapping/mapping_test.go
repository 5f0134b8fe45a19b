package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/malusev998/currency-rates/mapping"
)

func TestTreasury_CodeFor(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	m := mapping.Treasury()

	values := []struct {
		name string
		code string
		ok   bool
	}{
		{"Australia-Dollar", "AUD", true},
		{"Canada-Dollar", "CAD", true},
		{"Japan-Yen", "JPY", true},
		{"United Kingdom-Pound", "GBP", true},
		{"Euro Zone-Euro", "EUR", true},
		{"Switzerland-Franc", "CHF", true},
		{"Cote D'Ivoire-Cfa Franc", "XOF", true},
		{"Antigua & Barbuda-East Caribbean Dollar", "XCD", true},
		{"Tonga-Pa'Anga", "TOP", true},
		{"Invalid-Currency", "", false},
		{"", "", false},
		{"Random String", "", false},
	}

	for _, value := range values {
		code, ok := m.CodeFor(value.name)
		asserts.Equal(value.ok, ok, value.name)
		asserts.Equal(value.code, code, value.name)
	}
}

func TestTreasury_NameFor(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	m := mapping.Treasury()

	values := []struct {
		code string
		name string
		ok   bool
	}{
		{"AUD", "Australia-Dollar", true},
		{"JPY", "Japan-Yen", true},
		{"GBP", "United Kingdom-Pound", true},
		{"USD", "United States-Dollar", true},
		{"EUR", "Euro Zone-Euro", true},
		{"XYZ", "", false},
		{"", "", false},
		{"INVALID", "", false},
	}

	for _, value := range values {
		name, ok := m.NameFor(value.code)
		asserts.Equal(value.ok, ok, value.code)
		asserts.Equal(value.name, name, value.code)
	}
}

func TestTreasury_IsValidCode(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	m := mapping.Treasury()

	for _, code := range []string{"USD", "EUR", "GBP", "JPY", "AUD"} {
		asserts.True(m.IsValidCode(code), code)
	}

	for _, code := range []string{"XYZ", "INVALID", "", "123", "usd", "Eur"} {
		asserts.False(m.IsValidCode(code), code)
	}
}

func TestTreasury_EveryNameRoundTrips(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	m := mapping.Treasury()

	asserts.Greater(m.Len(), 100)

	for _, code := range []string{"EUR", "XOF", "XAF", "XCD", "USD", "CAD"} {
		name, ok := m.NameFor(code)
		asserts.True(ok)

		back, ok := m.CodeFor(name)
		asserts.True(ok)
		asserts.Equal(code, back)
	}
}

func TestNew_PreferredOverridesFirstEntry(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	m := mapping.New([]mapping.Entry{
		{"Austria-Euro", "EUR"},
		{"Euro Zone-Euro", "EUR"},
		{"Ecuador-Dolares", "USD"},
	}, map[string]string{"EUR": "Euro Zone-Euro"})

	name, _ := m.NameFor("EUR")
	asserts.Equal("Euro Zone-Euro", name)

	name, _ = m.NameFor("USD")
	asserts.Equal("Ecuador-Dolares", name)

	asserts.Equal(2, m.Len())
	asserts.False(mapping.Table{}.IsValidCode("EUR"))
}
