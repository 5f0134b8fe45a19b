package table_test

import (
	"strings"
	"testing"

	"github.com/bxcodec/faker/v3"
	"github.com/stretchr/testify/require"

	currencyRates "github.com/malusev998/currency-rates"
	"github.com/malusev998/currency-rates/mapping"
	"github.com/malusev998/currency-rates/table"
)

const header = "Record Date,Country - Currency Description,Exchange Rate,Effective Date"

func csv(rows ...string) string {
	return strings.Join(append([]string{header}, rows...), "\n")
}

func TestBuild(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	result := table.Build(csv(
		"2025-12-31,Australia-Dollar,1.495,2025-12-31",
		"2025-12-31,Canada-Dollar,1.369,2025-12-31",
	), mapping.Treasury())

	asserts.Equal(3, result.Len())
	asserts.Equal("2025-12-31", result.LastUpdated())

	aud, ok := result.Get("AUD")
	asserts.True(ok)
	asserts.Equal(1.495, aud.RateToUSD)
	asserts.Equal("Australia-Dollar", aud.DisplayName)
	asserts.Equal("2025-12-31", aud.EffectiveDate)

	cad, ok := result.Get("CAD")
	asserts.True(ok)
	asserts.Equal(1.369, cad.RateToUSD)

	usd, ok := result.Get("USD")
	asserts.True(ok)
	asserts.Equal(1.0, usd.RateToUSD)
	asserts.Equal("2025-12-31", usd.EffectiveDate)
	asserts.Equal("United States-Dollar", usd.DisplayName)
}

func TestBuild_ByteOrderMark(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	result := table.Build("\ufeff"+csv("2025-12-31,Japan-Yen,157.5,2025-12-31"), mapping.Treasury())

	jpy, ok := result.Get("JPY")
	asserts.True(ok)
	asserts.Equal(157.5, jpy.RateToUSD)
}

func TestBuild_LatestEffectiveDateWins(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	rows := []string{
		"2025-12-31,Australia-Dollar,1.495,2025-12-31",
		"2025-12-31,Australia-Dollar,1.500,2026-01-15",
	}

	for _, raw := range []string{csv(rows[0], rows[1]), csv(rows[1], rows[0])} {
		aud, ok := table.Build(raw, mapping.Treasury()).Get("AUD")
		asserts.True(ok)
		asserts.Equal(1.5, aud.RateToUSD)
		asserts.Equal("2026-01-15", aud.EffectiveDate)
	}
}

func TestBuild_TieKeepsFirstRow(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	result := table.Build(csv(
		"2025-12-31,Austria-Euro,0.851,2025-12-31",
		"2025-12-31,Euro Zone-Euro,0.852,2025-12-31",
	), mapping.Treasury())

	eur, _ := result.Get("EUR")
	asserts.Equal(0.851, eur.RateToUSD)
	asserts.Equal("Austria-Euro", eur.DisplayName)
}

func TestBuild_SkipsBadRows(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	base := csv("2025-12-31,Canada-Dollar,1.369,2025-12-31")
	expected := table.Build(base, mapping.Treasury())

	badRows := []string{
		"2025-12-31,Australia-Dollar,1.495",
		"2025-12-31," + faker.Word() + "-" + faker.Word() + "X,1.495,2026-03-01",
		"2025-12-31,Australia-Dollar,N/A,2026-03-01",
		"2025-12-31,Australia-Dollar,1.495abc,2026-03-01",
		"2025-12-31,Australia-Dollar,NaN,2026-03-01",
		"2025-12-31,Australia-Dollar,0,2026-03-01",
		"2025-12-31,Australia-Dollar,-1.2,2026-03-01",
		header,
		"Record Date,Country - Currency Description,1.0,2026-03-01",
		"   ",
	}

	for _, row := range badRows {
		result := table.Build(base+"\n"+row, mapping.Treasury())

		asserts.Equal(expected.Len(), result.Len(), row)
		asserts.Equal(expected.LastUpdated(), result.LastUpdated(), row)
		_, ok := result.Get("AUD")
		asserts.False(ok, row)
	}
}

func TestBuild_USDAnchorOverridesInput(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	result := table.Build(csv(
		"2025-12-31,Ecuador-Dolares,1.02,2026-02-01",
		"2025-12-31,Canada-Dollar,1.369,2025-12-31",
	), mapping.Treasury())

	usd, ok := result.Get("USD")
	asserts.True(ok)
	asserts.Equal(1.0, usd.RateToUSD)
	asserts.Equal("United States-Dollar", usd.DisplayName)
	asserts.Equal("2026-02-01", usd.EffectiveDate)
	asserts.Equal("2026-02-01", result.LastUpdated())
}

func TestBuild_LastUpdatedTracksEveryAcceptedRow(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	result := table.Build(csv(
		"2025-12-31,Canada-Dollar,1.369,2025-12-31",
		"2026-03-31,Ecuador-Dolares,1.0,2026-03-31",
	), mapping.Treasury())

	cad, _ := result.Get("CAD")
	asserts.Equal("2025-12-31", cad.EffectiveDate)
	asserts.Equal("2026-03-31", result.LastUpdated())
}

func TestBuild_EmptyAndHeaderOnly(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	for _, raw := range []string{"", "   \n  ", header, header + "\n\n"} {
		result := table.Build(raw, mapping.Treasury())

		asserts.Equal(1, result.Len(), raw)
		asserts.Equal("", result.LastUpdated(), raw)

		usd, ok := result.Get(currencyRates.USD)
		asserts.True(ok)
		asserts.Equal(1.0, usd.RateToUSD)
	}
}

func TestBuild_QuotedFieldsAndCRLF(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	raw := header + "\r\n" +
		`"2025-12-31","Cote D'Ivoire-Cfa Franc"," 566.45 ","2025-12-31"` + "\r\n" +
		`2025-12-31,"Antigua & Barbuda-East Caribbean Dollar",2.7,2025-12-31,extra` + "\r\n"

	result := table.Build(raw, mapping.Treasury())

	xof, ok := result.Get("XOF")
	asserts.True(ok)
	asserts.Equal(566.45, xof.RateToUSD)

	xcd, ok := result.Get("XCD")
	asserts.True(ok)
	asserts.Equal(2.7, xcd.RateToUSD)
}

func TestBuilder_CustomDelimiter(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	raw := "Record Date;Country - Currency Description;Exchange Rate;Effective Date\n" +
		"2025-12-31;Japan-Yen;157,5;2025-12-31\n" +
		"2025-12-31;Canada-Dollar;1.369;2025-12-31"

	result := table.Builder{Mapping: mapping.Treasury(), Delimiter: ';'}.Build(raw)

	_, ok := result.Get("JPY")
	asserts.False(ok)

	cad, ok := result.Get("CAD")
	asserts.True(ok)
	asserts.Equal(1.369, cad.RateToUSD)
}
