package aggregate

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/spendview/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func txn(day time.Time, category, amount string) model.Transaction {
	return model.Transaction{Date: day, Category: category, Amount: dec(amount)}
}

func fixture() []model.Transaction {
	return []model.Transaction{
		txn(date(2024, 1, 3), "Food", "12.10"),
		txn(date(2024, 1, 1), "Rent", "1000"),
		txn(date(2024, 1, 2), "Food", "50"),
		txn(date(2024, 1, 3), "Transport", "7.90"),
		txn(date(2024, 1, 5), "Food", "20.00"),
	}
}

// randomTxns builds a deterministic pseudo-random dataset.
func randomTxns(seed uint64, n int) []model.Transaction {
	rng := rand.New(rand.NewPCG(seed, seed))
	cats := []string{"Rent", "Food", "Fun", "Transport"}
	out := make([]model.Transaction, n)
	for i := range out {
		out[i] = model.Transaction{
			Date:     date(2024, 1, 1).AddDate(0, 0, rng.IntN(60)),
			Category: cats[rng.IntN(len(cats))],
			Amount:   decimal.New(rng.Int64N(100000), -2),
		}
	}
	return out
}

func TestFilterSummarize_SingleDay(t *testing.T) {
	txns := []model.Transaction{
		txn(date(2024, 1, 1), "Rent", "1000"),
		txn(date(2024, 1, 2), "Food", "50"),
	}
	subset := Filter(txns, model.DateRange{Start: date(2024, 1, 1), End: date(2024, 1, 1)})
	require.Len(t, subset, 1)

	s := Summarize(subset)
	assert.True(t, s.Total.Equal(dec("1000")), "total %s", s.Total)
	require.True(t, s.Average.Valid)
	assert.True(t, s.Average.Decimal.Equal(dec("1000")), "average %s", s.Average.Decimal)
	assert.Equal(t, 1, s.Count)
}

func TestFilter_Inclusive(t *testing.T) {
	got := Filter(fixture(), model.DateRange{Start: date(2024, 1, 2), End: date(2024, 1, 3)})
	require.Len(t, got, 3)
	// Input order is preserved.
	assert.Equal(t, "Food", got[0].Category)
	assert.True(t, got[0].Date.Equal(date(2024, 1, 3)))
	assert.True(t, got[1].Date.Equal(date(2024, 1, 2)))
	assert.Equal(t, "Transport", got[2].Category)
}

func TestFilter_EmptyCases(t *testing.T) {
	assert.Empty(t, Filter(nil, model.DateRange{Start: date(2024, 1, 1), End: date(2024, 12, 31)}))
	assert.Empty(t, Filter(fixture(), model.DateRange{Start: date(2025, 1, 1), End: date(2025, 1, 31)}))
	assert.Empty(t, Filter(fixture(), model.DateRange{Start: date(2024, 1, 5), End: date(2024, 1, 1)}), "inverted range")
}

func TestFilter_OpenRange(t *testing.T) {
	assert.Len(t, Filter(fixture(), model.DateRange{}), 5)
	assert.Len(t, Filter(fixture(), model.DateRange{Start: date(2024, 1, 3)}), 3)
	assert.Len(t, Filter(fixture(), model.DateRange{End: date(2024, 1, 2)}), 2)
}

func TestFilter_DoesNotAliasInput(t *testing.T) {
	in := fixture()
	got := Filter(in, model.DateRange{})
	got[0].Category = "changed"
	assert.Equal(t, "Food", in[0].Category)
}

func TestFilter_SubsetProperty(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		in := randomTxns(seed, 200)
		rng := model.DateRange{Start: date(2024, 1, 10), End: date(2024, 2, 5)}
		got := Filter(in, rng)

		want := 0
		for _, x := range in {
			if !x.Date.Before(rng.Start) && !x.Date.After(rng.End) {
				want++
			}
		}
		assert.Len(t, got, want, "seed %d", seed)
		for _, x := range got {
			assert.False(t, x.Date.Before(rng.Start), "seed %d: %s before start", seed, x.Date)
			assert.False(t, x.Date.After(rng.End), "seed %d: %s after end", seed, x.Date)
		}
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.True(t, s.Total.IsZero())
	assert.False(t, s.Average.Valid, "average is undefined for no rows")
	assert.Equal(t, 0, s.Count)
}

func TestSummarize(t *testing.T) {
	s := Summarize(fixture())
	assert.Equal(t, "1090.00", s.Total.StringFixed(2))
	assert.Equal(t, 5, s.Count)
	require.True(t, s.Average.Valid)
	assert.Equal(t, "218.00", s.Average.Decimal.StringFixed(2))
}

func TestByCategory(t *testing.T) {
	got := ByCategory(fixture())
	require.Len(t, got, 3)
	assert.Equal(t, "82.10", got["Food"].StringFixed(2))
	assert.Equal(t, "1000.00", got["Rent"].StringFixed(2))
	assert.Equal(t, "7.90", got["Transport"].StringFixed(2))
}

func TestByCategory_SumsToTotal(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		in := randomTxns(seed, 150)
		sum := decimal.Zero
		for _, v := range ByCategory(in) {
			sum = sum.Add(v)
		}
		total := Summarize(in).Total
		assert.True(t, sum.Equal(total), "seed %d: %s != %s", seed, sum, total)
	}
}

func TestByDay(t *testing.T) {
	got := ByDay(fixture())
	require.Len(t, got, 4)
	assert.True(t, got[0].Date.Equal(date(2024, 1, 1)))
	assert.True(t, got[2].Date.Equal(date(2024, 1, 3)))
	assert.Equal(t, "20.00", got[2].Total.StringFixed(2))
	assert.Equal(t, 2, got[2].Count)
	assert.True(t, got[3].Date.Equal(date(2024, 1, 5)))
}

func TestByDay_NormalizesTimeOfDay(t *testing.T) {
	txns := []model.Transaction{
		{Date: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), Category: "A", Amount: dec("1")},
		{Date: time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC), Category: "A", Amount: dec("2")},
	}
	got := ByDay(txns)
	require.Len(t, got, 1)
	assert.Equal(t, "3.00", got[0].Total.StringFixed(2))
}

func TestByDay_StrictlyIncreasing(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		days := ByDay(randomTxns(seed, 300))
		for i := 1; i < len(days); i++ {
			assert.True(t, days[i-1].Date.Before(days[i].Date), "seed %d: index %d not increasing", seed, i)
		}
	}
}

func TestByDay_Empty(t *testing.T) {
	assert.Empty(t, ByDay(nil))
}

func TestBreakdown(t *testing.T) {
	got := Breakdown(fixture())
	require.Len(t, got, 3)
	assert.Equal(t, "Rent", got[0].Category)
	assert.Equal(t, "Food", got[1].Category)
	assert.Equal(t, 3, got[1].Count)
	assert.Equal(t, "Transport", got[2].Category)
	assert.Equal(t, "91.74", got[0].Share.StringFixed(2))
	assert.Equal(t, "7.53", got[1].Share.StringFixed(2))
	assert.Equal(t, "0.72", got[2].Share.StringFixed(2))
}

func TestBreakdown_TieBreaksOnName(t *testing.T) {
	got := Breakdown([]model.Transaction{
		txn(date(2024, 1, 1), "b", "5"),
		txn(date(2024, 1, 1), "a", "5"),
	})
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Category)
	assert.Equal(t, "50.00", got[0].Share.StringFixed(2))
}

func TestBreakdown_ZeroTotal(t *testing.T) {
	got := Breakdown([]model.Transaction{
		txn(date(2024, 1, 1), "Refund", "-5"),
		txn(date(2024, 1, 1), "Food", "5"),
	})
	require.Len(t, got, 2)
	for _, c := range got {
		assert.True(t, c.Share.IsZero())
	}
}

func TestBounds(t *testing.T) {
	rng := Bounds(fixture())
	assert.True(t, rng.Start.Equal(date(2024, 1, 1)))
	assert.True(t, rng.End.Equal(date(2024, 1, 5)))
	assert.True(t, Bounds(nil).IsZero())
}
