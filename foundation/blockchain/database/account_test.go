package database_test

import (
	"math"
	"testing"

	"github.com/ardanlabs/nicecoin/foundation/blockchain/database"
)

func Test_CreditDebit(t *testing.T) {
	tt := []struct {
		name    string
		balance int64
		value   uint64
		credit  int64
		debit   int64
	}{
		{name: "small", balance: 10, value: 5, credit: 15, debit: 5},
		{name: "negative", balance: -90, value: 100, credit: 10, debit: -190},
		{name: "top", balance: math.MaxInt64 - 1, value: 5, credit: math.MaxInt64, debit: math.MaxInt64 - 6},
		{name: "bottom", balance: math.MinInt64 + 1, value: 5, credit: math.MinInt64 + 6, debit: math.MinInt64},
		{name: "huge", balance: 0, value: math.MaxUint64, credit: math.MaxInt64, debit: math.MinInt64},
		{name: "huge from bottom", balance: math.MinInt64, value: math.MaxUint64, credit: math.MaxInt64, debit: math.MinInt64},
	}

	for _, tst := range tt {
		f := func(t *testing.T) {
			if got := database.Credit(tst.balance, tst.value); got != tst.credit {
				t.Fatalf("\t%s\tShould credit to %d, got %d.", failed, tst.credit, got)
			}
			if got := database.Debit(tst.balance, tst.value); got != tst.debit {
				t.Fatalf("\t%s\tShould debit to %d, got %d.", failed, tst.debit, got)
			}
			t.Logf("\t%s\tShould hold the balance inside the int64 limits.", success)
		}
		t.Run(tst.name, f)
	}
}
