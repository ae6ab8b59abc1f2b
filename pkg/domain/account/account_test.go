package account

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestDeposit(t *testing.T) {
	s := NewSavings("SAV10001", "ABCDE1234F", "Main", dec("1000"), dec("4"), decimal.Zero)

	tx, err := s.Deposit(dec("500"), "salary")
	require.NoError(t, err)

	assert.True(t, s.Balance().Equal(dec("1500")), "balance = %s", s.Balance())
	assert.Equal(t, KindDeposit, tx.Kind)
	assert.True(t, tx.Amount.Equal(dec("500")))
	assert.Equal(t, "SAV10001", tx.AccountNumber)
	assert.Equal(t, TransactionCompleted, tx.Status)
	assert.NotEqual(t, tx.ID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestDepositRejectsNonPositiveAmount(t *testing.T) {
	s := NewSavings("SAV10001", "ABCDE1234F", "Main", dec("1000"), dec("4"), decimal.Zero)

	for _, amount := range []string{"0", "-25"} {
		_, err := s.Deposit(dec(amount), "bad")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
	assert.True(t, s.Balance().Equal(dec("1000")), "rejected deposit must not mutate balance")
}

func TestSavingsWithdraw(t *testing.T) {
	t.Run("at minimum rejects any withdrawal", func(t *testing.T) {
		s := NewSavings("SAV10001", "ABCDE1234F", "Main", dec("1000"), dec("4"), dec("1000"))

		_, err := s.Withdraw(dec("0.01"), "coffee")
		assert.ErrorIs(t, err, ErrMinimumBalanceViolation)
		assert.True(t, s.Balance().Equal(dec("1000")))
	})

	t.Run("above minimum succeeds", func(t *testing.T) {
		s := NewSavings("SAV10001", "ABCDE1234F", "Main", dec("2000"), dec("4"), dec("1000"))

		entries, err := s.Withdraw(dec("500"), "rent")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, KindWithdrawal, entries[0].Kind)
		assert.True(t, s.Balance().Equal(dec("1500")))
	})

	t.Run("default minimum balance applies", func(t *testing.T) {
		s := NewSavings("SAV10001", "ABCDE1234F", "Main", dec("1200"), dec("4"), decimal.Zero)
		assert.True(t, s.MinimumBalance.Equal(dec("1000")))

		_, err := s.Withdraw(dec("300"), "too deep")
		assert.ErrorIs(t, err, ErrMinimumBalanceViolation)
	})
}

func TestCurrentWithdraw(t *testing.T) {
	t.Run("overdraft charges flat fee before principal", func(t *testing.T) {
		c := NewCurrent("CUR10001", "ABCDE1234F", "Main", dec("500"), dec("200"), dec("100"))

		entries, err := c.Withdraw(dec("600"), "supplier invoice")
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, KindFee, entries[0].Kind)
		assert.True(t, entries[0].Amount.Equal(dec("100")))
		assert.Equal(t, KindWithdrawal, entries[1].Kind)
		assert.True(t, entries[1].Amount.Equal(dec("600")))
		assert.Contains(t, entries[1].Description, "overdraft")

		// 500 - 100 fee - 600 principal = -200
		assert.True(t, c.Balance().Equal(dec("-200")), "balance = %s", c.Balance())
	})

	t.Run("beyond limit rejected", func(t *testing.T) {
		c := NewCurrent("CUR10001", "ABCDE1234F", "Main", dec("500"), dec("200"), dec("100"))

		_, err := c.Withdraw(dec("701"), "too much")
		assert.ErrorIs(t, err, ErrOverdraftExceeded)
		assert.True(t, c.Balance().Equal(dec("500")))
	})

	t.Run("within balance charges no fee", func(t *testing.T) {
		c := NewCurrent("CUR10001", "ABCDE1234F", "Main", dec("500"), dec("200"), dec("100"))

		entries, err := c.Withdraw(dec("500"), "full balance")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, KindWithdrawal, entries[0].Kind)
		assert.True(t, c.Balance().IsZero())
	})
}

func TestFixedDepositWithdraw(t *testing.T) {
	newFD := func(maturity time.Time) *FixedDeposit {
		fd := NewFixedDeposit("FDA10001", "ABCDE1234F", "Main", dec("1000"), 12, dec("7"), dec("10"))
		fd.MaturityAt = maturity
		return fd
	}

	t.Run("before maturity debits penalty first", func(t *testing.T) {
		fd := newFD(time.Now().Add(24 * time.Hour))

		entries, err := fd.Withdraw(dec("200"), "emergency")
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, KindFee, entries[0].Kind)
		assert.True(t, entries[0].Amount.Equal(dec("20")), "penalty = 200 x 10%%, got %s", entries[0].Amount)
		assert.Contains(t, entries[0].Description, "penalty")
		assert.Equal(t, KindWithdrawal, entries[1].Kind)

		// 1000 - 20 penalty - 200 principal
		assert.True(t, fd.Balance().Equal(dec("780")), "balance = %s", fd.Balance())
	})

	t.Run("after maturity no penalty", func(t *testing.T) {
		fd := newFD(time.Now().Add(-24 * time.Hour))

		entries, err := fd.Withdraw(dec("200"), "matured")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.True(t, fd.Balance().Equal(dec("800")))
	})
}

func TestFixedDepositMaturityDerivation(t *testing.T) {
	fd := NewFixedDeposit("FDA10001", "ABCDE1234F", "Main", dec("1000"), 12, dec("7"), dec("10"))
	assert.Equal(t, fd.OpenedAt.AddDate(0, 12, 0), fd.MaturityAt)
}

func TestInterest(t *testing.T) {
	tests := []struct {
		name string
		acct Account
		want string
	}{
		{
			name: "savings annualized",
			acct: NewSavings("SAV10001", "ABCDE1234F", "Main", dec("1000"), dec("5"), decimal.Zero),
			want: "50",
		},
		{
			name: "current always zero",
			acct: NewCurrent("CUR10001", "ABCDE1234F", "Main", dec("5000"), dec("200"), dec("100")),
			want: "0",
		},
		{
			name: "fixed deposit prorated by term",
			acct: NewFixedDeposit("FDA10001", "ABCDE1234F", "Main", dec("1000"), 6, dec("10"), dec("10")),
			want: "50",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.acct.Balance()
			got := tt.acct.Interest()
			assert.True(t, got.Equal(dec(tt.want)), "interest = %s, want %s", got, tt.want)
			assert.True(t, tt.acct.Balance().Equal(before), "interest projection must not mutate balance")
		})
	}
}
