package jsonstore

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panbank/pkg/domain/account"
	"panbank/pkg/domain/citizen"
)

func TestAccountRecordRoundTrip(t *testing.T) {
	dec := decimal.RequireFromString

	accounts := []account.Account{
		account.NewSavings("SAV10001", "ABCDE1234F", "Main", dec("2500"), dec("4"), dec("1000")),
		account.NewCurrent("CUR10001", "ABCDE1234F", "Main", dec("500"), dec("200"), dec("100")),
		account.NewFixedDeposit("FDA10001", "ABCDE1234F", "Main", dec("10000"), 12, dec("7"), dec("10")),
	}

	for _, a := range accounts {
		t.Run(string(a.Variant()), func(t *testing.T) {
			rec := AccountToRecord(a)
			back, err := AccountFromRecord(rec)
			require.NoError(t, err)

			assert.Equal(t, a.Number(), back.Number())
			assert.Equal(t, a.IdentityNumber(), back.IdentityNumber())
			assert.Equal(t, a.Variant(), back.Variant())
			assert.True(t, back.Balance().Equal(a.Balance()))
			assert.True(t, back.Interest().Equal(a.Interest()),
				"interest must survive the round trip: %s vs %s", back.Interest(), a.Interest())
		})
	}
}

func TestAccountFromRecordUnknownVariant(t *testing.T) {
	rec := testAccount()
	rec.Variant = "bonds"

	_, err := AccountFromRecord(rec)
	assert.ErrorIs(t, err, account.ErrUnknownVariant)
}

func TestFixedDepositMaturityFallback(t *testing.T) {
	// Records written before maturity_at existed derive it from the term.
	opened := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	rec := AccountRecord{
		AccountNumber:  "FDA10001",
		IdentityNumber: "ABCDE1234F",
		Balance:        decimal.NewFromInt(1000),
		Variant:        string(account.VariantFixedDeposit),
		OpenedAt:       opened,
		Status:         "active",
		TermMonths:     1,
	}

	a, err := AccountFromRecord(rec)
	require.NoError(t, err)
	fd := a.(*account.FixedDeposit)
	assert.Equal(t, opened.AddDate(0, 1, 0), fd.MaturityAt)
}

func TestCitizenRecordRoundTrip(t *testing.T) {
	c, err := citizen.New("ABCDE1234F", "Asha Rao", "1990-04-12", "12 Lake Road")
	require.NoError(t, err)

	assert.Equal(t, c, CitizenFromRecord(CitizenToRecord(c)))
}

func TestTransactionRecordRoundTrip(t *testing.T) {
	s := account.NewSavings("SAV10001", "ABCDE1234F", "Main",
		decimal.NewFromInt(1000), decimal.NewFromInt(4), decimal.Zero)
	tx, err := s.Deposit(decimal.RequireFromString("150.75"), "opening credit")
	require.NoError(t, err)

	back, err := TransactionFromRecord(TransactionToRecord(tx))
	require.NoError(t, err)
	assert.Equal(t, tx.ID, back.ID)
	assert.Equal(t, tx.Kind, back.Kind)
	assert.Equal(t, tx.Description, back.Description)
	assert.True(t, back.Amount.Equal(tx.Amount))
	assert.True(t, back.CreatedAt.Equal(tx.CreatedAt))
}

func TestTransactionFromRecordBadID(t *testing.T) {
	_, err := TransactionFromRecord(TransactionRecord{TransactionID: "not-a-uuid"})
	assert.Error(t, err)
}
