package ledger

import (
	"context"
	"testing"

	"github.com/dvelkova/splitwise/internal/domain"
	debtrepo "github.com/dvelkova/splitwise/internal/repo/debt-repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsers []string

func (s stubUsers) Exists(username string) bool {
	for _, u := range s {
		if u == username {
			return true
		}
	}
	return false
}

func (s stubUsers) Usernames() []string {
	return append([]string(nil), s...)
}

type stubGroups map[string][]string

func (s stubGroups) Members(name string) ([]string, bool) {
	members, ok := s[name]
	return members, ok
}

type nopNotifier struct{}

func (nopNotifier) AmountSplit(payer, payee string, amount float64) error     { return nil }
func (nopNotifier) PaymentApproved(payer, payee string, amount float64) error { return nil }

// memLog keeps the append-only stores in memory for tests that don't care
// about files.
type memLog struct {
	debts    map[string][]domain.LogRecord
	payments map[string][]domain.LogRecord
}

func newMemLog() *memLog {
	return &memLog{
		debts:    make(map[string][]domain.LogRecord),
		payments: make(map[string][]domain.LogRecord),
	}
}

func (m *memLog) AppendDebt(payer, payee string, amount float64) error {
	m.debts[payer] = append(m.debts[payer], domain.LogRecord{Counterparty: payee, Amount: amount})
	return nil
}

func (m *memLog) AppendPayment(payer, payee string, amount float64) error {
	m.payments[payer] = append(m.payments[payer], domain.LogRecord{Counterparty: payee, Amount: amount})
	return nil
}

func (m *memLog) Debts(username string) ([]domain.LogRecord, error) {
	return m.debts[username], nil
}

func (m *memLog) Payments(username string) ([]domain.LogRecord, error) {
	return m.payments[username], nil
}

func newTestLedger(users stubUsers, groups stubGroups) *Ledger {
	return New(users, groups, nopNotifier{}, newMemLog())
}

func TestSplitCreatesEdge(t *testing.T) {
	led := newTestLedger(stubUsers{"ann", "bob"}, nil)

	status, err := led.Split("ann", "bob", 10)
	require.NoError(t, err)
	assert.Equal(t, SplitOK, status)

	owedToBob, owedByBob := led.OutstandingFor("bob")
	assert.Equal(t, map[string]float64{"ann": 10}, owedToBob)
	assert.Empty(t, owedByBob)

	owedToAnn, owedByAnn := led.OutstandingFor("ann")
	assert.Empty(t, owedToAnn)
	assert.Equal(t, map[string]float64{"bob": 10}, owedByAnn)
}

func TestSplitValidation(t *testing.T) {
	led := newTestLedger(stubUsers{"ann", "bob"}, nil)

	tests := []struct {
		name     string
		debtor   string
		creditor string
		expected SplitStatus
	}{
		{name: "same user", debtor: "ann", creditor: "ann", expected: SplitSameUser},
		{name: "unknown debtor", debtor: "zed", creditor: "ann", expected: SplitUserNotFound},
		{name: "unknown creditor", debtor: "ann", creditor: "zed", expected: SplitCounterpartyNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := led.Split(tt.debtor, tt.creditor, 5)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestNettingFullCancellation(t *testing.T) {
	led := newTestLedger(stubUsers{"ann", "bob"}, nil)

	_, err := led.Split("ann", "bob", 10)
	require.NoError(t, err)
	_, err = led.Split("bob", "ann", 10)
	require.NoError(t, err)

	owedToAnn, owedByAnn := led.OutstandingFor("ann")
	assert.Empty(t, owedToAnn)
	assert.Empty(t, owedByAnn)
	assert.Equal(t, 0, led.EdgeCount())
}

func TestNettingAsymmetric(t *testing.T) {
	led := newTestLedger(stubUsers{"ann", "bob"}, nil)

	_, err := led.Split("ann", "bob", 10)
	require.NoError(t, err)
	_, err = led.Split("bob", "ann", 4)
	require.NoError(t, err)

	_, owedByAnn := led.OutstandingFor("ann")
	assert.Equal(t, map[string]float64{"bob": 6}, owedByAnn)

	owedToBob, _ := led.OutstandingFor("bob")
	assert.Equal(t, map[string]float64{"ann": 6}, owedToBob)
	assert.Equal(t, 1, led.EdgeCount())
}

func TestNettingReversesDirection(t *testing.T) {
	led := newTestLedger(stubUsers{"ann", "bob"}, nil)

	_, err := led.Split("ann", "bob", 4)
	require.NoError(t, err)
	_, err = led.Split("bob", "ann", 10)
	require.NoError(t, err)

	owedToAnn, owedByAnn := led.OutstandingFor("ann")
	assert.Equal(t, map[string]float64{"bob": 6}, owedToAnn)
	assert.Empty(t, owedByAnn)
}

func TestSplitMergesSameDirection(t *testing.T) {
	led := newTestLedger(stubUsers{"ann", "bob"}, nil)

	_, err := led.Split("ann", "bob", 2.5)
	require.NoError(t, err)
	_, err = led.Split("ann", "bob", 3.17)
	require.NoError(t, err)

	_, owedByAnn := led.OutstandingFor("ann")
	assert.Equal(t, map[string]float64{"bob": 5.67}, owedByAnn)
}

func TestPayReducesDebt(t *testing.T) {
	led := newTestLedger(stubUsers{"ann", "bob"}, nil)

	_, err := led.Split("ann", "bob", 10)
	require.NoError(t, err)

	status, err := led.Pay("ann", "bob", 4)
	require.NoError(t, err)
	assert.Equal(t, PayOK, status)

	_, owedByAnn := led.OutstandingFor("ann")
	assert.Equal(t, map[string]float64{"bob": 6}, owedByAnn)
}

func TestPayExactClearsEdge(t *testing.T) {
	led := newTestLedger(stubUsers{"ann", "bob"}, nil)

	_, err := led.Split("ann", "bob", 10)
	require.NoError(t, err)

	_, err = led.Pay("ann", "bob", 10)
	require.NoError(t, err)

	assert.Equal(t, 0, led.EdgeCount())
}

func TestPayOverpaymentFlipsEdge(t *testing.T) {
	led := newTestLedger(stubUsers{"ann", "bob"}, nil)

	_, err := led.Split("ann", "bob", 10)
	require.NoError(t, err)

	status, err := led.Pay("ann", "bob", 15)
	require.NoError(t, err)
	assert.Equal(t, PayOK, status)

	owedToAnn, owedByAnn := led.OutstandingFor("ann")
	assert.Equal(t, map[string]float64{"bob": 5}, owedToAnn)
	assert.Empty(t, owedByAnn)

	// History keeps the paid amount, not the net change.
	assert.Equal(t, map[string][]float64{"bob": {15}}, led.PaymentHistoryFor("ann"))
}

func TestPayValidation(t *testing.T) {
	led := newTestLedger(stubUsers{"ann", "bob"}, nil)

	tests := []struct {
		name     string
		payer    string
		payee    string
		expected PayStatus
	}{
		{name: "same user", payer: "ann", payee: "ann", expected: PaySameUser},
		{name: "unknown payer", payer: "zed", payee: "ann", expected: PayUserNotFound},
		{name: "no outstanding debt", payer: "ann", payee: "bob", expected: PayNoOutstandingDebt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := led.Pay(tt.payer, tt.payee, 5)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestSplitAmongGroupRounding(t *testing.T) {
	led := newTestLedger(
		stubUsers{"ann", "bob", "cat"},
		stubGroups{"trip": {"ann", "bob", "cat"}},
	)

	status, err := led.SplitAmongGroup("trip", "ann", 10)
	require.NoError(t, err)
	assert.Equal(t, GroupSplitOK, status)

	owedToAnn, _ := led.OutstandingFor("ann")
	assert.Equal(t, map[string]float64{"bob": 3.33, "cat": 3.33}, owedToAnn)

	// Rounded shares never exceed the total by more than the tolerance.
	sum := 0.0
	for _, amount := range owedToAnn {
		sum += amount
	}
	assert.LessOrEqual(t, sum, 10.0+0.02)
}

func TestSplitAmongGroupValidation(t *testing.T) {
	led := newTestLedger(
		stubUsers{"ann", "bob", "cat"},
		stubGroups{"trip": {"ann", "bob"}},
	)

	status, err := led.SplitAmongGroup("absent", "ann", 10)
	require.NoError(t, err)
	assert.Equal(t, GroupSplitGroupNotFound, status)

	status, err = led.SplitAmongGroup("trip", "cat", 10)
	require.NoError(t, err)
	assert.Equal(t, GroupSplitPayeeNotMember, status)

	// Nothing was recorded by the rejected calls.
	assert.Equal(t, 0, led.EdgeCount())
}

func TestPaymentHistoryOrder(t *testing.T) {
	led := newTestLedger(stubUsers{"ann", "bob"}, nil)

	_, err := led.Split("ann", "bob", 20)
	require.NoError(t, err)
	_, err = led.Pay("ann", "bob", 5)
	require.NoError(t, err)
	_, err = led.Pay("ann", "bob", 3)
	require.NoError(t, err)

	assert.Equal(t, map[string][]float64{"bob": {5, 3}}, led.PaymentHistoryFor("ann"))
}

func TestReplayRebuildsState(t *testing.T) {
	users := stubUsers{"ann", "bob", "cat"}
	log := debtrepo.New(t.TempDir())

	live := New(users, nil, nopNotifier{}, log)
	_, err := live.Split("ann", "bob", 10)
	require.NoError(t, err)
	_, err = live.Split("bob", "ann", 4)
	require.NoError(t, err)
	_, err = live.Split("cat", "ann", 7)
	require.NoError(t, err)
	_, err = live.Pay("cat", "ann", 9)
	require.NoError(t, err)

	rebuilt := New(users, nil, nopNotifier{}, log)
	require.NoError(t, rebuilt.Replay(context.Background()))

	for _, username := range users {
		wantTo, wantBy := live.OutstandingFor(username)
		gotTo, gotBy := rebuilt.OutstandingFor(username)
		assert.Equal(t, wantTo, gotTo, username)
		assert.Equal(t, wantBy, gotBy, username)
	}
	assert.Equal(t, live.PaymentHistoryFor("cat"), rebuilt.PaymentHistoryFor("cat"))
}

func TestReplayIsIdempotent(t *testing.T) {
	users := stubUsers{"ann", "bob"}
	log := debtrepo.New(t.TempDir())

	live := New(users, nil, nopNotifier{}, log)
	_, err := live.Split("ann", "bob", 12.5)
	require.NoError(t, err)
	_, err = live.Pay("ann", "bob", 20)
	require.NoError(t, err)

	first := New(users, nil, nopNotifier{}, log)
	require.NoError(t, first.Replay(context.Background()))
	second := New(users, nil, nopNotifier{}, log)
	require.NoError(t, second.Replay(context.Background()))

	for _, username := range users {
		firstTo, firstBy := first.OutstandingFor(username)
		secondTo, secondBy := second.OutstandingFor(username)
		assert.Equal(t, firstTo, secondTo, username)
		assert.Equal(t, firstBy, secondBy, username)
	}
}
