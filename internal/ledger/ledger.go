// Package ledger holds the netted graph of obligations between users plus
// the payment history, rebuilt from the append-only debt and payment logs
// at startup.
//
// Invariants: the byDebtor and byCreditor maps always agree on the amount
// for a pair, every stored amount is positive and rounded to two decimals,
// and for any pair of users at most one direction carries an edge; netting
// collapses opposing obligations as they are recorded.
package ledger

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/dvelkova/splitwise/internal/domain"
	"github.com/dvelkova/splitwise/pkg/money"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type SplitStatus int

const (
	SplitOK SplitStatus = iota
	SplitSameUser
	SplitUserNotFound
	SplitCounterpartyNotFound
)

type GroupSplitStatus int

const (
	GroupSplitOK GroupSplitStatus = iota
	GroupSplitGroupNotFound
	GroupSplitPayeeNotMember
)

type PayStatus int

const (
	PayOK PayStatus = iota
	PaySameUser
	PayUserNotFound
	PayNoOutstandingDebt
)

type UserDirectory interface {
	Exists(username string) bool
	Usernames() []string
}

type Groups interface {
	Members(name string) ([]string, bool)
}

type Notifier interface {
	AmountSplit(payer, payee string, amount float64) error
	PaymentApproved(payer, payee string, amount float64) error
}

// Log is the persistence behind the ledger; see debtrepo.
type Log interface {
	AppendDebt(payer, payee string, amount float64) error
	AppendPayment(payer, payee string, amount float64) error
	Debts(username string) ([]domain.LogRecord, error)
	Payments(username string) ([]domain.LogRecord, error)
}

type Ledger struct {
	mu         sync.Mutex
	byDebtor   map[string]map[string]float64
	byCreditor map[string]map[string]float64
	payments   map[string]map[string][]float64

	users    UserDirectory
	groups   Groups
	notifier Notifier
	log      Log
}

func New(users UserDirectory, groups Groups, notifier Notifier, log Log) *Ledger {
	return &Ledger{
		byDebtor:   make(map[string]map[string]float64),
		byCreditor: make(map[string]map[string]float64),
		payments:   make(map[string]map[string][]float64),
		users:      users,
		groups:     groups,
		notifier:   notifier,
		log:        log,
	}
}

// Split records that debtor owes creditor an additional amount, netting
// against any opposite-direction edge first. The increment is appended to
// the debtor's debts log before the maps change, then the debtor is
// notified.
func (l *Ledger) Split(debtor, creditor string, amount float64) (SplitStatus, error) {
	if debtor == creditor {
		return SplitSameUser, nil
	}
	if !l.users.Exists(debtor) {
		return SplitUserNotFound, nil
	}
	if !l.users.Exists(creditor) {
		return SplitCounterpartyNotFound, nil
	}

	amount = money.Round(amount)
	if err := l.recordSplit(debtor, creditor, amount); err != nil {
		return 0, err
	}
	if err := l.notifier.AmountSplit(debtor, creditor, amount); err != nil {
		return 0, err
	}
	return SplitOK, nil
}

func (l *Ledger) recordSplit(debtor, creditor string, amount float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.log.AppendDebt(debtor, creditor, amount); err != nil {
		return err
	}
	l.applyDebt(debtor, creditor, amount)
	return nil
}

// SplitAmongGroup splits total evenly over the group: every member other
// than payee now owes payee one rounded share. Validation happens before
// any edge changes, but the per-member writes are independent critical
// sections; a storage failure mid-loop leaves the earlier members recorded.
func (l *Ledger) SplitAmongGroup(groupName, payee string, total float64) (GroupSplitStatus, error) {
	members, ok := l.groups.Members(groupName)
	if !ok {
		return GroupSplitGroupNotFound, nil
	}
	if !contains(members, payee) {
		return GroupSplitPayeeNotMember, nil
	}

	share := money.Round(total / float64(len(members)))
	for _, member := range members {
		if member == payee {
			continue
		}
		if err := l.recordSplit(member, payee, share); err != nil {
			return 0, fmt.Errorf("group split interrupted at member %s: %w", member, err)
		}
		if err := l.notifier.AmountSplit(member, payee, share); err != nil {
			return 0, fmt.Errorf("group split interrupted at member %s: %w", member, err)
		}
	}
	return GroupSplitOK, nil
}

// Pay settles amountPaid of the payer's debt to payee. Overpayment flips
// the edge: the remainder becomes a debt of payee to payer. The payment
// record always holds the paid amount, not the net change.
func (l *Ledger) Pay(payer, payee string, amountPaid float64) (PayStatus, error) {
	if payer == payee {
		return PaySameUser, nil
	}
	if !l.users.Exists(payer) {
		return PayUserNotFound, nil
	}

	amountPaid = money.Round(amountPaid)

	l.mu.Lock()
	if _, ok := l.byDebtor[payer][payee]; !ok {
		l.mu.Unlock()
		return PayNoOutstandingDebt, nil
	}
	if err := l.log.AppendPayment(payer, payee, amountPaid); err != nil {
		l.mu.Unlock()
		return 0, err
	}
	l.applyPayment(payer, payee, amountPaid)
	l.mu.Unlock()

	if err := l.notifier.PaymentApproved(payer, payee, amountPaid); err != nil {
		return 0, err
	}
	return PayOK, nil
}

// OutstandingFor returns copies of the edges touching the user: who owes
// the user, and whom the user owes. Reads share the mutation lock so a
// caller never observes a torn write.
func (l *Ledger) OutstandingFor(username string) (owedToUser, owedByUser map[string]float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return copyEdges(l.byCreditor[username]), copyEdges(l.byDebtor[username])
}

// PaymentHistoryFor returns the amounts the user paid, per payee, in the
// order they were recorded.
func (l *Ledger) PaymentHistoryFor(username string) map[string][]float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	history := make(map[string][]float64, len(l.payments[username]))
	for payee, amounts := range l.payments[username] {
		history[payee] = append([]float64(nil), amounts...)
	}
	return history
}

func (l *Ledger) EdgeCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := 0
	for _, creditors := range l.byDebtor {
		count += len(creditors)
	}
	return count
}

// Replay rebuilds the in-memory state from the persisted logs: every
// user's debts store first, then every user's payments store. Payments go
// through the same recalculation as live calls, including the overpayment
// reversal. Failure here is the only condition that aborts server start.
func (l *Ledger) Replay(ctx context.Context) error {
	usernames := l.users.Usernames()

	g, _ := errgroup.WithContext(ctx)
	for _, username := range usernames {
		username := username
		g.Go(func() error {
			records, err := l.log.Debts(username)
			if err != nil {
				return fmt.Errorf("can't replay debts of %s: %w", username, err)
			}
			l.mu.Lock()
			for _, rec := range records {
				l.applyDebt(username, rec.Counterparty, rec.Amount)
			}
			l.mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Payment replay is order sensitive between mutual debtors, so it runs
	// sequentially over the sorted user list.
	for _, username := range usernames {
		records, err := l.log.Payments(username)
		if err != nil {
			return fmt.Errorf("can't replay payments of %s: %w", username, err)
		}
		l.mu.Lock()
		for _, rec := range records {
			l.applyPayment(username, rec.Counterparty, rec.Amount)
		}
		l.mu.Unlock()
	}

	zap.L().Info("ledger replayed",
		zap.Int("users", len(usernames)),
		zap.Int("edges", l.EdgeCount()))
	return nil
}

// applyDebt nets a new debtor->creditor increment against the opposite
// edge. Callers hold the lock.
func (l *Ledger) applyDebt(debtor, creditor string, amount float64) {
	existing, ok := l.byDebtor[creditor][debtor]
	switch {
	case ok && amount < existing:
		l.setEdge(creditor, debtor, money.Round(existing-amount))
	case ok && existing < amount:
		l.clearEdge(creditor, debtor)
		l.setEdge(debtor, creditor, money.Round(amount-existing))
	case ok:
		l.clearEdge(creditor, debtor)
	default:
		l.setEdge(debtor, creditor, money.Round(l.byDebtor[debtor][creditor]+amount))
	}
}

// applyPayment reduces the payer->payee edge and flips it on overpayment.
// Callers hold the lock.
func (l *Ledger) applyPayment(payer, payee string, amountPaid float64) {
	remaining := money.Round(l.byDebtor[payer][payee] - amountPaid)
	if remaining >= 0 {
		l.setEdge(payer, payee, remaining)
	} else {
		l.clearEdge(payer, payee)
		l.setEdge(payee, payer, -remaining)
	}

	if l.payments[payer] == nil {
		l.payments[payer] = make(map[string][]float64)
	}
	l.payments[payer][payee] = append(l.payments[payer][payee], amountPaid)
}

func (l *Ledger) setEdge(debtor, creditor string, amount float64) {
	if money.IsZero(amount) {
		l.clearEdge(debtor, creditor)
		return
	}
	if l.byDebtor[debtor] == nil {
		l.byDebtor[debtor] = make(map[string]float64)
	}
	if l.byCreditor[creditor] == nil {
		l.byCreditor[creditor] = make(map[string]float64)
	}
	l.byDebtor[debtor][creditor] = amount
	l.byCreditor[creditor][debtor] = amount
}

func (l *Ledger) clearEdge(debtor, creditor string) {
	delete(l.byDebtor[debtor], creditor)
	delete(l.byCreditor[creditor], debtor)
}

func copyEdges(edges map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(edges))
	for user, amount := range edges {
		out[user] = amount
	}
	return out
}

func contains(list []string, s string) bool {
	i := sort.SearchStrings(list, s)
	return i < len(list) && list[i] == s
}
