// Package debtrepo is the replay log behind the ledger: two append-only
// stores per user, one for debt increments and one for payments. The files
// are the source of truth; the in-memory ledger is rebuilt from them at
// startup. Corrections are always expressed as new rows, never rewrites.
package debtrepo

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/dvelkova/splitwise/internal/domain"
	"github.com/dvelkova/splitwise/pkg/money"
	"go.uber.org/zap"
)

const (
	debtsFileSuffix    = "_debts.txt"
	paymentsFileSuffix = "_payments.txt"
	fileHeader         = "payee,amount"
)

type Log struct {
	mu  sync.Mutex
	dir string
}

func New(dir string) *Log {
	return &Log{dir: dir}
}

func (l *Log) debtsPath(username string) string {
	return filepath.Join(l.dir, username+debtsFileSuffix)
}

func (l *Log) paymentsPath(username string) string {
	return filepath.Join(l.dir, username+paymentsFileSuffix)
}

// AppendDebt records that payer's debt to payee grew by amount. The file is
// opened per call so the row is durable once the call returns.
func (l *Log) AppendDebt(payer, payee string, amount float64) error {
	if err := l.append(l.debtsPath(payer), payee, amount); err != nil {
		zap.L().Error("failed to append debts file", zap.String("payer", payer), zap.Error(err))
		return fmt.Errorf("can't update debts file: %w", err)
	}
	return nil
}

// AppendPayment records that payer handed amount to payee. The paid amount
// is recorded as-is, not the net change it caused.
func (l *Log) AppendPayment(payer, payee string, amount float64) error {
	if err := l.append(l.paymentsPath(payer), payee, amount); err != nil {
		zap.L().Error("failed to append payments file", zap.String("payer", payer), zap.Error(err))
		return fmt.Errorf("can't update payments file: %w", err)
	}
	return nil
}

// Debts returns the recorded debt increments of one user in append order.
func (l *Log) Debts(username string) ([]domain.LogRecord, error) {
	return l.read(l.debtsPath(username))
}

// Payments returns the recorded payments of one user in append order.
func (l *Log) Payments(username string) ([]domain.LogRecord, error) {
	return l.read(l.paymentsPath(username))
}

func (l *Log) append(path, counterparty string, amount float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if info.Size() == 0 {
		fmt.Fprintln(w, fileHeader)
	}
	fmt.Fprintf(w, "%s,%s\n", counterparty, money.Format(amount))
	return w.Flush()
}

func (l *Log) read(path string) ([]domain.LogRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("can't open record store: %w", err)
	}
	defer f.Close()

	var records []domain.LogRecord
	sc := bufio.NewScanner(f)
	first := true
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if first {
			first = false
			continue
		}
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed record: %q", line)
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("malformed amount in record %q: %w", line, err)
		}
		records = append(records, domain.LogRecord{
			Counterparty: strings.TrimSpace(fields[0]),
			Amount:       money.Round(amount),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("can't read record store: %w", err)
	}
	return records, nil
}
