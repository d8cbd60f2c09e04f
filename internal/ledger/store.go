// Package ledger implements the transaction store: validated mutations on
// the in-memory document, filtered queries and whole-document persistence.
package ledger

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pocketledger/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidCandidate is returned when a candidate fails validation.
	ErrInvalidCandidate = errors.New("invalid transaction data")

	// ErrNotFound is returned when no transaction matches the given ID.
	ErrNotFound = errors.New("no transaction found for the specified ID")

	// ErrNotPersisted is returned when the document could not be written.
	// The in-memory state has been rolled back when this is returned.
	ErrNotPersisted = errors.New("document not persisted")

	// ErrInvalidBudget is returned for budget limits that are not strictly
	// positive or lack a category.
	ErrInvalidBudget = errors.New("a budget needs a category and a positive monthly limit")

	// ErrInvalidCategory is returned for empty category names or kinds
	// other than income and expense.
	ErrInvalidCategory = errors.New("a category needs a non-empty name and a kind of income or expense")

	// ErrInvalidGoal is returned for goals without a name, without a
	// positive target amount or with malformed dates.
	ErrInvalidGoal = errors.New("a goal needs a unique name, a positive target amount and well-formed dates")
)

// Store owns the document. All access goes through its methods; the mutex
// keeps every read-modify-write sequence atomic so that callers observe
// either a fully persisted change or no change at all.
type Store struct {
	mu   sync.Mutex
	path string
	doc  models.Document
}

// Open reads the document at path and returns a store for it. A missing,
// unreadable or malformed file is replaced by the default document; this
// is a normal start condition, not an error.
func Open(path string) *Store {
	return &Store{
		path: path,
		doc:  load(path),
	}
}

// Filter selects transactions for Query. Zero values leave the dimension
// unbounded. Date bounds are inclusive.
type Filter struct {
	From     time.Time
	To       time.Time
	Kind     models.Kind
	Category string
}

// Query returns copies of all matching transactions ordered by ascending
// date. Records whose stored date does not parse are skipped.
func (s *Store) Query(f Filter) []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.query(f)
}

func (s *Store) query(f Filter) []models.Transaction {
	matches := make([]models.Transaction, 0)
	for _, t := range s.doc.Transactions {
		day, err := t.Day()
		if err != nil {
			continue
		}
		if !f.From.IsZero() && day.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && day.After(f.To) {
			continue
		}
		if f.Kind != "" && t.Kind != f.Kind {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}

		matches = append(matches, t)
	}

	// YYYY-MM-DD sorts chronologically as text
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Date < matches[j].Date
	})

	return matches
}

// Get returns a copy of the transaction with the given ID.
func (s *Store) Get(id string) (models.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.doc.Transactions {
		if t.ID == id {
			return t, true
		}
	}

	return models.Transaction{}, false
}

// Add validates the candidate, assigns an ID and timestamps, appends it
// and persists the document. On validation or persistence failure the
// store is left unchanged.
func (s *Store) Add(c Candidate) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.add(c)
}

func (s *Store) add(c Candidate) (models.Transaction, error) {
	if !c.Valid() {
		return models.Transaction{}, ErrInvalidCandidate
	}

	t := c.record()
	t.ID = models.NewID()
	now := time.Now().In(time.UTC)
	t.CreatedAt = now
	t.UpdatedAt = now

	s.doc.Transactions = append(s.doc.Transactions, t)
	if err := s.save(); err != nil {
		s.doc.Transactions = s.doc.Transactions[:len(s.doc.Transactions)-1]
		log.Error().Err(err).Msg("ledger: add not persisted")
		return models.Transaction{}, fmt.Errorf("%w: %s", ErrNotPersisted, err)
	}

	return t, nil
}

// Update merges the patch onto the transaction with the given ID and
// re-validates the merged record before committing it. A patch that looks
// fine on its own can still produce an invalid merged record; that merged
// record is what decides.
func (s *Store) Update(id string, patch Candidate) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.doc.Transactions {
		if t.ID != id {
			continue
		}

		merged := candidateOf(t).merge(patch)
		if !merged.Valid() {
			return models.Transaction{}, ErrInvalidCandidate
		}

		updated := merged.record()
		updated.ID = t.ID
		updated.CreatedAt = t.CreatedAt
		updated.UpdatedAt = time.Now().In(time.UTC)

		s.doc.Transactions[i] = updated
		if err := s.save(); err != nil {
			s.doc.Transactions[i] = t
			log.Error().Err(err).Msg("ledger: update not persisted")
			return models.Transaction{}, fmt.Errorf("%w: %s", ErrNotPersisted, err)
		}

		return updated, nil
	}

	return models.Transaction{}, ErrNotFound
}

// Remove deletes the transaction with the given ID.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.doc.Transactions {
		if t.ID != id {
			continue
		}

		previous := s.doc.Transactions
		remaining := make([]models.Transaction, 0, len(previous)-1)
		remaining = append(remaining, previous[:i]...)
		remaining = append(remaining, previous[i+1:]...)

		s.doc.Transactions = remaining
		if err := s.save(); err != nil {
			s.doc.Transactions = previous
			log.Error().Err(err).Msg("ledger: remove not persisted")
			return fmt.Errorf("%w: %s", ErrNotPersisted, err)
		}

		return nil
	}

	return ErrNotFound
}

// ExportAll projects the filtered transactions onto the five canonical
// columns date, type, category, amount, description, in that order.
func (s *Store) ExportAll(from, to time.Time) [][]string {
	rows := make([][]string, 0)
	for _, t := range s.Query(Filter{From: from, To: to}) {
		rows = append(rows, []string{t.Date, string(t.Kind), t.Category, t.Amount.String(), t.Description})
	}

	return rows
}

// DateRange is the span between the oldest and newest parseable
// transaction dates.
type DateRange struct {
	Earliest string `json:"earliest" example:"2024-01-01"`
	Latest   string `json:"latest" example:"2024-12-24"`
}

// Statistics summarizes the stored document.
type Statistics struct {
	Total        int        `json:"totalCount"`
	IncomeCount  int        `json:"incomeCount"`
	ExpenseCount int        `json:"expenseCount"`
	FileSize     int64      `json:"fileSize"`
	DateRange    *DateRange `json:"dateRange"`
}

// Statistics returns summary counts for the document. DateRange is nil
// when no transaction has a parseable date.
func (s *Store) Statistics() Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := Statistics{Total: len(s.doc.Transactions)}

	for _, t := range s.doc.Transactions {
		switch t.Kind {
		case models.Income:
			stats.IncomeCount++
		case models.Expense:
			stats.ExpenseCount++
		}

		if _, err := t.Day(); err != nil {
			continue
		}
		if stats.DateRange == nil {
			stats.DateRange = &DateRange{Earliest: t.Date, Latest: t.Date}
			continue
		}
		if t.Date < stats.DateRange.Earliest {
			stats.DateRange.Earliest = t.Date
		}
		if t.Date > stats.DateRange.Latest {
			stats.DateRange.Latest = t.Date
		}
	}

	if info, err := os.Stat(s.path); err == nil {
		stats.FileSize = info.Size()
	}

	return stats
}

// Budgets returns a copy of the per-category monthly limits.
func (s *Store) Budgets() models.Budgets {
	s.mu.Lock()
	defer s.mu.Unlock()

	budgets := make(models.Budgets, len(s.doc.Budgets))
	for category, limit := range s.doc.Budgets {
		budgets[category] = limit
	}

	return budgets
}

// SetBudget sets the monthly limit for a category. The limit must be
// strictly positive.
func (s *Store) SetBudget(category string, limit decimal.Decimal) error {
	category = strings.TrimSpace(category)
	if category == "" || !limit.IsPositive() {
		return ErrInvalidBudget
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.doc.Budgets[category]
	s.doc.Budgets[category] = limit
	if err := s.save(); err != nil {
		if existed {
			s.doc.Budgets[category] = previous
		} else {
			delete(s.doc.Budgets, category)
		}
		log.Error().Err(err).Msg("ledger: budget not persisted")
		return fmt.Errorf("%w: %s", ErrNotPersisted, err)
	}

	return nil
}

// RemoveBudget deletes the budget for a category if one is configured.
func (s *Store) RemoveBudget(category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, ok := s.doc.Budgets[category]
	if !ok {
		return models.ErrResourceNotFound
	}

	delete(s.doc.Budgets, category)
	if err := s.save(); err != nil {
		s.doc.Budgets[category] = previous
		log.Error().Err(err).Msg("ledger: budget removal not persisted")
		return fmt.Errorf("%w: %s", ErrNotPersisted, err)
	}

	return nil
}

// Categories returns a copy of the pick-list catalog.
func (s *Store) Categories() models.CategoryCatalog {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.CategoryCatalog{
		Income:  append([]string(nil), s.doc.Categories.Income...),
		Expense: append([]string(nil), s.doc.Categories.Expense...),
	}
}

// AddCategory adds a label to the income or expense pick-list. Adding a
// label that already exists succeeds without touching the file.
func (s *Store) AddCategory(kind models.Kind, name string) error {
	name = strings.TrimSpace(name)
	if !kind.Valid() || name == "" {
		return ErrInvalidCategory
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.catalog(kind)
	for _, existing := range *list {
		if existing == name {
			return nil
		}
	}

	*list = append(*list, name)
	if err := s.save(); err != nil {
		*list = (*list)[:len(*list)-1]
		log.Error().Err(err).Msg("ledger: category not persisted")
		return fmt.Errorf("%w: %s", ErrNotPersisted, err)
	}

	return nil
}

// RemoveCategory removes a label from the pick-list. Labels still used by
// a transaction are refused.
func (s *Store) RemoveCategory(kind models.Kind, name string) error {
	if !kind.Valid() {
		return ErrInvalidCategory
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.doc.Transactions {
		if t.Category == name {
			return models.ErrCategoryInUse
		}
	}

	list := s.catalog(kind)
	for i, existing := range *list {
		if existing != name {
			continue
		}

		previous := *list
		remaining := make([]string, 0, len(previous)-1)
		remaining = append(remaining, previous[:i]...)
		remaining = append(remaining, previous[i+1:]...)

		*list = remaining
		if err := s.save(); err != nil {
			*list = previous
			log.Error().Err(err).Msg("ledger: category removal not persisted")
			return fmt.Errorf("%w: %s", ErrNotPersisted, err)
		}

		return nil
	}

	return models.ErrResourceNotFound
}

func (s *Store) catalog(kind models.Kind) *[]string {
	if kind == models.Income {
		return &s.doc.Categories.Income
	}

	return &s.doc.Categories.Expense
}

// Goals returns a copy of the configured savings goals.
func (s *Store) Goals() []models.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Goal(nil), s.doc.Goals...)
}

// AddGoal appends a savings goal. The name must be unique and non-empty,
// the target amount strictly positive and both dates well-formed.
func (s *Store) AddGoal(goal models.Goal) error {
	goal.Name = strings.TrimSpace(goal.Name)
	if goal.Name == "" || !goal.TargetAmount.IsPositive() {
		return ErrInvalidGoal
	}
	if _, err := parseDateOrEmpty(goal.TargetDate); err != nil {
		return ErrInvalidGoal
	}
	if _, err := parseDateOrEmpty(goal.StartDate); err != nil {
		return ErrInvalidGoal
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.doc.Goals {
		if existing.Name == goal.Name {
			return ErrInvalidGoal
		}
	}

	s.doc.Goals = append(s.doc.Goals, goal)
	if err := s.save(); err != nil {
		s.doc.Goals = s.doc.Goals[:len(s.doc.Goals)-1]
		log.Error().Err(err).Msg("ledger: goal not persisted")
		return fmt.Errorf("%w: %s", ErrNotPersisted, err)
	}

	return nil
}

// RemoveGoal deletes the goal with the given name.
func (s *Store) RemoveGoal(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, goal := range s.doc.Goals {
		if goal.Name != name {
			continue
		}

		previous := s.doc.Goals
		remaining := make([]models.Goal, 0, len(previous)-1)
		remaining = append(remaining, previous[:i]...)
		remaining = append(remaining, previous[i+1:]...)

		s.doc.Goals = remaining
		if err := s.save(); err != nil {
			s.doc.Goals = previous
			log.Error().Err(err).Msg("ledger: goal removal not persisted")
			return fmt.Errorf("%w: %s", ErrNotPersisted, err)
		}

		return nil
	}

	return models.ErrResourceNotFound
}
