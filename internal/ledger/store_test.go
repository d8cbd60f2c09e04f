package ledger_test

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAdd() {
	transaction, err := suite.store.Add(ledger.NewCandidate("2024-03-15", "expense", "Food", "12.50", "Lunch"))
	suite.Require().NoError(err)

	assert.True(suite.T(), len(transaction.ID) > 4, "an ID must be assigned")
	assert.Equal(suite.T(), "TXN_", transaction.ID[:4])
	assert.True(suite.T(), decimal.NewFromFloat(12.50).Equal(transaction.Amount))
	assert.False(suite.T(), transaction.CreatedAt.IsZero(), "CreatedAt must be stamped")
	assert.Equal(suite.T(), transaction.CreatedAt, transaction.UpdatedAt)

	// The file must exist after the first successful mutation
	_, err = os.Stat(suite.path)
	assert.NoError(suite.T(), err)
}

func (suite *TestSuiteStandard) TestAddInvalid() {
	_, err := suite.store.Add(ledger.NewCandidate("not-a-date", "expense", "Food", "12.50", "Lunch"))
	assert.ErrorIs(suite.T(), err, ledger.ErrInvalidCandidate)

	assert.Empty(suite.T(), suite.store.Query(ledger.Filter{}), "a rejected candidate must not be stored")
}

func (suite *TestSuiteStandard) TestGet() {
	created, err := suite.store.Add(ledger.NewCandidate("2024-03-15", "expense", "Food", "12.50", "Lunch"))
	suite.Require().NoError(err)

	transaction, ok := suite.store.Get(created.ID)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), created.ID, transaction.ID)

	_, ok = suite.store.Get("TXN_does_not_exist")
	assert.False(suite.T(), ok)
}

func (suite *TestSuiteStandard) TestUpdate() {
	created, err := suite.store.Add(ledger.NewCandidate("2024-03-15", "expense", "Food", "12.50", "Lunch"))
	suite.Require().NoError(err)

	amount := "20"
	updated, err := suite.store.Update(created.ID, ledger.Candidate{Amount: &amount})
	suite.Require().NoError(err)

	assert.Equal(suite.T(), created.ID, updated.ID, "the ID must survive an update")
	assert.Equal(suite.T(), created.CreatedAt, updated.CreatedAt, "CreatedAt must survive an update")
	assert.True(suite.T(), decimal.NewFromInt(20).Equal(updated.Amount))
	assert.Equal(suite.T(), "Lunch", updated.Description, "fields not in the patch must keep their value")
}

func (suite *TestSuiteStandard) TestUpdateInvalidPatch() {
	created, err := suite.store.Add(ledger.NewCandidate("2024-03-15", "expense", "Food", "12.50", "Lunch"))
	suite.Require().NoError(err)

	amount := "-3"
	_, err = suite.store.Update(created.ID, ledger.Candidate{Amount: &amount})
	assert.ErrorIs(suite.T(), err, ledger.ErrInvalidCandidate)

	unchanged, _ := suite.store.Get(created.ID)
	assert.True(suite.T(), decimal.NewFromFloat(12.50).Equal(unchanged.Amount), "a rejected patch must not change the record")
}

func (suite *TestSuiteStandard) TestUpdateMissing() {
	amount := "20"
	_, err := suite.store.Update("TXN_does_not_exist", ledger.Candidate{Amount: &amount})
	assert.ErrorIs(suite.T(), err, ledger.ErrNotFound)
}

func (suite *TestSuiteStandard) TestRemove() {
	created, err := suite.store.Add(ledger.NewCandidate("2024-03-15", "expense", "Food", "12.50", "Lunch"))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.store.Remove(created.ID))

	_, ok := suite.store.Get(created.ID)
	assert.False(suite.T(), ok)

	assert.ErrorIs(suite.T(), suite.store.Remove(created.ID), ledger.ErrNotFound)
}

func (suite *TestSuiteStandard) TestQueryFilters() {
	suite.createTestTransaction("2024-01-10", "income", "Salary", "1000", "January salary")
	suite.createTestTransaction("2024-02-05", "expense", "Food", "50", "Groceries")
	suite.createTestTransaction("2024-02-20", "expense", "Transport", "30", "Fuel")
	suite.createTestTransaction("2024-03-01", "expense", "Food", "70", "More groceries")

	all := suite.store.Query(ledger.Filter{})
	suite.Require().Len(all, 4)

	// Ascending by date
	assert.Equal(suite.T(), "2024-01-10", all[0].Date)
	assert.Equal(suite.T(), "2024-03-01", all[3].Date)

	expenses := suite.store.Query(ledger.Filter{Kind: models.Expense})
	assert.Len(suite.T(), expenses, 3)

	food := suite.store.Query(ledger.Filter{Category: "Food"})
	assert.Len(suite.T(), food, 2)

	february := suite.store.Query(ledger.Filter{
		From: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
	})
	assert.Len(suite.T(), february, 2)

	// Bounds are inclusive
	exact := suite.store.Query(ledger.Filter{
		From: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
	})
	assert.Len(suite.T(), exact, 1)
}

func (suite *TestSuiteStandard) TestPersistenceRoundTrip() {
	suite.createTestTransaction("2024-03-15", "expense", "Food", "12.50", "Lunch")
	suite.Require().NoError(suite.store.SetBudget("Food", decimal.NewFromInt(300)))

	reopened := ledger.Open(suite.path)

	assert.Len(suite.T(), reopened.Query(ledger.Filter{}), 1)
	limit, ok := reopened.Budgets()["Food"]
	suite.Require().True(ok)
	assert.True(suite.T(), decimal.NewFromInt(300).Equal(limit))
}

func (suite *TestSuiteStandard) TestCorruptDocumentFallsBackToDefaults() {
	suite.Require().NoError(os.WriteFile(suite.path, []byte("{ not json"), 0o644))

	store := ledger.Open(suite.path)

	assert.Empty(suite.T(), store.Query(ledger.Filter{}))
	assert.Contains(suite.T(), store.Categories().Expense, "Food", "the default pick-lists must be present")
}

func (suite *TestSuiteStandard) TestBackupIsWritten() {
	suite.createTestTransaction("2024-03-15", "expense", "Food", "12.50", "Lunch")

	// The second mutation backs up the file written by the first
	suite.createTestTransaction("2024-03-16", "expense", "Food", "8", "Coffee")

	matches, err := filepath.Glob(suite.path + ".backup_*")
	suite.Require().NoError(err)
	assert.NotEmpty(suite.T(), matches, "a backup of the previous document must exist")
}

func (suite *TestSuiteStandard) TestExportAll() {
	suite.createTestTransaction("2024-03-15", "expense", "Food", "12.50", "Lunch")
	suite.createTestTransaction("2024-03-01", "income", "Salary", "1000", "March salary")

	rows := suite.store.ExportAll(time.Time{}, time.Time{})
	suite.Require().Len(rows, 2)

	// Ordered by date, five canonical columns
	assert.Equal(suite.T(), []string{"2024-03-01", "income", "Salary", "1000", "March salary"}, rows[0])
	assert.Equal(suite.T(), []string{"2024-03-15", "expense", "Food", "12.5", "Lunch"}, rows[1])
}

func (suite *TestSuiteStandard) TestStatistics() {
	suite.createTestTransaction("2024-01-10", "income", "Salary", "1000", "January salary")
	suite.createTestTransaction("2024-02-05", "expense", "Food", "50", "Groceries")
	suite.createTestTransaction("2024-03-01", "expense", "Food", "70", "More groceries")

	stats := suite.store.Statistics()

	assert.Equal(suite.T(), 3, stats.Total)
	assert.Equal(suite.T(), 1, stats.IncomeCount)
	assert.Equal(suite.T(), 2, stats.ExpenseCount)
	assert.Equal(suite.T(), "2024-01-10", stats.DateRange.Earliest)
	assert.Equal(suite.T(), "2024-03-01", stats.DateRange.Latest)
	assert.True(suite.T(), stats.FileSize > 0)
}

func (suite *TestSuiteStandard) TestBudgets() {
	suite.Require().NoError(suite.store.SetBudget("Food", decimal.NewFromInt(300)))

	assert.ErrorIs(suite.T(), suite.store.SetBudget("", decimal.NewFromInt(10)), ledger.ErrInvalidBudget)
	assert.ErrorIs(suite.T(), suite.store.SetBudget("Food", decimal.Zero), ledger.ErrInvalidBudget)

	// Replacing an existing budget is allowed
	suite.Require().NoError(suite.store.SetBudget("Food", decimal.NewFromInt(400)))
	assert.True(suite.T(), decimal.NewFromInt(400).Equal(suite.store.Budgets()["Food"]))

	suite.Require().NoError(suite.store.RemoveBudget("Food"))
	assert.ErrorIs(suite.T(), suite.store.RemoveBudget("Food"), models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCategories() {
	suite.Require().NoError(suite.store.AddCategory(models.Expense, "Pets"))
	assert.Contains(suite.T(), suite.store.Categories().Expense, "Pets")

	// Adding an existing label is a no-op, not an error
	suite.Require().NoError(suite.store.AddCategory(models.Expense, "Pets"))

	assert.ErrorIs(suite.T(), suite.store.AddCategory(models.Expense, "  "), ledger.ErrInvalidCategory)
	assert.ErrorIs(suite.T(), suite.store.AddCategory(models.Kind("transfer"), "Pets"), ledger.ErrInvalidCategory)

	suite.createTestTransaction("2024-03-15", "expense", "Pets", "40", "Vet")
	assert.ErrorIs(suite.T(), suite.store.RemoveCategory(models.Expense, "Pets"), models.ErrCategoryInUse)

	suite.Require().NoError(suite.store.AddCategory(models.Expense, "Hobby"))
	suite.Require().NoError(suite.store.RemoveCategory(models.Expense, "Hobby"))
	assert.ErrorIs(suite.T(), suite.store.RemoveCategory(models.Expense, "Hobby"), models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestGoals() {
	goal := models.Goal{
		Name:         "Emergency fund",
		TargetAmount: decimal.NewFromInt(5000),
		TargetDate:   "2026-12-31",
		StartDate:    "2026-01-01",
	}
	suite.Require().NoError(suite.store.AddGoal(goal))

	assert.ErrorIs(suite.T(), suite.store.AddGoal(goal), ledger.ErrInvalidGoal, "duplicate names are refused")
	assert.ErrorIs(suite.T(), suite.store.AddGoal(models.Goal{Name: "No target"}), ledger.ErrInvalidGoal)
	assert.ErrorIs(suite.T(), suite.store.AddGoal(models.Goal{
		Name:         "Bad date",
		TargetAmount: decimal.NewFromInt(100),
		TargetDate:   "soon",
	}), ledger.ErrInvalidGoal)

	suite.Require().Len(suite.store.Goals(), 1)

	suite.Require().NoError(suite.store.RemoveGoal("Emergency fund"))
	assert.ErrorIs(suite.T(), suite.store.RemoveGoal("Emergency fund"), models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestPing() {
	assert.NoError(suite.T(), suite.store.Ping())
}

func (suite *TestSuiteStandard) TestMalformedStoredDatesAreSkipped() {
	suite.createTestTransaction("2024-03-15", "expense", "Food", "12.50", "Lunch")
	suite.createTestTransaction("2024-03-16", "expense", "Food", "8", "Coffee")

	// Corrupt one date directly in the file, as the validator prevents a
	// malformed date from entering through a mutation
	content, err := os.ReadFile(suite.path)
	suite.Require().NoError(err)
	patched := strings.Replace(string(content), "2024-03-16", "not-a-date", 1)
	suite.Require().NoError(os.WriteFile(suite.path, []byte(patched), 0o644))

	store := ledger.Open(suite.path)

	from, err := types.ParseDate("2024-03-01")
	suite.Require().NoError(err)
	to, err := types.ParseDate("2024-03-31")
	suite.Require().NoError(err)

	dated := store.Query(ledger.Filter{From: from, To: to})
	assert.Len(suite.T(), dated, 1, "the record with the malformed date must be skipped")
}
