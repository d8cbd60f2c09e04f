package ledger_test

import (
	"os"
	"path/filepath"

	"github.com/pocketledger/backend/internal/ledger"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestImportBatch() {
	result := suite.store.ImportBatch([]ledger.Candidate{
		ledger.NewCandidate("2024-03-15", "expense", "Food", "12.50", "Lunch"),
		ledger.NewCandidate("2024-03-16", "income", "Salary", "1000", "Salary"),
	})

	assert.True(suite.T(), result.Success)
	assert.Equal(suite.T(), 2, result.Imported)
	assert.Equal(suite.T(), 0, result.Failed)
	assert.Empty(suite.T(), result.Errors)
	assert.False(suite.T(), result.Partial())

	assert.Len(suite.T(), suite.store.Query(ledger.Filter{}), 2)
}

func (suite *TestSuiteStandard) TestImportBatchPartial() {
	result := suite.store.ImportBatch([]ledger.Candidate{
		ledger.NewCandidate("2024-03-15", "expense", "Food", "12.50", "Lunch"),
		ledger.NewCandidate("never", "expense", "Food", "12.50", "Lunch"),
		ledger.NewCandidate("2024-03-17", "expense", "Food", "-1", "Refund entered wrong"),
	})

	assert.False(suite.T(), result.Success, "a batch with failures is not a success")
	assert.True(suite.T(), result.Partial())
	assert.Equal(suite.T(), 1, result.Imported)
	assert.Equal(suite.T(), 2, result.Failed)

	// Row positions are 1-based
	assert.Equal(suite.T(), []string{
		"row 2: invalid transaction data",
		"row 3: invalid transaction data",
	}, result.Errors)

	assert.Len(suite.T(), suite.store.Query(ledger.Filter{}), 1, "valid rows are kept even when others fail")
}

// A row that fails to persist is reported as a write failure, not as bad
// data.
func (suite *TestSuiteStandard) TestImportBatchWriteFailure() {
	// A regular file where the data directory should be makes every
	// document rewrite fail.
	blocker := filepath.Join(suite.T().TempDir(), "blocker")
	suite.Require().NoError(os.WriteFile(blocker, []byte("not a directory"), 0o644))

	store := ledger.Open(filepath.Join(blocker, "pocketledger.json"))

	result := store.ImportBatch([]ledger.Candidate{
		ledger.NewCandidate("2024-03-15", "expense", "Food", "12.50", "Lunch"),
	})

	assert.False(suite.T(), result.Success)
	assert.Equal(suite.T(), 0, result.Imported)
	assert.Equal(suite.T(), 1, result.Failed)

	suite.Require().Len(result.Errors, 1)
	assert.Contains(suite.T(), result.Errors[0], "row 1: document not persisted")
	assert.NotContains(suite.T(), result.Errors[0], "invalid transaction data")
}

func (suite *TestSuiteStandard) TestImportBatchEmpty() {
	result := suite.store.ImportBatch(nil)

	assert.False(suite.T(), result.Success, "an empty batch imports nothing and is not a success")
	assert.Equal(suite.T(), 0, result.Imported)
}
