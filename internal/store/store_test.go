package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"prai/internal/review"
)

func newSQLiteStore(t *testing.T) Store {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "prai.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func stores(t *testing.T) map[string]Store {
	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": newSQLiteStore(t),
	}
}

func completedRecord(repo string, pr int, at time.Time) Record {
	report := review.Aggregate([]review.FindingSet{
		{Category: review.CategoryLogic, Status: review.PassSucceeded},
		{Category: review.CategoryReadability, Status: review.PassSucceeded},
		{Category: review.CategoryPerformance, Status: review.PassSucceeded},
		{Category: review.CategorySecurity, Status: review.PassSucceeded},
	}, nil, 3*time.Second)

	return Record{
		Repo:        repo,
		PR:          pr,
		HeadSHA:     "abc123",
		RequestedBy: "webhook",
		Status:      StatusCompleted,
		Severity:    report.OverallSeverity,
		Report:      &report,
		Duration:    3 * time.Second,
		CreatedAt:   at,
	}
}

func TestStoreSaveAndLatest(t *testing.T) {

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

			require.NoError(t, s.Save(ctx, completedRecord("acme/widgets", 7, base)))

			newer := completedRecord("acme/widgets", 7, base.Add(time.Hour))
			newer.HeadSHA = "def456"
			require.NoError(t, s.Save(ctx, newer))

			rec, err := s.Latest(ctx, "acme/widgets", 7)
			require.NoError(t, err)
			require.Equal(t, "def456", rec.HeadSHA)
			require.Equal(t, StatusCompleted, rec.Status)
			require.NotEmpty(t, rec.ID)
			require.NotNil(t, rec.Report)
			require.Equal(t, review.SeverityInfo, rec.Report.OverallSeverity)
			require.Equal(t, 3*time.Second, rec.Duration)
		})
	}
}

func TestStoreLatestMissing(t *testing.T) {

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Latest(context.Background(), "acme/widgets", 99)
			require.ErrorIs(t, err, ErrNoReview)
		})
	}
}

func TestStoreFailedRecordHasNoReport(t *testing.T) {

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, s.Save(ctx, Record{
				Repo:      "acme/widgets",
				PR:        7,
				Status:    StatusFailed,
				Error:     "fetch acme/widgets#7: rate limited",
				CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
			}))

			rec, err := s.Latest(ctx, "acme/widgets", 7)
			require.NoError(t, err)
			require.Equal(t, StatusFailed, rec.Status)
			require.Nil(t, rec.Report)
			require.Contains(t, rec.Error, "rate limited")
		})
	}
}

func TestStoreListNewestFirstWithLimit(t *testing.T) {

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

			for i := 0; i < 5; i++ {
				require.NoError(t, s.Save(ctx, completedRecord("acme/widgets", i+1, base.Add(time.Duration(i)*time.Minute))))
			}
			require.NoError(t, s.Save(ctx, completedRecord("acme/other", 1, base)))

			recs, err := s.List(ctx, "acme/widgets", 3)
			require.NoError(t, err)
			require.Len(t, recs, 3)
			require.Equal(t, 5, recs[0].PR)
			require.Equal(t, 4, recs[1].PR)
			require.Equal(t, 3, recs[2].PR)
		})
	}
}
