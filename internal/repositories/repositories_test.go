package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"newlife/internal/models/db_models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestAccountRepository_FindByEmail_NotFoundReturnsNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	acc, err := repo.FindByEmail(context.Background(), "nobody@example.com")

	require.NoError(t, err)
	assert.Nil(t, acc)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_FindById(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow(id.String(), "Lan", "lan@example.com"))

	acc, err := repo.FindById(context.Background(), id)

	require.NoError(t, err)
	require.NotNil(t, acc)
	assert.Equal(t, id, acc.ID)
	assert.Equal(t, "lan@example.com", acc.Email)
}

func TestTripRepository_ListByUser_OrdersByStartDate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripRepository(db)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "trips" WHERE user_id = \$1 .* ORDER BY start_date ASC,created_at ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).
			AddRow(uuid.NewString(), "Da Lat").
			AddRow(uuid.NewString(), "Hue"))

	trips, err := repo.ListByUser(context.Background(), userID)

	require.NoError(t, err)
	assert.Len(t, trips, 2)
	assert.Equal(t, "Da Lat", trips[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripRepository_DeleteCascade_RunsInOneTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "itinerary_activities" SET "deleted_at"`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`UPDATE "itinerary_days" SET "deleted_at"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "itineraries" SET "deleted_at"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "expenses" SET "deleted_at"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`UPDATE "trips" SET "deleted_at"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteCascade(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripRepository_DeleteCascade_RollsBackOnFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "itinerary_activities"`).WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.DeleteCascade(context.Background(), uuid.New())

	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_SumByCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewExpenseRepository(db)

	mock.ExpectQuery(`SELECT category, COALESCE\(SUM\(amount\), 0\) AS total, COUNT\(\*\) AS count FROM "expenses"`).
		WillReturnRows(sqlmock.NewRows([]string{"category", "total", "count"}).
			AddRow("food", 120.5, 3).
			AddRow("transport", 40.0, 1))

	sums, err := repo.SumByCategory(context.Background(), uuid.New())

	require.NoError(t, err)
	require.Len(t, sums, 2)
	assert.Equal(t, CategorySum{Category: "food", Total: 120.5, Count: 3}, sums[0])
}

func TestItineraryRepository_DeleteByTripId_HardDeletes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItineraryRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "itinerary_activities"`).WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(`DELETE FROM "itinerary_days"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "itineraries"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteByTripId(context.Background(), uuid.New()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_ToggleSave_RemovesExisting(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "post_saves" WHERE user_id = \$1 AND post_id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	saved, err := repo.ToggleSave(context.Background(), uuid.New(), uuid.New())

	require.NoError(t, err)
	assert.False(t, saved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_LikedPostIDs_EmptyInputSkipsQuery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)

	liked, err := repo.LikedPostIDs(context.Background(), uuid.New(), nil)

	require.NoError(t, err)
	assert.Empty(t, liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Update_LeavesCountersAlone(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)

	// likes and comments may land between load and save
	mock.ExpectExec(`^UPDATE "posts" SET ("(content|images|location|updated_at)"=\$\d,?)+ WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	post := &db_models.Post{
		BaseModel:    db_models.BaseModel{ID: uuid.New()},
		Content:      "Sunset at Hoi An",
		Location:     "Hoi An",
		LikeCount:    3,
		CommentCount: 1,
	}
	require.NoError(t, repo.Update(context.Background(), post))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_DeleteCascade(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "comments" SET "deleted_at"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "post_likes"`).WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec(`DELETE FROM "post_saves"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "posts" SET "deleted_at"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteCascade(context.Background(), uuid.New()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_DeleteComment_DecrementsCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "comments" SET "deleted_at"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "posts" SET "comment_count"=GREATEST\(comment_count - 1, 0\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteComment(context.Background(), &db_models.Comment{BaseModel: db_models.BaseModel{ID: uuid.New()}, PostID: uuid.New()})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDestinationRepository_SearchByVector(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDestinationRepository(db)

	mock.ExpectQuery(`embedding_model = \$1\s+ORDER BY embedding <=> \$2`).
		WithArgs("gemini/text-embedding-004", sqlmock.AnyArg(), 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "lookups"}).
			AddRow(uuid.NewString(), "hoi an", 7))

	got, err := repo.SearchByVector(context.Background(), "gemini/text-embedding-004", pgvector.NewVector([]float32{0.1, 0.2}), 5)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "hoi an", got[0].Name)
	assert.Equal(t, int64(7), got[0].Lookups)
}

func TestDestinationRepository_IncrementLookups(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDestinationRepository(db)

	mock.ExpectExec(`UPDATE "destinations" SET "lookups"=lookups \+ 1 WHERE name = \$1`).
		WithArgs("hue").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.IncrementLookups(context.Background(), "hue"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
