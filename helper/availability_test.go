package helper

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	t.Cleanup(func() { sqlDB.Close() })
	return db, mock
}

func TestRangesOverlap(t *testing.T) {
	t.Run("khoang nam tron trong khoang kia", func(t *testing.T) {
		assert.True(t, RangesOverlap(
			date(2026, 3, 1), date(2026, 3, 10),
			date(2026, 3, 3), date(2026, 3, 5),
		))
	})

	t.Run("chong mot phan", func(t *testing.T) {
		assert.True(t, RangesOverlap(
			date(2026, 3, 1), date(2026, 3, 5),
			date(2026, 3, 4), date(2026, 3, 10),
		))
	})

	t.Run("tach roi hoan toan", func(t *testing.T) {
		assert.False(t, RangesOverlap(
			date(2026, 3, 1), date(2026, 3, 5),
			date(2026, 3, 6), date(2026, 3, 10),
		))
	})

	t.Run("tra va nhan cung ngay van tinh la trung", func(t *testing.T) {
		assert.True(t, RangesOverlap(
			date(2026, 3, 1), date(2026, 3, 5),
			date(2026, 3, 5), date(2026, 3, 10),
		))
	})
}

func TestIsRoomAvailable(t *testing.T) {
	checkIn := date(2026, 3, 1)
	checkOut := date(2026, 3, 5)

	t.Run("co booking trung thi dung lai ngay", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
			WithArgs(uint(7), "pending", "confirmed", checkOut, checkIn).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		available, err := IsRoomAvailable(db, 7, checkIn, checkOut, 0, 0)
		require.NoError(t, err)
		assert.False(t, available)
		// Khong duoc query tiep sang bang rentals
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("co rental active trung", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "rentals"`).
			WithArgs(uint(7), "active", checkOut, checkIn).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		available, err := IsRoomAvailable(db, 7, checkIn, checkOut, 0, 0)
		require.NoError(t, err)
		assert.False(t, available)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("phong trong", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "rentals"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		available, err := IsRoomAvailable(db, 7, checkIn, checkOut, 0, 0)
		require.NoError(t, err)
		assert.True(t, available)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("bo qua chinh phieu dang gia han", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
			WithArgs(uint(7), "pending", "confirmed", checkOut, checkIn, uint(3)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "rentals"`).
			WithArgs(uint(7), "active", checkOut, checkIn, uint(9)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		available, err := IsRoomAvailable(db, 7, checkIn, checkOut, 3, 9)
		require.NoError(t, err)
		assert.True(t, available)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
