package helper

import (
	"testing"

	"hotel_manager/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings(t *testing.T) {
	t.Run("bang rong dung mac dinh", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectQuery(`SELECT \* FROM "regulations"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "key", "value"}))

		settings := LoadSettings(db)
		assert.Equal(t, 30.0, settings.DepositPercentage)
		assert.Equal(t, 0.25, settings.SurchargeRate)
		assert.Equal(t, 1.5, settings.ForeignCoefficient)
		assert.Equal(t, 3, settings.StandardCapacity)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("quy dinh trong bang ghi de mac dinh", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectQuery(`SELECT \* FROM "regulations"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "key", "value"}).
				AddRow(1, "deposit_percentage", 50.0).
				AddRow(2, "foreign_guest_coefficient", 2.0).
				AddRow(3, "max_guests_per_room", 4.0))

		settings := LoadSettings(db)
		assert.Equal(t, 50.0, settings.DepositPercentage)
		assert.Equal(t, 0.25, settings.SurchargeRate) // khong cau hinh, giu mac dinh
		assert.Equal(t, 2.0, settings.ForeignCoefficient)
		assert.Equal(t, 4, settings.StandardCapacity)
	})

	t.Run("loi truy van roi ve mac dinh", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectQuery(`SELECT \* FROM "regulations"`).
			WillReturnError(assert.AnError)

		settings := LoadSettings(db)
		assert.Equal(t, 30.0, settings.DepositPercentage)
	})
}

func TestStandardCapacityFor(t *testing.T) {
	settings := RegulationSettings{StandardCapacity: 3}

	assert.Equal(t, 2, StandardCapacityFor(model.RoomType{MaxGuests: 2}, settings))
	assert.Equal(t, 3, StandardCapacityFor(model.RoomType{MaxGuests: 0}, settings))
}

func TestSurchargeRatioFor(t *testing.T) {
	settings := RegulationSettings{SurchargeRate: 0.25}

	assert.Equal(t, 0.4, SurchargeRatioFor(model.RoomType{SurchargeRatio: 0.4}, settings))
	assert.Equal(t, 0.25, SurchargeRatioFor(model.RoomType{SurchargeRatio: 0}, settings))
}
