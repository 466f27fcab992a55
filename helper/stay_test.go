package helper

import (
	"testing"
	"time"

	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingRows(id uint, roomId interface{}, status string, checkIn, checkOut time.Time, numGuests int, deposit float64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "public_code", "customer_id", "room_id",
		"check_in_date", "check_out_date", "num_guests", "status", "deposit_amount",
	}).AddRow(id, "BK-TEST01", 9, roomId, checkIn, checkOut, numGuests, status, deposit)
}

func roomRows(id, roomTypeId uint, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "room_number", "floor", "status", "room_type_id"}).
		AddRow(id, "101", 1, status, roomTypeId)
}

func roomTypeRows(id uint, basePrice float64, maxGuests int, ratio float64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "base_price", "max_guests", "surcharge_ratio"}).
		AddRow(id, "Phong doi", basePrice, maxGuests, ratio)
}

func emptyRegulations() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "key", "value"})
}

func TestCheckInFromBooking(t *testing.T) {
	checkIn := date(2026, 3, 1)
	checkOut := date(2026, 3, 3)

	t.Run("khong tim thay phieu dat", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "bookings"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		rental, _, appErr := CheckInFromBooking(db, 1, 5, nil)
		require.NotNil(t, appErr)
		assert.Equal(t, utils.KindNotFound, appErr.Kind)
		assert.Nil(t, rental)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("phieu da nhan phong truoc do", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "bookings"`).
			WillReturnRows(bookingRows(1, 7, model.BookingCheckedIn, checkIn, checkOut, 2, 0))
		mock.ExpectRollback()

		_, _, appErr := CheckInFromBooking(db, 1, 5, nil)
		require.NotNil(t, appErr)
		assert.Equal(t, utils.KindInvalidState, appErr.Kind)
		// Khong duoc ghi bat ky bang nao
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("phieu chua gan phong", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "bookings"`).
			WillReturnRows(bookingRows(1, nil, model.BookingConfirmed, checkIn, checkOut, 2, 0))
		mock.ExpectRollback()

		_, _, appErr := CheckInFromBooking(db, 1, 5, nil)
		require.NotNil(t, appErr)
		assert.Equal(t, utils.KindInvalidState, appErr.Kind)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nhan phong thanh cong chot gia va coc", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "bookings"`).
			WillReturnRows(bookingRows(1, 7, model.BookingConfirmed, checkIn, checkOut, 2, 0))
		mock.ExpectQuery(`SELECT \* FROM "rooms".*FOR UPDATE`).
			WillReturnRows(roomRows(7, 2, model.RoomAvailable))
		mock.ExpectQuery(`SELECT \* FROM "room_types"`).
			WillReturnRows(roomTypeRows(2, 800000, 2, 0.25))
		mock.ExpectQuery(`SELECT \* FROM "customers"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "type"}).
				AddRow(9, "Nguyen Van A", model.CustomerDomestic))
		mock.ExpectQuery(`SELECT \* FROM "regulations"`).
			WillReturnRows(emptyRegulations())
		mock.ExpectQuery(`INSERT INTO "rentals"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		mock.ExpectQuery(`INSERT INTO "rental_guests"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
		mock.ExpectExec(`UPDATE "rooms"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "bookings"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		rental, deposit, appErr := CheckInFromBooking(db, 1, 5, nil)
		require.Nil(t, appErr)
		require.NotNil(t, rental)

		// 2 dem x 800000, khong phu thu
		assert.Equal(t, float64(1600000), rental.PriceAtRental)
		assert.Equal(t, float64(800000), rental.BasePriceAtRental)
		assert.Equal(t, model.RentalActive, rental.Status)
		assert.Equal(t, 2, rental.NumGuests)
		require.Len(t, rental.Guests, 1)
		assert.True(t, rental.Guests[0].IsPrimary)

		// Coc mac dinh 30% cua 1600000
		assert.Equal(t, float64(480000), deposit)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("loi ghi khach thue thi rollback ca phieu thue", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "bookings"`).
			WillReturnRows(bookingRows(1, 7, model.BookingConfirmed, checkIn, checkOut, 2, 0))
		mock.ExpectQuery(`SELECT \* FROM "rooms".*FOR UPDATE`).
			WillReturnRows(roomRows(7, 2, model.RoomAvailable))
		mock.ExpectQuery(`SELECT \* FROM "room_types"`).
			WillReturnRows(roomTypeRows(2, 800000, 2, 0.25))
		mock.ExpectQuery(`SELECT \* FROM "customers"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "type"}).AddRow(9, model.CustomerDomestic))
		mock.ExpectQuery(`SELECT \* FROM "regulations"`).
			WillReturnRows(emptyRegulations())
		mock.ExpectQuery(`INSERT INTO "rentals"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		mock.ExpectQuery(`INSERT INTO "rental_guests"`).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		rental, _, appErr := CheckInFromBooking(db, 1, 5, nil)
		require.NotNil(t, appErr)
		assert.Equal(t, utils.KindStore, appErr.Kind)
		assert.Nil(t, rental)
		// Rollback da chay, khong co UPDATE phong hay phieu dat nao sau do
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("coc da thu tren phieu dat khong tinh lai", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "bookings"`).
			WillReturnRows(bookingRows(1, 7, model.BookingConfirmed, checkIn, checkOut, 2, 500000))
		mock.ExpectQuery(`SELECT \* FROM "rooms".*FOR UPDATE`).
			WillReturnRows(roomRows(7, 2, model.RoomAvailable))
		mock.ExpectQuery(`SELECT \* FROM "room_types"`).
			WillReturnRows(roomTypeRows(2, 800000, 2, 0.25))
		mock.ExpectQuery(`SELECT \* FROM "customers"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "type"}).AddRow(9, model.CustomerDomestic))
		mock.ExpectQuery(`SELECT \* FROM "regulations"`).
			WillReturnRows(emptyRegulations())
		mock.ExpectQuery(`INSERT INTO "rentals"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		mock.ExpectQuery(`INSERT INTO "rental_guests"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
		mock.ExpectExec(`UPDATE "rooms"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "bookings"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		_, deposit, appErr := CheckInFromBooking(db, 1, 5, nil)
		require.Nil(t, appErr)
		assert.Equal(t, float64(500000), deposit)
	})
}

func TestCheckInWalkIn(t *testing.T) {
	input := model.WalkInCheckInInput{
		RoomId:      7,
		CustomerIds: []uint{1, 2},
		NumGuests:   2,
	}

	t.Run("phong khong san sang", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "rooms".*FOR UPDATE`).
			WillReturnRows(roomRows(7, 2, model.RoomOccupied))
		mock.ExpectRollback()

		_, appErr := CheckInWalkIn(db, input, time.Now().Add(30*time.Hour), 5)
		require.NotNil(t, appErr)
		assert.Equal(t, utils.KindInvalidState, appErr.Kind)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("thanh cong co khach nuoc ngoai", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "rooms".*FOR UPDATE`).
			WillReturnRows(roomRows(7, 2, model.RoomAvailable))
		mock.ExpectQuery(`SELECT \* FROM "room_types"`).
			WillReturnRows(roomTypeRows(2, 500000, 2, 0.25))
		mock.ExpectQuery(`SELECT \* FROM "customers"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "type"}).
				AddRow(1, model.CustomerDomestic).
				AddRow(2, model.CustomerForeign))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "rentals"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`SELECT \* FROM "regulations"`).
			WillReturnRows(emptyRegulations())
		mock.ExpectQuery(`INSERT INTO "rentals"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		mock.ExpectQuery(`INSERT INTO "rental_guests"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21).AddRow(22))
		mock.ExpectExec(`UPDATE "rooms"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		// ~30h => 2 dem
		rental, appErr := CheckInWalkIn(db, input, time.Now().Add(30*time.Hour), 5)
		require.Nil(t, appErr)
		require.NotNil(t, rental)

		// 2 dem x 500000 = 1000000, he so nuoc ngoai 1.5 => 1500000
		assert.Equal(t, float64(1500000), rental.PriceAtRental)
		require.Len(t, rental.Guests, 2)
		assert.True(t, rental.Guests[0].IsPrimary)
		assert.False(t, rental.Guests[1].IsPrimary)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("phong vua bi nhan boi thao tac khac", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "rooms".*FOR UPDATE`).
			WillReturnRows(roomRows(7, 2, model.RoomAvailable))
		mock.ExpectQuery(`SELECT \* FROM "room_types"`).
			WillReturnRows(roomTypeRows(2, 500000, 2, 0.25))
		mock.ExpectQuery(`SELECT \* FROM "customers"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "type"}).
				AddRow(1, model.CustomerDomestic).
				AddRow(2, model.CustomerDomestic))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "rentals"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`SELECT \* FROM "regulations"`).
			WillReturnRows(emptyRegulations())
		mock.ExpectQuery(`INSERT INTO "rentals"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		mock.ExpectQuery(`INSERT INTO "rental_guests"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21).AddRow(22))
		// Update co dieu kien khong trung dong nao => tranh chap
		mock.ExpectExec(`UPDATE "rooms"`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, appErr := CheckInWalkIn(db, input, time.Now().Add(30*time.Hour), 5)
		require.NotNil(t, appErr)
		assert.Equal(t, utils.KindConflict, appErr.Kind)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func rentalRows(id, roomId uint, bookingId interface{}, status string, start, end time.Time, price, basePrice float64, numGuests int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "public_code", "booking_id", "room_id", "start_date", "end_date",
		"status", "price_at_rental", "base_price_at_rental", "num_guests",
	}).AddRow(id, "RT-TEST01", bookingId, roomId, start, end, status, price, basePrice, numGuests)
}

func TestExtendRental(t *testing.T) {
	start := date(2026, 3, 1)
	end := date(2026, 3, 5)

	t.Run("chi gia han phieu dang hoat dong", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "rentals".*FOR UPDATE`).
			WillReturnRows(rentalRows(9, 7, nil, model.RentalClosed, start, end, 3200000, 800000, 2))
		mock.ExpectRollback()

		_, appErr := ExtendRental(db, 9, date(2026, 3, 8))
		require.NotNil(t, appErr)
		assert.Equal(t, utils.KindInvalidState, appErr.Kind)
	})

	t.Run("ngay moi phai sau ngay tra hien tai", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "rentals".*FOR UPDATE`).
			WillReturnRows(rentalRows(9, 7, nil, model.RentalActive, start, end, 3200000, 800000, 2))
		mock.ExpectRollback()

		_, appErr := ExtendRental(db, 9, date(2026, 3, 4))
		require.NotNil(t, appErr)
		assert.Equal(t, utils.KindValidation, appErr.Kind)
	})

	t.Run("phong da co khach dat trong khoang gia han", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "rentals".*FOR UPDATE`).
			WillReturnRows(rentalRows(9, 7, nil, model.RentalActive, start, end, 3200000, 800000, 2))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectRollback()

		_, appErr := ExtendRental(db, 9, date(2026, 3, 8))
		require.NotNil(t, appErr)
		assert.Equal(t, utils.KindConflict, appErr.Kind)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("gia han tinh theo gia da chot luc nhan phong", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectBegin()
		// Gia niem yet hien tai cua loai phong la 900000 nhung phieu da chot 800000
		mock.ExpectQuery(`SELECT \* FROM "rentals".*FOR UPDATE`).
			WillReturnRows(rentalRows(9, 7, nil, model.RentalActive, start, end, 3200000, 800000, 2))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "rentals"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`SELECT \* FROM "rooms"`).
			WillReturnRows(roomRows(7, 2, model.RoomOccupied))
		mock.ExpectQuery(`SELECT \* FROM "room_types"`).
			WillReturnRows(roomTypeRows(2, 900000, 2, 0.25))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "rental_guests"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`SELECT \* FROM "regulations"`).
			WillReturnRows(emptyRegulations())
		mock.ExpectExec(`UPDATE "rentals"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		newEnd := date(2026, 3, 8)
		rental, appErr := ExtendRental(db, 9, newEnd)
		require.Nil(t, appErr)

		// 7 dem x 800000 gia da chot, khong dung gia moi 900000
		assert.Equal(t, float64(5600000), rental.PriceAtRental)
		assert.Equal(t, newEnd, rental.EndDate)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCheckoutRental(t *testing.T) {
	start := date(2026, 3, 1)
	end := date(2026, 3, 3)

	t.Run("phieu da tra truoc do", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "rentals".*FOR UPDATE`).
			WillReturnRows(rentalRows(9, 7, nil, model.RentalClosed, start, end, 1600000, 800000, 2))
		mock.ExpectRollback()

		_, appErr := CheckoutRental(db, 9, 5)
		require.NotNil(t, appErr)
		assert.Equal(t, utils.KindInvalidState, appErr.Kind)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("chot hoa don gom dich vu va tru coc", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "rentals".*FOR UPDATE`).
			WillReturnRows(rentalRows(9, 7, 3, model.RentalActive, start, end, 1600000, 800000, 2))
		mock.ExpectQuery(`SELECT COALESCE\(SUM\(total_price\), 0\) FROM "service_usages"`).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(150000))
		mock.ExpectQuery(`SELECT \* FROM "bookings"`).
			WillReturnRows(bookingRows(3, 7, model.BookingCheckedIn, start, end, 2, 480000))
		mock.ExpectExec(`UPDATE "rentals"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "rooms"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		invoice, appErr := CheckoutRental(db, 9, 5)
		require.Nil(t, appErr)
		require.NotNil(t, invoice)

		assert.Equal(t, float64(1600000), invoice.RoomCharge)
		assert.Equal(t, float64(150000), invoice.ServiceTotal)
		assert.Equal(t, float64(480000), invoice.DepositAmount)
		assert.Equal(t, float64(1750000), invoice.Total)
		assert.Equal(t, float64(1270000), invoice.AmountDue)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("khach vang lai khong co coc", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "rentals".*FOR UPDATE`).
			WillReturnRows(rentalRows(9, 7, nil, model.RentalActive, start, end, 1600000, 800000, 2))
		mock.ExpectQuery(`SELECT COALESCE\(SUM\(total_price\), 0\) FROM "service_usages"`).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))
		mock.ExpectExec(`UPDATE "rentals"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "rooms"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		invoice, appErr := CheckoutRental(db, 9, 5)
		require.Nil(t, appErr)
		assert.Equal(t, float64(0), invoice.DepositAmount)
		assert.Equal(t, invoice.Total, invoice.AmountDue)
	})
}
