package districts

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/db/models"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/enums"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.District{}, &models.Order{}))
	t.Cleanup(func() {
		sqlDB, err := conn.DB()
		require.NoError(t, err)
		_ = sqlDB.Close()
	})
	return conn
}

func seedDistrict(t *testing.T, repo Repository, name, charge string, active bool) *models.District {
	t.Helper()
	district, err := repo.Create(context.Background(), &models.District{
		ID:             uuid.New(),
		Name:           name,
		DeliveryCharge: decimal.RequireFromString(charge),
		IsActive:       active,
	})
	require.NoError(t, err)
	return district
}

func TestRepositoryListActiveOnly(t *testing.T) {
	repo := NewRepository(testDB(t))

	seedDistrict(t, repo, "Dhaka", "60.00", true)
	seedDistrict(t, repo, "Khulna", "120.00", false)
	seedDistrict(t, repo, "Barisal", "130.00", true)

	all, err := repo.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, all, 3)

	active, err := repo.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, active, 2)
	require.Equal(t, "Barisal", active[0].Name, "list should be ordered by name")
	require.Equal(t, "Dhaka", active[1].Name)
}

func TestRepositoryUpdateAndFind(t *testing.T) {
	repo := NewRepository(testDB(t))
	district := seedDistrict(t, repo, "Dhaka", "60.00", true)

	district.DeliveryCharge = decimal.RequireFromString("80.00")
	_, err := repo.Update(context.Background(), district)
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), district.ID)
	require.NoError(t, err)
	require.True(t, found.DeliveryCharge.Equal(decimal.RequireFromString("80.00")))
}

func TestRepositoryCountOrders(t *testing.T) {
	conn := testDB(t)
	repo := NewRepository(conn)
	district := seedDistrict(t, repo, "Dhaka", "60.00", true)

	count, err := repo.CountOrders(context.Background(), district.ID)
	require.NoError(t, err)
	require.Zero(t, count)

	order := &models.Order{
		ID:              uuid.New(),
		OrderNumber:     "TP-20260830-0001",
		CustomerName:    "Rahim Uddin",
		CustomerPhone:   "01712345678",
		CustomerAddress: "Dhanmondi",
		DistrictID:      district.ID,
		Subtotal:        decimal.RequireFromString("100.00"),
		DeliveryCharge:  district.DeliveryCharge,
		TotalAmount:     decimal.RequireFromString("160.00"),
		Status:          enums.OrderStatusPending,
		PaymentStatus:   enums.PaymentStatusPending,
	}
	require.NoError(t, conn.Omit("Items", "District").Create(order).Error)

	count, err = repo.CountOrders(context.Background(), district.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestRepositoryDelete(t *testing.T) {
	repo := NewRepository(testDB(t))
	district := seedDistrict(t, repo, "Sylhet", "100.00", true)

	require.NoError(t, repo.Delete(context.Background(), district.ID))

	_, err := repo.FindByID(context.Background(), district.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
