package table_test

import (
	"context"
	"testing"

	"go-kafe/internal/live"
	liveMock "go-kafe/internal/live/mock"
	"go-kafe/internal/table"
	tableerrors "go-kafe/internal/table/errors"
	tableMock "go-kafe/internal/table/mock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const origin = "https://kafe.example"

type serviceDeps struct {
	service table.Service
	repo    *tableMock.MockRepository
	live    *liveMock.MockPublisher
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	repo := tableMock.NewMockRepository(ctrl)
	pub := liveMock.NewMockPublisher(ctrl)
	return &serviceDeps{
		service: table.NewService(repo, pub, origin, zap.NewNop()),
		repo:    repo,
		live:    pub,
	}
}

func TestTableService_Create(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.NewString()

	t.Run("defaults to available and carries the qr url", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.live.EXPECT().Publish(ctx, tenantID, live.ChannelTables, gomock.Any()).Return(nil)

		resp, err := deps.service.Create(ctx, tenantID, "kopi", table.TableRequest{TableNumber: 3})

		require.NoError(t, err)
		assert.Equal(t, table.StatusAvailable, resp.Status)
		assert.Equal(t, origin+"/kopi/order/"+resp.ID, resp.QRURL)
	})

	t.Run("number already used", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "cafe_tables_tenant_number_key"})

		_, err := deps.service.Create(ctx, tenantID, "kopi", table.TableRequest{TableNumber: 3})

		assert.ErrorIs(t, err, tableerrors.ErrTableNumberTaken)
	})
}

func TestTableService_SetStatus(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("occupies a table", func(t *testing.T) {
		deps := setupServiceTest(t)
		tbl := &table.Table{ID: uuid.New(), TenantID: tenantID, TableNumber: 1, Status: table.StatusAvailable}

		deps.repo.EXPECT().FindByID(ctx, tenantID.String(), tbl.ID.String()).Return(tbl, nil)
		deps.repo.EXPECT().Update(ctx, tbl).Return(nil)
		deps.live.EXPECT().Publish(ctx, tenantID.String(), live.ChannelTables, gomock.Any()).Return(nil)

		resp, err := deps.service.SetStatus(ctx, tenantID.String(), "kopi", tbl.ID.String(), table.StatusOccupied)

		require.NoError(t, err)
		assert.Equal(t, table.StatusOccupied, resp.Status)
	})

	t.Run("same status writes nothing", func(t *testing.T) {
		deps := setupServiceTest(t)
		tbl := &table.Table{ID: uuid.New(), TenantID: tenantID, TableNumber: 1, Status: table.StatusOccupied}
		deps.repo.EXPECT().FindByID(ctx, tenantID.String(), tbl.ID.String()).Return(tbl, nil)

		resp, err := deps.service.SetStatus(ctx, tenantID.String(), "kopi", tbl.ID.String(), table.StatusOccupied)

		require.NoError(t, err)
		assert.Equal(t, table.StatusOccupied, resp.Status)
	})

	t.Run("unknown status", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.SetStatus(ctx, tenantID.String(), "kopi", uuid.NewString(), "broken")

		assert.ErrorIs(t, err, tableerrors.ErrInvalidTableStatus)
	})
}

func TestTableService_TableNumber(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.NewString()

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.TableNumber(ctx, tenantID, "not-a-uuid")

		assert.ErrorIs(t, err, tableerrors.ErrTableNotFound)
	})

	t.Run("table of another tenant", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.NewString()
		deps.repo.EXPECT().FindByID(ctx, tenantID, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.TableNumber(ctx, tenantID, id)

		assert.ErrorIs(t, err, tableerrors.ErrTableNotFound)
	})

	t.Run("found", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		deps.repo.EXPECT().FindByID(ctx, tenantID, id.String()).Return(&table.Table{ID: id, TableNumber: 12}, nil)

		n, err := deps.service.TableNumber(ctx, tenantID, id.String())

		require.NoError(t, err)
		assert.Equal(t, 12, n)
	})
}

func TestTableService_Delete(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.NewString()

	deps := setupServiceTest(t)
	deps.repo.EXPECT().Delete(ctx, tenantID, "t-1").Return(nil)
	deps.live.EXPECT().Publish(ctx, tenantID, live.ChannelTables, gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, ev live.Event) error {
			assert.Equal(t, table.EventTableDeleted, ev.Type)
			return nil
		})

	assert.NoError(t, deps.service.Delete(ctx, tenantID, "t-1"))
}
