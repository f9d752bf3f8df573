package menu_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go-kafe/internal/live"
	liveMock "go-kafe/internal/live/mock"
	"go-kafe/internal/menu"
	menuerrors "go-kafe/internal/menu/errors"
	menuMock "go-kafe/internal/menu/mock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service menu.Service
	repo    *menuMock.MockRepository
	live    *liveMock.MockPublisher
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	repo := menuMock.NewMockRepository(ctrl)
	pub := liveMock.NewMockPublisher(ctrl)
	return &serviceDeps{
		service: menu.NewService(repo, pub, zap.NewNop()),
		repo:    repo,
		live:    pub,
	}
}

func TestMenuService_CreateMenu(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.NewString()
	category := &menu.Category{ID: uuid.New(), Name: "Kopi"}

	t.Run("defaults to available and publishes", func(t *testing.T) {
		deps := setupServiceTest(t)
		var created *menu.Menu

		deps.repo.EXPECT().FindCategoryByID(ctx, tenantID, category.ID.String()).Return(category, nil)
		deps.repo.EXPECT().CreateMenu(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, m *menu.Menu) error {
			created = m
			return nil
		})
		deps.repo.EXPECT().FindMenuByID(ctx, tenantID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _, id string) (*menu.Menu, error) {
				cp := *created
				cp.CategoryName = "Kopi"
				return &cp, nil
			})
		deps.live.EXPECT().Publish(ctx, tenantID, live.ChannelMenus, gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, ev live.Event) error {
				assert.Equal(t, menu.EventMenuChanged, ev.Type)
				return nil
			})

		resp, err := deps.service.CreateMenu(ctx, tenantID, menu.CreateMenuRequest{
			Name: "Es Kopi Susu", Price: 18000, CategoryID: category.ID.String(),
		})

		require.NoError(t, err)
		assert.True(t, resp.Available)
		assert.Equal(t, int64(18000), resp.Price)
		assert.Equal(t, "Kopi", resp.CategoryName)
		assert.Equal(t, category.ID, created.CategoryID)
	})

	t.Run("negative price", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.CreateMenu(ctx, tenantID, menu.CreateMenuRequest{
			Name: "Gratis", Price: -1, CategoryID: category.ID.String(),
		})

		assert.ErrorIs(t, err, menuerrors.ErrInvalidPrice)
	})

	t.Run("category of another tenant", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindCategoryByID(ctx, tenantID, category.ID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.CreateMenu(ctx, tenantID, menu.CreateMenuRequest{
			Name: "Teh", Price: 8000, CategoryID: category.ID.String(),
		})

		assert.ErrorIs(t, err, menuerrors.ErrCategoryNotFound)
	})

	t.Run("publish failure does not fail the write", func(t *testing.T) {
		deps := setupServiceTest(t)
		m := &menu.Menu{ID: uuid.New(), CategoryID: category.ID, Name: "Teh", Available: true}

		deps.repo.EXPECT().FindCategoryByID(ctx, tenantID, category.ID.String()).Return(category, nil)
		deps.repo.EXPECT().CreateMenu(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().FindMenuByID(ctx, tenantID, gomock.Any()).Return(m, nil)
		deps.live.EXPECT().Publish(ctx, tenantID, live.ChannelMenus, gomock.Any()).Return(errors.New("redis down"))

		_, err := deps.service.CreateMenu(ctx, tenantID, menu.CreateMenuRequest{
			Name: "Teh", Price: 8000, CategoryID: category.ID.String(),
		})

		assert.NoError(t, err)
	})
}

func TestMenuService_UpdateMenu(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.NewString()
	oldCategory := uuid.New()
	existing := &menu.Menu{ID: uuid.New(), CategoryID: oldCategory, Name: "Teh", Price: 8000, Available: false}

	t.Run("keeps availability when omitted", func(t *testing.T) {
		deps := setupServiceTest(t)
		m := *existing

		deps.repo.EXPECT().FindMenuByID(ctx, tenantID, m.ID.String()).Return(&m, nil)
		deps.repo.EXPECT().UpdateMenu(ctx, &m).Return(nil)
		deps.repo.EXPECT().FindMenuByID(ctx, tenantID, m.ID.String()).Return(&m, nil)
		deps.live.EXPECT().Publish(ctx, tenantID, live.ChannelMenus, gomock.Any()).Return(nil)

		resp, err := deps.service.UpdateMenu(ctx, tenantID, m.ID.String(), menu.UpdateMenuRequest{
			Name: "Teh Tarik", Price: 12000, CategoryID: oldCategory.String(),
		})

		require.NoError(t, err)
		assert.Equal(t, "Teh Tarik", resp.Name)
		assert.False(t, resp.Available)
	})

	t.Run("moving to an unknown category", func(t *testing.T) {
		deps := setupServiceTest(t)
		m := *existing
		target := uuid.NewString()

		deps.repo.EXPECT().FindMenuByID(ctx, tenantID, m.ID.String()).Return(&m, nil)
		deps.repo.EXPECT().FindCategoryByID(ctx, tenantID, target).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.UpdateMenu(ctx, tenantID, m.ID.String(), menu.UpdateMenuRequest{
			Name: "Teh", Price: 8000, CategoryID: target,
		})

		assert.ErrorIs(t, err, menuerrors.ErrCategoryNotFound)
	})

	t.Run("unknown menu", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindMenuByID(ctx, tenantID, "missing").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.UpdateMenu(ctx, tenantID, "missing", menu.UpdateMenuRequest{Name: "x", CategoryID: oldCategory.String()})

		assert.ErrorIs(t, err, menuerrors.ErrMenuNotFound)
	})
}

func TestMenuService_Categories(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.NewString()

	t.Run("duplicate name", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().CreateCategory(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "categories_tenant_name_key"})

		_, err := deps.service.CreateCategory(ctx, tenantID, menu.CategoryRequest{Name: "Kopi"})

		assert.ErrorIs(t, err, menuerrors.ErrCategoryNameTaken)
	})

	t.Run("delete refuses a category with menus", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().CountMenusInCategory(ctx, tenantID, "c-1").Return(int64(2), nil)

		err := deps.service.DeleteCategory(ctx, tenantID, "c-1")

		assert.ErrorIs(t, err, menuerrors.ErrCategoryInUse)
	})

	t.Run("delete race caught by the foreign key", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().CountMenusInCategory(ctx, tenantID, "c-1").Return(int64(0), nil)
		deps.repo.EXPECT().DeleteCategory(ctx, tenantID, "c-1").
			Return(&pgconn.PgError{Code: "23503", ConstraintName: "menus_category_id_fkey"})

		err := deps.service.DeleteCategory(ctx, tenantID, "c-1")

		assert.ErrorIs(t, err, menuerrors.ErrCategoryInUse)
	})

	t.Run("delete publishes", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().CountMenusInCategory(ctx, tenantID, "c-1").Return(int64(0), nil)
		deps.repo.EXPECT().DeleteCategory(ctx, tenantID, "c-1").Return(nil)
		deps.live.EXPECT().Publish(ctx, tenantID, live.ChannelMenus, gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, ev live.Event) error {
				assert.Equal(t, menu.EventCategoryDeleted, ev.Type)
				assert.Equal(t, "c-1", ev.ID)
				return nil
			})

		assert.NoError(t, deps.service.DeleteCategory(ctx, tenantID, "c-1"))
	})
}

func TestMenuService_PublicCatalog(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.NewString()
	kopi := menu.Category{ID: uuid.New(), Name: "Kopi"}
	teh := menu.Category{ID: uuid.New(), Name: "Teh"}
	kosong := menu.Category{ID: uuid.New(), Name: "Kosong"}

	t.Run("groups by category and drops empty ones", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindCategories(gomock.Any(), tenantID).Return([]menu.Category{kopi, kosong, teh}, nil)
		deps.repo.EXPECT().FindMenus(gomock.Any(), tenantID, true).Return([]menu.Menu{
			{ID: uuid.New(), CategoryID: teh.ID, Name: "Teh Tarik", Available: true},
			{ID: uuid.New(), CategoryID: kopi.ID, Name: "Latte", Available: true},
			{ID: uuid.New(), CategoryID: kopi.ID, Name: "Americano", Available: true},
		}, nil)

		sections, err := deps.service.PublicCatalog(ctx, tenantID)

		require.NoError(t, err)
		require.Len(t, sections, 2)
		assert.Equal(t, "Kopi", sections[0].Category.Name)
		assert.Len(t, sections[0].Menus, 2)
		assert.Equal(t, "Teh", sections[1].Category.Name)
	})

	t.Run("concurrent loads share one query", func(t *testing.T) {
		deps := setupServiceTest(t)
		release := make(chan struct{})
		var calls atomic.Int32

		deps.repo.EXPECT().FindCategories(gomock.Any(), tenantID).DoAndReturn(
			func(context.Context, string) ([]menu.Category, error) {
				calls.Add(1)
				<-release
				return []menu.Category{kopi}, nil
			}).MinTimes(1)
		deps.repo.EXPECT().FindMenus(gomock.Any(), tenantID, true).Return([]menu.Menu{
			{ID: uuid.New(), CategoryID: kopi.ID, Name: "Latte", Available: true},
		}, nil).MinTimes(1)

		const callers = 5
		var started, done sync.WaitGroup
		started.Add(callers)
		done.Add(callers)
		for i := 0; i < callers; i++ {
			go func() {
				defer done.Done()
				started.Done()
				sections, err := deps.service.PublicCatalog(ctx, tenantID)
				assert.NoError(t, err)
				assert.Len(t, sections, 1)
			}()
		}
		started.Wait()
		time.Sleep(50 * time.Millisecond)
		close(release)
		done.Wait()

		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("first caller going away does not fail the shared load", func(t *testing.T) {
		deps := setupServiceTest(t)
		entered := make(chan struct{})
		release := make(chan struct{})

		deps.repo.EXPECT().FindCategories(gomock.Any(), tenantID).DoAndReturn(
			func(c context.Context, _ string) ([]menu.Category, error) {
				close(entered)
				<-release
				if err := c.Err(); err != nil {
					return nil, err
				}
				return []menu.Category{kopi}, nil
			})
		deps.repo.EXPECT().FindMenus(gomock.Any(), tenantID, true).DoAndReturn(
			func(c context.Context, _ string, _ bool) ([]menu.Menu, error) {
				if err := c.Err(); err != nil {
					return nil, err
				}
				return []menu.Menu{{ID: uuid.New(), CategoryID: kopi.ID, Name: "Latte", Available: true}}, nil
			})

		firstCtx, cancelFirst := context.WithCancel(ctx)
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = deps.service.PublicCatalog(firstCtx, tenantID)
		}()
		<-entered

		var sections []menu.CatalogSection
		var err error
		go func() {
			defer wg.Done()
			sections, err = deps.service.PublicCatalog(ctx, tenantID)
		}()
		time.Sleep(50 * time.Millisecond)
		cancelFirst()
		close(release)
		wg.Wait()

		require.NoError(t, err)
		require.Len(t, sections, 1)
		assert.Equal(t, "Latte", sections[0].Menus[0].Name)
	})

	t.Run("store failure", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindCategories(gomock.Any(), tenantID).Return(nil, errors.New("connection reset"))

		_, err := deps.service.PublicCatalog(ctx, tenantID)

		assert.Error(t, err)
	})
}
