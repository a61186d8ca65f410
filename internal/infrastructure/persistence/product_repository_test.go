package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/meatdirect/backend/internal/domain/catalog"
	"github.com/meatdirect/backend/internal/domain/shared"
)

// newMockProductRepository creates a GormProductRepository with a mocked SQL connection
func newMockProductRepository(t *testing.T) (*GormProductRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormProductRepository(gormDB), mock, mockDB
}

func TestGormProductRepository_FindBySlug(t *testing.T) {
	t.Run("finds existing product", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "name", "slug", "price_cents", "is_active"}).
			AddRow(productID, "Prime Ribeye", "prime-ribeye", 1380, true)

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE slug = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("prime-ribeye", 1).
			WillReturnRows(rows)

		product, err := repo.FindBySlug(context.Background(), "prime-ribeye")

		assert.NoError(t, err)
		assert.NotNil(t, product)
		assert.Equal(t, productID, product.ID)
		assert.Equal(t, "Prime Ribeye", product.Name)
		assert.Equal(t, int64(1380), product.PriceCents)
		assert.True(t, product.IsActive)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for unknown slug", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE slug = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("missing", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		product, err := repo.FindBySlug(context.Background(), "missing")

		assert.Error(t, err)
		assert.Nil(t, product)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects empty slug without querying", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		product, err := repo.FindBySlug(context.Background(), "")

		assert.Error(t, err)
		assert.Nil(t, product)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_FindAll(t *testing.T) {
	t.Run("filters by category case-insensitively", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "name", "slug", "category", "is_active"}).
			AddRow(uuid.New(), "Packer Brisket", "packer-brisket", "Beef", true)

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE LOWER\(category\) = \$1 ORDER BY name ASC`).
			WithArgs("beef").
			WillReturnRows(rows)

		products, err := repo.FindAll(context.Background(), catalog.ProductFilter{Category: "Beef"})

		assert.NoError(t, err)
		assert.Len(t, products, 1)
		assert.Equal(t, "Packer Brisket", products[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("matches search against name or category", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "name", "slug"}).
			AddRow(uuid.New(), "Smoked Kielbasa", "smoked-kielbasa")

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE \(LOWER\(name\) LIKE \$1 OR LOWER\(category\) LIKE \$2\) ORDER BY name ASC`).
			WithArgs("%kiel%", "%kiel%").
			WillReturnRows(rows)

		products, err := repo.FindAll(context.Background(), catalog.ProductFilter{Search: "Kiel"})

		assert.NoError(t, err)
		assert.Len(t, products, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_FindByIDs(t *testing.T) {
	t.Run("returns empty slice without querying for empty input", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		products, err := repo.FindByIDs(context.Background(), nil)

		assert.NoError(t, err)
		assert.Empty(t, products)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_DeactivateMissingVariations(t *testing.T) {
	t.Run("deactivates linked products outside the seen set", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "products" SET .* WHERE square_variation_id <> '' AND square_variation_id NOT IN \(\$1,\$2\)`).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "VAR1", "VAR2").
			WillReturnResult(sqlmock.NewResult(0, 3))

		err := repo.DeactivateMissingVariations(context.Background(), []string{"VAR1", "VAR2"})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deactivates every linked product when nothing was seen", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "products" SET .* WHERE square_variation_id <> ''`).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 5))

		err := repo.DeactivateMissingVariations(context.Background(), nil)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
