package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"codebiruni-be/internal/model"
	"codebiruni-be/internal/repository"
	"codebiruni-be/internal/repository/specification"
	"codebiruni-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestContentRepositoryCrud(t *testing.T) {
	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.Faq{}); err != nil {
		t.Fatalf("Failed to migrate faqs: %v", err)
	}

	repo := repository.NewCrudRepository[model.Faq](gormDB)
	ctx := context.Background()

	marker := "integration-" + uuid.NewString()
	faq := &model.Faq{
		Question:  "How fast is delivery? " + marker,
		Answer:    "Depends on the scope.",
		Category:  marker,
		SortOrder: 1,
	}

	t.Run("Create assigns an ID", func(t *testing.T) {
		err := repo.Create(ctx, faq)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, faq.Id)
	})

	t.Run("FindOne by ID", func(t *testing.T) {
		found, err := repo.FindOne(ctx, specification.ByID{ID: faq.Id})
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, faq.Question, found.Question)
		}
	})

	t.Run("Search is case-insensitive", func(t *testing.T) {
		results, err := repo.FindAll(ctx, specification.Search{
			Term:    "HOW FAST IS DELIVERY? " + marker,
			Columns: []string{"question", "answer"},
		})
		assert.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("Update via Save", func(t *testing.T) {
		faq.Answer = "Usually 1-2 weeks for a landing page."
		err := repo.Save(ctx, faq)
		assert.NoError(t, err)

		found, err := repo.FindOne(ctx, specification.ByID{ID: faq.Id})
		assert.NoError(t, err)
		assert.Equal(t, faq.Answer, found.Answer)
	})

	t.Run("Count with filter", func(t *testing.T) {
		count, err := repo.Count(ctx, specification.Filter("category", marker))
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("DeleteMany reports rows removed", func(t *testing.T) {
		second := &model.Faq{Question: "Second " + marker, Answer: "x", Category: marker}
		assert.NoError(t, repo.Create(ctx, second))

		count, err := repo.DeleteMany(ctx, specification.ByIDs{IDs: []uuid.UUID{faq.Id, second.Id}})
		assert.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("Delete missing row reports not found", func(t *testing.T) {
		err := repo.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("DeleteMany without specs is rejected", func(t *testing.T) {
		_, err := repo.DeleteMany(ctx)
		assert.Error(t, err)
	})
}
