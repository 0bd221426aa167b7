package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"showcase/cmd/seed_initial_data/internal/seedmodels"
	"showcase/internal/config"
	"showcase/internal/database"
	"showcase/internal/domain"
	"showcase/internal/logger"
	"showcase/internal/repository"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const defaultSeedFilePath = "configs/seed_data/showcase.json"

func main() {
	seedFilePath := flag.String("file", defaultSeedFilePath, "path to the seed JSON file")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")

	log.Info("Loading seed data from file", zap.String("path", *seedFilePath))
	data, err := seedmodels.Load(*seedFilePath)
	if err != nil {
		log.Fatal("Failed to load seed data", zap.Error(err))
	}

	db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to Oracle database", zap.Error(err))
	}
	defer db.Close()

	if err := seedRelational(ctx, db, log, data); err != nil {
		log.Fatal("Failed to seed Oracle data, transaction rolled back", zap.Error(err))
	}

	mongoClient, err := database.NewMongoClient(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(context.Background())

	drinks := repository.NewDrinkMongoAdapter(mongoClient.Database(cfg.Mongo.Database).Collection(repository.DrinksCollection))
	if err := drinks.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to create drink indexes", zap.Error(err))
	}
	seedDrinks(ctx, drinks, log, data.Drinks)

	log.Info("Initial data seeding process completed.")
}

// seedRelational stores trivia and booking data in one transaction. It is skipped when
// categories already exist.
func seedRelational(ctx context.Context, db *sqlx.DB, log *zap.Logger, data *seedmodels.SeedData) error {
	categories := repository.NewCategoryDatabaseAdapter(db)
	questions := repository.NewQuestionDatabaseAdapter(db)
	venues := repository.NewVenueDatabaseAdapter(db)
	artists := repository.NewArtistDatabaseAdapter(db)
	shows := repository.NewShowDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	existing, err := categories.ListCategories(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Info("Categories already present, skipping relational seed", zap.Int("categories", len(existing)))
		return nil
	}

	return txManager.WithTransaction(ctx, func(ctx context.Context) error {
		for _, sc := range data.Categories {
			if err := categories.SaveCategory(ctx, sc.ToDomain()); err != nil {
				return fmt.Errorf("failed to save category %s: %w", sc.Type, err)
			}
		}
		log.Info("Seeded categories", zap.Int("count", len(data.Categories)))

		for _, sq := range data.Questions {
			q := sq.ToDomain()
			if err := q.Validate(); err != nil {
				return fmt.Errorf("invalid seed question %q: %w", sq.Question, err)
			}
			if err := questions.CreateQuestion(ctx, q); err != nil {
				return err
			}
		}
		log.Info("Seeded questions", zap.Int("count", len(data.Questions)))

		venueIDs := make(map[string]int64, len(data.Venues))
		for _, sv := range data.Venues {
			v := sv.ToDomain()
			if err := venues.CreateVenue(ctx, v); err != nil {
				return fmt.Errorf("failed to save venue %s: %w", sv.Name, err)
			}
			venueIDs[sv.Name] = v.ID
		}

		artistIDs := make(map[string]int64, len(data.Artists))
		for _, sa := range data.Artists {
			a := sa.ToDomain()
			if err := artists.CreateArtist(ctx, a); err != nil {
				return fmt.Errorf("failed to save artist %s: %w", sa.Name, err)
			}
			artistIDs[sa.Name] = a.ID
		}

		resolved, err := data.ResolveShows(venueIDs, artistIDs)
		if err != nil {
			return err
		}
		for i := range resolved {
			if err := shows.CreateShow(ctx, &resolved[i]); err != nil {
				return err
			}
		}
		log.Info("Seeded booking data",
			zap.Int("venues", len(venueIDs)),
			zap.Int("artists", len(artistIDs)),
			zap.Int("shows", len(resolved)),
		)
		return nil
	})
}

// seedDrinks inserts every drink whose title is not taken yet.
func seedDrinks(ctx context.Context, repo domain.DrinkRepository, log *zap.Logger, drinks []seedmodels.SeedDrink) {
	created := 0
	for _, sd := range drinks {
		err := repo.CreateDrink(ctx, sd.ToDomain())
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			log.Info("Drink exists.", zap.String("title", sd.Title))
		case err != nil:
			log.Error("Failed to seed drink", zap.String("title", sd.Title), zap.Error(err))
		default:
			created++
		}
	}
	log.Info("Seeded drinks", zap.Int("created", created), zap.Int("total", len(drinks)))
}
