package repository

import (
	"context"
	"errors"
	"fmt"

	"showcase/internal/domain"
	"showcase/internal/repository/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DrinksCollection is the collection holding the coffee shop menu
const DrinksCollection = "drinks"

// DrinkMongoAdapter implements domain.DrinkRepository on MongoDB
type DrinkMongoAdapter struct {
	collection *mongo.Collection
}

// NewDrinkMongoAdapter creates a new drink repository over the given collection
func NewDrinkMongoAdapter(collection *mongo.Collection) *DrinkMongoAdapter {
	return &DrinkMongoAdapter{collection: collection}
}

// EnsureIndexes creates the unique index on drink titles
func (r *DrinkMongoAdapter) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_title"),
	})
	if err != nil {
		return fmt.Errorf("failed to create drink title index: %w", err)
	}
	return nil
}

func (r *DrinkMongoAdapter) ListDrinks(ctx context.Context) ([]domain.Drink, error) {
	cursor, err := r.collection.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find drinks: %w", err)
	}

	var docs []models.Drink
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode drinks: %w", err)
	}

	drinks := make([]domain.Drink, len(docs))
	for i := range docs {
		drinks[i] = toDomainDrink(docs[i])
	}
	return drinks, nil
}

// GetDrink returns nil, nil when id is not a stored drink, including malformed ids.
func (r *DrinkMongoAdapter) GetDrink(ctx context.Context, id string) (*domain.Drink, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc models.Drink
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find drink %s: %w", id, err)
	}
	drink := toDomainDrink(doc)
	return &drink, nil
}

func (r *DrinkMongoAdapter) CreateDrink(ctx context.Context, drink *domain.Drink) error {
	doc := models.Drink{
		ID:     primitive.NewObjectID(),
		Title:  drink.Title,
		Recipe: toIngredientDocs(drink.Recipe),
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("failed to insert drink: %w", err)
	}
	drink.ID = doc.ID.Hex()
	return nil
}

// UpdateDrink applies patch and returns the stored drink after the update, or nil when
// no drink has the id.
func (r *DrinkMongoAdapter) UpdateDrink(ctx context.Context, id string, patch domain.DrinkPatch) (*domain.Drink, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	set := bson.D{}
	if patch.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *patch.Title})
	}
	if patch.Recipe != nil {
		set = append(set, bson.E{Key: "recipe", Value: toIngredientDocs(patch.Recipe)})
	}
	if len(set) == 0 {
		return r.GetDrink(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc models.Drink
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.D{{Key: "$set", Value: set}}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to update drink %s: %w", id, err)
	}
	drink := toDomainDrink(doc)
	return &drink, nil
}

func (r *DrinkMongoAdapter) DeleteDrink(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("failed to delete drink %s: %w", id, err)
	}
	return result.DeletedCount > 0, nil
}

func toIngredientDocs(recipe []domain.Ingredient) []models.Ingredient {
	docs := make([]models.Ingredient, len(recipe))
	for i, ing := range recipe {
		docs[i] = models.Ingredient{Name: ing.Name, Color: ing.Color, Parts: ing.Parts}
	}
	return docs
}

func toDomainDrink(doc models.Drink) domain.Drink {
	recipe := make([]domain.Ingredient, len(doc.Recipe))
	for i, ing := range doc.Recipe {
		recipe[i] = domain.Ingredient{Name: ing.Name, Color: ing.Color, Parts: ing.Parts}
	}
	return domain.Drink{ID: doc.ID.Hex(), Title: doc.Title, Recipe: recipe}
}
