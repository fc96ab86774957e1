package repository

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/recipe-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrRecipeNotFound is returned by Update and Delete for unknown ids.
var ErrRecipeNotFound = errors.New("recipe not found")

const recipeCounterID = "recipes"

// RecipeListOptions filters and pages the recipe list.
type RecipeListOptions struct {
	Category string
	Tag      string
	Limit    int
	Skip     int
}

// RecipeRepository stores recipes in MongoDB. Ids are sequential integers
// allocated from the counters collection.
type RecipeRepository struct {
	collection *mongo.Collection
	counters   *mongo.Collection
}

// NewRecipeRepository creates a new recipe repository.
func NewRecipeRepository(db *MongoDB) *RecipeRepository {
	return &RecipeRepository{
		collection: db.Recipes,
		counters:   db.Counters,
	}
}

// GetByID returns the recipe with the given id, or nil if it does not exist.
func (r *RecipeRepository) GetByID(ctx context.Context, id int64) (*model.Recipe, error) {
	var recipe model.Recipe
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&recipe)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// List returns recipes ordered by id.
func (r *RecipeRepository) List(ctx context.Context, opts RecipeListOptions) ([]model.Recipe, error) {
	filter := bson.M{}
	if opts.Category != "" {
		filter["category"] = opts.Category
	}
	if opts.Tag != "" {
		filter["tags"] = opts.Tag
	}

	findOptions := options.Find().SetSort(bson.M{"_id": 1})
	if opts.Limit > 0 {
		findOptions.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	recipes := []model.Recipe{}
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// Create assigns the next id and timestamps and inserts the recipe.
func (r *RecipeRepository) Create(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := *recipe
	created.ID = id
	created.CreatedAt = now
	created.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update applies the set fields of update and returns the stored result.
func (r *RecipeRepository) Update(ctx context.Context, id int64, update model.RecipeUpdate) (*model.Recipe, error) {
	set := updateDocument(update)
	set["updated_at"] = time.Now().UTC()

	var recipe model.Recipe
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&recipe)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Delete removes the recipe with the given id.
func (r *RecipeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

// MigrateLegacyIngredients rewrites every recipe that still stores ingredients
// in the combined "amountAndUnit" form and returns how many were changed.
func (r *RecipeRepository) MigrateLegacyIngredients(ctx context.Context) (int, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"ingredients.amountAndUnit": bson.M{"$exists": true}})
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	migrated := 0
	for cursor.Next(ctx) {
		var recipe model.Recipe
		if err := cursor.Decode(&recipe); err != nil {
			return migrated, err
		}

		ingredients := make([]model.Ingredient, len(recipe.Ingredients))
		for i, ing := range recipe.Ingredients {
			ingredients[i] = model.MigrateIngredient(ing)
		}

		_, err := r.collection.UpdateOne(ctx,
			bson.M{"_id": recipe.ID},
			bson.M{"$set": bson.M{"ingredients": ingredients, "updated_at": time.Now().UTC()}},
		)
		if err != nil {
			return migrated, err
		}
		migrated++
	}
	return migrated, cursor.Err()
}

func (r *RecipeRepository) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": recipeCounterID},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

func updateDocument(u model.RecipeUpdate) bson.M {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.Ingredients != nil {
		set["ingredients"] = u.Ingredients
	}
	if u.Instructions != nil {
		set["instructions"] = u.Instructions
	}
	if u.CookingTime != nil {
		set["cooking_time"] = *u.CookingTime
	}
	if u.PreparationTime != nil {
		set["preparation_time"] = *u.PreparationTime
	}
	if u.Tags != nil {
		set["tags"] = u.Tags
	}
	if u.Servings != nil {
		set["servings"] = *u.Servings
	}
	if u.ImageURL != nil {
		set["image_url"] = *u.ImageURL
	}
	return set
}
