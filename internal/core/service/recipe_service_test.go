package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/kusinadelights/recipe-platform/internal/core/domain"
	"github.com/kusinadelights/recipe-platform/internal/core/ports"
)

func seedRecipe(t *testing.T, store ports.Store, r domain.Recipe) {
	t.Helper()
	if err := store.PutRecipe(context.Background(), r); err != nil {
		t.Fatalf("seed recipe %s: %v", r.ID, err)
	}
}

func seedReview(t *testing.T, store ports.Store, rv domain.Review) {
	t.Helper()
	if err := store.PutReview(context.Background(), rv); err != nil {
		t.Fatalf("seed review %s: %v", rv.ID, err)
	}
}

// ---------------------------------------------------------------------------
// Create / Update / Remove
// ---------------------------------------------------------------------------

func TestRecipeService_Create_Defaults(t *testing.T) {
	store := newTestStore()
	svc := NewRecipeService(store, 10, zerolog.Nop())

	recipe, err := svc.Create(context.Background(), ports.CreateRecipeInput{
		Name:         "Adobo",
		Description:  "Classic braise",
		Ingredients:  "chicken, soy sauce, vinegar",
		Instructions: "Simmer until tender.",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if recipe.ID == "" {
		t.Error("id must be assigned")
	}
	if recipe.Author != "Unknown" {
		t.Errorf("empty author must default to Unknown, got %q", recipe.Author)
	}
	if recipe.Hidden {
		t.Error("new recipes must be visible")
	}
	if recipe.Views != 0 {
		t.Errorf("new recipes start with zero views, got %d", recipe.Views)
	}
	if recipe.DateCreated.IsZero() {
		t.Error("DateCreated must be set")
	}
}

func TestRecipeService_Create_Validation(t *testing.T) {
	svc := NewRecipeService(newTestStore(), 10, zerolog.Nop())

	cases := []struct {
		name  string
		input ports.CreateRecipeInput
	}{
		{"missing name", ports.CreateRecipeInput{Description: "d", Ingredients: "i", Instructions: "s"}},
		{"missing instructions", ports.CreateRecipeInput{Name: "n", Description: "d", Ingredients: "i"}},
		{"bad difficulty", ports.CreateRecipeInput{Name: "n", Description: "d", Ingredients: "i", Instructions: "s", Difficulty: "Impossible"}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(context.Background(), tc.input); !isValidationError(err) {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestRecipeService_Update_MergeAndNoOp(t *testing.T) {
	store := newTestStore()
	svc := NewRecipeService(store, 10, zerolog.Nop())
	ctx := context.Background()

	seedRecipe(t, store, domain.Recipe{ID: "r1", Name: "Adobo", Description: "old", Author: "maria"})

	if err := svc.Update(ctx, ports.UpdateRecipeInput{ID: "r1", Description: strPtr("new")}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := svc.Get(ctx, "r1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Description != "new" || got.Name != "Adobo" || got.Author != "maria" {
		t.Errorf("merge mismatch: %+v", got)
	}

	if err := svc.Update(ctx, ports.UpdateRecipeInput{ID: "ghost", Name: strPtr("x")}); err != nil {
		t.Fatalf("unknown id must be a silent no-op, got %v", err)
	}
	if recipes := store.Recipes(ctx); len(recipes) != 1 {
		t.Errorf("collection must be unchanged, got %+v", recipes)
	}
}

func TestRecipeService_SetHiddenAndRemove(t *testing.T) {
	store := newTestStore()
	svc := NewRecipeService(store, 10, zerolog.Nop())
	ctx := context.Background()

	seedRecipe(t, store, domain.Recipe{ID: "r1", Name: "Adobo"})

	if err := svc.SetHidden(ctx, "r1", true); err != nil {
		t.Fatalf("hide: %v", err)
	}
	got, _ := svc.Get(ctx, "r1")
	if !got.Hidden {
		t.Error("recipe must be hidden")
	}

	if err := svc.Remove(ctx, "r1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := svc.Get(ctx, "r1"); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Errorf("expected ErrRecipeNotFound after remove, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// RecordView
// ---------------------------------------------------------------------------

func TestRecipeService_RecordView(t *testing.T) {
	store := newTestStore()
	svc := NewRecipeService(store, 10, zerolog.Nop())
	ctx := context.Background()

	seedRecipe(t, store, domain.Recipe{ID: "r1", Name: "Adobo"})

	for i := 0; i < 3; i++ {
		if err := svc.RecordView(ctx, "r1"); err != nil {
			t.Fatalf("view %d: %v", i, err)
		}
	}
	got, _ := svc.Get(ctx, "r1")
	if got.Views != 3 {
		t.Errorf("expected 3 views, got %d", got.Views)
	}

	if err := svc.RecordView(ctx, "ghost"); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Errorf("expected ErrRecipeNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// List pipeline
// ---------------------------------------------------------------------------

func TestRecipeService_List_HidesHiddenByDefault(t *testing.T) {
	store := newTestStore()
	svc := NewRecipeService(store, 10, zerolog.Nop())
	ctx := context.Background()

	seedRecipe(t, store, domain.Recipe{ID: "r1", Name: "Adobo"})
	seedRecipe(t, store, domain.Recipe{ID: "r2", Name: "Sinigang", Hidden: true})

	res, err := svc.List(ctx, ports.ListRecipesInput{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 1 || res.Items[0].ID != "r1" {
		t.Errorf("hidden recipe must be excluded, got %+v", res.Items)
	}

	res, err = svc.List(ctx, ports.ListRecipesInput{IncludeHidden: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 2 {
		t.Errorf("IncludeHidden must list both, got %d", res.Total)
	}
}

func TestRecipeService_List_AuthorSearchAndBucket(t *testing.T) {
	store := newTestStore()
	svc := NewRecipeService(store, 10, zerolog.Nop())
	ctx := context.Background()

	seedRecipe(t, store, domain.Recipe{ID: "r1", Name: "Chicken Adobo", Author: "maria"})
	seedRecipe(t, store, domain.Recipe{ID: "r2", Name: "Pork Sinigang", Author: "pedro"})
	seedRecipe(t, store, domain.Recipe{ID: "r3", Name: "Chicken Tinola", Author: "maria"})
	// r1 averages 3.5, which rounds to bucket 4. r2 averages 3.0.
	seedReview(t, store, domain.Review{ID: "v1", RecipeID: "r1", Rating: 3})
	seedReview(t, store, domain.Review{ID: "v2", RecipeID: "r1", Rating: 4})
	seedReview(t, store, domain.Review{ID: "v3", RecipeID: "r2", Rating: 3})

	res, err := svc.List(ctx, ports.ListRecipesInput{Author: "maria"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 2 {
		t.Errorf("author filter: expected 2, got %d", res.Total)
	}

	res, err = svc.List(ctx, ports.ListRecipesInput{Search: "chicken"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 2 {
		t.Errorf("name search: expected 2, got %d", res.Total)
	}

	res, err = svc.List(ctx, ports.ListRecipesInput{RatingBucket: 4})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 1 || res.Items[0].ID != "r1" {
		t.Errorf("bucket 4: expected only r1, got %+v", res.Items)
	}
	if res.Items[0].AvgRating != 3.5 || res.Items[0].ReviewCount != 2 {
		t.Errorf("enrichment mismatch: %+v", res.Items[0])
	}
}

func TestRecipeService_List_SortOrders(t *testing.T) {
	store := newTestStore()
	svc := NewRecipeService(store, 10, zerolog.Nop())
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	seedRecipe(t, store, domain.Recipe{ID: "r1", Name: "Oldest", DateCreated: base})
	seedRecipe(t, store, domain.Recipe{ID: "r2", Name: "Newest", DateCreated: base.Add(48 * time.Hour)})
	seedRecipe(t, store, domain.Recipe{ID: "r3", Name: "Middle", DateCreated: base.Add(24 * time.Hour)})
	seedReview(t, store, domain.Review{ID: "v1", RecipeID: "r1", Rating: 5})
	seedReview(t, store, domain.Review{ID: "v2", RecipeID: "r3", Rating: 3})

	res, err := svc.List(ctx, ports.ListRecipesInput{})
	if err != nil {
		t.Fatal(err)
	}
	order := []string{res.Items[0].ID, res.Items[1].ID, res.Items[2].ID}
	if order[0] != "r2" || order[1] != "r3" || order[2] != "r1" {
		t.Errorf("default sort must be newest first, got %v", order)
	}

	res, err = svc.List(ctx, ports.ListRecipesInput{Sort: ports.SortTopRated})
	if err != nil {
		t.Fatal(err)
	}
	order = []string{res.Items[0].ID, res.Items[1].ID, res.Items[2].ID}
	if order[0] != "r1" || order[1] != "r3" || order[2] != "r2" {
		t.Errorf("top rated sort mismatch, got %v", order)
	}
}

func TestRecipeService_List_FavoriteFlagsForViewer(t *testing.T) {
	store := newTestStore()
	svc := NewRecipeService(store, 10, zerolog.Nop())
	ctx := context.Background()

	seedRecipe(t, store, domain.Recipe{ID: "r1", Name: "Adobo"})
	seedRecipe(t, store, domain.Recipe{ID: "r2", Name: "Sinigang"})
	if err := svc.AddFavorite(ctx, "u1", "r2"); err != nil {
		t.Fatal(err)
	}

	res, err := svc.List(ctx, ports.ListRecipesInput{ViewerID: "u1"})
	if err != nil {
		t.Fatal(err)
	}
	flags := map[string]bool{}
	for _, item := range res.Items {
		flags[item.ID] = item.Favorite
	}
	if flags["r1"] || !flags["r2"] {
		t.Errorf("favorite flags mismatch: %v", flags)
	}

	// Without a viewer no flags are resolved.
	res, err = svc.List(ctx, ports.ListRecipesInput{})
	if err != nil {
		t.Fatal(err)
	}
	for _, item := range res.Items {
		if item.Favorite {
			t.Errorf("recipe %s flagged without a viewer", item.ID)
		}
	}
}

func TestRecipeService_List_Pagination(t *testing.T) {
	store := newTestStore()
	svc := NewRecipeService(store, 10, zerolog.Nop())
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		seedRecipe(t, store, domain.Recipe{
			ID:          string(rune('a' + i)),
			Name:        "Recipe",
			DateCreated: base.Add(time.Duration(i) * time.Hour),
		})
	}

	res, err := svc.List(ctx, ports.ListRecipesInput{Page: 3, PageSize: 5})
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", res.TotalPages)
	}
	if len(res.Items) != 2 {
		t.Errorf("last page must hold the remainder, got %d items", len(res.Items))
	}

	// Out-of-range pages clamp instead of erroring.
	res, err = svc.List(ctx, ports.ListRecipesInput{Page: 99, PageSize: 5})
	if err != nil {
		t.Fatal(err)
	}
	if res.Page != 3 || len(res.Items) != 2 {
		t.Errorf("page 99 must clamp to the last page, got page %d with %d items", res.Page, len(res.Items))
	}
}

// ---------------------------------------------------------------------------
// TopRated
// ---------------------------------------------------------------------------

func TestRecipeService_TopRated(t *testing.T) {
	store := newTestStore()
	svc := NewRecipeService(store, 10, zerolog.Nop())
	ctx := context.Background()

	seedRecipe(t, store, domain.Recipe{ID: "r1", Name: "Unreviewed"})
	seedRecipe(t, store, domain.Recipe{ID: "r2", Name: "Good"})
	seedRecipe(t, store, domain.Recipe{ID: "r3", Name: "Great"})
	seedRecipe(t, store, domain.Recipe{ID: "r4", Name: "Hidden", Hidden: true})
	seedReview(t, store, domain.Review{ID: "v1", RecipeID: "r2", Rating: 3})
	seedReview(t, store, domain.Review{ID: "v2", RecipeID: "r3", Rating: 5})
	seedReview(t, store, domain.Review{ID: "v3", RecipeID: "r4", Rating: 5})

	items, err := svc.TopRated(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("unreviewed and hidden recipes must be skipped, got %+v", items)
	}
	if items[0].ID != "r3" || items[1].ID != "r2" {
		t.Errorf("order mismatch: %s, %s", items[0].ID, items[1].ID)
	}

	items, err = svc.TopRated(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].ID != "r3" {
		t.Errorf("limit must cap the result, got %+v", items)
	}
}

// ---------------------------------------------------------------------------
// Favorites
// ---------------------------------------------------------------------------

func TestRecipeService_FavoriteRoundTrip(t *testing.T) {
	store := newTestStore()
	svc := NewRecipeService(store, 10, zerolog.Nop())
	ctx := context.Background()

	if err := svc.AddFavorite(ctx, "", "r1"); !isValidationError(err) {
		t.Errorf("blank user id must be rejected, got %v", err)
	}
	if err := svc.RemoveFavorite(ctx, "u1", ""); !isValidationError(err) {
		t.Errorf("blank recipe id must be rejected, got %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := svc.AddFavorite(ctx, "u1", "r1"); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}
	if err := svc.AddFavorite(ctx, "u1", "r2"); err != nil {
		t.Fatal(err)
	}

	ids, err := svc.FavoriteRecipeIDs(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] != "r1" || ids[1] != "r2" {
		t.Errorf("duplicate add must be a no-op and order preserved, got %v", ids)
	}

	if err := svc.RemoveFavorite(ctx, "u1", "r1"); err != nil {
		t.Fatal(err)
	}
	ids, _ = svc.FavoriteRecipeIDs(ctx, "u1")
	if len(ids) != 1 || ids[0] != "r2" {
		t.Errorf("remove must drop only the matching pair, got %v", ids)
	}
}

func TestRecipeService_ListFavorites(t *testing.T) {
	store := newTestStore()
	svc := NewRecipeService(store, 10, zerolog.Nop())
	ctx := context.Background()

	seedRecipe(t, store, domain.Recipe{ID: "r1", Name: "Chicken Adobo"})
	seedRecipe(t, store, domain.Recipe{ID: "r2", Name: "Pork Sinigang"})
	seedRecipe(t, store, domain.Recipe{ID: "r3", Name: "Chicken Tinola"})
	seedReview(t, store, domain.Review{ID: "v1", RecipeID: "r2", Rating: 4})

	// Starred in this order; r1 is never starred.
	if err := svc.AddFavorite(ctx, "u1", "r3"); err != nil {
		t.Fatal(err)
	}
	if err := svc.AddFavorite(ctx, "u1", "r2"); err != nil {
		t.Fatal(err)
	}
	if err := svc.AddFavorite(ctx, "u2", "r1"); err != nil {
		t.Fatal(err)
	}

	res, err := svc.ListFavorites(ctx, ports.ListFavoritesInput{UserID: "u1"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 2 || res.Items[0].ID != "r3" || res.Items[1].ID != "r2" {
		t.Errorf("starring order must be preserved, got %+v", res.Items)
	}
	for _, item := range res.Items {
		if !item.Favorite {
			t.Errorf("favorites listing must flag %s", item.ID)
		}
	}
	if res.Items[1].AvgRating != 4 {
		t.Errorf("favorites must carry rating enrichment, got %+v", res.Items[1])
	}

	res, err = svc.ListFavorites(ctx, ports.ListFavoritesInput{UserID: "u1", Search: "sinigang"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 1 || res.Items[0].ID != "r2" {
		t.Errorf("favorite search mismatch: %+v", res.Items)
	}

	if _, err := svc.ListFavorites(ctx, ports.ListFavoritesInput{}); !isValidationError(err) {
		t.Errorf("missing user id must be rejected, got %v", err)
	}
}
