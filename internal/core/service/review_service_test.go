package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kusinadelights/recipe-platform/internal/core/domain"
	"github.com/kusinadelights/recipe-platform/internal/core/ports"
)

func TestReviewService_Create_Success(t *testing.T) {
	store := newTestStore()
	svc := NewReviewService(store, 10, zerolog.Nop())

	review, err := svc.Create(context.Background(), ports.CreateReviewInput{
		RecipeID: "r1",
		UserID:   "u1",
		Rating:   4,
		Comment:  "  Lovely balance of sour and savory.  ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if review.ID == "" {
		t.Error("id must be assigned")
	}
	if review.Comment != "Lovely balance of sour and savory." {
		t.Errorf("comment must be trimmed, got %q", review.Comment)
	}
	if review.DateCreated.IsZero() {
		t.Error("DateCreated must be set")
	}
	if stored := store.Reviews(context.Background()); len(stored) != 1 {
		t.Errorf("review must be persisted, got %+v", stored)
	}
}

func TestReviewService_Create_Validation(t *testing.T) {
	svc := NewReviewService(newTestStore(), 10, zerolog.Nop())

	cases := []struct {
		name  string
		input ports.CreateReviewInput
	}{
		{"zero rating", ports.CreateReviewInput{RecipeID: "r1", UserID: "u1", Comment: "good"}},
		{"rating above five", ports.CreateReviewInput{RecipeID: "r1", UserID: "u1", Rating: 6, Comment: "good"}},
		{"empty comment", ports.CreateReviewInput{RecipeID: "r1", UserID: "u1", Rating: 4}},
		{"whitespace comment", ports.CreateReviewInput{RecipeID: "r1", UserID: "u1", Rating: 4, Comment: "   "}},
		{"comment too long", ports.CreateReviewInput{RecipeID: "r1", UserID: "u1", Rating: 4, Comment: strings.Repeat("x", 201)}},
		{"missing recipe", ports.CreateReviewInput{UserID: "u1", Rating: 4, Comment: "good"}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(context.Background(), tc.input); !isValidationError(err) {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestReviewService_Update(t *testing.T) {
	store := newTestStore()
	svc := NewReviewService(store, 10, zerolog.Nop())
	ctx := context.Background()

	seedReview(t, store, domain.Review{ID: "v1", RecipeID: "r1", UserID: "u1", Rating: 2, Comment: "meh"})

	if err := svc.Update(ctx, ports.UpdateReviewInput{ID: "v1", Rating: 5, Comment: "changed my mind"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got := store.Reviews(ctx)[0]
	if got.Rating != 5 || got.Comment != "changed my mind" {
		t.Errorf("rating and comment must be rewritten, got %+v", got)
	}
	if got.RecipeID != "r1" || got.UserID != "u1" {
		t.Errorf("recipe and user references are immutable, got %+v", got)
	}

	if err := svc.Update(ctx, ports.UpdateReviewInput{ID: "ghost", Rating: 1, Comment: "x"}); err != nil {
		t.Fatalf("unknown id must be a silent no-op, got %v", err)
	}
	if err := svc.Update(ctx, ports.UpdateReviewInput{ID: "v1", Rating: 0, Comment: "x"}); !isValidationError(err) {
		t.Errorf("zero rating must be rejected on update too, got %v", err)
	}
}

func TestReviewService_Remove(t *testing.T) {
	store := newTestStore()
	svc := NewReviewService(store, 10, zerolog.Nop())
	ctx := context.Background()

	seedReview(t, store, domain.Review{ID: "v1", RecipeID: "r1", Rating: 4, Comment: "good"})
	seedReview(t, store, domain.Review{ID: "v2", RecipeID: "r1", Rating: 5, Comment: "great"})

	if err := svc.Remove(ctx, "v1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	reviews := store.Reviews(ctx)
	if len(reviews) != 1 || reviews[0].ID != "v2" {
		t.Errorf("only v1 must be removed, got %+v", reviews)
	}
}

func TestReviewService_List_EnrichmentAndFilters(t *testing.T) {
	store := newTestStore()
	svc := NewReviewService(store, 10, zerolog.Nop())
	ctx := context.Background()

	_ = store.PutUser(ctx, domain.User{ID: "u1", Username: "maria", ProfileImage: "account.png"})
	_ = store.UpsertProfile(ctx, domain.Profile{UserID: "u1", ProfileImage: "profile.png"})
	seedRecipe(t, store, domain.Recipe{ID: "r1", Name: "Adobo", Author: "maria", Image: "adobo.png"})

	seedReview(t, store, domain.Review{ID: "v1", RecipeID: "r1", UserID: "u1", Rating: 5, Comment: "great"})
	seedReview(t, store, domain.Review{ID: "v2", RecipeID: "ghost", UserID: "ghost", Rating: 2, Comment: "meh"})

	res, err := svc.List(ctx, ports.ListReviewsInput{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 2 {
		t.Fatalf("expected both reviews, got %d", res.Total)
	}

	joined := res.Items[0]
	if joined.Username != "maria" || joined.RecipeName != "Adobo" || joined.RecipeAuthor != "maria" {
		t.Errorf("join mismatch: %+v", joined)
	}
	if joined.Avatar != "profile.png" {
		t.Errorf("profile image must win over the account image, got %q", joined.Avatar)
	}

	dangling := res.Items[1]
	if dangling.Username != "Unknown" || dangling.RecipeName != "Unknown" {
		t.Errorf("dangling references must fall back to Unknown, got %+v", dangling)
	}
	if dangling.Avatar != "" {
		t.Errorf("dangling reviewer has no avatar, got %q", dangling.Avatar)
	}

	res, err = svc.List(ctx, ports.ListReviewsInput{RecipeID: "r1"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 1 || res.Items[0].ID != "v1" {
		t.Errorf("recipe filter mismatch: %+v", res.Items)
	}

	res, err = svc.List(ctx, ports.ListReviewsInput{Search: "adobo"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 1 || res.Items[0].ID != "v1" {
		t.Errorf("recipe-name search mismatch: %+v", res.Items)
	}

	res, err = svc.List(ctx, ports.ListReviewsInput{Search: "maria"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 1 || res.Items[0].ID != "v1" {
		t.Errorf("username search mismatch: %+v", res.Items)
	}
}

func TestReviewService_List_Pagination(t *testing.T) {
	store := newTestStore()
	svc := NewReviewService(store, 10, zerolog.Nop())
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		seedReview(t, store, domain.Review{
			ID:       string(rune('a' + i)),
			RecipeID: "r1",
			Rating:   3,
			Comment:  "ok",
		})
	}

	res, err := svc.List(ctx, ports.ListReviewsInput{Page: 2, PageSize: 3})
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalPages != 3 || len(res.Items) != 3 {
		t.Errorf("expected page 2 of 3 with 3 items, got page %d of %d with %d items", res.Page, res.TotalPages, len(res.Items))
	}
	if res.Items[0].ID != "d" {
		t.Errorf("page 2 must start at the fourth review, got %q", res.Items[0].ID)
	}
}
