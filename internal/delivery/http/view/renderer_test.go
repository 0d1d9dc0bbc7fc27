package view

import (
	"bytes"
	"testing"

	"haven/internal/delivery/http/session"
	"haven/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleListing(owner uuid.UUID) *entity.Listing {
	return &entity.Listing{
		ID:       "65f0c0ffee0000000000abcd",
		Title:    "Cozy Beachfront Cottage",
		Image:    entity.Image{URL: "/uploads/listings/a.jpg", Filename: "listings/a.jpg"},
		Price:    1500,
		Location: "Malibu",
		Country:  "United States",
		Category: entity.CategoryAmazingPools,
		Geometry: orb.Point{-118.78, 34.03},
		OwnerID:  owner,
	}
}

func TestRenderer_Pages(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	author := &entity.User{ID: uuid.New(), Username: "bob"}
	owner := &entity.User{ID: uuid.New(), Username: "alice"}
	listing := sampleListing(owner.ID)
	review := &entity.Review{ID: "65f0beef0000000000000001", Body: "Great stay", Rating: 4, AuthorID: author.ID}

	tests := []struct {
		name     string
		page     *Page
		contains []string
	}{
		{
			name: "listings/index",
			page: &Page{Data: IndexData{Listings: []*entity.Listing{listing}, Category: "Amazing Pools"}},
			contains: []string{
				"Cozy Beachfront Cottage",
				"₹1,500",
				`class="filter active" href="/listings?category=Amazing%20Pools"`,
			},
		},
		{
			name: "listings/show",
			page: &Page{
				CurrentUser: &session.Identity{UserID: author.ID, Username: "bob"},
				Data: ShowData{
					Detail: &entity.ListingDetail{
						Listing: listing,
						Owner:   owner,
						Reviews: []*entity.ReviewDetail{{Review: review, Author: author}, {Review: &entity.Review{ID: "x", Rating: 2}}},
					},
					UserID: author.ID,
				},
			},
			contains: []string{
				"Owned by <i>alice</i>",
				"@bob",
				"★★★★☆",
				"Former guest",
				`data-coordinates="[-118.78,34.03]"`,
				"/reviews/65f0beef0000000000000001?_method=DELETE",
			},
		},
		{name: "listings/new", page: &Page{}, contains: []string{`<option value="Iconic Cities">`}},
		{name: "listings/edit", page: &Page{Data: listing}, contains: []string{`value="Cozy Beachfront Cottage"`, "?_method=PUT"}},
		{name: "users/signup", page: &Page{}, contains: []string{`action="/signup"`}},
		{name: "users/login", page: &Page{Flashes: session.Flashes{Error: []string{"Password or username is incorrect"}}}, contains: []string{"Password or username is incorrect"}},
		{name: "error", page: &Page{Title: "Not Found", Data: "Page not found"}, contains: []string{"Page not found"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.page.Categories = entity.Categories

			var buf bytes.Buffer
			require.NoError(t, r.Render(&buf, tt.name, tt.page, nil))

			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestRenderer_ShowHidesControlsFromStrangers(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	listing := sampleListing(uuid.New())
	review := &entity.Review{ID: "r1", Body: "ok", Rating: 3, AuthorID: uuid.New()}
	page := &Page{Data: ShowData{Detail: &entity.ListingDetail{
		Listing: listing,
		Reviews: []*entity.ReviewDetail{{Review: review}},
	}}}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "listings/show", page, nil))

	assert.NotContains(t, buf.String(), "_method=DELETE")
	assert.NotContains(t, buf.String(), "Leave a Review")
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	assert.Error(t, r.Render(&bytes.Buffer{}, "listings/missing", &Page{}, nil))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "₹0", formatPrice(0))
	assert.Equal(t, "₹999", formatPrice(999))
	assert.Equal(t, "₹1,200", formatPrice(1200))
	assert.Equal(t, "₹1,234,567", formatPrice(1234567.89))
}
