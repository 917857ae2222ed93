package integrationtests

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	auctionhelpers "auction-marketplace/services/auction/helpers"
	intakehelpers "auction-marketplace/services/intake/helpers"
)

func createAuctionRequest(env *TestEnv) auctionhelpers.CreateAuctionRequest {
	return auctionhelpers.CreateAuctionRequest{
		Title:         "1998 Peterbilt 379",
		Description:   "Clean title, rebuilt engine.",
		StartingPrice: 15000,
		StartTime:     env.Now().Add(-time.Hour),
		EndTime:       env.Now().Add(24 * time.Hour),
		GalleryURLs:   []string{"https://img.example/a.jpg", "https://img.example/b.jpg"},
		CategorySlugs: []string{"trucks-trailers"},
	}
}

// Auction CRUD and authorization
func TestAuctionLifecycleAPI(t *testing.T) {
	env := SetupTestEnv(t)
	_, adminToken := env.SeedUser(t, "Admin", true)
	_, bidderToken := env.SeedUser(t, "Dana", false)

	t.Run("anonymous_create_unauthorized", func(t *testing.T) {
		_, w := env.Do(t, http.MethodPost, "/auctions", "", createAuctionRequest(env))
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non_admin_create_forbidden", func(t *testing.T) {
		_, w := env.Do(t, http.MethodPost, "/auctions", bidderToken, createAuctionRequest(env))
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	var auctionID string
	t.Run("admin_create", func(t *testing.T) {
		resp, w := env.Do(t, http.MethodPost, "/auctions", adminToken, createAuctionRequest(env))
		require.Equal(t, http.StatusCreated, w.Code)

		data := Data(t, resp)
		auctionID = data["id"].(string)
		require.Equal(t, "active", data["status"])
		require.Equal(t, 15000.0, data["current_price"])
		require.Equal(t, "https://img.example/a.jpg", data["image_url"])
		categories := data["categories"].([]any)
		require.Len(t, categories, 1)
		require.Equal(t, "trucks-trailers", categories[0].(map[string]any)["slug"])
	})

	t.Run("list_includes_created", func(t *testing.T) {
		resp, w := env.Do(t, http.MethodGet, "/auctions", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, resp["data"].([]any), 1)
	})

	t.Run("partial_update", func(t *testing.T) {
		resp, w := env.Do(t, http.MethodPut, "/auctions/"+auctionID, adminToken,
			map[string]any{"location": "Tulsa, OK"})
		require.Equal(t, http.StatusOK, w.Code)

		data := Data(t, resp)
		require.Equal(t, "Tulsa, OK", data["location"])
		require.Equal(t, "1998 Peterbilt 379", data["title"])
	})

	t.Run("get_unknown_auction", func(t *testing.T) {
		_, w := env.Do(t, http.MethodGet, "/auctions/nope", "", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete_and_gone", func(t *testing.T) {
		_, w := env.Do(t, http.MethodDelete, "/auctions/"+auctionID, adminToken, nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		_, w = env.Do(t, http.MethodGet, "/auctions/"+auctionID, "", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// Bidding flow including the anti-sniping extension
func TestBiddingAPI(t *testing.T) {
	env := SetupTestEnv(t)
	_, adminToken := env.SeedUser(t, "Admin", true)
	_, bidderToken := env.SeedUser(t, "Dana", false)
	_, rivalToken := env.SeedUser(t, "Riley", false)

	req := createAuctionRequest(env)
	req.SnipingWindowMinutes = 2
	req.SnipingExtensionMinutes = 2
	resp, w := env.Do(t, http.MethodPost, "/auctions", adminToken, req)
	require.Equal(t, http.StatusCreated, w.Code)
	auctionID := Data(t, resp)["id"].(string)
	endTime := env.Now().Add(24 * time.Hour)

	t.Run("anonymous_bid_unauthorized", func(t *testing.T) {
		_, w := env.Do(t, http.MethodPost, "/auctions/"+auctionID+"/bids", "",
			auctionhelpers.PlaceBidRequest{Amount: 15100})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bid_at_starting_price_rejected", func(t *testing.T) {
		_, w := env.Do(t, http.MethodPost, "/auctions/"+auctionID+"/bids", bidderToken,
			auctionhelpers.PlaceBidRequest{Amount: 15000})
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("first_bid_accepted", func(t *testing.T) {
		resp, w := env.Do(t, http.MethodPost, "/auctions/"+auctionID+"/bids", bidderToken,
			auctionhelpers.PlaceBidRequest{Amount: 15100})
		require.Equal(t, http.StatusCreated, w.Code)

		data := Data(t, resp)
		require.Equal(t, 15100.0, data["current_price"])
		require.Equal(t, 1.0, data["bid_count"])
	})

	t.Run("lower_bid_rejected", func(t *testing.T) {
		_, w := env.Do(t, http.MethodPost, "/auctions/"+auctionID+"/bids", rivalToken,
			auctionhelpers.PlaceBidRequest{Amount: 15050})
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("outbid_renders_newest_first", func(t *testing.T) {
		env.Advance(time.Minute)
		resp, w := env.Do(t, http.MethodPost, "/auctions/"+auctionID+"/bids", rivalToken,
			auctionhelpers.PlaceBidRequest{Amount: 15300})
		require.Equal(t, http.StatusCreated, w.Code)

		bids := Data(t, resp)["bids"].([]any)
		require.Len(t, bids, 2)
		require.Equal(t, 15300.0, bids[0].(map[string]any)["amount"])
		require.Equal(t, 15100.0, bids[1].(map[string]any)["amount"])
	})

	t.Run("late_bid_extends_end_time", func(t *testing.T) {
		env.Advance(endTime.Sub(env.Now()) - time.Minute) // one minute before close

		resp, w := env.Do(t, http.MethodPost, "/auctions/"+auctionID+"/bids", bidderToken,
			auctionhelpers.PlaceBidRequest{Amount: 15500})
		require.Equal(t, http.StatusCreated, w.Code)

		data := Data(t, resp)
		wantEnd := env.Now().Add(2 * time.Minute).Format(time.RFC3339)
		require.Equal(t, wantEnd, data["end_time"])
		require.Equal(t, 120.0, data["time_remaining_seconds"])
	})

	t.Run("bid_after_close_rejected", func(t *testing.T) {
		env.Advance(3 * time.Minute)

		_, w := env.Do(t, http.MethodPost, "/auctions/"+auctionID+"/bids", rivalToken,
			auctionhelpers.PlaceBidRequest{Amount: 16000})
		require.Equal(t, http.StatusConflict, w.Code)

		resp, _ := env.Do(t, http.MethodGet, "/auctions/"+auctionID, "", nil)
		require.Equal(t, "completed", Data(t, resp)["status"])
	})
}

// Upcoming auctions reject bids until the start time passes
func TestUpcomingAuctionAPI(t *testing.T) {
	env := SetupTestEnv(t)
	_, adminToken := env.SeedUser(t, "Admin", true)
	_, bidderToken := env.SeedUser(t, "Dana", false)

	req := createAuctionRequest(env)
	req.StartTime = env.Now().Add(time.Hour)
	req.EndTime = env.Now().Add(25 * time.Hour)
	resp, w := env.Do(t, http.MethodPost, "/auctions", adminToken, req)
	require.Equal(t, http.StatusCreated, w.Code)

	data := Data(t, resp)
	auctionID := data["id"].(string)
	require.Equal(t, "upcoming", data["status"])
	require.Equal(t, 3600.0, data["time_remaining_seconds"])

	_, w = env.Do(t, http.MethodPost, "/auctions/"+auctionID+"/bids", bidderToken,
		auctionhelpers.PlaceBidRequest{Amount: 15100})
	require.Equal(t, http.StatusConflict, w.Code)

	env.Advance(61 * time.Minute)
	_, w = env.Do(t, http.MethodPost, "/auctions/"+auctionID+"/bids", bidderToken,
		auctionhelpers.PlaceBidRequest{Amount: 15100})
	require.Equal(t, http.StatusCreated, w.Code)
}

// Catalog endpoints
func TestCatalogAPI(t *testing.T) {
	env := SetupTestEnv(t)

	t.Run("categories_seeded", func(t *testing.T) {
		resp, w := env.Do(t, http.MethodGet, "/catalog/categories", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, resp["data"].([]any), 7)
	})

	t.Run("support_programs", func(t *testing.T) {
		resp, w := env.Do(t, http.MethodGet, "/catalog/support-programs", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		programs := resp["data"].([]any)
		require.Len(t, programs, 3)
		require.Equal(t, "prime-haul", programs[0].(map[string]any)["slug"])
	})
}

// Lead-capture endpoints
func TestIntakeAPI(t *testing.T) {
	env := SetupTestEnv(t)
	_, adminToken := env.SeedUser(t, "Admin", true)
	user, userToken := env.SeedUser(t, "Dana", false)

	resp, w := env.Do(t, http.MethodPost, "/auctions", adminToken, createAuctionRequest(env))
	require.Equal(t, http.StatusCreated, w.Code)
	auctionID := Data(t, resp)["id"].(string)

	t.Run("transport_quote_with_attribution", func(t *testing.T) {
		resp, w := env.Do(t, http.MethodPost, "/services/transport/quotes", userToken,
			intakehelpers.TransportQuoteRequest{
				Name:        "Dana Fuller",
				Email:       "dana@example.com",
				Origin:      "Dallas, TX",
				Destination: "Tulsa, OK",
				AuctionID:   &auctionID,
			})
		require.Equal(t, http.StatusCreated, w.Code)

		data := Data(t, resp)
		require.Equal(t, user.ID, data["user_id"])
		require.Equal(t, auctionID, data["auction_id"])
	})

	t.Run("transport_quote_unknown_auction", func(t *testing.T) {
		missing := "missing"
		_, w := env.Do(t, http.MethodPost, "/services/transport/quotes", "",
			intakehelpers.TransportQuoteRequest{
				Name:        "Dana Fuller",
				Email:       "dana@example.com",
				Origin:      "Dallas, TX",
				Destination: "Tulsa, OK",
				AuctionID:   &missing,
			})
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("transport_quote_list_admin_only", func(t *testing.T) {
		_, w := env.Do(t, http.MethodGet, "/services/transport/quotes", userToken, nil)
		require.Equal(t, http.StatusForbidden, w.Code)

		resp, w := env.Do(t, http.MethodGet, "/services/transport/quotes", adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, resp["data"].([]any), 1)
	})

	t.Run("financing_application_starts_pending", func(t *testing.T) {
		resp, w := env.Do(t, http.MethodPost, "/services/financing/applications", "",
			intakehelpers.FinancingApplicationRequest{
				BusinessName: "Fuller Freight LLC",
				ContactName:  "Dana Fuller",
				Email:        "dana@example.com",
				Phone:        "555-0101",
				Amount:       45000,
			})
		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, "pending", Data(t, resp)["status"])
	})

	t.Run("contact_request", func(t *testing.T) {
		_, w := env.Do(t, http.MethodPost, "/contact", "", intakehelpers.ContactRequest{
			FirstName: "Dana",
			LastName:  "Fuller",
			Email:     "dana@example.com",
			Message:   "Is the title in hand?",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		resp, w := env.Do(t, http.MethodGet, "/contact", adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, resp["data"].([]any), 1)
	})

	t.Run("subscription_idempotent", func(t *testing.T) {
		first, w := env.Do(t, http.MethodPost, "/subscriptions", "",
			intakehelpers.SubscribeRequest{Email: "dana@example.com"})
		require.Equal(t, http.StatusCreated, w.Code)

		second, w := env.Do(t, http.MethodPost, "/subscriptions", "",
			intakehelpers.SubscribeRequest{Email: "Dana@Example.com"})
		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, Data(t, first)["id"], Data(t, second)["id"])
	})
}
