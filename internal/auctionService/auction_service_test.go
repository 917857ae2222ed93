package auction

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
)

// Tests PlaceBid
func TestAuctionService_PlaceBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	frozen := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	service := NewAuctionService(mockRepo).WithClock(func() time.Time { return frozen })

	// Table-driven test cases
	tests := []struct {
		name          string
		auctionID     string
		bidderID      string
		amount        float64
		mockSetup     func()
		expectError   bool
		expectedError error
	}{
		{
			name:      "valid_bid",
			auctionID: "auction1",
			bidderID:  "user1",
			amount:    1200,
			mockSetup: func() {
				mockRepo.EXPECT().
					PlaceBid("auction1", "user1", 1200.0, frozen).
					Return(model.Auction{ID: "auction1", CurrentPrice: 1200}, nil)
			},
			expectError: false,
		},
		{
			name:          "empty_auctionID",
			auctionID:     "",
			bidderID:      "user1",
			amount:        50,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "empty_bidderID",
			auctionID:     "auction1",
			bidderID:      "",
			amount:        50,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "zero_amount",
			auctionID:     "auction1",
			bidderID:      "user1",
			amount:        0,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "negative_amount",
			auctionID:     "auction1",
			bidderID:      "user1",
			amount:        -50,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:      "bid_too_low",
			auctionID: "auction1",
			bidderID:  "user1",
			amount:    900,
			mockSetup: func() {
				mockRepo.EXPECT().
					PlaceBid("auction1", "user1", 900.0, frozen).
					Return(model.Auction{}, auctionerrors.ErrBidTooLow)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrBidTooLow,
		},
		{
			name:      "auction_ended",
			auctionID: "auction1",
			bidderID:  "user1",
			amount:    1200,
			mockSetup: func() {
				mockRepo.EXPECT().
					PlaceBid("auction1", "user1", 1200.0, frozen).
					Return(model.Auction{}, auctionerrors.ErrAuctionEnded)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrAuctionEnded,
		},
		{
			name:      "auction_not_found",
			auctionID: "missing",
			bidderID:  "user1",
			amount:    1200,
			mockSetup: func() {
				mockRepo.EXPECT().
					PlaceBid("missing", "user1", 1200.0, frozen).
					Return(model.Auction{}, auctionerrors.ErrAuctionNotFound)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrAuctionNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			auction, at, err := service.PlaceBid(tc.auctionID, tc.bidderID, tc.amount)
			require.True(t, at.Equal(frozen))

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError))
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.auctionID, auction.ID)
		})
	}
}

// Tests CreateAuction
func TestAuctionService_CreateAuction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	frozen := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	service := NewAuctionService(mockRepo).WithClock(func() time.Time { return frozen })

	valid := func() CreateAuctionParams {
		return CreateAuctionParams{
			Title:         "1998 Peterbilt 379",
			Description:   "Clean title, rebuilt engine.",
			StartingPrice: 15000,
			StartTime:     frozen.Add(time.Hour),
			EndTime:       frozen.Add(48 * time.Hour),
		}
	}

	tests := []struct {
		name          string
		params        func() CreateAuctionParams
		isAdmin       bool
		mockSetup     func()
		expectError   bool
		expectedError error
		check         func(t *testing.T, created model.Auction)
	}{
		{
			name:    "valid_auction_defaults_applied",
			params:  valid,
			isAdmin: true,
			mockSetup: func() {
				mockRepo.EXPECT().
					CreateAuction(gomock.Any(), gomock.Nil()).
					DoAndReturn(func(auction model.Auction, _ []model.Category) (model.Auction, error) {
						return auction, nil
					})
			},
			check: func(t *testing.T, created model.Auction) {
				require.Equal(t, created.StartingPrice, created.CurrentPrice)
				require.Equal(t, model.SnipingMinutesDefault, created.SnipingWindowMinutes)
				require.Equal(t, model.SnipingMinutesDefault, created.SnipingExtensionMinutes)
				require.NotEmpty(t, created.ID)
			},
		},
		{
			name:    "gallery_first_url_becomes_cover",
			isAdmin: true,
			params: func() CreateAuctionParams {
				p := valid()
				p.GalleryURLs = []string{"https://img.example/a.jpg", "https://img.example/b.jpg"}
				return p
			},
			mockSetup: func() {
				mockRepo.EXPECT().
					CreateAuction(gomock.Any(), gomock.Nil()).
					DoAndReturn(func(auction model.Auction, _ []model.Category) (model.Auction, error) {
						return auction, nil
					})
			},
			check: func(t *testing.T, created model.Auction) {
				require.Equal(t, "https://img.example/a.jpg", created.ImageURL)
				require.Len(t, created.Images, 2)
				require.Equal(t, 0, created.Images[0].Position)
				require.Equal(t, 1, created.Images[1].Position)
			},
		},
		{
			name:    "description_is_sanitized",
			isAdmin: true,
			params: func() CreateAuctionParams {
				p := valid()
				p.Description = `Runs great<script>alert("x")</script>`
				return p
			},
			mockSetup: func() {
				mockRepo.EXPECT().
					CreateAuction(gomock.Any(), gomock.Nil()).
					DoAndReturn(func(auction model.Auction, _ []model.Category) (model.Auction, error) {
						return auction, nil
					})
			},
			check: func(t *testing.T, created model.Auction) {
				require.Equal(t, "Runs great", created.Description)
			},
		},
		{
			name:          "non_admin_rejected",
			params:        valid,
			isAdmin:       false,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrPermissionDenied,
		},
		{
			name:    "end_before_start",
			isAdmin: true,
			params: func() CreateAuctionParams {
				p := valid()
				p.EndTime = p.StartTime.Add(-time.Minute)
				return p
			},
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:    "end_equals_start",
			isAdmin: true,
			params: func() CreateAuctionParams {
				p := valid()
				p.EndTime = p.StartTime
				return p
			},
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:    "non_positive_starting_price",
			isAdmin: true,
			params: func() CreateAuctionParams {
				p := valid()
				p.StartingPrice = 0
				return p
			},
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:    "sniping_window_over_max",
			isAdmin: true,
			params: func() CreateAuctionParams {
				p := valid()
				p.SnipingWindowMinutes = model.SnipingMinutesMax + 1
				return p
			},
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:    "unknown_category_slug",
			isAdmin: true,
			params: func() CreateAuctionParams {
				p := valid()
				p.CategorySlugs = []string{"trucks", "hovercraft"}
				return p
			},
			mockSetup: func() {
				mockRepo.EXPECT().
					GetCategoriesBySlugs([]string{"trucks", "hovercraft"}).
					Return([]model.Category{{Slug: "trucks", Name: "Trucks"}}, nil)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrUnknownCategory,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			created, _, err := service.CreateAuction(tc.params(), "admin1", tc.isAdmin)
			if tc.expectError {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError))
				return
			}
			require.NoError(t, err)
			if tc.check != nil {
				tc.check(t, created)
			}
		})
	}
}

// Tests UpdateAuction
func TestAuctionService_UpdateAuction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	frozen := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	service := NewAuctionService(mockRepo).WithClock(func() time.Time { return frozen })

	stored := model.Auction{
		ID:                      "auction1",
		Title:                   "1998 Peterbilt 379",
		StartingPrice:           15000,
		CurrentPrice:            15000,
		StartTime:               frozen.Add(time.Hour),
		EndTime:                 frozen.Add(48 * time.Hour),
		SnipingWindowMinutes:    2,
		SnipingExtensionMinutes: 2,
	}

	t.Run("partial_update_leaves_other_fields", func(t *testing.T) {
		mockRepo.EXPECT().GetAuction("auction1").Return(stored, nil)
		mockRepo.EXPECT().
			UpdateAuction(gomock.Any(), gomock.Nil(), gomock.Nil()).
			DoAndReturn(func(auction model.Auction, _ *[]model.AuctionImage, _ *[]model.Category) (model.Auction, error) {
				return auction, nil
			})

		title := "2001 Kenworth W900"
		updated, _, err := service.UpdateAuction("auction1", UpdateAuctionParams{Title: &title}, true)
		require.NoError(t, err)
		require.Equal(t, title, updated.Title)
		require.Equal(t, stored.EndTime, updated.EndTime)
		require.Equal(t, stored.StartingPrice, updated.StartingPrice)
	})

	t.Run("moving_end_before_start_rejected", func(t *testing.T) {
		mockRepo.EXPECT().GetAuction("auction1").Return(stored, nil)

		badEnd := stored.StartTime.Add(-time.Minute)
		_, _, err := service.UpdateAuction("auction1", UpdateAuctionParams{EndTime: &badEnd}, true)
		require.True(t, errors.Is(err, auctionerrors.ErrInvalidInput))
	})

	t.Run("gallery_replacement_builds_positions", func(t *testing.T) {
		mockRepo.EXPECT().GetAuction("auction1").Return(stored, nil)
		mockRepo.EXPECT().
			UpdateAuction(gomock.Any(), gomock.Not(gomock.Nil()), gomock.Nil()).
			DoAndReturn(func(auction model.Auction, gallery *[]model.AuctionImage, _ *[]model.Category) (model.Auction, error) {
				require.Len(t, *gallery, 2)
				require.Equal(t, 0, (*gallery)[0].Position)
				require.Equal(t, "auction1", (*gallery)[0].AuctionID)
				return auction, nil
			})

		urls := []string{"https://img.example/a.jpg", "https://img.example/b.jpg"}
		_, _, err := service.UpdateAuction("auction1", UpdateAuctionParams{GalleryURLs: &urls}, true)
		require.NoError(t, err)
	})

	t.Run("non_admin_rejected", func(t *testing.T) {
		_, _, err := service.UpdateAuction("auction1", UpdateAuctionParams{}, false)
		require.True(t, errors.Is(err, auctionerrors.ErrPermissionDenied))
	})

	t.Run("not_found_surfaced", func(t *testing.T) {
		mockRepo.EXPECT().GetAuction("missing").Return(model.Auction{}, auctionerrors.ErrAuctionNotFound)

		_, _, err := service.UpdateAuction("missing", UpdateAuctionParams{}, true)
		require.True(t, errors.Is(err, auctionerrors.ErrAuctionNotFound))
	})
}

// Tests DeleteAuction
func TestAuctionService_DeleteAuction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := NewAuctionService(mockRepo)

	t.Run("admin_delete", func(t *testing.T) {
		mockRepo.EXPECT().DeleteAuction("auction1").Return(nil)
		require.NoError(t, service.DeleteAuction("auction1", true))
	})

	t.Run("non_admin_rejected", func(t *testing.T) {
		err := service.DeleteAuction("auction1", false)
		require.True(t, errors.Is(err, auctionerrors.ErrPermissionDenied))
	})

	t.Run("not_found_surfaced", func(t *testing.T) {
		mockRepo.EXPECT().DeleteAuction("missing").Return(auctionerrors.ErrAuctionNotFound)
		err := service.DeleteAuction("missing", true)
		require.True(t, errors.Is(err, auctionerrors.ErrAuctionNotFound))
	})
}

// Tests ListAuctions / GetAuction clock plumbing
func TestAuctionService_Reads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	frozen := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	service := NewAuctionService(mockRepo).WithClock(func() time.Time { return frozen })

	t.Run("list_returns_single_clock_reading", func(t *testing.T) {
		mockRepo.EXPECT().ListAuctions().Return([]model.Auction{{ID: "a"}, {ID: "b"}}, nil)

		auctions, at, err := service.ListAuctions()
		require.NoError(t, err)
		require.Len(t, auctions, 2)
		require.True(t, at.Equal(frozen))
	})

	t.Run("get_empty_id", func(t *testing.T) {
		_, _, err := service.GetAuction("")
		require.True(t, errors.Is(err, auctionerrors.ErrInvalidInput))
	})

	t.Run("get_found", func(t *testing.T) {
		mockRepo.EXPECT().GetAuction("auction1").Return(model.Auction{ID: "auction1"}, nil)

		auction, at, err := service.GetAuction("auction1")
		require.NoError(t, err)
		require.Equal(t, "auction1", auction.ID)
		require.True(t, at.Equal(frozen))
	})
}
