package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/utils"
)

// auctionQuery preloads everything an auction view needs: owner, bids
// newest-first with their bidders, the positioned gallery, and categories in
// name order.
func (r *GormRepo) auctionQuery() *gorm.DB {
	return r.db.
		Preload("Owner").
		Preload("Bids", func(db *gorm.DB) *gorm.DB {
			return db.Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true})
		}).
		Preload("Bids.Bidder").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("name ASC")
		})
}

// ListAuctions returns all auctions ordered by end time, soonest-ending first.
func (r *GormRepo) ListAuctions() ([]model.Auction, error) {
	var auctions []model.Auction
	if err := r.auctionQuery().Order("end_time ASC").Find(&auctions).Error; err != nil {
		return nil, fmt.Errorf("repository: list auctions: %w", err)
	}
	return auctions, nil
}

// GetAuction returns one fully-loaded auction.
func (r *GormRepo) GetAuction(auctionID string) (model.Auction, error) {
	var auction model.Auction
	err := r.auctionQuery().Where("id = ?", auctionID).First(&auction).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Auction{}, fmt.Errorf("repository: auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Auction{}, fmt.Errorf("repository: get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// AuctionExists reports whether an auction row exists, without loading it.
func (r *GormRepo) AuctionExists(auctionID string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Auction{}).Where("id = ?", auctionID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("repository: check auction %s: %w", auctionID, err)
	}
	return count > 0, nil
}

// CreateAuction inserts the auction and its gallery, then links the already
// resolved categories.
func (r *GormRepo) CreateAuction(auction model.Auction, categories []model.Category) (model.Auction, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories").Create(&auction).Error; err != nil {
			return fmt.Errorf("insert auction: %w", err)
		}
		if len(categories) > 0 {
			if err := tx.Model(&auction).Association("Categories").Replace(categories); err != nil {
				return fmt.Errorf("link categories: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return model.Auction{}, fmt.Errorf("repository: create auction: %w", err)
	}
	return r.GetAuction(auction.ID)
}

// UpdateAuction saves the mutated auction row. A non-nil gallery replaces the
// image set; a non-nil categories slice replaces the category links. Nil
// leaves the collection untouched.
func (r *GormRepo) UpdateAuction(auction model.Auction, gallery *[]model.AuctionImage, categories *[]model.Category) (model.Auction, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Owner", "Bids", "Images", "Categories").Save(&auction).Error; err != nil {
			return fmt.Errorf("save auction: %w", err)
		}
		if gallery != nil {
			if err := tx.Where("auction_id = ?", auction.ID).Delete(&model.AuctionImage{}).Error; err != nil {
				return fmt.Errorf("clear gallery: %w", err)
			}
			for _, image := range *gallery {
				image := image
				if err := tx.Create(&image).Error; err != nil {
					return fmt.Errorf("insert gallery image: %w", err)
				}
			}
		}
		if categories != nil {
			if err := tx.Model(&auction).Association("Categories").Replace(*categories); err != nil {
				return fmt.Errorf("replace categories: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return model.Auction{}, fmt.Errorf("repository: update auction %s: %w", auction.ID, err)
	}
	return r.GetAuction(auction.ID)
}

// DeleteAuction removes the auction and cascades to its bids, gallery, and
// category links in one transaction.
func (r *GormRepo) DeleteAuction(auctionID string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var auction model.Auction
		if err := tx.Where("id = ?", auctionID).First(&auction).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return auctionerrors.ErrAuctionNotFound
			}
			return fmt.Errorf("load auction: %w", err)
		}
		if err := tx.Where("auction_id = ?", auctionID).Delete(&model.Bid{}).Error; err != nil {
			return fmt.Errorf("delete bids: %w", err)
		}
		if err := tx.Where("auction_id = ?", auctionID).Delete(&model.AuctionImage{}).Error; err != nil {
			return fmt.Errorf("delete gallery: %w", err)
		}
		if err := tx.Model(&auction).Association("Categories").Clear(); err != nil {
			return fmt.Errorf("unlink categories: %w", err)
		}
		if err := tx.Delete(&auction).Error; err != nil {
			return fmt.Errorf("delete auction: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, auctionerrors.ErrAuctionNotFound) {
			return fmt.Errorf("repository: auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
		}
		return fmt.Errorf("repository: delete auction %s: %w", auctionID, err)
	}
	return nil
}

// PlaceBid runs the bid ledger inside one transaction: load the auction,
// check the bidding window against the caller's clock reading, compare the
// amount with the highest accepted bid (or the starting price), insert the
// bid, update the current price, and apply the anti-sniping extension with
// the same instant. The unique (auction_id, amount) index turns a concurrent
// same-amount insert into ErrBidTooLow, so the losing caller re-reads and
// resubmits like any other underbid.
func (r *GormRepo) PlaceBid(auctionID, bidderID string, amount float64, now time.Time) (model.Auction, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var auction model.Auction
		if err := tx.Where("id = ?", auctionID).First(&auction).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return auctionerrors.ErrAuctionNotFound
			}
			return fmt.Errorf("load auction: %w", err)
		}
		if now.Before(auction.StartTime) {
			return auctionerrors.ErrAuctionNotStarted
		}
		if !now.Before(auction.EndTime) {
			return auctionerrors.ErrAuctionEnded
		}

		minimum := auction.StartingPrice
		var highest model.Bid
		err := tx.Where("auction_id = ?", auctionID).Order("amount DESC").First(&highest).Error
		if err == nil {
			minimum = highest.Amount
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("read highest bid: %w", err)
		}
		if amount <= minimum {
			return fmt.Errorf("%w: current price is %.2f", auctionerrors.ErrBidTooLow, minimum)
		}

		bid := model.Bid{
			ID:        utils.GenerateID(),
			Amount:    amount,
			CreatedAt: now,
			AuctionID: auctionID,
			BidderID:  bidderID,
		}
		if err := tx.Create(&bid).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: amount %.2f was just taken", auctionerrors.ErrBidTooLow, amount)
			}
			return fmt.Errorf("insert bid: %w", err)
		}

		auction.CurrentPrice = amount
		auction.ExtendForAntiSniping(now)
		if err := tx.Model(&model.Auction{}).Where("id = ?", auctionID).Updates(map[string]any{
			"current_price": auction.CurrentPrice,
			"end_time":      auction.EndTime,
		}).Error; err != nil {
			return fmt.Errorf("update auction: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, auctionerrors.ErrAuctionNotFound) ||
			errors.Is(err, auctionerrors.ErrAuctionNotStarted) ||
			errors.Is(err, auctionerrors.ErrAuctionEnded) ||
			errors.Is(err, auctionerrors.ErrBidTooLow) {
			return model.Auction{}, err
		}
		return model.Auction{}, fmt.Errorf("repository: place bid on auction %s: %w", auctionID, err)
	}
	return r.GetAuction(auctionID)
}

// GetCategoriesBySlugs returns the categories matching the given slugs.
// Missing slugs are the caller's problem to detect.
func (r *GormRepo) GetCategoriesBySlugs(slugs []string) ([]model.Category, error) {
	if len(slugs) == 0 {
		return nil, nil
	}
	var categories []model.Category
	if err := r.db.Where("slug IN ?", slugs).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("repository: get categories by slugs: %w", err)
	}
	return categories, nil
}

// ListCategories returns the catalog in name order.
func (r *GormRepo) ListCategories() ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("repository: list categories: %w", err)
	}
	return categories, nil
}
