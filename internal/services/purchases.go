package services

import (
	"context"

	"clinic-backend/internal/apperror"
	"clinic-backend/internal/models"
	"clinic-backend/internal/repository"
)

type PurchaseService struct {
	store  repository.Store
	ledger *Ledger
}

func NewPurchaseService(store repository.Store, ledger *Ledger) *PurchaseService {
	return &PurchaseService{store: store, ledger: ledger}
}

// Create mencatat pembelian (restock). Quantity dalam satuan besar, stok
// bertambah quantity * unit_conversion produk.
func (s *PurchaseService) Create(ctx context.Context, in models.CreatePurchaseInput) (*models.Stock, error) {
	switch {
	case in.PONumber == "":
		return nil, apperror.Validation("po_number wajib diisi")
	case in.Quantity <= 0:
		return nil, apperror.Validation("quantity harus lebih dari 0")
	case in.TotalAmount < 0:
		return nil, apperror.Validation("total_amount tidak boleh negatif")
	}

	var stock *models.Stock
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		product, err := tx.FindProduct(ctx, in.ProductID, in.ProductBusinessAreaID)
		if err != nil {
			return notFoundOr(err, apperror.NotFoundAsBadRequest("Produk tidak ditemukan"), "Gagal mengambil produk")
		}

		base, err := BaseQuantity(models.UnitLarge, in.Quantity, product.UnitConversion)
		if err != nil {
			return err
		}

		purchase := &models.Purchase{
			ProductID:      product.ID,
			BusinessAreaID: product.BusinessAreaID,
			PONumber:       in.PONumber,
			Quantity:       in.Quantity,
			BaseQuantity:   base,
			TotalAmount:    in.TotalAmount,
		}
		if err := tx.CreatePurchase(ctx, purchase); err != nil {
			return storageError("Gagal menyimpan pembelian", err)
		}

		stock, err = s.ledger.Apply(ctx, tx, product.ID, product.BusinessAreaID, base)
		return err
	})
	if err != nil {
		return nil, err
	}
	return stock, nil
}

func (s *PurchaseService) List(ctx context.Context, businessAreaID *uint64) ([]models.Purchase, error) {
	purchases, err := s.store.ListPurchases(ctx, businessAreaID)
	if err != nil {
		return nil, storageError("Gagal mengambil data pembelian", err)
	}
	return purchases, nil
}
