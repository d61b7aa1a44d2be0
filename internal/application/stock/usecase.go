package stock

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pdv-admin-api/internal/application/dto"
	"github.com/jhoicas/pdv-admin-api/internal/domain"
	"github.com/jhoicas/pdv-admin-api/internal/domain/entity"
	"github.com/jhoicas/pdv-admin-api/internal/domain/repository"
	domstock "github.com/jhoicas/pdv-admin-api/internal/domain/stock"
	"github.com/jhoicas/pdv-admin-api/pkg/format"
)

// UseCase orquesta el flujo de stock: mantiene los productos de la empresa y
// su historial de movimientos, y preserva la consistencia entre stock_current
// y los asientos registrados en cada operación.
type UseCase struct {
	txRunner  TxRunner
	products  repository.ProductRepository
	movements repository.StockMovementRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, products repository.ProductRepository, movements repository.StockMovementRepository) *UseCase {
	return &UseCase{txRunner: txRunner, products: products, movements: movements}
}

// CreateProduct crea un producto con stock_current inicializado en stock_start.
// Si stock_start > 0 registra un asiento de entrada valorado a costo. El
// asiento se escribe después del insert y en la misma transacción: si el
// insert falla no queda asiento huérfano.
func (uc *UseCase) CreateProduct(ctx context.Context, companyID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "el nombre es obligatorio")
	}
	if err := validateQuantities(in.PriceCost, in.PriceSale, in.StockStart); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Code:         in.Code,
		Name:         in.Name,
		SupplierID:   in.SupplierID,
		CategoryID:   in.CategoryID,
		UnitID:       in.UnitID,
		PriceCost:    in.PriceCost,
		PriceSale:    in.PriceSale,
		StockStart:   in.StockStart,
		StockMin:     in.StockMin,
		StockMax:     in.StockMax,
		StockCurrent: in.StockStart,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := uc.txRunner.Run(ctx, func(products repository.ProductRepository, movements repository.StockMovementRepository) error {
		if err := products.Create(product); err != nil {
			return err
		}
		if product.StockStart.GreaterThan(decimal.Zero) {
			return movements.Create(&entity.StockMovement{
				ID:        uuid.New().String(),
				CompanyID: companyID,
				ProductID: product.ID,
				Type:      entity.MovementTypeEntry,
				Value:     domstock.EntryValue(product.StockStart, product.PriceCost),
				CreatedAt: now,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// UpdateProduct edita un producto, incluida la corrección manual de
// stock_current, y concilia el historial: sin asientos previos y stock nuevo
// > 0 registra una entrada valorada a costo; con historial, un aumento
// registra una entrada (delta a costo) y una disminución una salida (delta a
// venta); sin cambio no escribe nada. La línea base se relee dentro de la
// transacción, no del snapshot de selección, para que un refresco de la lista
// entre selección y guardado no genere asientos fantasma.
func (uc *UseCase) UpdateProduct(ctx context.Context, companyID, productID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "el nombre es obligatorio")
	}
	if err := validateQuantities(in.PriceCost, in.PriceSale, in.StockCurrent); err != nil {
		return nil, err
	}

	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(products repository.ProductRepository, movements repository.StockMovementRepository) error {
		baseline, err := products.GetByID(productID)
		if err != nil {
			return err
		}
		if baseline == nil {
			return domain.ErrNotFound
		}
		if baseline.CompanyID != companyID {
			return domain.ErrForbidden
		}

		product := *baseline
		product.Code = in.Code
		product.Name = in.Name
		product.SupplierID = in.SupplierID
		product.CategoryID = in.CategoryID
		product.UnitID = in.UnitID
		product.PriceCost = in.PriceCost
		product.PriceSale = in.PriceSale
		product.StockMin = in.StockMin
		product.StockMax = in.StockMax
		product.StockCurrent = in.StockCurrent
		product.UpdatedAt = time.Now()

		if err := products.Update(&product); err != nil {
			return err
		}

		prior, err := movements.CountByProduct(companyID, productID)
		if err != nil {
			return err
		}
		mov := reconcileMovement(baseline, &product, prior > 0)
		if mov != nil {
			if err := movements.Create(mov); err != nil {
				return err
			}
		}
		updated = &product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

// reconcileMovement deriva el asiento de conciliación de una edición, o nil si
// no corresponde ninguno. Sin historial previo, el primer stock > 0 se asienta
// completo como entrada valorada a costo. Con historial se asienta solo el
// delta contra la línea base; el empate no escribe nada.
func reconcileMovement(baseline, product *entity.Product, hasHistory bool) *entity.StockMovement {
	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		CompanyID: product.CompanyID,
		ProductID: product.ID,
		CreatedAt: product.UpdatedAt,
	}
	if !hasHistory {
		if !product.StockCurrent.GreaterThan(decimal.Zero) {
			return nil
		}
		mov.Type = entity.MovementTypeEntry
		mov.Value = domstock.EntryValue(product.StockCurrent, product.PriceCost)
		return mov
	}
	delta := product.StockCurrent.Sub(baseline.StockCurrent)
	switch {
	case delta.GreaterThan(decimal.Zero):
		mov.Type = entity.MovementTypeEntry
		mov.Value = domstock.EntryValue(delta, product.PriceCost)
	case delta.LessThan(decimal.Zero):
		mov.Type = entity.MovementTypeExit
		mov.Value = domstock.ExitValue(delta.Abs(), product.PriceSale)
	default:
		return nil
	}
	return mov
}

// DeleteProduct elimina el producto. No borra en cascada su historial: los
// asientos quedan retenidos a nombre de la empresa. Exige confirmación
// explícita del operador.
func (uc *UseCase) DeleteProduct(companyID, productID string, confirm bool) error {
	if !confirm {
		return domain.ErrConfirmationRequired
	}
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.products.Delete(productID)
}

// RegisterMovement registra un movimiento manual: entrada valorada a costo o
// salida valorada a venta, y ajusta stock_current en la misma transacción. El
// asiento se escribe antes de actualizar la cantidad.
func (uc *UseCase) RegisterMovement(ctx context.Context, companyID, productID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.Type != entity.MovementTypeEntry && in.Type != entity.MovementTypeExit {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.NewValidationError("quantity", "la cantidad debe ser mayor que cero")
	}

	var mov *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(products repository.ProductRepository, movements repository.StockMovementRepository) error {
		product, err := products.GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.CompanyID != companyID {
			return domain.ErrForbidden
		}

		now := time.Now()
		mov = &entity.StockMovement{
			ID:        uuid.New().String(),
			CompanyID: companyID,
			ProductID: productID,
			Type:      in.Type,
			CreatedAt: now,
		}
		newStock := product.StockCurrent
		if in.Type == entity.MovementTypeEntry {
			mov.Value = domstock.EntryValue(in.Quantity, product.PriceCost)
			newStock = newStock.Add(in.Quantity)
		} else {
			mov.Value = domstock.ExitValue(in.Quantity, product.PriceSale)
			newStock = newStock.Sub(in.Quantity)
		}

		if err := movements.Create(mov); err != nil {
			return err
		}
		return products.UpdateStock(productID, newStock)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// ResetHistory borra todos los asientos del producto para la empresa. No
// altera stock_current. Sobre un producto sin historial es un no-op que
// termina bien. Exige confirmación explícita.
func (uc *UseCase) ResetHistory(companyID, productID string, confirm bool) error {
	if !confirm {
		return domain.ErrConfirmationRequired
	}
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.movements.DeleteByProduct(companyID, productID)
}

// GetProduct obtiene un producto por ID con sus campos derivados.
func (uc *UseCase) GetProduct(companyID, productID string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return toProductResponse(product), nil
}

// ListProducts lista los productos de la empresa con paginación y campos
// derivados de pantalla.
func (uc *UseCase) ListProducts(companyID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.products.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// History devuelve el historial de movimientos del producto.
func (uc *UseCase) History(companyID, productID string) (*dto.HistoryResponse, error) {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	list, err := uc.movements.ListByProduct(companyID, productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.HistoryResponse{ProductID: productID, Items: items}, nil
}

// validateQuantities rechaza precios y cantidades negativas con error de campo.
func validateQuantities(priceCost, priceSale, stockQty decimal.Decimal) error {
	if priceCost.LessThan(decimal.Zero) {
		return domain.NewValidationError("price_cost", "el precio de costo no puede ser negativo")
	}
	if priceSale.LessThan(decimal.Zero) {
		return domain.NewValidationError("price_sale", "el precio de venta no puede ser negativo")
	}
	if stockQty.LessThan(decimal.Zero) {
		return domain.NewValidationError("stock", "la cantidad de stock no puede ser negativa")
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		CompanyID:     p.CompanyID,
		Code:          p.Code,
		Name:          p.Name,
		SupplierID:    p.SupplierID,
		CategoryID:    p.CategoryID,
		UnitID:        p.UnitID,
		PriceCost:     p.PriceCost,
		PriceSale:     p.PriceSale,
		PriceCostFmt:  format.FormatDecimal(p.PriceCost),
		PriceSaleFmt:  format.FormatDecimal(p.PriceSale),
		StockStart:    p.StockStart,
		StockMin:      p.StockMin,
		StockMax:      p.StockMax,
		StockCurrent:  p.StockCurrent,
		StockStatus:   domstock.Classify(p.StockCurrent, p.StockMin, p.StockMax),
		ProfitPercent: domstock.ProfitPercent(p.PriceCost, p.PriceSale),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Value:     m.Value,
		ValueFmt:  format.FormatDecimal(m.Value),
		CreatedAt: m.CreatedAt,
	}
}
