package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// StockStart se fija una sola vez: el stock actual inicia en ese valor.
type CreateProductRequest struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	SupplierID *string         `json:"supplier_id"`
	CategoryID *string         `json:"category_id"`
	UnitID     *string         `json:"unit_id"`
	PriceCost  decimal.Decimal `json:"price_cost"`
	PriceSale  decimal.Decimal `json:"price_sale"`
	StockStart decimal.Decimal `json:"stock_start"`
	StockMin   decimal.Decimal `json:"stock_min"`
	StockMax   decimal.Decimal `json:"stock_max"`
}

// UpdateProductRequest entrada para editar un producto. Incluye StockCurrent
// porque el operador puede corregir manualmente la cantidad actual; la
// conciliación contra el historial la hace el caso de uso.
type UpdateProductRequest struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	SupplierID   *string         `json:"supplier_id"`
	CategoryID   *string         `json:"category_id"`
	UnitID       *string         `json:"unit_id"`
	PriceCost    decimal.Decimal `json:"price_cost"`
	PriceSale    decimal.Decimal `json:"price_sale"`
	StockMin     decimal.Decimal `json:"stock_min"`
	StockMax     decimal.Decimal `json:"stock_max"`
	StockCurrent decimal.Decimal `json:"stock_current"`
}

// ProductResponse salida de un producto con los campos derivados de pantalla.
type ProductResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	SupplierID    *string         `json:"supplier_id"`
	CategoryID    *string         `json:"category_id"`
	UnitID        *string         `json:"unit_id"`
	PriceCost     decimal.Decimal `json:"price_cost"`
	PriceSale     decimal.Decimal `json:"price_sale"`
	PriceCostFmt  string          `json:"price_cost_fmt"`
	PriceSaleFmt  string          `json:"price_sale_fmt"`
	StockStart    decimal.Decimal `json:"stock_start"`
	StockMin      decimal.Decimal `json:"stock_min"`
	StockMax      decimal.Decimal `json:"stock_max"`
	StockCurrent  decimal.Decimal `json:"stock_current"`
	StockStatus   string          `json:"stock_status"`
	ProfitPercent decimal.Decimal `json:"profit_percent"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// BarcodeResponse código de barras generado para el formulario de producto.
type BarcodeResponse struct {
	Code string `json:"code"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
