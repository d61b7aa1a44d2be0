package stock_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pdv-admin-api/internal/application/dto"
	appstock "github.com/jhoicas/pdv-admin-api/internal/application/stock"
	"github.com/jhoicas/pdv-admin-api/internal/domain"
	"github.com/jhoicas/pdv-admin-api/internal/domain/entity"
	"github.com/jhoicas/pdv-admin-api/internal/domain/repository"
)

const testCompanyID = "00000000-0000-0000-0000-0000000000c1"

func d(v string) decimal.Decimal {
	out, _ := decimal.NewFromString(v)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	items map[string]*entity.Product
	calls int // total de operaciones recibidas
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.calls++
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	f.calls++
	p, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	f.calls++
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) UpdateStock(id string, stockCurrent decimal.Decimal) error {
	f.calls++
	f.items[id].StockCurrent = stockCurrent
	return nil
}

func (f *fakeProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	f.calls++
	var out []*entity.Product
	for _, p := range f.items {
		if p.CompanyID == companyID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Delete(id string) error {
	f.calls++
	delete(f.items, id)
	return nil
}

type fakeMovementRepo struct {
	items []*entity.StockMovement
	calls int
}

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	f.calls++
	cp := *m
	f.items = append(f.items, &cp)
	return nil
}

func (f *fakeMovementRepo) ListByProduct(companyID, productID string) ([]*entity.StockMovement, error) {
	f.calls++
	var out []*entity.StockMovement
	for _, m := range f.items {
		if m.CompanyID == companyID && m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMovementRepo) CountByProduct(companyID, productID string) (int, error) {
	f.calls++
	n := 0
	for _, m := range f.items {
		if m.CompanyID == companyID && m.ProductID == productID {
			n++
		}
	}
	return n, nil
}

func (f *fakeMovementRepo) DeleteByProduct(companyID, productID string) error {
	f.calls++
	kept := f.items[:0]
	for _, m := range f.items {
		if !(m.CompanyID == companyID && m.ProductID == productID) {
			kept = append(kept, m)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeMovementRepo) byProduct(productID string) []*entity.StockMovement {
	var out []*entity.StockMovement
	for _, m := range f.items {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes (sin tx real).
type fakeTxRunner struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.ProductRepository, repository.StockMovementRepository) error) error {
	return fn(f.products, f.movements)
}

func newUseCase() (*appstock.UseCase, *fakeProductRepo, *fakeMovementRepo) {
	products := newFakeProductRepo()
	movements := &fakeMovementRepo{}
	uc := appstock.NewUseCase(&fakeTxRunner{products: products, movements: movements}, products, movements)
	return uc, products, movements
}

func createProduct(t *testing.T, uc *appstock.UseCase, in dto.CreateProductRequest) *dto.ProductResponse {
	t.Helper()
	out, err := uc.CreateProduct(context.Background(), testCompanyID, in)
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear producto
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_StockActualIgualAlInicial(t *testing.T) {
	uc, _, movements := newUseCase()

	out := createProduct(t, uc, dto.CreateProductRequest{
		Name:       "Café molido 500g",
		PriceCost:  d("10"),
		PriceSale:  d("15"),
		StockStart: d("4"),
	})

	assert.True(t, d("4").Equal(out.StockCurrent), "stock_current debe iniciar en stock_start")
	assert.True(t, d("4").Equal(out.StockStart))

	movs := movements.byProduct(out.ID)
	require.Len(t, movs, 1, "debe registrarse el asiento de entrada inicial")
	assert.Equal(t, entity.MovementTypeEntry, movs[0].Type)
	assert.True(t, d("40.00").Equal(movs[0].Value), "valor = costo x stock_start")
}

func TestCreateProduct_StockInicialCero_SinAsiento(t *testing.T) {
	uc, _, movements := newUseCase()

	out := createProduct(t, uc, dto.CreateProductRequest{
		Name:      "Azúcar 1kg",
		PriceCost: d("3"),
		PriceSale: d("5"),
	})

	assert.True(t, out.StockCurrent.IsZero())
	assert.Empty(t, movements.byProduct(out.ID))
}

func TestCreateProduct_NombreVacio_ValidacionSinLlamadaRemota(t *testing.T) {
	uc, products, movements := newUseCase()

	for _, name := range []string{"", "   ", "\t"} {
		_, err := uc.CreateProduct(context.Background(), testCompanyID, dto.CreateProductRequest{Name: name})
		ve := domain.AsValidation(err)
		require.NotNil(t, ve, "nombre %q debe fallar con ValidationError", name)
		assert.Equal(t, "name", ve.Field)
	}
	assert.Zero(t, products.calls, "la validación no debe tocar la persistencia")
	assert.Zero(t, movements.calls)
}

func TestCreateProduct_PrecioNegativo_Validacion(t *testing.T) {
	uc, _, _ := newUseCase()

	_, err := uc.CreateProduct(context.Background(), testCompanyID, dto.CreateProductRequest{
		Name:      "Producto",
		PriceCost: d("-1"),
	})
	ve := domain.AsValidation(err)
	require.NotNil(t, ve)
	assert.Equal(t, "price_cost", ve.Field)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos manuales
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_Entrada(t *testing.T) {
	uc, products, movements := newUseCase()
	p := createProduct(t, uc, dto.CreateProductRequest{
		Name: "Arroz 5kg", PriceCost: d("8"), PriceSale: d("12"), StockStart: d("10"),
	})
	before := len(movements.byProduct(p.ID))

	mov, err := uc.RegisterMovement(context.Background(), testCompanyID, p.ID, dto.RegisterMovementRequest{
		Type: entity.MovementTypeEntry, Quantity: d("5"),
	})
	require.NoError(t, err)

	assert.True(t, d("15").Equal(products.items[p.ID].StockCurrent), "stock después = antes + cantidad")
	movs := movements.byProduct(p.ID)
	require.Len(t, movs, before+1, "exactamente un asiento nuevo")
	assert.Equal(t, entity.MovementTypeEntry, mov.Type)
	assert.True(t, d("40.00").Equal(mov.Value), "valor = cantidad x costo")
}

func TestRegisterMovement_Salida(t *testing.T) {
	uc, products, movements := newUseCase()
	p := createProduct(t, uc, dto.CreateProductRequest{
		Name: "Arroz 5kg", PriceCost: d("8"), PriceSale: d("12"), StockStart: d("10"),
	})
	before := len(movements.byProduct(p.ID))

	mov, err := uc.RegisterMovement(context.Background(), testCompanyID, p.ID, dto.RegisterMovementRequest{
		Type: entity.MovementTypeExit, Quantity: d("3"),
	})
	require.NoError(t, err)

	assert.True(t, d("7").Equal(products.items[p.ID].StockCurrent), "stock después = antes - cantidad")
	require.Len(t, movements.byProduct(p.ID), before+1)
	assert.Equal(t, entity.MovementTypeExit, mov.Type)
	assert.True(t, d("36.00").Equal(mov.Value), "valor = cantidad x precio de venta")
}

func TestRegisterMovement_CantidadInvalida(t *testing.T) {
	uc, _, movements := newUseCase()
	p := createProduct(t, uc, dto.CreateProductRequest{Name: "Arroz", PriceCost: d("8"), PriceSale: d("12")})
	callsBefore := movements.calls

	for _, qty := range []string{"0", "-2"} {
		_, err := uc.RegisterMovement(context.Background(), testCompanyID, p.ID, dto.RegisterMovementRequest{
			Type: entity.MovementTypeEntry, Quantity: d(qty),
		})
		ve := domain.AsValidation(err)
		require.NotNil(t, ve, "cantidad %s debe fallar con ValidationError", qty)
		assert.Equal(t, "quantity", ve.Field)
	}
	assert.Equal(t, callsBefore, movements.calls, "la validación no debe tocar la persistencia")
}

func TestRegisterMovement_TipoDesconocido(t *testing.T) {
	uc, _, _ := newUseCase()
	p := createProduct(t, uc, dto.CreateProductRequest{Name: "Arroz", PriceCost: d("8"), PriceSale: d("12")})

	_, err := uc.RegisterMovement(context.Background(), testCompanyID, p.ID, dto.RegisterMovementRequest{
		Type: "transfer", Quantity: d("1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterMovement_OtraEmpresa(t *testing.T) {
	uc, _, _ := newUseCase()
	p := createProduct(t, uc, dto.CreateProductRequest{Name: "Arroz", PriceCost: d("8"), PriceSale: d("12")})

	_, err := uc.RegisterMovement(context.Background(), "otra-empresa", p.ID, dto.RegisterMovementRequest{
		Type: entity.MovementTypeEntry, Quantity: d("1"),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Editar producto (conciliación del historial)
// ──────────────────────────────────────────────────────────────────────────────

func updateReq(p *dto.ProductResponse) dto.UpdateProductRequest {
	return dto.UpdateProductRequest{
		Code:         p.Code,
		Name:         p.Name,
		PriceCost:    p.PriceCost,
		PriceSale:    p.PriceSale,
		StockMin:     p.StockMin,
		StockMax:     p.StockMax,
		StockCurrent: p.StockCurrent,
	}
}

func TestUpdateProduct_StockSinCambio_SinAsiento(t *testing.T) {
	uc, _, movements := newUseCase()
	p := createProduct(t, uc, dto.CreateProductRequest{
		Name: "Frijol", PriceCost: d("6"), PriceSale: d("9"), StockStart: d("10"),
	})
	before := len(movements.byProduct(p.ID))

	in := updateReq(p)
	in.Name = "Frijol rojo"
	_, err := uc.UpdateProduct(context.Background(), testCompanyID, p.ID, in)
	require.NoError(t, err)

	assert.Len(t, movements.byProduct(p.ID), before, "edición sin cambio de stock no genera asientos")
}

func TestUpdateProduct_Aumento_EntradaPorDelta(t *testing.T) {
	uc, _, movements := newUseCase()
	p := createProduct(t, uc, dto.CreateProductRequest{
		Name: "Frijol", PriceCost: d("6"), PriceSale: d("9"), StockStart: d("10"),
	})

	in := updateReq(p)
	in.StockCurrent = d("14")
	out, err := uc.UpdateProduct(context.Background(), testCompanyID, p.ID, in)
	require.NoError(t, err)
	assert.True(t, d("14").Equal(out.StockCurrent))

	movs := movements.byProduct(p.ID)
	require.Len(t, movs, 2)
	last := movs[len(movs)-1]
	assert.Equal(t, entity.MovementTypeEntry, last.Type)
	assert.True(t, d("24.00").Equal(last.Value), "delta 4 x costo 6")
}

func TestUpdateProduct_Disminucion_SalidaPorDelta(t *testing.T) {
	uc, _, movements := newUseCase()
	p := createProduct(t, uc, dto.CreateProductRequest{
		Name: "Frijol", PriceCost: d("6"), PriceSale: d("9"), StockStart: d("10"),
	})

	in := updateReq(p)
	in.StockCurrent = d("7")
	_, err := uc.UpdateProduct(context.Background(), testCompanyID, p.ID, in)
	require.NoError(t, err)

	movs := movements.byProduct(p.ID)
	require.Len(t, movs, 2)
	last := movs[len(movs)-1]
	assert.Equal(t, entity.MovementTypeExit, last.Type)
	assert.True(t, d("27.00").Equal(last.Value), "delta 3 x venta 9")
}

func TestUpdateProduct_SinHistorial_EntradaCompleta(t *testing.T) {
	uc, _, movements := newUseCase()
	// Producto creado sin stock inicial: sin asientos previos.
	p := createProduct(t, uc, dto.CreateProductRequest{
		Name: "Lenteja", PriceCost: d("4"), PriceSale: d("7"),
	})

	in := updateReq(p)
	in.StockCurrent = d("5")
	_, err := uc.UpdateProduct(context.Background(), testCompanyID, p.ID, in)
	require.NoError(t, err)

	movs := movements.byProduct(p.ID)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTypeEntry, movs[0].Type)
	assert.True(t, d("20.00").Equal(movs[0].Value), "stock completo 5 x costo 4")
}

func TestUpdateProduct_HistorialReiniciado_EntradaCompleta(t *testing.T) {
	uc, _, movements := newUseCase()
	p := createProduct(t, uc, dto.CreateProductRequest{
		Name: "Lenteja", PriceCost: d("4"), PriceSale: d("7"), StockStart: d("5"),
	})
	require.NoError(t, uc.ResetHistory(testCompanyID, p.ID, true))

	// Stock sin cambio pero sin historial: se asienta el stock completo.
	_, err := uc.UpdateProduct(context.Background(), testCompanyID, p.ID, updateReq(p))
	require.NoError(t, err)

	movs := movements.byProduct(p.ID)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTypeEntry, movs[0].Type)
	assert.True(t, d("20.00").Equal(movs[0].Value))
}

func TestUpdateProduct_NombreVacio_Validacion(t *testing.T) {
	uc, _, _ := newUseCase()
	p := createProduct(t, uc, dto.CreateProductRequest{Name: "Frijol", PriceCost: d("6"), PriceSale: d("9")})

	in := updateReq(p)
	in.Name = "  "
	_, err := uc.UpdateProduct(context.Background(), testCompanyID, p.ID, in)
	require.NotNil(t, domain.AsValidation(err))
}

func TestUpdateProduct_NoExiste(t *testing.T) {
	uc, _, _ := newUseCase()
	_, err := uc.UpdateProduct(context.Background(), testCompanyID, "no-existe", dto.UpdateProductRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrar producto y reiniciar historial
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteProduct_RequiereConfirmacion(t *testing.T) {
	uc, products, _ := newUseCase()
	p := createProduct(t, uc, dto.CreateProductRequest{Name: "Sal", PriceCost: d("1"), PriceSale: d("2")})

	err := uc.DeleteProduct(testCompanyID, p.ID, false)
	assert.ErrorIs(t, err, domain.ErrConfirmationRequired)
	assert.Contains(t, products.items, p.ID, "sin confirmación no se borra nada")

	require.NoError(t, uc.DeleteProduct(testCompanyID, p.ID, true))
	assert.NotContains(t, products.items, p.ID)
}

func TestDeleteProduct_NoCascadeaHistorial(t *testing.T) {
	uc, _, movements := newUseCase()
	p := createProduct(t, uc, dto.CreateProductRequest{
		Name: "Sal", PriceCost: d("1"), PriceSale: d("2"), StockStart: d("3"),
	})
	require.Len(t, movements.byProduct(p.ID), 1)

	require.NoError(t, uc.DeleteProduct(testCompanyID, p.ID, true))

	assert.Len(t, movements.byProduct(p.ID), 1,
		"los asientos quedan retenidos aunque el producto se borre")
}

func TestResetHistory_SinAsientos_NoOp(t *testing.T) {
	uc, _, _ := newUseCase()
	p := createProduct(t, uc, dto.CreateProductRequest{Name: "Sal", PriceCost: d("1"), PriceSale: d("2")})

	assert.NoError(t, uc.ResetHistory(testCompanyID, p.ID, true), "reiniciar sin historial debe terminar bien")
}

func TestResetHistory_BorraAsientosYConservaStock(t *testing.T) {
	uc, products, movements := newUseCase()
	p := createProduct(t, uc, dto.CreateProductRequest{
		Name: "Sal", PriceCost: d("1"), PriceSale: d("2"), StockStart: d("3"),
	})

	err := uc.ResetHistory(testCompanyID, p.ID, false)
	assert.ErrorIs(t, err, domain.ErrConfirmationRequired)

	require.NoError(t, uc.ResetHistory(testCompanyID, p.ID, true))
	assert.Empty(t, movements.byProduct(p.ID))
	assert.True(t, d("3").Equal(products.items[p.ID].StockCurrent), "el reinicio no altera stock_current")
}

// ──────────────────────────────────────────────────────────────────────────────
// Campos derivados en listados
// ──────────────────────────────────────────────────────────────────────────────

func TestListProducts_CamposDerivados(t *testing.T) {
	uc, _, _ := newUseCase()
	createProduct(t, uc, dto.CreateProductRequest{
		Name: "Bajo", PriceCost: d("10"), PriceSale: d("15"), StockStart: d("3"), StockMin: d("5"),
	})

	out, err := uc.ListProducts(testCompanyID, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)

	item := out.Items[0]
	assert.Equal(t, "low", item.StockStatus)
	assert.True(t, d("50").Equal(item.ProfitPercent))
	assert.Equal(t, "10,00", item.PriceCostFmt)
	assert.Equal(t, "15,00", item.PriceSaleFmt)
}

func TestHistory_ListaAsientos(t *testing.T) {
	uc, _, _ := newUseCase()
	p := createProduct(t, uc, dto.CreateProductRequest{
		Name: "Café", PriceCost: d("10"), PriceSale: d("15"), StockStart: d("2"),
	})
	_, err := uc.RegisterMovement(context.Background(), testCompanyID, p.ID, dto.RegisterMovementRequest{
		Type: entity.MovementTypeExit, Quantity: d("1"),
	})
	require.NoError(t, err)

	hist, err := uc.History(testCompanyID, p.ID)
	require.NoError(t, err)
	require.Len(t, hist.Items, 2)
	assert.Equal(t, "20,00", hist.Items[0].ValueFmt)
}
