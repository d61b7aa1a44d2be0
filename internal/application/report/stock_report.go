package report

import (
	"context"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/pdv-admin-api/internal/domain"
	"github.com/jhoicas/pdv-admin-api/internal/domain/entity"
	"github.com/jhoicas/pdv-admin-api/internal/domain/repository"
)

// reportPageSize tamaño de página al recorrer el catálogo completo.
const reportPageSize = 500

// PDFGenerator puerto para la generación del PDF del informe de stock.
type PDFGenerator interface {
	GenerateStockReportPDF(ctx context.Context, company *entity.Company, products []*entity.Product) ([]byte, error)
}

// UseCase genera el informe de stock imprimible de la empresa.
type UseCase struct {
	products  repository.ProductRepository
	companies repository.CompanyRepository
	pdf       PDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(products repository.ProductRepository, companies repository.CompanyRepository, pdf PDFGenerator) *UseCase {
	return &UseCase{products: products, companies: companies, pdf: pdf}
}

// StockReportPDF arma el informe con todos los productos de la empresa,
// ordenados por nombre con colación portuguesa, y devuelve los bytes del PDF.
func (uc *UseCase) StockReportPDF(ctx context.Context, companyID string) ([]byte, error) {
	company, err := uc.companies.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	var all []*entity.Product
	for offset := 0; ; offset += reportPageSize {
		page, err := uc.products.ListByCompany(companyID, reportPageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < reportPageSize {
			break
		}
	}

	coll := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	sort.Slice(all, func(i, j int) bool {
		return coll.CompareString(all[i].Name, all[j].Name) < 0
	})

	return uc.pdf.GenerateStockReportPDF(ctx, company, all)
}
