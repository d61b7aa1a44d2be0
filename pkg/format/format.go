// Package format implementa el formato monetario usado por las pantallas del
// PDV: separador de miles "." y separador decimal "," con dos decimales fijos
// (ej. 1234.5 -> "1.234,50"). ParseDecimal es la operación inversa exacta.
package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatDecimal renderiza el valor con separador de miles y coma decimal,
// siempre con dos decimales.
func FormatDecimal(d decimal.Decimal) string {
	s := d.Round(2).StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

// ParseDecimal convierte una cadena formateada de vuelta a decimal: elimina el
// símbolo de moneda y los separadores de miles, convierte la coma decimal a
// punto y redondea a dos decimales. Ida y vuelta idempotente para valores con
// hasta dos decimales.
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("format: valor no numérico %q: %w", s, err)
	}
	return d.Round(2), nil
}
