// Package barcode genera códigos de barras numéricos para productos sin código
// propio. No garantiza unicidad: es un generador de conveniencia para el
// formulario de productos y las colisiones no se verifican.
package barcode

import (
	"fmt"
	"math/rand/v2"
)

// countryPrefix prefijo GS1 fijo (789 = Brasil).
const countryPrefix = "789"

// Generate produce una cadena numérica de 12 dígitos: prefijo de país (3) +
// registro aleatorio (5) + SKU aleatorio (4), cada segmento con ceros a la
// izquierda hasta su ancho.
func Generate() string {
	register := rand.IntN(100000)
	sku := rand.IntN(10000)
	return fmt.Sprintf("%s%05d%04d", countryPrefix, register, sku)
}
