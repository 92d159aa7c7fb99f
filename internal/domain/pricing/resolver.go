// Package pricing implementa la lógica pura de resolución de precios por
// fecha: un producto tiene a lo sumo un precio por defecto (sin rango) y
// cero o más precios por rango de fechas que no se solapan. Para una fecha
// dada, el precio por rango que la cubre gana sobre el precio por defecto.
//
// Toda la aritmética de fechas es por fecha calendario UTC (se ignora la
// hora del día) y con bordes inclusivos: el rango [from, to] cubre tanto
// from como to.
package pricing

import (
	"sort"
	"time"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// dateOnly trunca un instante a su fecha calendario en UTC.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Covers indica si la fecha ref cae dentro del rango [from, to] inclusivo,
// comparando por fecha calendario.
func Covers(from, to, ref time.Time) bool {
	day := dateOnly(ref)
	return !day.Before(dateOnly(from)) && !day.After(dateOnly(to))
}

// Overlaps indica si los rangos [aFrom, aTo] y [bFrom, bTo] se solapan.
// Bordes inclusivos: [1,5] y [5,10] se solapan; [1,5] y [6,10] no.
func Overlaps(aFrom, aTo, bFrom, bTo time.Time) bool {
	return !dateOnly(aFrom).After(dateOnly(bTo)) && !dateOnly(bFrom).After(dateOnly(aTo))
}

// Resolve devuelve el precio aplicable en la fecha ref entre los precios de
// un producto, o (nil, false) si no hay precio disponible:
//
//  1. Si hay un precio por rango (no-default, ambas fechas presentes) que
//     cubre ref, gana ese.
//  2. Si no, se usa el precio por defecto si existe.
//  3. Si no, no hay precio.
//
// Por el invariante de no-solapamiento no debería haber más de un rango que
// cubra ref; si hubiera (inconsistencia de datos), el desempate es
// determinista: gana el de menor ID.
func Resolve(prices []*entity.ProductPrice, ref time.Time) (*entity.ProductPrice, bool) {
	var covering []*entity.ProductPrice
	var deflt *entity.ProductPrice
	for _, p := range prices {
		switch {
		case p.IsDefault:
			if deflt == nil || p.ID < deflt.ID {
				deflt = p
			}
		case p.IsRanged() && Covers(*p.FromDate, *p.ToDate, ref):
			covering = append(covering, p)
		}
	}
	if len(covering) > 0 {
		sort.Slice(covering, func(i, j int) bool { return covering[i].ID < covering[j].ID })
		return covering[0], true
	}
	if deflt != nil {
		return deflt, true
	}
	return nil, false
}

// ConflictsWith indica si el rango [from, to] se solapa con algún precio por
// rango existente. Los precios por defecto y los registros sin ambas fechas
// se ignoran.
func ConflictsWith(from, to time.Time, existing []*entity.ProductPrice) bool {
	for _, p := range existing {
		if !p.IsRanged() {
			continue
		}
		if Overlaps(from, to, *p.FromDate, *p.ToDate) {
			return true
		}
	}
	return false
}
